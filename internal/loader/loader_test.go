package loader

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON_KeepsNumberText(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sales.json", `[{"Product":"pen","Quantity":-3},{"Product":"ink","Quantity":2.50}]`)

	value, err := LoadJSON(path)

	require.NoError(t, err)
	records, ok := value.([]any)
	require.True(t, ok)
	require.Len(t, records, 2)
	assert.Equal(t, json.Number("-3"), records[0].(map[string]any)["Quantity"])
	assert.Equal(t, json.Number("2.50"), records[1].(map[string]any)["Quantity"])
}

func TestLoadJSON_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	_, err := LoadJSON(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestLoadJSON_Malformed(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"truncated": `[{"title":"pen","price":1.5}`,
		"trailing":  `[] []`,
		"empty":     ``,
		"garbage":   `not json`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, dir, name+".json", content)

			_, err := LoadJSON(path)

			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), "failed to parse "+path))
		})
	}
}

func TestLoadJSON_TrailingWhitespaceIsFine(t *testing.T) {
	path := writeFile(t, t.TempDir(), "catalogue.json", "{\"pen\": 1.5}\n\n  ")

	value, err := LoadJSON(path)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"pen": json.Number("1.5")}, value)
}

func TestLoadInputs(t *testing.T) {
	dir := t.TempDir()
	catalogue := writeFile(t, dir, "catalogue.json", `[{"title":"pen","price":1.5}]`)
	sales := writeFile(t, dir, "sales.json", `[{"Product":"pen","Quantity":4}]`)

	inputs, err := LoadInputs(catalogue, sales)

	require.NoError(t, err)
	assert.Equal(t, catalogue, inputs.CataloguePath)
	assert.Equal(t, sales, inputs.SalesPath)
	assert.NotNil(t, inputs.Catalogue)
	assert.NotNil(t, inputs.Sales)
}

func TestLoadInputs_EitherFailureAborts(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `[]`)
	bad := writeFile(t, dir, "bad.json", `{`)
	missing := filepath.Join(dir, "missing.json")

	inputs, err := LoadInputs(missing, good)
	assert.Error(t, err)
	assert.Nil(t, inputs)

	inputs, err = LoadInputs(good, bad)
	assert.Error(t, err)
	assert.Nil(t, inputs)
}
