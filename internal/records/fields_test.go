package records

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_FirstPresentKeyWins(t *testing.T) {
	record := map[string]any{"Product": "pen", "product": "ink"}

	value, ok := Field(record, []string{"product", "Product"})
	assert.True(t, ok)
	assert.Equal(t, "ink", value)

	value, ok = Field(record, []string{"Product", "product"})
	assert.True(t, ok)
	assert.Equal(t, "pen", value)
}

func TestField_PresentNullIsPresent(t *testing.T) {
	value, ok := Field(map[string]any{"quantity": nil}, []string{"quantity"})

	assert.True(t, ok)
	assert.Nil(t, value)
}

func TestField_Absent(t *testing.T) {
	_, ok := Field(map[string]any{"qty": json.Number("1")}, []string{"quantity", "Quantity"})
	assert.False(t, ok)

	_, ok = Field([]any{"pen"}, []string{"product"})
	assert.False(t, ok)

	_, ok = Field("pen", []string{"product"})
	assert.False(t, ok)
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
		ok    bool
	}{
		{"integer", json.Number("4"), 4, true},
		{"fraction", json.Number("2.5"), 2.5, true},
		{"negative", json.Number("-3"), -3, true},
		{"exponent", json.Number("1e2"), 100, true},
		{"float64", 1.5, 1.5, true},
		{"int", 7, 7, true},
		{"out of range", json.Number("1e400"), 0, false},
		{"numeric string", "4", 0, false},
		{"bool", true, 0, false},
		{"null", nil, 0, false},
		{"object", map[string]any{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Number(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender(t *testing.T) {
	assert.Equal(t, "null", Render(nil))
	assert.Equal(t, "pen", Render("pen"))
	assert.Equal(t, "-3", Render(json.Number("-3")))
	assert.Equal(t, "2.50", Render(json.Number("2.50")))
	assert.Equal(t, "true", Render(true))
	assert.Equal(t, "1.5", Render(1.5))
	assert.Equal(t, `[1,"a"]`, Render([]any{json.Number("1"), "a"}))
	assert.Equal(t, `{"n":2}`, Render(map[string]any{"n": json.Number("2")}))
}
