package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/compute-sales/internal/types"
)

func TestFormat_NoErrors(t *testing.T) {
	var buf bytes.Buffer

	err := Format(&buf, &Report{TotalCost: 6, Elapsed: 1500 * time.Microsecond})

	require.NoError(t, err)
	assert.Equal(t, "Total sales cost: 6.00\nElapsed time: 0.001500 seconds\n", buf.String())
}

func TestFormat_WithErrors(t *testing.T) {
	var buf bytes.Buffer
	r := &Report{
		TotalCost: 0,
		Elapsed:   2 * time.Second,
		Errors:    []string{"Product not found: pencil", "Invalid quantity for pen: -3"},
	}

	require.NoError(t, Format(&buf, r))

	assert.Equal(t, "Total sales cost: 0.00\n"+
		"Elapsed time: 2.000000 seconds\n"+
		"Errors found:\n"+
		"- Product not found: pencil\n"+
		"- Invalid quantity for pen: -3\n", buf.String())
}

func TestFormat_RoundsTotalToTwoDecimals(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Format(&buf, &Report{TotalCost: 1234.5678}))

	assert.Contains(t, buf.String(), "Total sales cost: 1234.57\n")
}

func TestWrite_StdoutAndFileMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "SalesResults.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale report that is longer than the new one\n\n\n"), 0o644))
	var out bytes.Buffer
	r := &Report{TotalCost: 6, Errors: []string{"Product not found: x"}}

	require.NoError(t, Write(&out, path, r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out.String(), string(data))
	assert.Contains(t, string(data), "- Product not found: x\n")
}

func TestFromResult(t *testing.T) {
	result := &types.Result{
		TotalCost:      6,
		Errors:         []*types.RecordError{{Kind: types.ProductNotFound, Product: "pencil"}},
		ValidRecords:   1,
		InvalidRecords: 1,
	}

	r := FromResult("run-1", result, time.Second)

	assert.Equal(t, &Report{
		RunID:          "run-1",
		TotalCost:      6,
		Elapsed:        time.Second,
		Errors:         []string{"Product not found: pencil"},
		ValidRecords:   1,
		InvalidRecords: 1,
	}, r)
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "SalesResults.xlsx")
	r := &Report{
		RunID:          "run-1",
		TotalCost:      6,
		Elapsed:        time.Millisecond,
		Errors:         []string{"Product not found: pencil", "Invalid quantity for pen: -3"},
		ValidRecords:   1,
		InvalidRecords: 2,
	}

	require.NoError(t, WriteWorkbook(path, r))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, ErrorsSheet}, f.GetSheetList())

	runID, err := f.GetCellValue(SummarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", runID)

	total, err := f.GetCellValue(SummarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "6.00", total)

	rows, err := f.GetRows(ErrorsSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"#", "Error"},
		{"1", "Product not found: pencil"},
		{"2", "Invalid quantity for pen: -3"},
	}, rows)
}
