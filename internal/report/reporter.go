// =============================================================================
// Compute Sales - Reporter
// =============================================================================
//
// This module formats the outcome of a run and writes it to standard output
// and to the report file.
//
// REPORT LAYOUT:
//   Total sales cost: 6.00
//   Elapsed time: 0.000123 seconds
//   Errors found:                      <- only when there are errors
//   - Product not found: pencil
//
// The report file is overwritten unconditionally on every successful run.
//
// =============================================================================

package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/ginjaninja78/compute-sales/internal/types"
	"github.com/ginjaninja78/compute-sales/pkg/utils"
)

// Report is everything the reporter prints for one run.
type Report struct {
	// RunID identifies the run in logs and in the workbook export.
	RunID string

	// TotalCost is the accumulated sales cost.
	TotalCost float64

	// Elapsed is the wall-clock time of the load and compute phase.
	Elapsed time.Duration

	// Errors holds the record error messages in input order.
	Errors []string

	// ValidRecords and InvalidRecords count the classified sales records.
	ValidRecords   int
	InvalidRecords int
}

// FromResult builds a report from an aggregation result.
func FromResult(runID string, result *types.Result, elapsed time.Duration) *Report {
	return &Report{
		RunID:          runID,
		TotalCost:      result.TotalCost,
		Elapsed:        elapsed,
		Errors:         result.Messages(),
		ValidRecords:   result.ValidRecords,
		InvalidRecords: result.InvalidRecords,
	}
}

// Format writes the text report to w.
func Format(w io.Writer, r *Report) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Total sales cost: %.2f\n", r.TotalCost)
	fmt.Fprintf(&buf, "Elapsed time: %.6f seconds\n", r.Elapsed.Seconds())
	if len(r.Errors) > 0 {
		buf.WriteString("Errors found:\n")
		for _, msg := range r.Errors {
			fmt.Fprintf(&buf, "- %s\n", msg)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Write prints the report to out and overwrites the file at path with the
// same content.
//
// PARAMETERS:
//   - out: Usually standard output.
//   - path: The report file. Missing parent directories are created.
//
// RETURNS:
//   - An error if either destination cannot be written.
func Write(out io.Writer, path string, r *Report) error {
	var buf bytes.Buffer
	if err := Format(&buf, r); err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	if _, err := out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}

	if err := utils.WriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return nil
}
