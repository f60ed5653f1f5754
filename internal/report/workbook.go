package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/compute-sales/pkg/utils"
)

// Sheet names used by the workbook export.
const (
	SummarySheet = "Summary"
	ErrorsSheet  = "Errors"
)

// WriteWorkbook exports the report to an XLSX workbook at path. The Summary
// sheet holds the figures; the Errors sheet lists record errors in order.
func WriteWorkbook(path string, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	// A new file starts with "Sheet1".
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	summary := [][]any{
		{"Run ID", r.RunID},
		{"Total sales cost", r.TotalCost},
		{"Elapsed seconds", r.Elapsed.Seconds()},
		{"Valid records", r.ValidRecords},
		{"Invalid records", r.InvalidRecords},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}

	// Two decimals for the total, matching the text report.
	style, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("failed to create number style: %w", err)
	}
	if err := f.SetCellStyle(SummarySheet, "B2", "B2", style); err != nil {
		return fmt.Errorf("failed to style total: %w", err)
	}

	if _, err := f.NewSheet(ErrorsSheet); err != nil {
		return fmt.Errorf("failed to create errors sheet: %w", err)
	}
	if err := f.SetSheetRow(ErrorsSheet, "A1", &[]any{"#", "Error"}); err != nil {
		return fmt.Errorf("failed to write errors header: %w", err)
	}
	for i, msg := range r.Errors {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ErrorsSheet, cell, &[]any{i + 1, msg}); err != nil {
			return fmt.Errorf("failed to write error row %d: %w", i+1, err)
		}
	}

	if err := utils.EnsureParentDir(path); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}
