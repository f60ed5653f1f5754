// =============================================================================
// Compute Sales - Pipeline
// =============================================================================
//
// This module orchestrates one run, from reading the inputs to writing the
// report.
//
// PIPELINE:
//   1. Load the price catalogue and the sales records (fatal on failure)
//   2. Index the catalogue by product name
//   3. Classify every sales record and accumulate the total
//   4. Print the report and overwrite the report file
//   5. Optionally export the report to an XLSX workbook
//
// Elapsed time covers steps 1 to 3. A failure in step 1 or 2 returns before
// anything is written, so a report from a previous run stays untouched.
//
// =============================================================================

package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ginjaninja78/compute-sales/internal/catalogue"
	"github.com/ginjaninja78/compute-sales/internal/config"
	"github.com/ginjaninja78/compute-sales/internal/loader"
	"github.com/ginjaninja78/compute-sales/internal/report"
	"github.com/ginjaninja78/compute-sales/internal/sales"
	"github.com/ginjaninja78/compute-sales/internal/types"
)

// =============================================================================
// OPTIONS AND OUTCOME
// =============================================================================

// Options describes the inputs of a run.
type Options struct {
	// CataloguePath is the price catalogue JSON file.
	CataloguePath string

	// SalesPath is the sales records JSON file.
	SalesPath string

	// Config holds output paths, field mapping and strictness.
	Config *config.Config

	// Stdout receives the printed report.
	Stdout io.Writer
}

// Outcome is what a successful run produced.
type Outcome struct {
	// RunID is a random identifier attached to logs and the workbook.
	RunID string

	// Catalogue is the index built from the price catalogue.
	Catalogue *catalogue.Index

	// Result is the aggregation over the sales records.
	Result *types.Result

	// Elapsed is the wall-clock time of loading and computing.
	Elapsed time.Duration

	// Report is what was printed and written.
	Report *report.Report
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the pipeline.
//
// RETURNS:
//   - The outcome of the run.
//   - An error if an input cannot be loaded or has the wrong shape, or if the
//     report cannot be written.
func Run(ctx context.Context, opts Options) (*Outcome, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	runID := uuid.New().String()
	logger := zerolog.Ctx(ctx).With().Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx)

	startTime := time.Now()

	// =========================================================================
	// STEP 1: LOAD INPUTS
	// =========================================================================

	logger.Debug().
		Str("catalogue", opts.CataloguePath).
		Str("sales", opts.SalesPath).
		Msg("loading inputs")

	inputs, err := loader.LoadInputs(opts.CataloguePath, opts.SalesPath)
	if err != nil {
		return nil, err
	}

	// =========================================================================
	// STEP 2: INDEX CATALOGUE
	// =========================================================================

	index, err := catalogue.Build(ctx, inputs.Catalogue, catalogue.Options{
		Fields: cfg.Fields,
		Strict: cfg.StrictCatalogue,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to index %s: %w", inputs.CataloguePath, err)
	}

	logger.Debug().
		Int("products", len(index.Prices)).
		Int("skipped", index.Skipped).
		Msg("indexed catalogue")

	// =========================================================================
	// STEP 3: AGGREGATE SALES
	// =========================================================================

	result, err := sales.Compute(ctx, index.Prices, inputs.Sales, cfg.Fields)
	if err != nil {
		return nil, fmt.Errorf("failed to compute %s: %w", inputs.SalesPath, err)
	}

	elapsed := time.Since(startTime)

	logger.Info().
		Float64("total_cost", result.TotalCost).
		Int("valid", result.ValidRecords).
		Int("invalid", result.InvalidRecords).
		Dur("elapsed", elapsed).
		Msg("computed sales")

	// =========================================================================
	// STEP 4: WRITE REPORT
	// =========================================================================

	rep := report.FromResult(runID, result, elapsed)

	stdout := opts.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	if err := report.Write(stdout, cfg.OutputFile, rep); err != nil {
		return nil, err
	}

	logger.Debug().Str("path", cfg.OutputFile).Msg("wrote report")

	// =========================================================================
	// STEP 5: OPTIONAL WORKBOOK EXPORT
	// =========================================================================

	if cfg.XLSXOutput != "" {
		if err := report.WriteWorkbook(cfg.XLSXOutput, rep); err != nil {
			return nil, fmt.Errorf("failed to export workbook: %w", err)
		}
		logger.Debug().Str("path", cfg.XLSXOutput).Msg("wrote workbook")
	}

	return &Outcome{
		RunID:     runID,
		Catalogue: index,
		Result:    result,
		Elapsed:   elapsed,
		Report:    rep,
	}, nil
}
