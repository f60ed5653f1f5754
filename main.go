// =============================================================================
// Compute Sales - Main Entry Point
// =============================================================================
//
// This is the main entry point for the compute-sales CLI application.
// It delegates to the cmd package, which builds the Cobra command tree.
//
// USAGE:
//   compute-sales priceCatalogue.json salesRecord.json   - Compute the sales report
//   compute-sales version                                - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Loader, catalogue indexer, sales aggregator, reporter
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/compute-sales/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
