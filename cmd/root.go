// =============================================================================
// Compute Sales - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command
// computes the sales report from two positional JSON files.
//
// COBRA CLI STRUCTURE:
//   rootCmd (compute-sales <priceCatalogue.json> <salesRecord.json>)
//   └── versionCmd (compute-sales version)
//
// EXIT STATUS:
//   0 - report printed and written
//   1 - wrong number of arguments, unreadable or malformed input, bad config
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/compute-sales/internal/config"
	"github.com/ginjaninja78/compute-sales/internal/logging"
	"github.com/ginjaninja78/compute-sales/internal/pipeline"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// rootFlags holds the values bound to the root command's flags.
type rootFlags struct {
	// cfgFile is the optional YAML configuration file.
	cfgFile string

	// outputFile overrides the report file from the configuration.
	outputFile string

	// xlsxOutput enables the workbook export at the given path.
	xlsxOutput string

	// strictCatalogue makes skipped catalogue entries fatal.
	strictCatalogue bool

	// verbose enables debug logging.
	verbose bool
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// NewRootCmd builds the command tree. The report goes to stdout; logs go to
// stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "compute-sales <priceCatalogue.json> <salesRecord.json>",
		Short: "Compute total sales cost from a price catalogue and sales records",
		Long: `compute-sales matches every sales record against a product price catalogue,
totals price x quantity over the valid records, and reports the total, the
elapsed computation time, and one error line per unmatched product or invalid
quantity.

The report is printed and written to SalesResults.txt (see --output), which is
overwritten on every successful run. If either input cannot be read or parsed,
nothing is written and the command exits with status 1.

Example Usage:
  compute-sales priceCatalogue.json salesRecord.json
  compute-sales --config sales.yaml --xlsx SalesResults.xlsx prices.json sales.json`,

		Args: cobra.ExactArgs(2),

		// Errors are printed once by Execute.
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid from here on; failures are not usage errors.
			cmd.SilenceUsage = true
			return runCompute(cmd, flags, args[0], args[1])
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&flags.cfgFile, "config", "",
		"Path to an optional YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"Enable debug logging on stderr")

	cmd.Flags().StringVarP(&flags.outputFile, "output", "o", config.DefaultOutputFile,
		"Report file to overwrite")
	cmd.Flags().StringVar(&flags.xlsxOutput, "xlsx", "",
		"Also export the report to this XLSX workbook")
	cmd.Flags().BoolVar(&flags.strictCatalogue, "strict-catalogue", false,
		"Fail on catalogue entries with an empty name or non-numeric price instead of skipping them")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the CLI. This is called by main.main().
func Execute() {
	if err := NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// runCompute loads the configuration, applies flag overrides and runs the
// pipeline.
func runCompute(cmd *cobra.Command, flags *rootFlags, cataloguePath, salesPath string) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	logger := logging.New(cmd.ErrOrStderr(), level)

	_, err = pipeline.Run(logger.WithContext(cmd.Context()), pipeline.Options{
		CataloguePath: cataloguePath,
		SalesPath:     salesPath,
		Config:        cfg,
		Stdout:        cmd.OutOrStdout(),
	})
	return err
}

// loadConfig reads --config when given and lets explicitly set flags win
// over file values.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg := config.Default()
	if flags.cfgFile != "" {
		loaded, err := config.Load(flags.cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("output") {
		cfg.OutputFile = flags.outputFile
	}
	if cmd.Flags().Changed("xlsx") {
		cfg.XLSXOutput = flags.xlsxOutput
	}
	if cmd.Flags().Changed("strict-catalogue") {
		cfg.StrictCatalogue = flags.strictCatalogue
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
