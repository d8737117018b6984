// =============================================================================
// Sales Analytics - Process Command
// =============================================================================
//
// This file defines the 'process' command, which runs the full analytics
// pipeline end to end.
//
// COMMAND USAGE:
//   sales-analytics process [flags]
//
// FLAGS:
//   --dry-run          : Compute everything without writing output files
//   --input            : Override the input file from the configuration
//   --skip-enrichment  : Treat the catalog service as unavailable
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-analytics/internal/config"
	"github.com/ginjaninja78/sales-analytics/internal/logger"
	"github.com/ginjaninja78/sales-analytics/internal/pipeline"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dryRun computes everything without writing output files.
var dryRun bool

// inputOverride replaces the configured input file for this run.
var inputOverride string

// skipEnrichment runs the pipeline without calling the catalog service.
var skipEnrichment bool

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the sales analytics pipeline",
	Long: `The process command reads the configured sales data file, parses and
validates the records, enriches them against the product catalog service,
computes the aggregate metrics, and writes the text report, the enriched
pipe-delimited export, and the XLSX analysis workbook.

Data-quality problems (malformed lines, rule violations, an unreachable
catalog) degrade gracefully and are reported in the summary. Output write
failures abort the run with a non-zero exit status; output files are written
atomically so a failed run never leaves a partial report behind.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd.Context())
	},
}

// init registers the process command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Compute everything without writing output files",
	)

	processCmd.Flags().StringVar(
		&inputOverride,
		"input",
		"",
		"Override the input file from the configuration",
	)

	processCmd.Flags().BoolVar(
		&skipEnrichment,
		"skip-enrichment",
		false,
		"Treat the catalog service as unavailable",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess loads the configuration and executes the pipeline.
func runProcess(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Println("=== Sales Analytics ===")
	fmt.Println("Loading configuration...")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if inputOverride != "" {
		cfg.InputFile = inputOverride
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel)

	fmt.Printf("Processing %s...\n", cfg.InputFile)

	runner := pipeline.New(cfg, pipeline.Options{
		DryRun:         dryRun,
		SkipEnrichment: skipEnrichment,
	}, log)
	result := runner.Run(ctx)

	if !result.Success {
		return fmt.Errorf("pipeline failed: %w", result.Error)
	}

	// Print the operator-facing summary.
	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Records parsed:     %d\n", result.Stats.Parsed)
	fmt.Printf("Invalid removed:    %d\n", result.Stats.Invalid)
	fmt.Printf("Valid records:      %d\n", result.Stats.Valid)
	fmt.Printf("Catalog entries:    %d\n", result.Stats.CatalogEntries)
	fmt.Printf("Enriched (matched): %d\n", result.Stats.Matched)
	fmt.Printf("Time elapsed:       %s\n", result.Stats.Elapsed)

	if dryRun {
		fmt.Println("\nDry run: no output files were written.")
		return nil
	}

	fmt.Printf("\nReport:   %s\n", result.ReportPath)
	fmt.Printf("Export:   %s\n", result.ExportPath)
	if result.WorkbookPath != "" {
		fmt.Printf("Workbook: %s\n", result.WorkbookPath)
	}
	return nil
}
