// =============================================================================
// Sales Analytics - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'process', 'validate') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (sales-analytics)
//   ├── processCmd  (sales-analytics process)
//   ├── validateCmd (sales-analytics validate)
//   └── versionCmd  (sales-analytics version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug-level logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "sales-analytics",

	Short: "Sales Analytics - batch pipeline for sales transaction files",

	Long: `Sales Analytics is a single-operator batch tool that ingests a
pipe-delimited sales transaction file, cleans and validates the records,
enriches them against the external product catalog service, computes the
aggregate business metrics, and writes a fixed-section text report plus an
enriched data export.

Key Features:
  - Encoding-tolerant input reading (utf-8, latin-1, cp1252 fallback)
  - Business-rule validation with an exact removed/remaining count summary
  - Catalog enrichment keyed by the numeric part of the product ID
  - Revenue, regional, daily-trend and product-ranking analysis
  - Deterministic report rendering plus an XLSX analysis workbook

Example Usage:
  sales-analytics process                     # Run the full pipeline
  sales-analytics process --dry-run           # Compute everything, write nothing
  sales-analytics validate --config my.yaml   # Check a configuration file`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags shared by all subcommands.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables debug-level logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
