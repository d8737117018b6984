// =============================================================================
// Sales Analytics - Configuration Module
// =============================================================================
//
// This module is responsible for loading and validating the application
// configuration. All settings live in a single YAML file (config.yaml by
// default); every field has a sensible default so the tool also runs with no
// config file at all.
//
// ARCHITECTURE:
//   The configuration system is designed to be:
//   - Self-contained: one file, one struct tree
//   - Defaulted: missing file or missing fields fall back to defaults
//   - Validated: structural problems are reported before any processing
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the full application configuration.
type Config struct {
	// =========================================================================
	// INPUT SETTINGS
	// =========================================================================

	// InputFile is the pipe-delimited sales data file to process.
	// Default: "data/sales_data.txt"
	InputFile string `yaml:"input_file"`

	// Encodings is the ordered list of text encodings tried when reading the
	// input file. The first encoding that decodes without failure wins.
	// Supported names: "utf-8", "latin-1", "cp1252".
	// Default: [utf-8, latin-1, cp1252]
	Encodings []string `yaml:"encodings"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputDir is the directory where all generated files are placed.
	// It is created if it does not exist.
	// Default: "output"
	OutputDir string `yaml:"output_dir"`

	// ReportFile is the file name of the text report inside OutputDir.
	// Default: "sales_report.txt"
	ReportFile string `yaml:"report_file"`

	// ExportFile is the file name of the enriched pipe-delimited export.
	// Default: "enriched_sales.txt"
	ExportFile string `yaml:"export_file"`

	// WorkbookFile is the file name of the XLSX analysis workbook.
	// Default: "sales_analysis.xlsx"
	WorkbookFile string `yaml:"workbook_file"`

	// =========================================================================
	// SUBSYSTEM SETTINGS
	// =========================================================================

	// Catalog configures the product catalog service call.
	Catalog CatalogSettings `yaml:"catalog"`

	// Enrichment configures the enrichment stage.
	Enrichment EnrichmentSettings `yaml:"enrichment"`

	// Report configures the report renderer.
	Report ReportSettings `yaml:"report"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// CatalogSettings configures the single read-only catalog fetch.
type CatalogSettings struct {
	// BaseURL is the catalog endpoint. The product limit is appended as a
	// query parameter.
	// Default: "https://dummyjson.com/products"
	BaseURL string `yaml:"base_url"`

	// Limit is the maximum number of catalog entries requested.
	// The service caps responses at 100 entries.
	// Default: 100
	Limit int `yaml:"limit"`

	// TimeoutSeconds bounds the catalog request. On timeout the fetch
	// degrades to an empty catalog; it never aborts the run.
	// Default: 10
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// EnrichmentSettings configures the enrichment stage.
type EnrichmentSettings struct {
	// StrictProductIDs selects the policy for product IDs that contain no
	// decimal digits and therefore yield no catalog key.
	//
	//   false (default): the record is marked unmatched and a warning is
	//                    logged; processing continues.
	//   true:            the run fails with an error naming the offending
	//                    transaction.
	//
	// The documented precondition is that every product ID contains at least
	// one decimal digit run; strict mode enforces it.
	StrictProductIDs bool `yaml:"strict_product_ids"`
}

// ReportSettings configures the report renderer.
type ReportSettings struct {
	// TopProducts is the length of the product ranking section.
	// Default: 5
	TopProducts int `yaml:"top_products"`

	// WriteWorkbook controls whether the XLSX analysis workbook is written
	// alongside the text report.
	// Default: true
	WriteWorkbook bool `yaml:"write_workbook"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		InputFile:    "data/sales_data.txt",
		Encodings:    []string{"utf-8", "latin-1", "cp1252"},
		OutputDir:    "output",
		ReportFile:   "sales_report.txt",
		ExportFile:   "enriched_sales.txt",
		WorkbookFile: "sales_analysis.xlsx",
		Catalog: CatalogSettings{
			BaseURL:        "https://dummyjson.com/products",
			Limit:          100,
			TimeoutSeconds: 10,
		},
		Enrichment: EnrichmentSettings{
			StrictProductIDs: false,
		},
		Report: ReportSettings{
			TopProducts:   5,
			WriteWorkbook: true,
		},
		LogLevel: "info",
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from the given path.
//
// A missing file is not an error: the defaults are returned so the tool can
// run without any configuration. A present-but-unreadable or malformed file
// is an error. Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// supportedEncodings names the decoders the reader knows how to build.
var supportedEncodings = map[string]bool{
	"utf-8":   true,
	"latin-1": true,
	"cp1252":  true,
}

// Validate checks the configuration for structural problems.
// Errors are collected so the operator sees every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if c.InputFile == "" {
		problems = append(problems, "input_file must not be empty")
	}
	if c.OutputDir == "" {
		problems = append(problems, "output_dir must not be empty")
	}
	if c.ReportFile == "" {
		problems = append(problems, "report_file must not be empty")
	}
	if c.ExportFile == "" {
		problems = append(problems, "export_file must not be empty")
	}
	if len(c.Encodings) == 0 {
		problems = append(problems, "encodings must list at least one encoding")
	}
	for _, enc := range c.Encodings {
		if !supportedEncodings[enc] {
			problems = append(problems, fmt.Sprintf("unsupported encoding %q (supported: utf-8, latin-1, cp1252)", enc))
		}
	}
	if c.Catalog.BaseURL == "" {
		problems = append(problems, "catalog.base_url must not be empty")
	}
	if c.Catalog.Limit <= 0 || c.Catalog.Limit > 100 {
		problems = append(problems, "catalog.limit must be between 1 and 100")
	}
	if c.Catalog.TimeoutSeconds <= 0 {
		problems = append(problems, "catalog.timeout_seconds must be positive")
	}
	if c.Report.TopProducts <= 0 {
		problems = append(problems, "report.top_products must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", joinProblems(problems))
	}
	return nil
}

func joinProblems(problems []string) string {
	out := problems[0]
	for _, p := range problems[1:] {
		out += "\n  - " + p
	}
	return out
}
