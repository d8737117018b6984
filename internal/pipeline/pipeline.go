// =============================================================================
// Sales Analytics - Pipeline Orchestrator
// =============================================================================
//
// This module wires the pipeline stages together and owns the run lifecycle.
//
// PROCESSING PIPELINE:
//   1. Read the input file (encoding fallback, header/blank removal)
//   2. Parse raw lines into transactions
//   3. Validate and filter against the business rules
//   4. Fetch the product catalog and build the lookup index
//   5. Enrich valid transactions with catalog attributes
//   6. Analyze: revenue, regions, daily trend, product ranking
//   7. Render and write the report, the enriched export, and the workbook
//
// Execution is fully sequential. Each stage owns the data it produces and
// hands it to the next stage; nothing is mutated across stage boundaries.
// The only blocking external call is the catalog fetch, bounded by the
// configured timeout.
//
// ERROR POLICY:
//   Data-quality issues (malformed lines, rule failures, missing catalog)
//   degrade gracefully inside their stage. Infrastructure issues (output
//   write failures, strict-mode key derivation) abort the run; the report
//   files are written atomically so a failed run leaves no partial output.
//
// =============================================================================

package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/ginjaninja78/sales-analytics/internal/analyzer"
	"github.com/ginjaninja78/sales-analytics/internal/catalog"
	"github.com/ginjaninja78/sales-analytics/internal/config"
	"github.com/ginjaninja78/sales-analytics/internal/enricher"
	"github.com/ginjaninja78/sales-analytics/internal/parser"
	"github.com/ginjaninja78/sales-analytics/internal/reader"
	"github.com/ginjaninja78/sales-analytics/internal/report"
	"github.com/ginjaninja78/sales-analytics/internal/types"
	"github.com/ginjaninja78/sales-analytics/internal/validation"
	"github.com/ginjaninja78/sales-analytics/pkg/utils"
)

// =============================================================================
// RESULT TYPES
// =============================================================================

// Stats carries the headline numbers of a pipeline run.
type Stats struct {
	// RawLines is the number of data lines read from the input file.
	RawLines int

	// Parsed is the number of lines that produced a complete record.
	Parsed int

	// Invalid is the number of records removed by validation.
	Invalid int

	// Valid is the number of records that passed validation.
	Valid int

	// CatalogEntries is the number of catalog entries fetched.
	CatalogEntries int

	// Matched is the number of records enriched with a catalog hit.
	Matched int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Success is true when the run completed and all outputs were written.
	Success bool

	// Error holds the failure when Success is false.
	Error error

	// Stats carries the run counters.
	Stats Stats

	// ReportPath, ExportPath and WorkbookPath are the written output files.
	// Empty for outputs that were skipped (dry run, workbook disabled).
	ReportPath   string
	ExportPath   string
	WorkbookPath string
}

// =============================================================================
// RUNNER
// =============================================================================

// Options controls a single pipeline run.
type Options struct {
	// DryRun computes everything but writes no output files.
	DryRun bool

	// SkipEnrichment treats the catalog as unavailable without calling it.
	SkipEnrichment bool
}

// Runner executes the sales analytics pipeline.
type Runner struct {
	cfg     *config.Config
	options Options
	log     zerolog.Logger
}

// New creates a pipeline runner for the given configuration.
func New(cfg *config.Config, options Options, log zerolog.Logger) *Runner {
	return &Runner{cfg: cfg, options: options, log: log}
}

// Run executes the full pipeline and returns its Result.
//
// Run never panics on bad data; it returns a Result with Success=false only
// for infrastructure failures (or strict-mode enrichment violations).
func (r *Runner) Run(ctx context.Context) Result {
	start := time.Now()
	result := Result{}

	// Step 1: read the input file.
	lines, err := reader.ReadLines(r.cfg.InputFile, r.cfg.Encodings)
	if err != nil {
		return r.fail(result, start, err)
	}
	if len(lines) == 0 && !utils.FileExists(r.cfg.InputFile) {
		r.log.Warn().Str("file", r.cfg.InputFile).Msg("input file not found, continuing with empty record set")
	}
	result.Stats.RawLines = len(lines)
	r.log.Info().Int("lines", len(lines)).Str("file", r.cfg.InputFile).Msg("input read")

	// Step 2: parse.
	parsed := parser.ParseTransactions(lines)
	result.Stats.Parsed = len(parsed)
	if dropped := len(lines) - len(parsed); dropped > 0 {
		r.log.Warn().Int("dropped", dropped).Msg("malformed lines discarded during parsing")
	}

	// Step 3: validate.
	validated := validation.ValidateAndFilter(parsed, r.log)
	result.Stats.Invalid = validated.InvalidCount()
	result.Stats.Valid = validated.ValidCount()

	// Step 4: catalog.
	entries := r.fetchCatalog(ctx)
	result.Stats.CatalogEntries = len(entries)
	index := catalog.BuildIndex(entries)

	// Step 5: enrich.
	enrich := enricher.New(index, r.cfg.Enrichment.StrictProductIDs, r.log)
	enriched, err := enrich.Enrich(validated.Valid)
	if err != nil {
		return r.fail(result, start, err)
	}
	result.Stats.Matched = enricher.MatchedCount(enriched)

	// Step 6: analyze.
	analysis := analyzer.Analyze(validated.Valid, r.cfg.Report.TopProducts)

	// Step 7: render and write.
	in := report.Input{
		ParsedCount:  result.Stats.Parsed,
		InvalidCount: result.Stats.Invalid,
		Valid:        validated.Valid,
		Enriched:     enriched,
		Analysis:     analysis,
	}
	if err := r.writeOutputs(in, &result); err != nil {
		return r.fail(result, start, err)
	}

	result.Success = true
	result.Stats.Elapsed = time.Since(start)
	r.log.Info().
		Int("valid", result.Stats.Valid).
		Int("matched", result.Stats.Matched).
		Dur("elapsed", result.Stats.Elapsed).
		Msg("pipeline complete")
	return result
}

// fetchCatalog performs the catalog fetch unless enrichment is skipped.
func (r *Runner) fetchCatalog(ctx context.Context) []types.CatalogEntry {
	if r.options.SkipEnrichment {
		r.log.Info().Msg("enrichment skipped, catalog not fetched")
		return nil
	}
	client := catalog.NewClient(
		r.cfg.Catalog.BaseURL,
		r.cfg.Catalog.Limit,
		time.Duration(r.cfg.Catalog.TimeoutSeconds)*time.Second,
		r.log,
	)
	return client.FetchAll(ctx)
}

// writeOutputs renders the report artifacts and writes them atomically.
// In dry-run mode everything is rendered but nothing touches disk.
func (r *Runner) writeOutputs(in report.Input, result *Result) error {
	options := report.DefaultRenderOptions()
	options.TopProducts = r.cfg.Report.TopProducts

	reportBytes := report.Render(in, options)
	exportBytes := report.BuildExport(in.Enriched)

	var workbookBytes []byte
	if r.cfg.Report.WriteWorkbook {
		var err error
		workbookBytes, err = report.BuildWorkbook(in, options)
		if err != nil {
			return fmt.Errorf("workbook rendering failed: %w", err)
		}
	}

	if r.options.DryRun {
		r.log.Info().Msg("dry run, no output files written")
		return nil
	}

	reportPath := filepath.Join(r.cfg.OutputDir, r.cfg.ReportFile)
	if err := utils.WriteFileAtomic(reportPath, reportBytes); err != nil {
		return err
	}
	result.ReportPath = reportPath
	r.log.Info().Str("path", reportPath).Msg("report written")

	exportPath := filepath.Join(r.cfg.OutputDir, r.cfg.ExportFile)
	if err := utils.WriteFileAtomic(exportPath, exportBytes); err != nil {
		return err
	}
	result.ExportPath = exportPath
	r.log.Info().Str("path", exportPath).Msg("enriched export written")

	if workbookBytes != nil {
		workbookPath := filepath.Join(r.cfg.OutputDir, r.cfg.WorkbookFile)
		if err := utils.WriteFileAtomic(workbookPath, workbookBytes); err != nil {
			return err
		}
		result.WorkbookPath = workbookPath
		r.log.Info().Str("path", workbookPath).Msg("analysis workbook written")
	}

	return nil
}

// fail finalizes a failed run.
func (r *Runner) fail(result Result, start time.Time, err error) Result {
	result.Success = false
	result.Error = err
	result.Stats.Elapsed = time.Since(start)
	r.log.Error().Err(err).Msg("pipeline failed")
	return result
}
