// =============================================================================
// Sales Analytics - Report Renderer
// =============================================================================
//
// This module renders the analysis results into the fixed-structure text
// report. Section order is part of the report contract:
//
//   1. Header (generation timestamp, report ID, record count)
//   2. Overall summary (total revenue, transaction count, average order value)
//   3. Validation summary (parsed / invalid removed / valid remaining)
//   4. Region-wise performance (sales + percentage of total revenue)
//   5. Daily sales trend (revenue, transactions, distinct customers per date)
//   6. Top product ranking
//   7. API enrichment summary (matched count, success rate)
//
// FORMATTING RULES:
//   - Currency values carry two decimal places and thousands separators
//   - Percentages carry one decimal place
//   - Every ratio guards its denominator: a zero transaction count, zero
//     total revenue, or zero valid count renders as 0, never as a division
//     fault
//   - Regions render in alphabetical order and dates in ascending string
//     order so repeated runs over the same data produce identical reports
//
// =============================================================================

package report

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ginjaninja78/sales-analytics/internal/enricher"
	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// =============================================================================
// RENDER OPTIONS
// =============================================================================

// RenderOptions controls the variable parts of the report.
type RenderOptions struct {
	// GeneratedAt is the timestamp printed in the header.
	GeneratedAt time.Time

	// ReportID is the run identifier printed in the header.
	ReportID string

	// TopProducts is the length of the product ranking section.
	TopProducts int
}

// DefaultRenderOptions returns options for a normal production run.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		GeneratedAt: time.Now(),
		ReportID:    uuid.NewString(),
		TopProducts: 5,
	}
}

// =============================================================================
// INPUT AGGREGATE
// =============================================================================

// Input bundles everything the renderer needs for one report.
type Input struct {
	// ParsedCount is the number of records that entered validation.
	ParsedCount int

	// InvalidCount is the number of records validation removed.
	InvalidCount int

	// Valid is the validated transaction set.
	Valid []types.Transaction

	// Enriched is the catalog-enriched transaction set.
	Enriched []types.EnrichedTransaction

	// Analysis is the aggregate metrics over Valid.
	Analysis *types.AnalysisResult
}

// =============================================================================
// RENDERER
// =============================================================================

const sectionRule = "------------------------------------------------------------"
const headerRule = "============================================================"

// Render produces the full text report as UTF-8 bytes.
func Render(in Input, options RenderOptions) []byte {
	var buf bytes.Buffer
	p := message.NewPrinter(language.English)

	writeHeader(&buf, in, options)
	writeOverallSummary(&buf, p, in)
	writeValidationSummary(&buf, in)
	writeRegionPerformance(&buf, p, in.Analysis)
	writeDailyTrend(&buf, p, in.Analysis)
	writeTopProducts(&buf, p, in.Analysis, options.TopProducts)
	writeEnrichmentSummary(&buf, in)

	return buf.Bytes()
}

func writeHeader(buf *bytes.Buffer, in Input, options RenderOptions) {
	fmt.Fprintln(buf, headerRule)
	fmt.Fprintln(buf, "                   SALES ANALYTICS REPORT")
	fmt.Fprintln(buf, headerRule)
	fmt.Fprintf(buf, "Generated:  %s\n", options.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(buf, "Report ID:  %s\n", options.ReportID)
	fmt.Fprintf(buf, "Records:    %d valid transaction(s)\n", len(in.Valid))
}

func writeOverallSummary(buf *bytes.Buffer, p *message.Printer, in Input) {
	writeSectionTitle(buf, "OVERALL SUMMARY")

	count := len(in.Valid)
	average := 0.0
	if count > 0 {
		average = in.Analysis.TotalRevenue / float64(count)
	}

	p.Fprintf(buf, "Total Revenue:        $%.2f\n", in.Analysis.TotalRevenue)
	p.Fprintf(buf, "Transaction Count:    %d\n", count)
	p.Fprintf(buf, "Average Order Value:  $%.2f\n", average)
}

func writeValidationSummary(buf *bytes.Buffer, in Input) {
	writeSectionTitle(buf, "VALIDATION SUMMARY")

	fmt.Fprintf(buf, "Total records parsed:      %d\n", in.ParsedCount)
	fmt.Fprintf(buf, "Invalid records removed:   %d\n", in.InvalidCount)
	fmt.Fprintf(buf, "Valid records after clean: %d\n", len(in.Valid))
}

func writeRegionPerformance(buf *bytes.Buffer, p *message.Printer, analysis *types.AnalysisResult) {
	writeSectionTitle(buf, "REGION-WISE PERFORMANCE")

	if len(analysis.RegionStats) == 0 {
		fmt.Fprintln(buf, "No regional data available.")
		return
	}

	regions := make([]string, 0, len(analysis.RegionStats))
	for region := range analysis.RegionStats {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	for _, region := range regions {
		stats := analysis.RegionStats[region]
		share := 0.0
		if analysis.TotalRevenue > 0 {
			share = stats.Sales / analysis.TotalRevenue * 100
		}
		p.Fprintf(buf, "%-16s $%.2f  (%d transaction(s), %.1f%% of total)\n",
			region, stats.Sales, stats.Count, share)
	}
}

func writeDailyTrend(buf *bytes.Buffer, p *message.Printer, analysis *types.AnalysisResult) {
	writeSectionTitle(buf, "DAILY SALES TREND")

	if len(analysis.SortedDates) == 0 {
		fmt.Fprintln(buf, "No trend data available.")
		return
	}

	for _, date := range analysis.SortedDates {
		stats := analysis.DateTrend[date]
		p.Fprintf(buf, "%s  revenue $%.2f, %d transaction(s), %d customer(s)\n",
			date, stats.Revenue, stats.Transactions, stats.Customers)
	}
}

func writeTopProducts(buf *bytes.Buffer, p *message.Printer, analysis *types.AnalysisResult, topN int) {
	writeSectionTitle(buf, fmt.Sprintf("TOP %d PRODUCTS BY QUANTITY", topN))

	if len(analysis.TopProducts) == 0 {
		fmt.Fprintln(buf, "No product data available.")
		return
	}

	for i, rank := range analysis.TopProducts {
		p.Fprintf(buf, "%d. %-24s %d unit(s), $%.2f revenue\n",
			i+1, rank.Name, rank.Stats.Quantity, rank.Stats.Revenue)
	}
}

func writeEnrichmentSummary(buf *bytes.Buffer, in Input) {
	writeSectionTitle(buf, "API ENRICHMENT SUMMARY")

	matched := enricher.MatchedCount(in.Enriched)
	rate := 0.0
	if len(in.Valid) > 0 {
		rate = float64(matched) / float64(len(in.Valid)) * 100
	}

	fmt.Fprintf(buf, "Matched records:  %d of %d\n", matched, len(in.Valid))
	fmt.Fprintf(buf, "Success rate:     %.1f%%\n", rate)
}

func writeSectionTitle(buf *bytes.Buffer, title string) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, sectionRule)
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, sectionRule)
}
