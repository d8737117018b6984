// =============================================================================
// Sales Analytics - Analysis Workbook Export
// =============================================================================
//
// This module renders the analysis results as an XLSX workbook for operators
// who want to slice the aggregates further in a spreadsheet. Sheets:
//
//   - Summary:       headline figures
//   - Regions:       region-wise performance
//   - Daily Trend:   per-date revenue, transactions, distinct customers
//   - Top Products:  the product ranking
//   - Enriched Data: one row per enriched transaction
//
// Numeric values are written as numbers, not formatted strings, so the
// spreadsheet side can aggregate them directly.
//
// =============================================================================

package report

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-analytics/internal/enricher"
	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// BuildWorkbook renders the analysis results as XLSX bytes.
func BuildWorkbook(in Input, options RenderOptions) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return nil, fmt.Errorf("failed to prepare workbook: %w", err)
	}

	if err := writeSummarySheet(f, in, options); err != nil {
		return nil, err
	}
	if err := writeRegionsSheet(f, in.Analysis); err != nil {
		return nil, err
	}
	if err := writeTrendSheet(f, in.Analysis); err != nil {
		return nil, err
	}
	if err := writeProductsSheet(f, in.Analysis); err != nil {
		return nil, err
	}
	if err := writeEnrichedSheet(f, in.Enriched); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, in Input, options RenderOptions) error {
	matched := enricher.MatchedCount(in.Enriched)

	average := 0.0
	if len(in.Valid) > 0 {
		average = in.Analysis.TotalRevenue / float64(len(in.Valid))
	}
	rate := 0.0
	if len(in.Valid) > 0 {
		rate = float64(matched) / float64(len(in.Valid)) * 100
	}

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Generated", options.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Report ID", options.ReportID},
		{"Total Revenue", in.Analysis.TotalRevenue},
		{"Transaction Count", len(in.Valid)},
		{"Average Order Value", average},
		{"Records Parsed", in.ParsedCount},
		{"Invalid Removed", in.InvalidCount},
		{"Enrichment Matches", matched},
		{"Enrichment Success Rate %", rate},
	}
	return writeSheet(f, "Summary", rows, false)
}

func writeRegionsSheet(f *excelize.File, analysis *types.AnalysisResult) error {
	regions := make([]string, 0, len(analysis.RegionStats))
	for region := range analysis.RegionStats {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	rows := [][]interface{}{{"Region", "Sales", "Transactions", "Share %"}}
	for _, region := range regions {
		stats := analysis.RegionStats[region]
		share := 0.0
		if analysis.TotalRevenue > 0 {
			share = stats.Sales / analysis.TotalRevenue * 100
		}
		rows = append(rows, []interface{}{region, stats.Sales, stats.Count, share})
	}
	return writeSheet(f, "Regions", rows, true)
}

func writeTrendSheet(f *excelize.File, analysis *types.AnalysisResult) error {
	rows := [][]interface{}{{"Date", "Revenue", "Transactions", "Distinct Customers"}}
	for _, date := range analysis.SortedDates {
		stats := analysis.DateTrend[date]
		rows = append(rows, []interface{}{date, stats.Revenue, stats.Transactions, stats.Customers})
	}
	return writeSheet(f, "Daily Trend", rows, true)
}

func writeProductsSheet(f *excelize.File, analysis *types.AnalysisResult) error {
	rows := [][]interface{}{{"Rank", "Product", "Quantity", "Revenue"}}
	for i, rank := range analysis.TopProducts {
		rows = append(rows, []interface{}{i + 1, rank.Name, rank.Stats.Quantity, rank.Stats.Revenue})
	}
	return writeSheet(f, "Top Products", rows, true)
}

func writeEnrichedSheet(f *excelize.File, enriched []types.EnrichedTransaction) error {
	rows := [][]interface{}{{"TransactionID", "ProductID", "Category", "Brand", "Enriched"}}
	for _, tx := range enriched {
		rows = append(rows, []interface{}{
			tx.TransactionID,
			tx.ProductID,
			stringOrEmpty(tx.APICategory),
			stringOrEmpty(tx.APIBrand),
			tx.Matched,
		})
	}
	return writeSheet(f, "Enriched Data", rows, true)
}

// writeSheet writes rows to the named sheet, creating it when requested.
func writeSheet(f *excelize.File, sheet string, rows [][]interface{}, create bool) error {
	if create {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return fmt.Errorf("failed to address cell on sheet %s: %w", sheet, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s on sheet %s: %w", cell, sheet, err)
			}
		}
	}
	return nil
}
