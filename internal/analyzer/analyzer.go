// =============================================================================
// Sales Analytics - Analysis Module
// =============================================================================
//
// This module computes every aggregate metric over the valid transaction set
// in a single pass:
//
//   1. Total revenue
//   2. Region-wise performance (revenue + transaction count per region)
//   3. Daily sales trend (revenue, transaction count, distinct customers
//      per date)
//   4. Product performance ranking (top N by total quantity)
//
// ORDERING RULES:
//   - The daily trend is rendered in ascending date-string order. The input
//     date format is fixed-width YYYY-MM-DD, so plain string comparison is
//     chronological for this data. This assumption is stated here and
//     covered by tests; calendar-aware ordering is out of scope.
//   - The product ranking sorts descending by summed quantity with a stable
//     sort: products tied on quantity keep their first-seen order.
//
// No record is excluded here beyond what validation already removed.
//
// =============================================================================

package analyzer

import (
	"sort"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// Analyze computes all aggregate metrics over the valid transactions.
//
// PARAMETERS:
//   - valid: the validated transactions, in original order.
//   - topN: the length limit for the product ranking.
//
// RETURNS:
//   - The complete AnalysisResult. Empty input yields zero totals, empty
//     maps, and an empty ranking.
func Analyze(valid []types.Transaction, topN int) *types.AnalysisResult {
	result := &types.AnalysisResult{
		RegionStats: make(map[string]types.RegionStats),
		DateTrend:   make(map[string]types.DateStats),
	}

	// Distinct customer IDs per date. Accumulated separately because
	// DateStats only carries the final count.
	customersByDate := make(map[string]map[string]bool)

	// Product aggregates plus first-seen order for the stable ranking.
	productStats := make(map[string]types.ProductStats)
	var productOrder []string

	for _, tx := range valid {
		amount := tx.Revenue()
		result.TotalRevenue += amount

		region := result.RegionStats[tx.Region]
		region.Sales += amount
		region.Count++
		result.RegionStats[tx.Region] = region

		date := result.DateTrend[tx.Date]
		date.Revenue += amount
		date.Transactions++
		result.DateTrend[tx.Date] = date

		if customersByDate[tx.Date] == nil {
			customersByDate[tx.Date] = make(map[string]bool)
		}
		customersByDate[tx.Date][tx.CustomerID] = true

		if _, seen := productStats[tx.ProductName]; !seen {
			productOrder = append(productOrder, tx.ProductName)
		}
		product := productStats[tx.ProductName]
		product.Quantity += tx.Quantity
		product.Revenue += amount
		productStats[tx.ProductName] = product
	}

	for date, customers := range customersByDate {
		stats := result.DateTrend[date]
		stats.Customers = len(customers)
		result.DateTrend[date] = stats
	}

	result.SortedDates = sortedDates(result.DateTrend)
	result.TopProducts = rankProducts(productStats, productOrder, topN)

	return result
}

// sortedDates returns the trend dates in ascending string order.
func sortedDates(trend map[string]types.DateStats) []string {
	dates := make([]string, 0, len(trend))
	for date := range trend {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// rankProducts builds the top-N product ranking.
//
// The ranking starts from first-seen order and applies a stable sort by
// descending quantity, so equal quantities preserve encounter order.
func rankProducts(stats map[string]types.ProductStats, order []string, topN int) []types.ProductRank {
	ranking := make([]types.ProductRank, 0, len(order))
	for _, name := range order {
		ranking = append(ranking, types.ProductRank{Name: name, Stats: stats[name]})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Stats.Quantity > ranking[j].Stats.Quantity
	})

	if len(ranking) > topN {
		ranking = ranking[:topN]
	}
	return ranking
}
