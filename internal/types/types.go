// =============================================================================
// Sales Analytics - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - parser
//   - validation
//   - enricher
//   - analyzer
//   - report
//
// =============================================================================

package types

// =============================================================================
// TRANSACTION TYPES
// =============================================================================

// Transaction represents a single parsed sales record.
// Core fields are set once by the parser and never mutated afterwards;
// enrichment produces a separate EnrichedTransaction instead of annotating
// the original in place.
type Transaction struct {
	// TransactionID is the record identifier. Valid IDs start with "T".
	TransactionID string

	// Date is the sale date in YYYY-MM-DD form. It is treated as an opaque
	// grouping key; no calendar arithmetic is performed on it.
	Date string

	// ProductID is the internal product identifier. Valid IDs start with "P"
	// and carry an embedded decimal numeral used as the catalog lookup key.
	ProductID string

	// ProductName is the free-text product name with embedded commas removed.
	ProductName string

	// Quantity is the number of units sold. Must be > 0 to pass validation.
	Quantity int

	// UnitPrice is the per-unit sale price. Must be > 0 to pass validation.
	UnitPrice float64

	// CustomerID is the customer identifier. Valid IDs start with "C".
	CustomerID string

	// Region is the free-text sales region.
	Region string
}

// Revenue returns the line revenue for this transaction.
func (t Transaction) Revenue() float64 {
	return float64(t.Quantity) * t.UnitPrice
}

// EnrichedTransaction is a Transaction plus the catalog attributes attached
// by the enricher.
//
// INVARIANT: Matched is true if and only if all three API fields are non-nil
// and were sourced from a catalog index hit.
type EnrichedTransaction struct {
	Transaction

	// APICategory is the catalog category, or nil when unmatched.
	APICategory *string

	// APIBrand is the catalog brand, or nil when unmatched.
	APIBrand *string

	// APIRating is the catalog rating, or nil when unmatched.
	APIRating *float64

	// Matched reports whether the catalog lookup succeeded.
	Matched bool
}

// =============================================================================
// CATALOG TYPES
// =============================================================================

// CatalogEntry is a single product record returned by the catalog service.
// It is read-only from the pipeline's point of view.
type CatalogEntry struct {
	ID       int     `json:"id"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Rating   float64 `json:"rating"`
}

// =============================================================================
// ANALYSIS TYPES
// =============================================================================

// RegionStats holds the aggregate for a single sales region.
type RegionStats struct {
	// Sales is the summed revenue for the region.
	Sales float64

	// Count is the number of transactions in the region.
	Count int
}

// DateStats holds the aggregate for a single sale date.
type DateStats struct {
	// Revenue is the summed revenue for the date.
	Revenue float64

	// Transactions is the number of transactions on the date.
	Transactions int

	// Customers is the number of distinct customer IDs seen on the date.
	Customers int
}

// ProductStats holds the aggregate for a single product name.
type ProductStats struct {
	// Quantity is the total units sold.
	Quantity int

	// Revenue is the summed revenue.
	Revenue float64
}

// ProductRank pairs a product name with its aggregate for the top-N ranking.
type ProductRank struct {
	Name  string
	Stats ProductStats
}

// AnalysisResult contains every aggregate metric computed over the valid
// transaction set.
type AnalysisResult struct {
	// TotalRevenue is the sum of quantity * unit price over all records.
	TotalRevenue float64

	// RegionStats maps region name to its aggregate.
	RegionStats map[string]RegionStats

	// DateTrend maps sale date to its aggregate. Use SortedDates for the
	// rendering order.
	DateTrend map[string]DateStats

	// SortedDates lists DateTrend keys in ascending string order. The input
	// format is fixed-width YYYY-MM-DD, so string order equals chronological
	// order.
	SortedDates []string

	// TopProducts is the product ranking, descending by quantity, ties kept
	// in first-seen order, truncated to the configured limit.
	TopProducts []ProductRank
}
