// =============================================================================
// Sales Analytics - Enrichment Module
// =============================================================================
//
// This module cross-references validated transactions with the product
// catalog. The lookup key is derived from the textual product ID: the first
// run of decimal digits anywhere in the ID is the numeric catalog key
// ("P101" -> 101).
//
// KEY DERIVATION CONTRACT:
//   The documented precondition is that every product ID contains at least
//   one decimal digit run. A digit-less ID is handled per the configured
//   policy rather than passed through silently:
//     - lenient (default): mark the record unmatched and log a warning
//     - strict:            fail the run naming the offending transaction
//
// Enrichment never removes records: the output has the same order and
// cardinality as the input. Each output record either carries all three
// catalog attributes with Matched=true, or none of them with Matched=false.
//
// =============================================================================

package enricher

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/ginjaninja78/sales-analytics/internal/catalog"
	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// digitRun matches the first run of decimal digits in a product ID.
var digitRun = regexp.MustCompile(`\d+`)

// Enricher attaches catalog attributes to validated transactions.
type Enricher struct {
	index  catalog.Index
	strict bool
	log    zerolog.Logger
}

// New creates an Enricher over the given catalog index.
// strict selects the digit-less product ID policy (see package comment).
func New(index catalog.Index, strict bool, log zerolog.Logger) *Enricher {
	return &Enricher{index: index, strict: strict, log: log}
}

// Enrich cross-references each transaction with the catalog index.
//
// RETURNS:
//   - The enriched records, same order and cardinality as the input.
//   - An error only in strict mode, when a product ID contains no digits.
func (e *Enricher) Enrich(valid []types.Transaction) ([]types.EnrichedTransaction, error) {
	enriched := make([]types.EnrichedTransaction, 0, len(valid))
	matched := 0

	for _, tx := range valid {
		key, ok := deriveKey(tx.ProductID)
		if !ok {
			if e.strict {
				return nil, fmt.Errorf("product ID %q on transaction %s contains no digits, cannot derive catalog key", tx.ProductID, tx.TransactionID)
			}
			e.log.Warn().
				Str("transaction_id", tx.TransactionID).
				Str("product_id", tx.ProductID).
				Msg("product ID contains no digits, record left unmatched")
			enriched = append(enriched, types.EnrichedTransaction{Transaction: tx})
			continue
		}

		entry, hit := e.index.Lookup(key)
		if !hit {
			enriched = append(enriched, types.EnrichedTransaction{Transaction: tx})
			continue
		}

		category := entry.Category
		brand := entry.Brand
		rating := entry.Rating
		enriched = append(enriched, types.EnrichedTransaction{
			Transaction: tx,
			APICategory: &category,
			APIBrand:    &brand,
			APIRating:   &rating,
			Matched:     true,
		})
		matched++
	}

	e.log.Info().
		Int("records", len(enriched)).
		Int("matched", matched).
		Msg("enrichment complete")

	return enriched, nil
}

// MatchedCount returns the number of records with a successful catalog match.
func MatchedCount(enriched []types.EnrichedTransaction) int {
	count := 0
	for _, tx := range enriched {
		if tx.Matched {
			count++
		}
	}
	return count
}

// deriveKey extracts the numeric catalog key from a product ID.
// The boolean result is false when the ID contains no decimal digits.
func deriveKey(productID string) (int, bool) {
	run := digitRun.FindString(productID)
	if run == "" {
		return 0, false
	}
	key, err := strconv.Atoi(run)
	if err != nil {
		// A digit run longer than an int can hold. Treat as underivable.
		return 0, false
	}
	return key, true
}
