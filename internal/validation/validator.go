// =============================================================================
// Sales Analytics - Validation Engine
// =============================================================================
//
// This module applies the business validation rules to parsed transactions
// and filters out records that fail any of them.
//
// VALIDATION RULES (all must hold):
//   - Quantity > 0
//   - UnitPrice > 0
//   - TransactionID starts with "T"
//   - ProductID starts with "P"
//   - CustomerID starts with "C"
//
// ERROR HANDLING:
//   - Rule failures are collected, not thrown
//   - Each rejection records the rule that was violated for troubleshooting
//   - The summary counts satisfy: Invalid = Parsed - Valid, always
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// =============================================================================
// RESULT TYPES
// =============================================================================

// Rejection describes a single record removed by validation.
type Rejection struct {
	// Index is the position of the record in the parsed sequence.
	Index int

	// TransactionID is the record identifier, possibly malformed.
	TransactionID string

	// Rule is the first validation rule the record violated.
	Rule string
}

// String renders the rejection for logs and error reports.
func (r Rejection) String() string {
	return fmt.Sprintf("record %d (%s): %s", r.Index, r.TransactionID, r.Rule)
}

// Result contains the outcome of a validation pass.
type Result struct {
	// Valid contains the surviving transactions in original order.
	Valid []types.Transaction

	// Rejections lists every removed record with its violated rule.
	Rejections []Rejection

	// Parsed is the number of records that entered validation.
	Parsed int
}

// InvalidCount is the number of records removed by validation.
// It always equals Parsed - len(Valid).
func (r *Result) InvalidCount() int {
	return r.Parsed - len(r.Valid)
}

// ValidCount is the number of records that passed validation.
func (r *Result) ValidCount() int {
	return len(r.Valid)
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidateAndFilter applies the business rules to the parsed transactions and
// returns the surviving records plus the required summary counts.
//
// The three summary counts (parsed, invalid removed, valid remaining) are an
// observable requirement of the pipeline, so they are logged here as a stage
// side effect rather than left to the caller.
func ValidateAndFilter(parsed []types.Transaction, log zerolog.Logger) *Result {
	result := &Result{
		Valid:  make([]types.Transaction, 0, len(parsed)),
		Parsed: len(parsed),
	}

	for i, tx := range parsed {
		if rule := checkRules(tx); rule != "" {
			result.Rejections = append(result.Rejections, Rejection{
				Index:         i,
				TransactionID: tx.TransactionID,
				Rule:          rule,
			})
			continue
		}
		result.Valid = append(result.Valid, tx)
	}

	log.Info().
		Int("parsed", result.Parsed).
		Int("invalid_removed", result.InvalidCount()).
		Int("valid_remaining", result.ValidCount()).
		Msg("validation summary")

	for _, rej := range result.Rejections {
		log.Debug().Str("rejection", rej.String()).Msg("record removed")
	}

	return result
}

// checkRules returns the name of the first violated rule, or "" when the
// record is valid.
func checkRules(tx types.Transaction) string {
	switch {
	case tx.Quantity <= 0:
		return "quantity must be positive"
	case tx.UnitPrice <= 0:
		return "unit price must be positive"
	case !strings.HasPrefix(tx.TransactionID, "T"):
		return "transaction ID must start with T"
	case !strings.HasPrefix(tx.ProductID, "P"):
		return "product ID must start with P"
	case !strings.HasPrefix(tx.CustomerID, "C"):
		return "customer ID must start with C"
	}
	return ""
}
