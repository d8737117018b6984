// =============================================================================
// Sales Analytics - Record Parser Module
// =============================================================================
//
// This module turns raw pipe-delimited text lines into structured Transaction
// records. The input format is fixed:
//
//   TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
//
// PARSING RULES:
//   - A line must split into exactly 8 fields or it is discarded
//   - Every field is trimmed of surrounding whitespace
//   - ProductName has embedded commas stripped (legacy exports inject
//     grouping commas into free text)
//   - Quantity and UnitPrice have embedded commas stripped before numeric
//     conversion ("1,200" -> 1200)
//   - A line whose Quantity or UnitPrice fails conversion is discarded
//
// Malformed lines are a data-quality issue, not an error: they are dropped
// silently and processing continues. No partial records are ever emitted,
// and input order is preserved.
//
// NOTE: encoding/csv is deliberately not used here. The format is bare pipe
// separation with no quoting, and embedded commas are payload to strip, not
// field delimiters.
//
// =============================================================================

package parser

import (
	"strconv"
	"strings"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// fieldCount is the exact number of pipe-separated fields per record.
const fieldCount = 8

// ParseTransactions parses raw data lines into Transaction records.
//
// PARAMETERS:
//   - lines: raw data lines, header already stripped and blanks removed.
//
// RETURNS:
//   - The parsed transactions in input order. Malformed lines are dropped.
func ParseTransactions(lines []string) []types.Transaction {
	parsed := make([]types.Transaction, 0, len(lines))

	for _, line := range lines {
		tx, ok := parseLine(line)
		if !ok {
			continue
		}
		parsed = append(parsed, tx)
	}

	return parsed
}

// parseLine parses a single record line. The boolean result reports whether
// the line produced a complete record.
func parseLine(line string) (types.Transaction, bool) {
	parts := strings.Split(line, "|")
	if len(parts) != fieldCount {
		return types.Transaction{}, false
	}

	quantity, err := strconv.Atoi(stripCommas(parts[4]))
	if err != nil {
		return types.Transaction{}, false
	}

	unitPrice, err := strconv.ParseFloat(stripCommas(parts[5]), 64)
	if err != nil {
		return types.Transaction{}, false
	}

	return types.Transaction{
		TransactionID: strings.TrimSpace(parts[0]),
		Date:          strings.TrimSpace(parts[1]),
		ProductID:     strings.TrimSpace(parts[2]),
		ProductName:   stripCommas(parts[3]),
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    strings.TrimSpace(parts[6]),
		Region:        strings.TrimSpace(parts[7]),
	}, true
}

// stripCommas removes embedded commas and trims the result.
func stripCommas(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
}
