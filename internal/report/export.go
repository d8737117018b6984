// =============================================================================
// Sales Analytics - Enriched Data Export
// =============================================================================
//
// This module renders the enriched transactions as a pipe-delimited export
// file. The column order is fixed:
//
//   TransactionID|ProductID|Category|Brand|Enriched
//
// Unmatched records render empty Category and Brand columns and a "false"
// flag; the row itself is always written, one per enriched transaction.
//
// =============================================================================

package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

// exportHeader names the export columns. It is the first line of the file.
const exportHeader = "TransactionID|ProductID|Category|Brand|Enriched"

// BuildExport renders the enriched transactions as UTF-8 export bytes.
func BuildExport(enriched []types.EnrichedTransaction) []byte {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, exportHeader)
	for _, tx := range enriched {
		fmt.Fprintf(&buf, "%s|%s|%s|%s|%s\n",
			tx.TransactionID,
			tx.ProductID,
			stringOrEmpty(tx.APICategory),
			stringOrEmpty(tx.APIBrand),
			strconv.FormatBool(tx.Matched),
		)
	}

	return buf.Bytes()
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
