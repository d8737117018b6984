package parser

import (
	"testing"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

func TestParseTransactions_WellFormedLine(t *testing.T) {
	lines := []string{"T1|2024-01-01|P101|Widget|5|10.0|C1|North"}

	parsed := ParseTransactions(lines)

	if len(parsed) != 1 {
		t.Fatalf("expected 1 record, got %d", len(parsed))
	}

	want := types.Transaction{
		TransactionID: "T1",
		Date:          "2024-01-01",
		ProductID:     "P101",
		ProductName:   "Widget",
		Quantity:      5,
		UnitPrice:     10.0,
		CustomerID:    "C1",
		Region:        "North",
	}
	if parsed[0] != want {
		t.Errorf("parsed record = %+v, want %+v", parsed[0], want)
	}
}

func TestParseTransactions_FieldCleaning(t *testing.T) {
	tests := []struct {
		name string
		line string
		want types.Transaction
	}{
		{
			name: "surrounding whitespace trimmed",
			line: " T1 | 2024-01-01 | P101 | Widget | 5 | 10.0 | C1 | North ",
			want: types.Transaction{
				TransactionID: "T1", Date: "2024-01-01", ProductID: "P101",
				ProductName: "Widget", Quantity: 5, UnitPrice: 10.0,
				CustomerID: "C1", Region: "North",
			},
		},
		{
			name: "commas stripped from product name",
			line: "T2|2024-01-02|P102|Widget, Deluxe|3|20.0|C2|South",
			want: types.Transaction{
				TransactionID: "T2", Date: "2024-01-02", ProductID: "P102",
				ProductName: "Widget Deluxe", Quantity: 3, UnitPrice: 20.0,
				CustomerID: "C2", Region: "South",
			},
		},
		{
			name: "thousands separators stripped from numerics",
			line: "T3|2024-01-03|P103|Gadget|1,200|1,050.50|C3|East",
			want: types.Transaction{
				TransactionID: "T3", Date: "2024-01-03", ProductID: "P103",
				ProductName: "Gadget", Quantity: 1200, UnitPrice: 1050.50,
				CustomerID: "C3", Region: "East",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseTransactions([]string{tt.line})
			if len(parsed) != 1 {
				t.Fatalf("expected 1 record, got %d", len(parsed))
			}
			if parsed[0] != tt.want {
				t.Errorf("parsed record = %+v, want %+v", parsed[0], tt.want)
			}
		})
	}
}

func TestParseTransactions_MalformedLinesDropped(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "T1|2024-01-01|P101|Widget|5|10.0|C1"},
		{"too many fields", "T1|2024-01-01|P101|Widget|5|10.0|C1|North|extra"},
		{"non-numeric quantity", "T1|2024-01-01|P101|Widget|five|10.0|C1|North"},
		{"non-numeric price", "T1|2024-01-01|P101|Widget|5|ten|C1|North"},
		{"empty quantity", "T1|2024-01-01|P101|Widget||10.0|C1|North"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseTransactions([]string{tt.line})
			if len(parsed) != 0 {
				t.Errorf("expected line to be dropped, got %+v", parsed)
			}
		})
	}
}

func TestParseTransactions_OrderPreserved(t *testing.T) {
	lines := []string{
		"T1|2024-01-01|P101|Widget|5|10.0|C1|North",
		"bad line",
		"T2|2024-01-02|P102|Gadget|2|5.0|C2|South",
		"T3|2024-01-03|P103|Gear|1|7.5|C3|East",
	}

	parsed := ParseTransactions(lines)

	if len(parsed) != 3 {
		t.Fatalf("expected 3 records, got %d", len(parsed))
	}
	wantIDs := []string{"T1", "T2", "T3"}
	for i, id := range wantIDs {
		if parsed[i].TransactionID != id {
			t.Errorf("record %d = %s, want %s", i, parsed[i].TransactionID, id)
		}
	}
}

func TestParseTransactions_EmptyInput(t *testing.T) {
	if got := ParseTransactions(nil); len(got) != 0 {
		t.Errorf("expected no records for nil input, got %d", len(got))
	}
	if got := ParseTransactions([]string{}); len(got) != 0 {
		t.Errorf("expected no records for empty input, got %d", len(got))
	}
}
