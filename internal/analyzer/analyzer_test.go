package analyzer

import (
	"math"
	"testing"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

func tx(id, date, product string, qty int, price float64, customer, region string) types.Transaction {
	return types.Transaction{
		TransactionID: id,
		Date:          date,
		ProductID:     "P1",
		ProductName:   product,
		Quantity:      qty,
		UnitPrice:     price,
		CustomerID:    customer,
		Region:        region,
	}
}

func TestAnalyze_TotalRevenue(t *testing.T) {
	valid := []types.Transaction{
		tx("T1", "2024-01-01", "Widget", 5, 10.0, "C1", "North"),
		tx("T2", "2024-01-02", "Gadget", 2, 7.5, "C2", "South"),
	}

	result := Analyze(valid, 5)

	want := 5*10.0 + 2*7.5
	if math.Abs(result.TotalRevenue-want) > 1e-9 {
		t.Errorf("TotalRevenue = %v, want %v", result.TotalRevenue, want)
	}
}

func TestAnalyze_RegionStats(t *testing.T) {
	valid := []types.Transaction{
		tx("T1", "2024-01-01", "Widget", 5, 10.0, "C1", "North"),
		tx("T2", "2024-01-01", "Gadget", 1, 20.0, "C2", "North"),
		tx("T3", "2024-01-02", "Gear", 3, 5.0, "C3", "South"),
	}

	result := Analyze(valid, 5)

	north := result.RegionStats["North"]
	if north.Sales != 70.0 || north.Count != 2 {
		t.Errorf("North = %+v, want {Sales:70 Count:2}", north)
	}
	south := result.RegionStats["South"]
	if south.Sales != 15.0 || south.Count != 1 {
		t.Errorf("South = %+v, want {Sales:15 Count:1}", south)
	}
}

func TestAnalyze_DateTrend(t *testing.T) {
	valid := []types.Transaction{
		tx("T1", "2024-01-02", "Widget", 1, 10.0, "C1", "North"),
		tx("T2", "2024-01-01", "Widget", 2, 10.0, "C1", "North"),
		tx("T3", "2024-01-01", "Gadget", 1, 5.0, "C2", "South"),
		tx("T4", "2024-01-01", "Gear", 1, 5.0, "C1", "South"),
	}

	result := Analyze(valid, 5)

	wantDates := []string{"2024-01-01", "2024-01-02"}
	if len(result.SortedDates) != 2 || result.SortedDates[0] != wantDates[0] || result.SortedDates[1] != wantDates[1] {
		t.Errorf("SortedDates = %v, want %v", result.SortedDates, wantDates)
	}

	day1 := result.DateTrend["2024-01-01"]
	if day1.Revenue != 30.0 || day1.Transactions != 3 || day1.Customers != 2 {
		t.Errorf("day1 = %+v, want {Revenue:30 Transactions:3 Customers:2}", day1)
	}
	day2 := result.DateTrend["2024-01-02"]
	if day2.Revenue != 10.0 || day2.Transactions != 1 || day2.Customers != 1 {
		t.Errorf("day2 = %+v", day2)
	}
}

func TestAnalyze_DateOrderIsStringOrder(t *testing.T) {
	// The fixed-width YYYY-MM-DD format makes string order chronological.
	valid := []types.Transaction{
		tx("T1", "2024-12-31", "Widget", 1, 1.0, "C1", "North"),
		tx("T2", "2024-02-01", "Widget", 1, 1.0, "C1", "North"),
		tx("T3", "2024-10-05", "Widget", 1, 1.0, "C1", "North"),
	}

	result := Analyze(valid, 5)

	want := []string{"2024-02-01", "2024-10-05", "2024-12-31"}
	for i, date := range want {
		if result.SortedDates[i] != date {
			t.Errorf("SortedDates[%d] = %s, want %s", i, result.SortedDates[i], date)
		}
	}
}

func TestAnalyze_TopProducts(t *testing.T) {
	valid := []types.Transaction{
		tx("T1", "2024-01-01", "Widget", 5, 10.0, "C1", "North"),
		tx("T2", "2024-01-01", "Gadget", 9, 2.0, "C1", "North"),
		tx("T3", "2024-01-01", "Widget", 3, 10.0, "C1", "North"),
		tx("T4", "2024-01-01", "Gear", 1, 50.0, "C1", "North"),
	}

	result := Analyze(valid, 5)

	if len(result.TopProducts) != 3 {
		t.Fatalf("expected 3 ranked products, got %d", len(result.TopProducts))
	}
	if result.TopProducts[0].Name != "Gadget" || result.TopProducts[0].Stats.Quantity != 9 {
		t.Errorf("rank 1 = %+v, want Gadget/9", result.TopProducts[0])
	}
	if result.TopProducts[1].Name != "Widget" || result.TopProducts[1].Stats.Quantity != 8 {
		t.Errorf("rank 2 = %+v, want Widget/8", result.TopProducts[1])
	}
	if result.TopProducts[1].Stats.Revenue != 80.0 {
		t.Errorf("Widget revenue = %v, want 80", result.TopProducts[1].Stats.Revenue)
	}
}

func TestAnalyze_TopProducts_StableTieBreak(t *testing.T) {
	// Alpha and Beta tie on quantity; Alpha appeared first and must stay first.
	valid := []types.Transaction{
		tx("T1", "2024-01-01", "Alpha", 4, 1.0, "C1", "North"),
		tx("T2", "2024-01-01", "Beta", 4, 1.0, "C1", "North"),
		tx("T3", "2024-01-01", "Gamma", 9, 1.0, "C1", "North"),
	}

	result := Analyze(valid, 5)

	want := []string{"Gamma", "Alpha", "Beta"}
	for i, name := range want {
		if result.TopProducts[i].Name != name {
			t.Errorf("rank %d = %s, want %s", i+1, result.TopProducts[i].Name, name)
		}
	}
}

func TestAnalyze_TopProducts_Truncation(t *testing.T) {
	var valid []types.Transaction
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, name := range names {
		valid = append(valid, tx("T1", "2024-01-01", name, i+1, 1.0, "C1", "North"))
	}

	result := Analyze(valid, 5)

	if len(result.TopProducts) != 5 {
		t.Fatalf("expected ranking truncated to 5, got %d", len(result.TopProducts))
	}
	if result.TopProducts[0].Name != "G" {
		t.Errorf("rank 1 = %s, want G", result.TopProducts[0].Name)
	}
}

func TestAnalyze_RegionSharesSumTo100(t *testing.T) {
	valid := []types.Transaction{
		tx("T1", "2024-01-01", "Widget", 3, 9.99, "C1", "North"),
		tx("T2", "2024-01-01", "Gadget", 7, 1.25, "C2", "South"),
		tx("T3", "2024-01-01", "Gear", 2, 42.0, "C3", "East"),
	}

	result := Analyze(valid, 5)

	total := 0.0
	for _, stats := range result.RegionStats {
		total += stats.Sales / result.TotalRevenue * 100
	}
	if math.Abs(total-100.0) > 1e-9 {
		t.Errorf("region shares sum to %v, want 100", total)
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	result := Analyze(nil, 5)

	if result.TotalRevenue != 0 {
		t.Errorf("TotalRevenue = %v, want 0", result.TotalRevenue)
	}
	if len(result.RegionStats) != 0 || len(result.DateTrend) != 0 {
		t.Error("expected empty aggregates")
	}
	if len(result.TopProducts) != 0 || len(result.SortedDates) != 0 {
		t.Error("expected empty ranking and date list")
	}
}
