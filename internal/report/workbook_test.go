package report

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestBuildWorkbook_Sheets(t *testing.T) {
	data, err := BuildWorkbook(sampleInput(), fixedOptions())
	if err != nil {
		t.Fatalf("BuildWorkbook failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook is not readable: %v", err)
	}
	defer f.Close()

	want := map[string]bool{
		"Summary":       false,
		"Regions":       false,
		"Daily Trend":   false,
		"Top Products":  false,
		"Enriched Data": false,
	}
	for _, sheet := range f.GetSheetList() {
		if _, ok := want[sheet]; ok {
			want[sheet] = true
		}
	}
	for sheet, found := range want {
		if !found {
			t.Errorf("sheet %q missing", sheet)
		}
	}
}

func TestBuildWorkbook_Values(t *testing.T) {
	data, err := BuildWorkbook(sampleInput(), fixedOptions())
	if err != nil {
		t.Fatalf("BuildWorkbook failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook is not readable: %v", err)
	}
	defer f.Close()

	// Regions sheet: alphabetical order puts North before South.
	region, err := f.GetCellValue("Regions", "A2")
	if err != nil || region != "North" {
		t.Errorf("Regions!A2 = %q (%v), want North", region, err)
	}

	// Enriched Data sheet: first data row is the matched T1 record.
	txID, _ := f.GetCellValue("Enriched Data", "A2")
	category, _ := f.GetCellValue("Enriched Data", "C2")
	if txID != "T1" || category != "Tools" {
		t.Errorf("enriched row = %q/%q, want T1/Tools", txID, category)
	}
}
