package catalog

import (
	"testing"

	"github.com/ginjaninja78/sales-analytics/internal/types"
)

func TestBuildIndex(t *testing.T) {
	entries := []types.CatalogEntry{
		{ID: 101, Category: "Tools", Brand: "Acme", Rating: 4.5},
		{ID: 102, Category: "Toys", Brand: "Globex", Rating: 3.9},
	}

	index := BuildIndex(entries)

	if len(index) != 2 {
		t.Fatalf("expected 2 index entries, got %d", len(index))
	}
	entry, ok := index.Lookup(101)
	if !ok || entry.Category != "Tools" {
		t.Errorf("Lookup(101) = %+v, %v", entry, ok)
	}
	if _, ok := index.Lookup(999); ok {
		t.Error("Lookup(999) should miss")
	}
}

func TestBuildIndex_DuplicateLastWins(t *testing.T) {
	entries := []types.CatalogEntry{
		{ID: 101, Category: "Tools", Brand: "Acme", Rating: 4.5},
		{ID: 101, Category: "Hardware", Brand: "Initech", Rating: 2.1},
	}

	index := BuildIndex(entries)

	if len(index) != 1 {
		t.Fatalf("expected 1 index entry, got %d", len(index))
	}
	entry, _ := index.Lookup(101)
	if entry.Category != "Hardware" || entry.Brand != "Initech" {
		t.Errorf("duplicate handling: got %+v, want last entry to win", entry)
	}
}

func TestBuildIndex_EmptyInput(t *testing.T) {
	if index := BuildIndex(nil); len(index) != 0 {
		t.Errorf("expected empty index, got %d entries", len(index))
	}
	index := BuildIndex([]types.CatalogEntry{})
	if _, ok := index.Lookup(1); ok {
		t.Error("empty index should miss every lookup")
	}
}
