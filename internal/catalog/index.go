package catalog

import "github.com/ginjaninja78/sales-analytics/internal/types"

// Index is the lookup from numeric product ID to catalog entry.
// It is built once and never mutated afterwards.
type Index map[int]types.CatalogEntry

// BuildIndex converts a catalog entry sequence into an Index.
//
// An empty or nil input (the degraded no-catalog case) yields an empty,
// usable index. Duplicate IDs follow map overwrite semantics: the last entry
// in input order wins.
func BuildIndex(entries []types.CatalogEntry) Index {
	index := make(Index, len(entries))
	for _, entry := range entries {
		index[entry.ID] = entry
	}
	return index
}

// Lookup returns the entry for the given product ID, if present.
func (i Index) Lookup(id int) (types.CatalogEntry, bool) {
	entry, ok := i[id]
	return entry, ok
}
