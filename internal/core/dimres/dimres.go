// Package dimres resolves temporally versioned, multi-portal dimension rows
// into canonical entities.
//
// The upstream warehouse stores monthly full snapshots of every dimension
// table and marks withdrawn rows with a soft-delete flag instead of removing
// them. On top of that, the same physical brand or restaurant address is
// registered independently on each delivery portal under a different primary
// key. The helpers here collapse that raw shape in three steps: pick the
// current snapshot per key, dedupe rows that share a folded display name,
// and group multi-portal duplicates while preserving every source id for
// later fact-table joins.
//
// Everything in this package is a pure in-memory transform: no locks, no
// I/O, no state between calls. Re-running over a row set extended by a new
// monthly snapshot simply yields the new resolution.
package dimres

import (
	"sort"

	"reparto/internal/core/textnorm"
)

// Row is the contract raw snapshot rows expose to the resolver.
// Period strings must be lexically sortable, e.g. "2026-01-01"
type Row interface {
	RowKey() string
	RowPeriod() string
	RowDeleted() bool
}

// Latest collapses repeated monthly snapshot rows to the single current row
// per primary key: group by key, keep the row with the greatest period, and
// only then drop keys whose winning row carries the soft-delete flag.
//
// The order is load bearing. Filtering deleted rows before picking the
// latest would resurrect keys whose most recent snapshot withdrew them, and
// would drop keys that were deleted once and later restored. A key that only
// ever appears deleted is silently absent from the result.
//
// Ties on period keep the first row encountered, so the output is a pure
// function of the input ordering only in that degenerate case.
func Latest[R Row](rows []R) map[string]R {
	latest := make(map[string]R, len(rows))
	for _, r := range rows {
		cur, ok := latest[r.RowKey()]
		if !ok || r.RowPeriod() > cur.RowPeriod() {
			latest[r.RowKey()] = r
		}
	}
	for k, r := range latest {
		if r.RowDeleted() {
			delete(latest, k)
		}
	}
	return latest
}

// DedupeByName collapses rows sharing a case and diacritic insensitive
// display name to the row with the most recent snapshot period. Used for
// single-portal dimensions (companies, areas) where ids never duplicate but
// renames and re-registrations under case variants do.
//
// The same latest-then-filter ordering as Latest applies: the winner per
// name key is chosen first and dropped afterwards when soft-deleted.
func DedupeByName[R Row](rows []R, name func(R) string) map[string]R {
	latest := make(map[string]R, len(rows))
	for _, r := range rows {
		k := textnorm.Fold(name(r))
		cur, ok := latest[k]
		if !ok || r.RowPeriod() > cur.RowPeriod() {
			latest[k] = r
		}
	}
	for k, r := range latest {
		if r.RowDeleted() {
			delete(latest, k)
		}
	}
	return latest
}

// SortedKeys returns the map keys in ascending order for deterministic walks
func SortedKeys[R any](m map[string]R) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
