// Package service contains insights workflows over resolved entities
package service

import (
	"context"
	"sort"

	catalogdom "reparto/internal/services/catalog/domain"
	"reparto/internal/services/insights/domain"
	"reparto/internal/services/insights/repo"
)

const defaultTopStores = 10

// Service defines the insights service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the insights service. Fact rows are keyed by raw per-portal
// store ids, so every entity filter is first resolved through catalog and
// expanded to the full folded id set before the fact table is queried
type Svc struct {
	Repo    repo.Repo
	Catalog catalogdom.ServicePort
}

// New constructs an insights service
func New(r repo.Repo, catalog catalogdom.ServicePort) *Svc {
	if r == nil {
		panic("insights.Service requires a non nil Repo")
	}
	if catalog == nil {
		panic("insights.Service requires the catalog port")
	}
	return &Svc{Repo: r, Catalog: catalog}
}

// OrdersByDay returns daily order volume for the selected entities
func (s *Svc) OrdersByDay(ctx context.Context, in domain.OrdersByDayInput) ([]domain.OrdersByDayRow, error) {
	storeIDs, restricted, err := s.storeFilter(ctx, in.Filter)
	if err != nil {
		return nil, err
	}
	if restricted && len(storeIDs) == 0 {
		// a selection that resolves to nothing matches no rows, not a fault
		return []domain.OrdersByDayRow{}, nil
	}

	rows, err := s.Repo.OrdersByDay(ctx, in.Range.Start, in.Range.End, storeIDs)
	if err != nil {
		return nil, err
	}
	out := make([]domain.OrdersByDayRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.OrdersByDayRow{Day: r.Day, Orders: r.Orders, GrossEur: r.GrossEur})
	}
	return out, nil
}

// TopStores ranks resolved restaurants by order volume, folding the totals
// of every per-portal store id that resolution grouped into one restaurant
func (s *Svc) TopStores(ctx context.Context, in domain.TopStoresInput) ([]domain.TopStoresRow, error) {
	restaurants, err := s.resolveRestaurants(ctx, in.Filter)
	if err != nil {
		return nil, err
	}
	restricted := filterRestricts(in.Filter)
	if restricted && len(restaurants) == 0 {
		return []domain.TopStoresRow{}, nil
	}

	var storeIDs []string
	if restricted {
		storeIDs = flattenIDs(restaurants)
	}
	rows, err := s.Repo.StoreTotals(ctx, in.Range.Start, in.Range.End, storeIDs)
	if err != nil {
		return nil, err
	}

	// raw store id to its owning resolved restaurant
	owner := make(map[string]*domain.TopStoresRow)
	ranked := make([]*domain.TopStoresRow, 0, len(restaurants))
	for _, r := range restaurants {
		row := &domain.TopStoresRow{RestaurantID: r.ID, Name: r.Name}
		ranked = append(ranked, row)
		for _, id := range r.AllIDs {
			owner[id] = row
		}
	}

	for _, fr := range rows {
		row, ok := owner[fr.StoreID]
		if !ok {
			// fact rows for stores absent from the dimension snapshots are
			// dropped rather than surfaced as phantom restaurants
			continue
		}
		row.Orders += fr.Orders
		row.GrossEur += fr.GrossEur
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Orders > ranked[j].Orders })

	limit := in.Limit
	if limit <= 0 {
		limit = defaultTopStores
	}
	out := make([]domain.TopStoresRow, 0, limit)
	for _, row := range ranked {
		if row.Orders == 0 {
			continue
		}
		out = append(out, *row)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// storeFilter resolves the entity filter into raw store ids. The second
// return reports whether a restriction was requested at all: nil ids with
// restricted=false means query everything
func (s *Svc) storeFilter(ctx context.Context, f domain.EntityFilter) ([]string, bool, error) {
	if !filterRestricts(f) {
		return nil, false, nil
	}
	restaurants, err := s.resolveRestaurants(ctx, f)
	if err != nil {
		return nil, true, err
	}
	return flattenIDs(restaurants), true, nil
}

// resolveRestaurants fetches the resolved restaurants the filter selects.
// With no restriction it returns the full resolved set (TopStores needs it
// to name and fold every store id)
func (s *Svc) resolveRestaurants(ctx context.Context, f domain.EntityFilter) ([]catalogdom.Restaurant, error) {
	restaurants, err := s.Catalog.Restaurants(ctx, catalogdom.RestaurantListInput{
		CompanyIDs: f.CompanyIDs,
		BrandIDs:   f.BrandIDs,
		AreaIDs:    f.AreaIDs,
	})
	if err != nil {
		return nil, err
	}
	if len(f.RestaurantIDs) == 0 {
		return restaurants, nil
	}

	want := make(map[string]struct{}, len(f.RestaurantIDs))
	for _, id := range f.RestaurantIDs {
		want[id] = struct{}{}
	}
	kept := restaurants[:0:0]
	for _, r := range restaurants {
		// a canonical id matches, and so does any folded per-portal id
		for _, id := range r.AllIDs {
			if _, ok := want[id]; ok {
				kept = append(kept, r)
				break
			}
		}
	}
	return kept, nil
}

func filterRestricts(f domain.EntityFilter) bool {
	return len(f.CompanyIDs) > 0 || len(f.BrandIDs) > 0 || len(f.AreaIDs) > 0 || len(f.RestaurantIDs) > 0
}

// flattenIDs unions every per-portal id of the given restaurants. The result
// is never nil so callers can distinguish "restricted to nothing" from "no
// restriction"
func flattenIDs(restaurants []catalogdom.Restaurant) []string {
	ids := make([]string, 0, len(restaurants))
	seen := make(map[string]struct{}, len(restaurants))
	for _, r := range restaurants {
		for _, id := range r.AllIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
