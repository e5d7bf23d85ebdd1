// Package service implements the per-entity resolution pipelines for catalog
package service

import (
	"context"
	"sort"
	"strings"

	"reparto/internal/core/addrnorm"
	"reparto/internal/core/dimres"
	"reparto/internal/core/textnorm"
	"reparto/internal/modkit/repokit"
	"reparto/internal/platform/store"
	"reparto/internal/services/catalog/domain"
	"reparto/internal/services/catalog/repo"
)

// Service defines the catalog service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the catalog service. Each method is a stateless pipeline
// over the current raw row set; nothing is cached between calls, so a newly
// appended monthly snapshot is picked up on the next fetch with no migration
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a catalog service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("catalog.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("catalog.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Companies resolves the company dimension: name-keyed dedup, no grouping.
// Companies are registered once (not per portal), so ids never duplicate
func (s *Svc) Companies(ctx context.Context) ([]domain.Company, error) {
	rows, err := s.Repo.Companies(ctx)
	if err != nil {
		return nil, err
	}
	res := dimres.DedupeByName(rows, func(r repo.SnapshotRow) string { return r.Name })
	out := make([]domain.Company, 0, len(res))
	for _, k := range dimres.SortedKeys(res) {
		out = append(out, mapCompany(res[k]))
	}
	sortByName(out, func(c domain.Company) string { return c.Name })
	return out, nil
}

// Areas resolves the area dimension the same way as companies
func (s *Svc) Areas(ctx context.Context) ([]domain.Area, error) {
	rows, err := s.Repo.Areas(ctx)
	if err != nil {
		return nil, err
	}
	res := dimres.DedupeByName(rows, func(r repo.SnapshotRow) string { return r.Name })
	out := make([]domain.Area, 0, len(res))
	for _, k := range dimres.SortedKeys(res) {
		out = append(out, mapArea(res[k]))
	}
	sortByName(out, func(a domain.Area) string { return a.Name })
	return out, nil
}

// Brands resolves the brand dimension: latest snapshot per id, then fold
// per-portal duplicates sharing a folded display name into one entity
func (s *Svc) Brands(ctx context.Context, in domain.BrandListInput) ([]domain.Brand, error) {
	if in.AsOf != "" {
		ctx = store.WithAsOfMonth(ctx, in.AsOf)
	}
	rows, err := s.Repo.Brands(ctx)
	if err != nil {
		return nil, err
	}
	groups := brandGroupsOf(rows)

	companySet := idSet(in.CompanyIDs)
	out := make([]domain.Brand, 0, len(groups))
	for _, g := range groups {
		b := mapBrand(g)
		if len(companySet) > 0 {
			if _, ok := companySet[b.CompanyID]; !ok {
				continue
			}
		}
		out = append(out, b)
	}
	sortByName(out, func(b domain.Brand) string { return b.Name })
	return out, nil
}

// Restaurants resolves the restaurant dimension: latest snapshot per id,
// then fold per-portal registrations of the same normalized street address.
// Company and brand filters are expanded through the resolved brand groups
// so that a canonical id matches every raw per-portal id folded into it
func (s *Svc) Restaurants(ctx context.Context, in domain.RestaurantListInput) ([]domain.Restaurant, error) {
	if in.AsOf != "" {
		ctx = store.WithAsOfMonth(ctx, in.AsOf)
	}
	needBrands := len(in.CompanyIDs) > 0 || len(in.BrandIDs) > 0

	// one tx so restaurant rows and the brand rows the filter expands
	// through come from the same snapshot state
	var rows, brandRows []repo.SnapshotRow
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		var err error
		if rows, err = r.Restaurants(ctx); err != nil {
			return err
		}
		if needBrands {
			brandRows, err = r.Brands(ctx)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	// nil means "no restriction"; an empty non-nil set means "no match"
	var brandFilter map[string]struct{}
	if needBrands {
		brandFilter = allowedBrandIDs(brandRows, in.CompanyIDs, in.BrandIDs)
	}
	areaSet := idSet(in.AreaIDs)

	latest := dimres.Latest(rows)
	cur := currentRows(latest)
	groups := dimres.GroupBy(cur, restaurantSpec())

	out := make([]domain.Restaurant, 0, len(groups))
	for _, g := range groups {
		r := mapRestaurant(g)
		if brandFilter != nil {
			if _, ok := brandFilter[r.BrandID]; !ok {
				continue
			}
		}
		if len(areaSet) > 0 {
			if _, ok := areaSet[r.AreaID]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	sortByName(out, func(r domain.Restaurant) string { return r.Name })
	return out, nil
}

// brandGroupsOf runs the brand pipeline up to (and including) grouping
func brandGroupsOf(rows []repo.SnapshotRow) []dimres.Group[repo.SnapshotRow] {
	latest := dimres.Latest(rows)
	return dimres.GroupBy(currentRows(latest), brandSpec())
}

// allowedBrandIDs expands company/brand filters into the set of raw brand
// ids a restaurant may reference. Both filters apply (AND); an empty result
// simply matches no restaurant
func allowedBrandIDs(brandRows []repo.SnapshotRow, companyIDs, brandIDs []string) map[string]struct{} {
	companySet := idSet(companyIDs)
	wantBrand := idSet(brandIDs)

	allowed := make(map[string]struct{})
	for _, g := range brandGroupsOf(brandRows) {
		b := mapBrand(g)
		if len(companySet) > 0 {
			if _, ok := companySet[b.CompanyID]; !ok {
				continue
			}
		}
		if len(wantBrand) > 0 && !matchesAny(wantBrand, g.AllIDs) {
			continue
		}
		for _, id := range g.AllIDs {
			allowed[id] = struct{}{}
		}
	}
	return allowed
}

// brandSpec keys brand rows by folded display name and fills a missing
// company link from the first sibling that has one
func brandSpec() dimres.GroupSpec[repo.SnapshotRow] {
	return dimres.GroupSpec[repo.SnapshotRow]{
		Key:     func(r repo.SnapshotRow) string { return textnorm.Fold(r.Name) },
		ID:      repo.SnapshotRow.RowKey,
		Display: func(r repo.SnapshotRow) string { return r.Name },
		Period:  repo.SnapshotRow.RowPeriod,
		Merge: func(p, sib repo.SnapshotRow) repo.SnapshotRow {
			if p.CompanyID == nil && sib.CompanyID != nil {
				p.CompanyID = sib.CompanyID
			}
			return p
		},
	}
}

// restaurantSpec keys restaurant rows by normalized street address and fills
// missing coordinates and parent links from siblings, first match wins
func restaurantSpec() dimres.GroupSpec[repo.SnapshotRow] {
	return dimres.GroupSpec[repo.SnapshotRow]{
		Key:     func(r repo.SnapshotRow) string { return addrnorm.Normalize(r.Address) },
		ID:      repo.SnapshotRow.RowKey,
		Display: func(r repo.SnapshotRow) string { return r.Address },
		Period:  repo.SnapshotRow.RowPeriod,
		Merge: func(p, sib repo.SnapshotRow) repo.SnapshotRow {
			if p.Lat == nil && sib.Lat != nil {
				p.Lat = sib.Lat
			}
			if p.Lng == nil && sib.Lng != nil {
				p.Lng = sib.Lng
			}
			if p.BrandID == nil && sib.BrandID != nil {
				p.BrandID = sib.BrandID
			}
			if p.AreaID == nil && sib.AreaID != nil {
				p.AreaID = sib.AreaID
			}
			return p
		},
	}
}

// currentRows flattens a resolved map into a deterministic slice
func currentRows(m map[string]repo.SnapshotRow) []repo.SnapshotRow {
	out := make([]repo.SnapshotRow, 0, len(m))
	for _, k := range dimres.SortedKeys(m) {
		out = append(out, m[k])
	}
	return out
}

func idSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func matchesAny(want map[string]struct{}, ids []string) bool {
	for _, id := range ids {
		if _, ok := want[id]; ok {
			return true
		}
	}
	return false
}

func sortByName[T any](items []T, name func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(name(items[i])) < strings.ToLower(name(items[j]))
	})
}
