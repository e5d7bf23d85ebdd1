package service

import (
	"strconv"

	"reparto/internal/core/dimres"
	"reparto/internal/services/catalog/domain"
	"reparto/internal/services/catalog/repo"
)

// statusActive is the only status a resolved row can carry: soft-deleted
// rows were already dropped by latest-then-filter resolution
const statusActive = "active"

// mapCompany projects a resolved company row. Companies are never grouped
// so the id set is just the row's own id
func mapCompany(r repo.SnapshotRow) domain.Company {
	id := r.RowKey()
	return domain.Company{
		ID:         id,
		AllIDs:     []string{id},
		ExternalID: r.ID,
		Name:       r.Name,
		Slug:       domain.Slugify(r.Name),
		Status:     statusActive,
	}
}

func mapArea(r repo.SnapshotRow) domain.Area {
	id := r.RowKey()
	return domain.Area{
		ID:         id,
		AllIDs:     []string{id},
		ExternalID: r.ID,
		Name:       r.Name,
		Slug:       domain.Slugify(r.Name),
	}
}

func mapBrand(g dimres.Group[repo.SnapshotRow]) domain.Brand {
	r := g.Primary
	return domain.Brand{
		ID:         r.RowKey(),
		AllIDs:     g.AllIDs,
		ExternalID: r.ID,
		Name:       r.Name,
		Slug:       domain.Slugify(r.Name),
		CompanyID:  linkID(r.CompanyID),
	}
}

func mapRestaurant(g dimres.Group[repo.SnapshotRow]) domain.Restaurant {
	r := g.Primary
	return domain.Restaurant{
		ID:         r.RowKey(),
		AllIDs:     g.AllIDs,
		ExternalID: r.ID,
		Name:       r.Address,
		Slug:       domain.Slugify(r.Address),
		BrandID:    linkID(r.BrandID),
		AreaID:     linkID(r.AreaID),
		Latitude:   r.Lat,
		Longitude:  r.Lng,
	}
}

// linkID renders an optional parent key, substituting the documented
// sentinel for rows the upstream table never linked
func linkID(fk *int64) string {
	if fk == nil {
		return domain.UnlinkedID
	}
	return strconv.FormatInt(*fk, 10)
}
