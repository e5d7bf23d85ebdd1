package domain

// Filter inputs for the list endpoints. Empty id slices mean "no
// restriction"; a non-empty slice that resolves to nothing yields an empty
// result set, never an error

// BrandListInput filters brands by owning company. AsOf pins resolution to
// snapshots at or before the given month
type BrandListInput struct {
	CompanyIDs []string `json:"company_ids,omitempty" validate:"omitempty,dive,min=1,max=32"`
	AsOf       string   `json:"as_of,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2026-01-01"`
}

// RestaurantListInput filters restaurants by company, brand or area.
// Company and brand filters accept canonical ids and are expanded to every
// folded per-portal id before matching
type RestaurantListInput struct {
	CompanyIDs []string `json:"company_ids,omitempty" validate:"omitempty,dive,min=1,max=32"`
	BrandIDs   []string `json:"brand_ids,omitempty"   validate:"omitempty,dive,min=1,max=32"`
	AreaIDs    []string `json:"area_ids,omitempty"    validate:"omitempty,dive,min=1,max=32"`
	AsOf       string   `json:"as_of,omitempty"       validate:"omitempty,datetime=2006-01-02" example:"2026-01-01"`
}
