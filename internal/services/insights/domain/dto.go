// Package domain holds DTOs for insights http and service contracts
package domain

// Query window and filters kept small and explicit
// Dates are ISO8601 day precision, matching the fact table's order_date

// TimeRange defines a start and end day for fact queries
type TimeRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2026-01-01"`
	End   string `json:"end" validate:"required,datetime=2006-01-02" example:"2026-01-31"`
}

// EntityFilter selects which resolved entities to aggregate over. Every
// filter accepts canonical catalog ids; the service expands them to the full
// per-portal id set before touching the fact table. An absent filter means
// no restriction, a filter that resolves to zero store ids means no rows
type EntityFilter struct {
	CompanyIDs    []string `json:"company_ids,omitempty" validate:"omitempty,dive,min=1,max=32"`
	BrandIDs      []string `json:"brand_ids,omitempty" validate:"omitempty,dive,min=1,max=32"`
	AreaIDs       []string `json:"area_ids,omitempty" validate:"omitempty,dive,min=1,max=32"`
	RestaurantIDs []string `json:"restaurant_ids,omitempty" validate:"omitempty,dive,min=1,max=32"`
}

// OrdersByDayInput buckets order volume by day
type OrdersByDayInput struct {
	Range  TimeRange    `json:"range"`
	Filter EntityFilter `json:"filter"`
}

// OrdersByDayRow represents a row in the OrdersByDay output
type OrdersByDayRow struct {
	Day      string  `json:"day" example:"2026-01-05"`
	Orders   uint64  `json:"orders" example:"412"`
	GrossEur float64 `json:"gross_eur" example:"8123.50"`
}

// TopStoresInput ranks resolved restaurants by order volume
type TopStoresInput struct {
	Range  TimeRange    `json:"range"`
	Filter EntityFilter `json:"filter"`
	Limit  int          `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
}

// TopStoresRow represents a row in the TopStores output. Totals are summed
// across every per-portal store id folded into the restaurant
type TopStoresRow struct {
	RestaurantID string  `json:"restaurant_id" example:"90210"`
	Name         string  `json:"name" example:"Calle de Sancho de Ávila 175"`
	Orders       uint64  `json:"orders" example:"412"`
	GrossEur     float64 `json:"gross_eur" example:"8123.50"`
}
