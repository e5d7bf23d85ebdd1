// Package domain defines the canonical dimension entities served by catalog
package domain

// UnlinkedID is the sentinel for a foreign key the upstream table does not
// populate for a given row. It is a normal, expected state: portals register
// brands before the consultancy links them to a company, and restaurants can
// predate their area assignment. Consumers must render it as "unlinked", not
// treat it as an error.
const UnlinkedID = "unlinked"

// Company is a resolved restaurant-owning company
type Company struct {
	ID         string   `json:"id"          example:"118"`
	AllIDs     []string `json:"all_ids"`
	ExternalID int64    `json:"external_id" example:"118"`
	Name       string   `json:"name"        example:"Restalia"`
	Slug       string   `json:"slug"        example:"restalia"`
	Status     string   `json:"status"      example:"active"`
}

// Brand is a resolved store brand. The same physical brand is registered
// once per delivery portal under a different id; AllIDs carries every raw id
// folded into this entity and fact tables must be joined through it
type Brand struct {
	ID         string   `json:"id"          example:"2041"`
	AllIDs     []string `json:"all_ids"`
	ExternalID int64    `json:"external_id" example:"2041"`
	Name       string   `json:"name"        example:"Goiko Grill"`
	Slug       string   `json:"slug"        example:"goiko-grill"`
	CompanyID  string   `json:"company_id"  example:"118"` // UnlinkedID when not linked
}

// Area is a resolved geographic delivery area
type Area struct {
	ID         string   `json:"id"          example:"28"`
	AllIDs     []string `json:"all_ids"`
	ExternalID int64    `json:"external_id" example:"28"`
	Name       string   `json:"name"        example:"Chamberí"`
	Slug       string   `json:"slug"        example:"chamberi"`
}

// Restaurant is a resolved restaurant address. Grouping is keyed by the
// normalized street address, so one Restaurant folds the per-portal
// registrations of the same physical location
type Restaurant struct {
	ID         string   `json:"id"          example:"90210"`
	AllIDs     []string `json:"all_ids"`
	ExternalID int64    `json:"external_id" example:"90210"`
	Name       string   `json:"name"        example:"Calle de Sancho de Ávila 175"`
	Slug       string   `json:"slug"        example:"calle-de-sancho-de-avila-175"`
	BrandID    string   `json:"brand_id"    example:"2041"` // UnlinkedID when not linked
	AreaID     string   `json:"area_id"     example:"28"`   // UnlinkedID when not linked
	Latitude   *float64 `json:"latitude,omitempty"  example:"40.4168"`
	Longitude  *float64 `json:"longitude,omitempty" example:"-3.7038"`
}
