// Package http provides http transport for catalog
package http

import (
	"context"
	stdhttp "net/http"
	"time"

	"reparto/internal/modkit/httpkit"
	perr "reparto/internal/platform/errors"
	"reparto/internal/platform/store"
	"reparto/internal/services/catalog/domain"
	svc "reparto/internal/services/catalog/service"
)

// Register mounts catalog endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// single-portal dimensions, no filters
	httpkit.Get(r, "/companies", h.companies)
	httpkit.Get(r, "/areas", h.areas)

	// multi-portal dimensions with filter bodies
	httpkit.PostJSON[domain.BrandListInput](r, "/brands", h.brands)
	httpkit.PostJSON[domain.RestaurantListInput](r, "/restaurants", h.restaurants)
}

type handlers struct{ svc svc.Service }

// pinnedCtx applies an optional as_of query param as a snapshot pin
func pinnedCtx(r *stdhttp.Request) (context.Context, error) {
	ctx := r.Context()
	asOf := r.URL.Query().Get("as_of")
	if asOf == "" {
		return ctx, nil
	}
	if _, err := time.Parse("2006-01-02", asOf); err != nil {
		return ctx, perr.InvalidArgf("as_of must be YYYY-MM-DD, got %q", asOf)
	}
	return store.WithAsOfMonth(ctx, asOf), nil
}

// swagger:route GET /catalog/companies Catalog catalogCompanies
// @Summary Resolved companies
// @Tags Catalog
// @Produce json
// @Param as_of query string false "Pin resolution to snapshots at or before this month"
// @Success 200 {array} domain.Company "ok"
// @Router /catalog/companies [get]
func (h *handlers) companies(r *stdhttp.Request) (any, error) {
	ctx, err := pinnedCtx(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Companies(ctx)
}

// swagger:route GET /catalog/areas Catalog catalogAreas
// @Summary Resolved delivery areas
// @Tags Catalog
// @Produce json
// @Param as_of query string false "Pin resolution to snapshots at or before this month"
// @Success 200 {array} domain.Area "ok"
// @Router /catalog/areas [get]
func (h *handlers) areas(r *stdhttp.Request) (any, error) {
	ctx, err := pinnedCtx(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Areas(ctx)
}

// swagger:route POST /catalog/brands Catalog catalogBrands
// @Summary Resolved brands, optionally filtered by owning company
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body domain.BrandListInput true "Filters"
// @Success 200 {array} domain.Brand "ok"
// @Router /catalog/brands [post]
func (h *handlers) brands(r *stdhttp.Request, in domain.BrandListInput) (any, error) {
	return h.svc.Brands(r.Context(), in)
}

// swagger:route POST /catalog/restaurants Catalog catalogRestaurants
// @Summary Resolved restaurant addresses with company, brand and area filters
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body domain.RestaurantListInput true "Filters"
// @Success 200 {array} domain.Restaurant "ok"
// @Router /catalog/restaurants [post]
func (h *handlers) restaurants(r *stdhttp.Request, in domain.RestaurantListInput) (any, error) {
	return h.svc.Restaurants(r.Context(), in)
}
