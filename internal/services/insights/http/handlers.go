// Package http provides http transport for insights
package http

import (
	stdhttp "net/http"

	"reparto/internal/modkit/httpkit"
	"reparto/internal/services/insights/domain"
	svc "reparto/internal/services/insights/service"
)

// Register mounts insights endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// daily order volume
	httpkit.PostJSON[domain.OrdersByDayInput](r, "/orders/daily", h.ordersByDay)

	// top restaurants in window
	httpkit.PostJSON[domain.TopStoresInput](r, "/stores/top", h.topStores)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /insights/orders/daily Insights insightsOrdersByDay
// @Summary Daily order volume for the selected entities
// @Tags Insights
// @Accept json
// @Produce json
// @Param payload body domain.OrdersByDayInput true "Query"
// @Success 200 {array} domain.OrdersByDayRow "ok"
// @Router /insights/orders/daily [post]
func (h *handlers) ordersByDay(r *stdhttp.Request, in domain.OrdersByDayInput) (any, error) {
	return h.svc.OrdersByDay(r.Context(), in)
}

// swagger:route POST /insights/stores/top Insights insightsTopStores
// @Summary Top restaurants by order volume
// @Tags Insights
// @Accept json
// @Produce json
// @Param payload body domain.TopStoresInput true "Query"
// @Success 200 {array} domain.TopStoresRow "ok"
// @Router /insights/stores/top [post]
func (h *handlers) topStores(r *stdhttp.Request, in domain.TopStoresInput) (any, error) {
	return h.svc.TopStores(r.Context(), in)
}
