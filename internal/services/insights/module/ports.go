package module

import (
	"context"

	"reparto/internal/services/insights/domain"
	insightssvc "reparto/internal/services/insights/service"
)

type adaptInsightsPort struct{ svc insightssvc.Service }

// OrdersByDay returns daily order volume for the selected entities
func (a adaptInsightsPort) OrdersByDay(ctx context.Context, in domain.OrdersByDayInput) ([]domain.OrdersByDayRow, error) {
	return a.svc.OrdersByDay(ctx, in)
}

// TopStores ranks resolved restaurants by order volume
func (a adaptInsightsPort) TopStores(ctx context.Context, in domain.TopStoresInput) ([]domain.TopStoresRow, error) {
	return a.svc.TopStores(ctx, in)
}
