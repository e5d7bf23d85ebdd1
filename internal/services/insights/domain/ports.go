package domain

import "context"

// ServicePort is the callable surface insights exposes
type ServicePort interface {
	OrdersByDay(ctx context.Context, in OrdersByDayInput) ([]OrdersByDayRow, error)
	TopStores(ctx context.Context, in TopStoresInput) ([]TopStoresRow, error)
}
