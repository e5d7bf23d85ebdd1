package domain

import "context"

// ServicePort is consumed by handlers and by other modules (insights joins
// fact tables through the AllIDs this port returns)
type ServicePort interface {
	Companies(ctx context.Context) ([]Company, error)
	Brands(ctx context.Context, in BrandListInput) ([]Brand, error)
	Areas(ctx context.Context) ([]Area, error)
	Restaurants(ctx context.Context, in RestaurantListInput) ([]Restaurant, error)
}
