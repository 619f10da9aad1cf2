package repository

import "context"

//go:generate mockery --name Repository
type Repository interface {
	// ListRegions returns the region ids assigned to a user in store order.
	// A user without assignments yields an empty slice and a nil error.
	ListRegions(ctx context.Context, opts ListRegionsOptions) ([]int64, error)
}
