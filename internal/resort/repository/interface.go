package repository

import (
	"context"

	"snowboarding-assistant/internal/resort"
)

// Repository is the resort data store.
type Repository interface {
	ListResorts(ctx context.Context, opt ListResortsOptions) ([]resort.Resort, error)
	CountResorts(ctx context.Context) (int, error)
	InsertResorts(ctx context.Context, resorts []resort.Resort) (int, error)
}
