package resort

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Nearest(ctx context.Context, input NearestInput) (NearestOutput, error)
	List(ctx context.Context, filter string) ([]Resort, error)
	Seed(ctx context.Context) (SeedOutput, error)
}
