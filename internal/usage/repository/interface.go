package repository

import (
	"context"

	"snowboarding-assistant/internal/usage"
)

// Store persists usage counters. Implementations must be safe for concurrent use.
type Store interface {
	// Get returns usage.ErrCounterNotFound when the resource has no counter yet.
	Get(ctx context.Context, r usage.Resource) (usage.Counter, error)
	Put(ctx context.Context, r usage.Resource, c usage.Counter) error
	// Incr adds delta to the count and returns the new counter.
	Incr(ctx context.Context, r usage.Resource, delta int) (usage.Counter, error)
}
