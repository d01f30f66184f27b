package usage

import "context"

// Governor enforces the search quota and the request rate.
//
//go:generate mockery --name Governor
type Governor interface {
	// CheckAndMaybeRefresh returns the current search quota, refreshing it from
	// the provider at most once per refresh interval.
	CheckAndMaybeRefresh(ctx context.Context) QuotaStatus
	// RecordSearch adds one search to the quota.
	RecordSearch(ctx context.Context)
	// TryRecordSearch adds one search unless the quota is exhausted, reporting
	// whether the search may proceed.
	TryRecordSearch(ctx context.Context) (QuotaStatus, bool)
	// TryAcquire takes a request slot if one is free in the current window.
	TryAcquire(ctx context.Context) bool
	// Acquire blocks until a request slot is free or ctx ends.
	Acquire(ctx context.Context) error
	Snapshot(ctx context.Context) Snapshot
}

// UsageSource reports provider-side usage for the current billing window.
type UsageSource interface {
	Usage(ctx context.Context) (int, error)
}
