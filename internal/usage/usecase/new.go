package usecase

import (
	"context"
	"sync"
	"time"

	"snowboarding-assistant/internal/usage"
	"snowboarding-assistant/internal/usage/repository"
	"snowboarding-assistant/pkg/log"
)

// Config sets the limits for both governed resources.
// A zero threshold disables the corresponding limit.
type Config struct {
	Search          usage.Limit
	Request         usage.Limit
	RefreshInterval time.Duration
}

// Option customises the governor.
type Option func(*implGovernor)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *implGovernor) { g.now = now }
}

// WithSleep replaces the blocking wait used by Acquire.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(g *implGovernor) { g.sleep = sleep }
}

// implGovernor is the private implementation of usage.Governor.
// mu serialises check-then-increment sequences within the process; the store
// keeps the counters themselves.
type implGovernor struct {
	store  repository.Store
	source usage.UsageSource
	cfg    Config
	l      log.Logger
	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error

	mu          sync.Mutex
	lastRefresh time.Time
}

var _ usage.Governor = (*implGovernor)(nil)

// New creates a governor. source may be nil when the search provider exposes no usage API.
func New(store repository.Store, source usage.UsageSource, cfg Config, l log.Logger, opts ...Option) *implGovernor {
	g := &implGovernor{
		store:  store,
		source: source,
		cfg:    cfg,
		l:      l,
		now:    time.Now,
		sleep:  sleepCtx,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
