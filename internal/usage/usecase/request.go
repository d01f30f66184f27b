package usecase

import (
	"context"
	"time"

	"snowboarding-assistant/internal/usage"
)

const minAcquireWait = 10 * time.Millisecond

// TryAcquire takes one request slot if the current window has room.
func (g *implGovernor) TryAcquire(ctx context.Context) bool {
	ok, _ := g.tryAcquire(ctx)
	return ok
}

func (g *implGovernor) tryAcquire(ctx context.Context) (bool, time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	c := g.current(ctx, usage.ResourceRequest, g.cfg.Request)
	if status(c, g.cfg.Request).Exceeded {
		return false, c.WindowStart.Add(g.cfg.Request.Window).Sub(g.now())
	}
	g.incr(ctx, usage.ResourceRequest, c)
	return true, 0
}

// Acquire waits for the window to roll over when it is full, then takes a slot.
func (g *implGovernor) Acquire(ctx context.Context) error {
	for {
		ok, wait := g.tryAcquire(ctx)
		if ok {
			return nil
		}
		if wait < minAcquireWait {
			wait = minAcquireWait
		}
		g.l.Infof(ctx, "internal.usage.usecase.Acquire: request rate limit reached, waiting %s", wait.Round(time.Millisecond))
		if err := g.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// Snapshot reports both counters without modifying them.
func (g *implGovernor) Snapshot(ctx context.Context) usage.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return usage.Snapshot{
		Search:  status(g.current(ctx, usage.ResourceSearch, g.cfg.Search), g.cfg.Search),
		Request: status(g.current(ctx, usage.ResourceRequest, g.cfg.Request), g.cfg.Request),
	}
}
