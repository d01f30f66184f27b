package usecase

import (
	"context"
	"errors"

	"snowboarding-assistant/internal/usage"
)

const logPrefixCounter = "internal.usage.usecase.counter"

// current returns the live counter for r, creating it or rolling its window as needed.
// Callers hold g.mu.
func (g *implGovernor) current(ctx context.Context, r usage.Resource, limit usage.Limit) usage.Counter {
	now := g.now()
	c, err := g.store.Get(ctx, r)
	switch {
	case errors.Is(err, usage.ErrCounterNotFound):
		c = usage.Counter{Count: 0, WindowStart: now}
		g.put(ctx, r, c)
	case err != nil:
		g.l.Warnf(ctx, "%s: read %s counter: %v", logPrefixCounter, r, err)
		return usage.Counter{WindowStart: now}
	case limit.Window > 0 && c.Expired(now, limit.Window):
		g.l.Infof(ctx, "%s: %s window rolled over after %d uses", logPrefixCounter, r, c.Count)
		c = usage.Counter{Count: 0, WindowStart: now}
		g.put(ctx, r, c)
	}
	return c
}

func (g *implGovernor) put(ctx context.Context, r usage.Resource, c usage.Counter) {
	if err := g.store.Put(ctx, r, c); err != nil {
		g.l.Warnf(ctx, "%s: write %s counter: %v", logPrefixCounter, r, err)
	}
}

// incr adds one use to r. Callers hold g.mu and have called current first.
func (g *implGovernor) incr(ctx context.Context, r usage.Resource, c usage.Counter) usage.Counter {
	next, err := g.store.Incr(ctx, r, 1)
	if err != nil {
		g.l.Warnf(ctx, "%s: increment %s counter: %v", logPrefixCounter, r, err)
		c.Count++
		g.put(ctx, r, c)
		return c
	}
	return next
}

func status(c usage.Counter, limit usage.Limit) usage.QuotaStatus {
	return usage.QuotaStatus{
		Count:       c.Count,
		Threshold:   limit.Threshold,
		Exceeded:    limit.Threshold > 0 && c.Count >= limit.Threshold,
		WindowStart: c.WindowStart,
		WindowEnd:   c.WindowStart.Add(limit.Window),
	}
}
