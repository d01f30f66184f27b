package usecase

import (
	"context"

	"snowboarding-assistant/internal/usage"
)

const (
	logPrefixRefresh = "internal.usage.usecase.CheckAndMaybeRefresh"
	logPrefixRecord  = "internal.usage.usecase.TryRecordSearch"
)

// CheckAndMaybeRefresh returns the search quota. The provider is consulted at most
// once per refresh interval; between refreshes the local count is authoritative.
// The provider call runs without g.mu held.
func (g *implGovernor) CheckAndMaybeRefresh(ctx context.Context) usage.QuotaStatus {
	g.mu.Lock()
	c := g.current(ctx, usage.ResourceSearch, g.cfg.Search)
	now := g.now()
	refresh := g.source != nil && (g.lastRefresh.IsZero() || now.Sub(g.lastRefresh) >= g.cfg.RefreshInterval)
	if refresh {
		g.lastRefresh = now
	}
	g.mu.Unlock()

	if refresh {
		n, err := g.source.Usage(ctx)
		if err != nil {
			g.l.Warnf(ctx, "%s: provider usage refresh failed, keeping local count %d: %v", logPrefixRefresh, c.Count, err)
		} else if n >= 0 {
			c = g.applyProviderCount(ctx, n)
		}
	}

	st := status(c, g.cfg.Search)
	if st.Exceeded {
		g.l.Warnf(ctx, "%s: search quota exhausted (%d/%d)", logPrefixRefresh, st.Count, st.Threshold)
	}
	return st
}

// applyProviderCount replaces the local search count with n.
func (g *implGovernor) applyProviderCount(ctx context.Context, n int) usage.Counter {
	g.mu.Lock()
	defer g.mu.Unlock()

	c := g.current(ctx, usage.ResourceSearch, g.cfg.Search)
	if n != c.Count {
		g.l.Infof(ctx, "%s: provider reports %d searches (local %d)", logPrefixRefresh, n, c.Count)
		c.Count = n
		g.put(ctx, usage.ResourceSearch, c)
	}
	return c
}

// RecordSearch counts one outbound search.
func (g *implGovernor) RecordSearch(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()

	c := g.current(ctx, usage.ResourceSearch, g.cfg.Search)
	g.incr(ctx, usage.ResourceSearch, c)
}

// TryRecordSearch counts one outbound search unless the quota is already
// exhausted. The check and the increment happen under one lock.
func (g *implGovernor) TryRecordSearch(ctx context.Context) (usage.QuotaStatus, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	c := g.current(ctx, usage.ResourceSearch, g.cfg.Search)
	if st := status(c, g.cfg.Search); st.Exceeded {
		g.l.Warnf(ctx, "%s: search quota exhausted (%d/%d)", logPrefixRecord, st.Count, st.Threshold)
		return st, false
	}
	return status(g.incr(ctx, usage.ResourceSearch, c), g.cfg.Search), true
}
