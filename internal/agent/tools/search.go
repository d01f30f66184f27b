package tools

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"snowboarding-assistant/internal/agent"
	"snowboarding-assistant/internal/agent/prompt"
	"snowboarding-assistant/pkg/log"
	"snowboarding-assistant/pkg/retry"
)

// SearchConfig tunes the web search tool.
type SearchConfig struct {
	MaxResults int
	Retry      retry.Policy
	// CacheSize <= 0 disables the result cache.
	CacheSize int
	CacheTTL  time.Duration
}

// WebSearch runs quota-governed web searches.
type WebSearch struct {
	searcher Searcher
	quota    Quota
	cfg      SearchConfig
	cache    *expirable.LRU[string, agent.SearchResult]
	l        log.Logger
}

// NewWebSearch creates the search tool. quota may be nil for an ungoverned tool.
func NewWebSearch(searcher Searcher, quota Quota, cfg SearchConfig, l log.Logger) *WebSearch {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = retry.Default()
	}
	w := &WebSearch{searcher: searcher, quota: quota, cfg: cfg, l: l}
	if cfg.CacheSize > 0 {
		ttl := cfg.CacheTTL
		if ttl <= 0 {
			ttl = DefaultCacheTTL
		}
		w.cache = expirable.NewLRU[string, agent.SearchResult](cfg.CacheSize, nil, ttl)
	}
	return w
}

// Search never returns an error: quota exhaustion yields the unavailable
// placeholder and provider failures yield an empty result with Err set.
func (w *WebSearch) Search(ctx context.Context, query string) agent.SearchResult {
	if w.quota != nil {
		if st := w.quota.CheckAndMaybeRefresh(ctx); st.Exceeded {
			return agent.SearchResult{Content: prompt.SearchUnavailable, Links: []string{}, Unavailable: true}
		}
	}

	key := normalizeQuery(query)
	if key == "" {
		return emptyResult(nil)
	}
	if w.cache != nil {
		if cached, ok := w.cache.Get(key); ok {
			w.l.Debugf(ctx, "%s: cache hit for %q", logPrefixWebSearch, key)
			return cloneResult(cached)
		}
	}

	// Counted before the call so a failing provider still consumes quota.
	if w.quota != nil {
		if _, ok := w.quota.TryRecordSearch(ctx); !ok {
			return agent.SearchResult{Content: prompt.SearchUnavailable, Links: []string{}, Unavailable: true}
		}
	}

	policy := w.cfg.Retry
	policy.OnRetry = func(attempt int, class retry.Class, delay time.Duration, err error) {
		w.l.Warnf(ctx, "%s: %s attempt %d failed (%s), retrying in %s: %v", logPrefixWebSearch, w.searcher.Name(), attempt, class, delay, err)
	}
	hits, err := retry.Do(ctx, policy, func(ctx context.Context) ([]Hit, error) {
		return w.searcher.Search(ctx, query, w.cfg.MaxResults)
	})
	if err != nil {
		return emptyResult(err)
	}

	if len(hits) > w.cfg.MaxResults {
		hits = hits[:w.cfg.MaxResults]
	}
	res := FormatHits(hits)
	if w.cache != nil && len(res.Links) > 0 {
		w.cache.Add(key, cloneResult(res))
	}
	return res
}

// FormatHits renders hits as the search context block and collects their links.
func FormatHits(hits []Hit) agent.SearchResult {
	var summary []string
	links := []string{}
	seen := make(map[string]struct{}, len(hits))

	for _, h := range hits {
		title := fallback(h.Title, noTitle)
		url := strings.TrimSpace(h.URL)
		content := fallback(h.Content, noContent)

		summary = append(summary, "- "+title+"\nURL: "+fallback(url, noURL)+"\nSummary: "+content+"\n")

		if url == "" {
			continue
		}
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		links = append(links, url)
	}

	if len(summary) == 0 {
		return emptyResult(nil)
	}
	return agent.SearchResult{Content: strings.Join(summary, "\n"), Links: links}
}

func emptyResult(err error) agent.SearchResult {
	return agent.SearchResult{Content: prompt.NoSearchResults, Links: []string{}, Err: err}
}

func cloneResult(r agent.SearchResult) agent.SearchResult {
	r.Links = append([]string{}, r.Links...)
	return r
}

func normalizeQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}

func fallback(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
