package tools

import (
	"context"

	"snowboarding-assistant/internal/resort"
	"snowboarding-assistant/internal/usage"
)

// Hit is one web search result, independent of the backend.
type Hit struct {
	Title   string
	URL     string
	Content string
}

// Searcher is a web search backend.
type Searcher interface {
	Name() string
	Search(ctx context.Context, query string, maxResults int) ([]Hit, error)
}

// Quota is the part of the usage governor the search tool needs.
type Quota interface {
	CheckAndMaybeRefresh(ctx context.Context) usage.QuotaStatus
	TryRecordSearch(ctx context.Context) (usage.QuotaStatus, bool)
}

// ResortFinder ranks resorts by distance.
type ResortFinder interface {
	Nearest(ctx context.Context, input resort.NearestInput) (resort.NearestOutput, error)
}
