package tools

import (
	"context"

	"snowboarding-assistant/pkg/googlesearch"
	"snowboarding-assistant/pkg/tavily"
)

type tavilySearcher struct {
	client tavily.ITavily
}

// NewTavilySearcher backs the search tool with Tavily.
func NewTavilySearcher(client tavily.ITavily) Searcher {
	return &tavilySearcher{client: client}
}

func (s *tavilySearcher) Name() string { return "tavily" }

func (s *tavilySearcher) Search(ctx context.Context, query string, maxResults int) ([]Hit, error) {
	resp, err := s.client.Search(ctx, tavily.SearchRequest{Query: query, MaxResults: maxResults})
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(resp.Results))
	for _, r := range resp.Results {
		hits = append(hits, Hit{Title: r.Title, URL: r.URL, Content: r.Content})
	}
	return hits, nil
}

// TavilyUsage reports Tavily credit usage to the usage governor.
type TavilyUsage struct {
	Client tavily.ITavily
}

func (u TavilyUsage) Usage(ctx context.Context) (int, error) {
	resp, err := u.Client.Usage(ctx)
	if err != nil {
		return 0, err
	}
	return resp.Key.Usage, nil
}

type googleSearcher struct {
	client *googlesearch.Client
}

// NewGoogleSearcher backs the search tool with Google Custom Search.
func NewGoogleSearcher(client *googlesearch.Client) Searcher {
	return &googleSearcher{client: client}
}

func (s *googleSearcher) Name() string { return "google" }

func (s *googleSearcher) Search(ctx context.Context, query string, maxResults int) ([]Hit, error) {
	results, err := s.client.Search(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(results))
	for _, r := range results {
		hits = append(hits, Hit{Title: r.Title, URL: r.URL, Content: r.Snippet})
	}
	return hits, nil
}
