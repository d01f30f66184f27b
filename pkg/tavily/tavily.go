package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type client struct {
	apiKey      string
	baseURL     string
	searchDepth string
	httpClient  *http.Client
}

func newClient(cfg Config) *client {
	return &client{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		searchDepth: cfg.SearchDepth,
		httpClient:  cfg.HTTPClient,
	}
}

// Search runs a web search. MaxResults <= 0 uses DefaultMaxResults.
func (c *client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, fmt.Errorf("tavily: empty query")
	}
	if req.MaxResults <= 0 {
		req.MaxResults = DefaultMaxResults
	}

	body, err := json.Marshal(searchBody{
		APIKey:      c.apiKey,
		Query:       req.Query,
		SearchDepth: c.searchDepth,
		MaxResults:  req.MaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("tavily: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("tavily: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var out SearchResponse
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) Usage(ctx context.Context) (*UsageResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+usagePath, nil)
	if err != nil {
		return nil, fmt.Errorf("tavily: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	var out UsageResponse
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tavily: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Body: string(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tavily: failed to decode response: %w", err)
	}
	return nil
}
