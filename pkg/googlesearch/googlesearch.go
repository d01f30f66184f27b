// Package googlesearch wraps the Custom Search JSON API.
package googlesearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	DefaultTimeout = 15 * time.Second
	// MaxResults is the largest page the API returns.
	MaxResults = 10
)

type Config struct {
	APIKey string
	// EngineID is the programmable search engine id (cx).
	EngineID string
	// Endpoint overrides the API base URL.
	Endpoint string
	Timeout  time.Duration
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("googlesearch: API key is required")
	}
	if c.EngineID == "" {
		return errors.New("googlesearch: engine id is required")
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

type Result struct {
	Title   string
	URL     string
	Snippet string
}

// APIError carries the HTTP status of a failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("googlesearch: API error %d: %s", e.Status, e.Message)
}

func (e *APIError) StatusCode() int {
	return e.Status
}

// Client is the Custom Search client.
type Client struct {
	svc      *customsearch.Service
	engineID string
	timeout  time.Duration
}

// New creates a client. ctx is only used while constructing the service.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("googlesearch: failed to create service: %w", err)
	}

	return &Client{svc: svc, engineID: cfg.EngineID, timeout: cfg.Timeout}, nil
}

// Search returns up to n results for query.
func (c *Client) Search(ctx context.Context, query string, n int) ([]Result, error) {
	if n <= 0 || n > MaxResults {
		n = MaxResults
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	res, err := c.svc.Cse.List().Cx(c.engineID).Q(query).Num(int64(n)).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return nil, &APIError{Status: gerr.Code, Message: gerr.Message}
		}
		return nil, fmt.Errorf("googlesearch: request failed: %w", err)
	}

	out := make([]Result, 0, len(res.Items))
	for _, item := range res.Items {
		if item == nil {
			continue
		}
		out = append(out, Result{Title: item.Title, URL: item.Link, Snippet: item.Snippet})
	}
	return out, nil
}
