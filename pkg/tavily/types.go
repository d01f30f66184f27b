package tavily

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

type Config struct {
	APIKey      string
	BaseURL     string
	SearchDepth string
	Timeout     time.Duration
	HTTPClient  *http.Client
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("tavily: API key is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.SearchDepth == "" {
		c.SearchDepth = DefaultSearchDepth
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

type SearchRequest struct {
	Query      string
	MaxResults int
}

type searchBody struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
	MaxResults  int    `json:"max_results"`
}

type SearchResponse struct {
	Query   string   `json:"query"`
	Results []Result `json:"results"`
}

type Result struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// UsageResponse is the body of GET /usage.
type UsageResponse struct {
	Key struct {
		Usage int `json:"usage"`
		Limit int `json:"limit"`
	} `json:"key"`
	Account struct {
		PlanUsage int `json:"plan_usage"`
		PlanLimit int `json:"plan_limit"`
	} `json:"account"`
}

// APIError is returned for any non-200 response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tavily: API error %d: %s", e.Status, e.Body)
}

func (e *APIError) StatusCode() int {
	return e.Status
}
