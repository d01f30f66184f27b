package tavily

import "context"

// ITavily is the Tavily search API client.
type ITavily interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
	// Usage reports how many API credits the key has consumed.
	Usage(ctx context.Context) (*UsageResponse, error)
}

// New creates a new Tavily client
func New(cfg Config) (ITavily, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
