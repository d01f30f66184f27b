package groq

import "context"

// IGroq defines the interface for the Groq chat completion client.
// Implementations are safe for concurrent use.
type IGroq interface {
	// ChatCompletion sends a chat completion request
	ChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Model returns the default model of the client
	Model() string
}

// New creates a new Groq client
func New(cfg Config) (IGroq, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
