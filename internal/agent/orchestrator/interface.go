package orchestrator

import (
	"context"

	"snowboarding-assistant/internal/agent"
	"snowboarding-assistant/internal/agent/assembler"
	"snowboarding-assistant/internal/model"
	"snowboarding-assistant/pkg/llmprovider"
)

// Orchestrator answers one user turn. It never fails: errors become apologies.
type Orchestrator interface {
	Respond(ctx context.Context, in RespondInput) RespondOutput
}

type WebSearch interface {
	Search(ctx context.Context, query string) agent.SearchResult
}

type ResortLookup interface {
	Lookup(ctx context.Context, loc *model.Location, filter string) agent.LocationResult
}

type Assembler interface {
	Build(in assembler.Input) []llmprovider.Message
}

type Generator interface {
	Generate(ctx context.Context, req llmprovider.GenerateRequest) (string, error)
}

// Limiter is the request-rate governor.
type Limiter interface {
	Acquire(ctx context.Context) error
}
