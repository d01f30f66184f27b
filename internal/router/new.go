package router

import (
	"context"
	"time"

	"snowboarding-assistant/internal/model"
	"snowboarding-assistant/pkg/llmprovider"
	"snowboarding-assistant/pkg/log"
)

// Router is the interface for intent classification
type Router interface {
	Classify(ctx context.Context, utterance string, history []model.Turn) Output
}

// Generator is the LLM call the router depends on.
type Generator interface {
	Generate(ctx context.Context, req llmprovider.GenerateRequest) (string, error)
}

// Limiter gates each LLM call, typically the request-rate governor.
type Limiter interface {
	Acquire(ctx context.Context) error
}

// SemanticRouter classifies user intent using LLM
type SemanticRouter struct {
	llm     Generator
	limiter Limiter
	cfg     Config
	l       log.Logger
	sleep   func(ctx context.Context, d time.Duration) error
}

var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter. limiter may be nil.
func New(llm Generator, limiter Limiter, cfg Config, l log.Logger) *SemanticRouter {
	if cfg.Temperature <= 0 {
		cfg.Temperature = RouterTemperature
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	if cfg.HistoryTurns <= 0 {
		cfg.HistoryTurns = DefaultHistoryTurns
	}
	return &SemanticRouter{
		llm:     llm,
		limiter: limiter,
		cfg:     cfg,
		l:       l,
	}
}
