package orchestrator

import (
	"snowboarding-assistant/internal/router"
	"snowboarding-assistant/pkg/log"
)

type implOrchestrator struct {
	router    router.Router
	search    WebSearch
	resorts   ResortLookup
	assembler Assembler
	llm       Generator
	limiter   Limiter
	cfg       Config
	l         log.Logger
}

var _ Orchestrator = (*implOrchestrator)(nil)

// Deps are the pipeline stages. Search and Resorts may be nil, which disables the tool.
// Limiter may be nil.
type Deps struct {
	Router    router.Router
	Search    WebSearch
	Resorts   ResortLookup
	Assembler Assembler
	LLM       Generator
	Limiter   Limiter
}

func New(deps Deps, cfg Config, l log.Logger) *implOrchestrator {
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.TurnTimeout <= 0 {
		cfg.TurnTimeout = DefaultTurnTimeout
	}
	return &implOrchestrator{
		router:    deps.Router,
		search:    deps.Search,
		resorts:   deps.Resorts,
		assembler: deps.Assembler,
		llm:       deps.LLM,
		limiter:   deps.Limiter,
		cfg:       cfg,
		l:         l,
	}
}
