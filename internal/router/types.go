package router

import (
	"time"

	"snowboarding-assistant/internal/agent"
)

// Config controls the classifier call.
type Config struct {
	Model        string
	Temperature  float64
	MaxAttempts  int
	BaseDelay    time.Duration
	HistoryTurns int
}

// Output is the classifier verdict plus what is needed to trace it.
type Output struct {
	Decision agent.Decision `json:"decision"`
	Raw      string         `json:"raw,omitempty"`
	Attempts int            `json:"attempts"`
	// Degraded is set when the verdict is a fallback rather than a parsed reply.
	Degraded bool   `json:"degraded"`
	Reason   string `json:"reason,omitempty"`
}
