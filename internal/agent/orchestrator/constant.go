package orchestrator

import "time"

// Log prefixes
const (
	LogPrefixRespond = "internal.agent.orchestrator.Respond"
	LogPrefixTools   = "internal.agent.orchestrator.invokeTools"
)

// Generation defaults
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1024
	DefaultTurnTimeout = 3 * time.Minute
)
