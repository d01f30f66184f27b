package router

import "time"

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Reply grammar
const (
	MarkerSearch = "SEARCH"
	MarkerNone   = "NONE"
)

// Router configuration
const (
	RouterTemperature    = 0.1
	DefaultMaxAttempts   = 3
	DefaultBaseDelay     = 2 * time.Second
	DefaultHistoryTurns  = 4
	DefaultMaxReplyChars = 300
)

// Degrade reasons
const (
	ReasonLLMFailed    = "classifier call failed, defaulting to no tool"
	ReasonUnparseable  = "reply did not match NONE | SEARCH: <query>"
	ReasonEmptyMessage = "empty utterance"
)
