package chat

import (
	"snowboarding-assistant/internal/agent"
	"snowboarding-assistant/internal/agent/orchestrator"
	"snowboarding-assistant/internal/model"
)

// SendInput is one user message. An empty SessionID starts a new session.
type SendInput struct {
	SessionID string
	Message   string
}

type SendOutput struct {
	SessionID         string
	Reply             string
	Decision          agent.Decision
	SearchUsed        bool
	SearchUnavailable bool
	LocationUsed      bool
	Links             []string
	Trace             []orchestrator.State
}

// GrantLocationInput records consent to use a position. Address is optional
// and is reverse geocoded when empty.
type GrantLocationInput struct {
	SessionID string
	Lat       float64
	Lon       float64
	Address   string
}

type LocationOutput struct {
	SessionID string
	Location  *model.Location
}

type HistoryOutput struct {
	SessionID string
	History   []model.Turn
	Location  *model.Location
}
