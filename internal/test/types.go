package test

import "snowboarding-assistant/internal/agent"

const defaultSessionID = "test_session"

// ClassifyRequest is a message to classify without running a full turn.
type ClassifyRequest struct {
	Text      string `json:"text" binding:"required"`
	SessionID string `json:"session_id"`
}

// ClassifyResponse is the classifier verdict for a test message.
type ClassifyResponse struct {
	Text         string         `json:"text"`
	SessionID    string         `json:"session_id"`
	Decision     agent.Decision `json:"decision"`
	Attempts     int            `json:"attempts"`
	Degraded     bool           `json:"degraded"`
	Reason       string         `json:"reason,omitempty"`
	Raw          string         `json:"raw,omitempty"`
	HistoryTurns int            `json:"history_turns"`
}

// ResetSessionRequest names the session to clear.
type ResetSessionRequest struct {
	SessionID string `json:"session_id"`
}

// ResetSessionResponse confirms a cleared session.
type ResetSessionResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
