package session

import (
	"time"

	"snowboarding-assistant/internal/model"
)

// Session is the per-conversation state the delivery layers carry between turns.
// Location is nil until the user grants it.
type Session struct {
	ID        string          `json:"session_id"`
	History   []model.Turn    `json:"history"`
	Location  *model.Location `json:"location,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type Config struct {
	Size       int
	TTL        time.Duration
	MaxHistory int
}
