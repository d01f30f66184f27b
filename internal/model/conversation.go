package model

import "strings"

// Role is the author of a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Turn is one message of a conversation. Histories are append-only;
// callers copy before extending.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// AppendTurns returns a new slice with turns appended, leaving history untouched.
func AppendTurns(history []Turn, turns ...Turn) []Turn {
	out := make([]Turn, 0, len(history)+len(turns))
	out = append(out, history...)
	return append(out, turns...)
}

// Location is a position the user has agreed to share.
type Location struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Address string  `json:"address,omitempty"`
}

// DisplayAddress falls back to raw coordinates when no address was resolved.
func (l Location) DisplayAddress() string {
	if a := strings.TrimSpace(l.Address); a != "" {
		return a
	}
	return formatCoord(l.Lat, l.Lon)
}
