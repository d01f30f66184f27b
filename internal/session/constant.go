package session

import "time"

const (
	DefaultSize       = 10000
	DefaultTTL        = 2 * time.Hour
	DefaultMaxHistory = 20
)
