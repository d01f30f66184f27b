package chat

import "errors"

var (
	ErrEmptyMessage       = errors.New("message is empty")
	ErrMessageTooLong     = errors.New("message is too long")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrSessionRequired    = errors.New("session id is required")
)
