package resort

import "errors"

var (
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrInvalidLimit       = errors.New("limit must be positive")
)
