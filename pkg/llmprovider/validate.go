package llmprovider

import (
	"fmt"
	"strings"
)

const (
	MinTemperature = 0.0
	MaxTemperature = 2.0

	// DefaultMaxPromptChars is a soft budget; exceeding it only logs a warning.
	DefaultMaxPromptChars = 24000
)

// Validate checks that a request can be sent to any provider.
func Validate(req *GenerateRequest) error {
	if req == nil || len(req.Messages) == 0 {
		return fmt.Errorf("%w: no messages", ErrInvalidRequest)
	}
	for i, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem, RoleUser, RoleAssistant:
		default:
			return fmt.Errorf("%w: message %d has unknown role %q", ErrInvalidRequest, i, msg.Role)
		}
		if strings.TrimSpace(msg.Content) == "" {
			return fmt.Errorf("%w: message %d is empty", ErrInvalidRequest, i)
		}
	}
	if req.Temperature < MinTemperature || req.Temperature > MaxTemperature {
		return fmt.Errorf("%w: temperature %.2f outside [%.0f, %.0f]", ErrInvalidRequest, req.Temperature, MinTemperature, MaxTemperature)
	}
	if req.MaxTokens < 0 {
		return fmt.Errorf("%w: negative max tokens", ErrInvalidRequest)
	}
	return nil
}

func promptChars(req *GenerateRequest) int {
	n := 0
	for _, msg := range req.Messages {
		n += len(msg.Content)
	}
	return n
}
