package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"snowboarding-assistant/internal/chat"
	"snowboarding-assistant/internal/session"
	"snowboarding-assistant/pkg/response"
)

var errInvalidBody = errors.New("invalid request body")

// writeError translates domain errors into HTTP responses. Unknown errors are logged and hidden.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, chat.ErrMessageTooLong),
		errors.Is(err, chat.ErrInvalidCoordinates),
		errors.Is(err, chat.ErrSessionRequired),
		errors.Is(err, session.ErrInvalidID),
		errors.Is(err, errInvalidBody):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "internal.chat.delivery.http: %v", err)
		response.InternalError(c, err)
	}
}
