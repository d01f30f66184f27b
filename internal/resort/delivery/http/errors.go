package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"snowboarding-assistant/internal/resort"
	"snowboarding-assistant/pkg/response"
)

var errInvalidQuery = errors.New("invalid query parameters")

func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, resort.ErrInvalidCoordinates),
		errors.Is(err, resort.ErrInvalidLimit),
		errors.Is(err, errInvalidQuery):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "internal.resort.delivery.http: %v", err)
		response.InternalError(c, err)
	}
}
