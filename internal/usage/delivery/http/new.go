package http

import (
	"github.com/gin-gonic/gin"

	"snowboarding-assistant/internal/usage"
	"snowboarding-assistant/pkg/log"
)

// Handler is the public interface for the usage HTTP delivery layer.
type Handler interface {
	Snapshot(c *gin.Context)
}

type handler struct {
	l  log.Logger
	gv usage.Governor
}

// New creates a new HTTP handler exposing governor state.
func New(l log.Logger, gv usage.Governor) *handler {
	return &handler{l: l, gv: gv}
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("", h.Snapshot)
}
