package http

import (
	"github.com/gin-gonic/gin"

	"snowboarding-assistant/internal/resort"
	"snowboarding-assistant/pkg/log"
)

// Handler is the public interface for the resort HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Nearest(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc resort.UseCase
}

// New creates a new HTTP handler for the resort domain.
func New(l log.Logger, uc resort.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
