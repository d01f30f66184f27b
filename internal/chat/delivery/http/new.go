package http

import (
	"github.com/gin-gonic/gin"

	"snowboarding-assistant/internal/chat"
	"snowboarding-assistant/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	SendMessage(c *gin.Context)
	GetSession(c *gin.Context)
	ResetSession(c *gin.Context)
	GrantLocation(c *gin.Context)
	RevokeLocation(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
