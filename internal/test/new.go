package test

import (
	"github.com/gin-gonic/gin"

	"snowboarding-assistant/internal/chat"
	"snowboarding-assistant/internal/router"
	pkgLog "snowboarding-assistant/pkg/log"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleClassify(c *gin.Context)
	HandleResetSession(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	router router.Router
	chat   chat.UseCase
}

// New creates a new test handler
func New(l pkgLog.Logger, router router.Router, chat chat.UseCase) Handler {
	return &handler{
		l:      l,
		router: router,
		chat:   chat,
	}
}

// RegisterRoutes mounts the debug endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/classify", h.HandleClassify)
	rg.POST("/reset", h.HandleResetSession)
	rg.GET("/health", h.HandleHealthCheck)
}
