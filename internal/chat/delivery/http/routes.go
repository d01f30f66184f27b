package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/messages", h.SendMessage)

	sessions := rg.Group("/sessions/:id")
	{
		sessions.GET("", h.GetSession)
		sessions.DELETE("", h.ResetSession)
		sessions.PUT("/location", h.GrantLocation)
		sessions.DELETE("/location", h.RevokeLocation)
	}
}
