package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"snowboarding-assistant/pkg/log"
)

// RequestID tags each request with an id, reusing the caller's X-Request-ID when present,
// and attaches it to the request context so every log line carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
