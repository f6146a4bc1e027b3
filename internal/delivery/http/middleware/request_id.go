package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID attaches a correlation ID to every request. An inbound
// X-Request-ID is honored so upstream proxies can trace through; otherwise
// a fresh UUID is generated. The ID rides on the context for the response
// envelope and is echoed back as a header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("RequestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
