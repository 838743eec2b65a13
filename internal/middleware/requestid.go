package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"healthsmart-chatbot/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propagates the caller's request id or issues a new one, and
// attaches it to the request context for logging.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
