package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wheelhouse/storefront/logger"
)

// requestIDHeader carries the correlation id on the wire.
const requestIDHeader = "X-Request-Id"

// RequestID tags every request with a correlation id that the request logger
// picks up. An id arriving from an upstream proxy is kept so traces survive
// the hop; otherwise a fresh uuid is minted. The id is echoed on the
// response for client-side correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(logger.FieldRequestID, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
