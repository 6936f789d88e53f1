package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// defaultMaxBodyBytes caps request bodies at 1 MiB; auth payloads are tiny.
const defaultMaxBodyBytes = 1 << 20

// BodyLimit returns middleware that caps the readable request body size.
// Oversized bodies surface as read errors during binding.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBodyBytes
	}
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
