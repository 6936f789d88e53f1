package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apperrors "github.com/wheelhouse/storefront/errors"
	"github.com/wheelhouse/storefront/logger"
)

// Recovery returns middleware that recovers from panics, logs the stack and
// answers with the generic internal-error body.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	log = log.WithComponent("recovery")
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("panic recovered", map[string]interface{}{
					logger.FieldError: fmt.Sprintf("%v", err),
					"stack":           string(debug.Stack()),
					"path":            c.Request.URL.Path,
					"method":          c.Request.Method,
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, apperrors.MessageResponse{
					Message: "Some error occurred",
				})
			}
		}()
		c.Next()
	}
}
