package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/wheelhouse/storefront/errors"
	"github.com/wheelhouse/storefront/logger"
)

// RespondMessage sends a confirmation body of the form {"message": ...}.
func RespondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, apperrors.MessageResponse{Message: message})
}

// RespondError maps an error to the client contract: expected domain
// failures carry their own status and message; anything else is logged and
// collapsed to a generic 500 so no internal detail leaks.
func RespondError(c *gin.Context, log *logger.Logger, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			log.Error("request failed", map[string]interface{}{
				"path":            c.Request.URL.Path,
				logger.FieldError: appErr.Error(),
			})
		}
		c.JSON(appErr.HTTPStatus, appErr.ToResponse())
		return
	}

	log.Error("unexpected error", map[string]interface{}{
		"path":            c.Request.URL.Path,
		logger.FieldError: err.Error(),
	})
	c.JSON(http.StatusInternalServerError, apperrors.MessageResponse{
		Message: "Some error occurred",
	})
}
