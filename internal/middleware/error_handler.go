package middleware

import (
	"errors"
	"net/http"

	"github.com/TWhiteShadow/gamevault/internal/apperr"
	"github.com/TWhiteShadow/gamevault/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler translates errors attached via c.Error() into the JSON error
// contract. Handlers stay free of status-code plumbing; nothing is allowed to
// crash the handling of a single request.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			logger.Log.Warn("Request rejected",
				zap.String("code", appErr.Code),
				zap.String("message", appErr.Message),
				zap.Int("status", appErr.Status),
				zap.Error(appErr.Err),
			)

			body := gin.H{"message": appErr.Message}
			if len(appErr.Violations) > 0 {
				body["violations"] = appErr.Violations
			}
			c.JSON(appErr.Status, body)
			return
		}

		logger.Log.Error("Unhandled request error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "An internal error occurred",
		})
	}
}
