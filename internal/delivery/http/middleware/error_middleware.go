package middleware

import (
	"errors"
	"net/http"

	"go-candidate-intake/internal/delivery/http/response"
	"go-candidate-intake/pkg/apperror"
	"go-candidate-intake/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the safety net for errors appended to the gin context that
// no handler mapped itself. Handlers in this API map usecase failures to the
// legacy status contract directly; this catches recovery leftovers and
// future handlers that prefer c.Error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
				return
			}
			// Never expose internal error details to clients; log them
			// server-side instead.
			logger.Log.Error("Unhandled error", "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
