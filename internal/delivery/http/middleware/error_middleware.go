package middleware

import (
	"errors"
	"net/http"

	"careerboost-backend/internal/delivery/http/response"
	"careerboost-backend/pkg/apperror"
	"careerboost-backend/pkg/extract"
	"careerboost-backend/pkg/linkedin"
	"careerboost-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors appended to the gin context onto the response
// envelope. Typed errors from the extraction and fetch layers get their
// own status codes; everything else is a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		var extractErr *extract.ExtractionError
		var netErr *linkedin.NetworkError

		switch {
		case errors.As(err, &appErr):
			response.Error(c, appErr.Code, appErr.Message, nil)
		case errors.As(err, &extractErr):
			// Unreadable document, not a server fault; not retried
			response.Error(c, http.StatusUnprocessableEntity, extractErr.Error(), nil)
		case errors.As(err, &netErr):
			response.Error(c, http.StatusBadGateway, netErr.Error(), nil)
		case errors.Is(err, linkedin.ErrNotLinkedInURL):
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
		default:
			// SECURITY: Never expose internal error details to clients.
			// Log the actual error server-side, send a generic message.
			logger.Log.Error("Internal server error", "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
