package apperrors

import (
	"stylehomes_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes an AppError as a JSON response.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		logger.CtxError(c.Request.Context(), "server error", "error", err.Error())
	}
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}
