package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "card-admin.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps a domain error to its HTTP status and sends it as JSON
func Error(c *gin.Context, err error) {
	status := domainerrors.StatusFor(err)

	message := err.Error()
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	c.JSON(status, gin.H{
		"error": message,
	})
}
