package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumeforge/resumeforge-server/internal/model"
)

// handleError maps service errors to HTTP responses. Business failures and
// misconfigured collaborators surface as 400 with the service message;
// anything else is an opaque 500.
func handleError(c *gin.Context, err error) {
	var valErr *model.ValidationError
	if errors.As(err, &valErr) {
		c.JSON(http.StatusBadRequest, gin.H{"message": valErr.Message})
		return
	}

	var confErr *model.ConfigurationError
	if errors.As(err, &confErr) {
		c.JSON(http.StatusBadRequest, gin.H{"message": confErr.Message})
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}
