package handlers

import (
	"errors"
	"net/http"

	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError translates a domain error into an HTTP response.
// Validation failures carry their field map as the body; everything
// else gets a plain message.
func (a *API) writeError(c *gin.Context, err error) {
	var ve *e.Validation
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, ve.Fields)
	case errors.Is(err, e.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	case errors.Is(err, e.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not allowed to perform this action"})
	case errors.Is(err, e.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
	case errors.Is(err, e.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		a.logger.Error("Unhandled error", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

// bindJSON decodes the request body, reporting a malformed payload as
// a 400.
func (a *API) bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return false
	}
	return true
}
