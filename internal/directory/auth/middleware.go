package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userContextKey = "currentUser"

// UserResolver loads the user a token subject refers to.
type UserResolver interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Middleware authenticates requests: it extracts the bearer token,
// validates it as an access token, resolves the subject to a user and
// stores the user in the request context. Missing or invalid
// credentials abort with 401.
func Middleware(tokens *Manager, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := ExtractBearer(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			return
		}

		userID, err := tokens.Resolve(tokenString, TypeAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		user, err := users.GetUser(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// ExtractBearer retrieves the bearer token from the Authorization
// header.
func ExtractBearer(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", fmt.Errorf("authorization header required")
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", fmt.Errorf("invalid authorization format: missing Bearer prefix")
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == "" {
		return "", fmt.Errorf("invalid authorization format: empty token")
	}
	return tokenString, nil
}

// CurrentUser returns the authenticated user placed in the context by
// Middleware.
func CurrentUser(c *gin.Context) (*models.User, error) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, e.ErrUnauthenticated
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil, e.ErrUnauthenticated
	}
	return user, nil
}
