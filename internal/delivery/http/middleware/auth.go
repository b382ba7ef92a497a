package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	auth_service "content-platform-service/internal/service/auth"
)

const userIDKey = "user_id"

// RequireAuth resolves the bearer token into a user id and aborts with
// 401 when it is missing or invalid.
func RequireAuth(authService auth_service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := resolveUser(c, authService)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalAuth resolves the bearer token when present so that authors
// can see their own drafts; anonymous requests pass through.
func OptionalAuth(authService auth_service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := resolveUser(c, authService); ok {
			c.Set(userIDKey, userID)
		}
		c.Next()
	}
}

func resolveUser(c *gin.Context, authService auth_service.Service) (int64, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return 0, false
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return 0, false
	}

	userID, err := authService.VerifyAccessToken(token)
	if err != nil {
		return 0, false
	}
	return userID, true
}

// UserID returns the authenticated user id from the request context,
// or 0 when the request is anonymous.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
