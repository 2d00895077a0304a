package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// bearerToken extracts the token of a "Bearer <token>" Authorization header
func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// OptionalAuthMiddleware creates a middleware that attempts to authenticate but doesn't require it
func OptionalAuthMiddleware(tokens TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := tokens.ValidateAccessToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user id, or "" when there is none
func UserIDFromContext(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
