package delivery

import (
	"net/http"
	"strings"

	"classmon-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// TokenCookieName is the cookie the server sets on login/signup. The guard
// accepts the cookie transport first, then the Authorization header.
const TokenCookieName = "token"

// AuthMiddleware verifies the session token and attaches the resolved
// identity and role to the request context. Any failure short-circuits the
// request with 401.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: No token provided"})
			c.Abort()
			return
		}

		userID, role, err := authUsecase.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Set("role", string(role))
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
