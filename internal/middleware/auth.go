package middleware

import (
	"net/http"
	"storefront/internal/services"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireRole gates back-office routes on the auth service's pass/fail
// answer for a bearer session token.
func RequireRole(authService services.AuthService, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		if !authService.IsAuthorized(token, role) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}
		c.Next()
	}
}
