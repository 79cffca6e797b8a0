package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"innocurve/config"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the knowledge admin endpoints with the static
// bearer token from configuration.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		expected := config.AppConfig.AdminAPIToken
		if subtle.ConstantTimeCompare([]byte(tokenString), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
