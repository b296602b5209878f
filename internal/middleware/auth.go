package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminAuth gates administrative endpoints behind the shared X-Admin-Token
// header. An empty configured token disables the check entirely.
func AdminAuth(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminToken == "" {
			c.Next()
			return
		}

		if c.GetHeader("X-Admin-Token") != adminToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
