package middleware

import (
	"net/http"
	"strings"

	"tap_legends/internal/service"

	"github.com/gin-gonic/gin"
)

// JWT authenticates the request via the Authorization bearer token and puts
// the caller's Telegram id into the context under "tg_id".
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		tgID, err := service.ParseJWT(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("tg_id", tgID)
		c.Next()
	}
}
