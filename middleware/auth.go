package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shutterfeed/api-go/models"
	"github.com/shutterfeed/api-go/utils"
)

// AuthMiddleware converts a bearer credential into a verified identity and
// attaches it to the request context. Verification and lookup are single
// attempt; any failure aborts the request before the handler runs.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is empty"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is empty"})
			c.Abort()
			return
		}

		token := parts[1]
		if !utils.VerifyToken(token) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is invalid"})
			c.Abort()
			return
		}

		// Decode without re-verifying; trusted because verification passed.
		userID, err := utils.DecodeToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is invalid"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.WithContext(c.Request.Context()).First(&user, userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user is invalid"})
			c.Abort()
			return
		}

		c.Set(string(utils.UserContextKey), &user)
		c.Next()
	}
}
