package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/shutterfeed/api-go/models"
)

type contextKey string

// UserContextKey is where the auth middleware stores the resolved identity.
const UserContextKey contextKey = "currentUser"

// CurrentUser returns the identity resolved by the auth middleware, or nil if
// the request never passed through it.
func CurrentUser(c *gin.Context) *models.User {
	v, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if user, ok := v.(*models.User); ok {
		return user
	}
	return nil
}
