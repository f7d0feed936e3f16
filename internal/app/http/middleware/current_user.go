package middleware

import (
	"errors"
	"net/http"
	"time"

	"construlab/database"
	"construlab/internal/domain/access"
	"construlab/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const userKey = "user"

// LoadUser fetches the authenticated user and rejects banned accounts. Must
// run after AuthMiddleware.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !loadUser(c) {
			return
		}
		if CurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// loadUser stores the user in the context. It returns false when the request
// was aborted.
func loadUser(c *gin.Context) bool {
	userID := c.GetUint("user_id")
	if userID == 0 {
		return true
	}

	var user users.User
	err := database.DB.Preload("Plan").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return false
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return false
	}
	if user.IsBanned() {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account suspended"})
		return false
	}

	c.Set(userKey, &user)
	return true
}

// CurrentUser returns the loaded user, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *users.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	u, _ := v.(*users.User)
	return u
}

func CurrentPolicy(c *gin.Context) access.Policy {
	return access.ComputePolicy(time.Now(), CurrentUser(c))
}

// RequireCapability answers 402 when the caller's plan lacks the capability.
func RequireCapability(capability access.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		policy := CurrentPolicy(c)

		if policy.State == access.AccessBanned {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account suspended"})
			return
		}
		if !policy.Can(capability) {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error":      "This feature requires a Pro subscription",
				"capability": capability,
			})
			return
		}

		c.Next()
	}
}
