package billing

import (
	"errors"
	"net/http"
	"time"

	"construlab/config"
	"construlab/database"
	"construlab/internal/api/users"
	"construlab/internal/app/http/middleware"
	domainusers "construlab/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// StartTrial grants TRIAL_DAYS of pro access, once per account.
func StartTrial(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}
	if !user.IsVerified {
		c.JSON(http.StatusForbidden, gin.H{"error": "Please verify your email first"})
		return
	}

	days := config.TRIAL_DAYS
	if days <= 0 {
		days = 7
	}

	now := time.Now()
	if err := user.StartTrial(now, days); err != nil {
		switch {
		case errors.Is(err, domainusers.ErrTrialUsed), errors.Is(err, domainusers.ErrAlreadyPremium):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	err := database.DB.Model(user).Updates(map[string]any{
		"role":                    user.Role,
		"subscription_status":     user.SubscriptionStatus,
		"subscription_expires_at": user.SubscriptionExpiresAt,
		"trial_used_at":           user.TrialUsedAt,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start trial"})
		return
	}

	c.JSON(http.StatusOK, users.BuildMeResponse(now, *user))
}
