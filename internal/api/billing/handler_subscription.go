package billing

import (
	"net/http"

	"construlab/database"
	"construlab/internal/app/http/middleware"
	"construlab/internal/domain/users"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v75"
	stripesub "github.com/stripe/stripe-go/v75/subscription"
)

// CancelSubscription stops renewal at the end of the paid period. Access is
// removed later by the customer.subscription.deleted webhook.
func CancelSubscription(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}
	if user.SubscriptionId == nil || *user.SubscriptionId == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "No active subscription to cancel"})
		return
	}
	if !stripeReady(c) {
		return
	}

	sub, err := stripesub.Update(*user.SubscriptionId, &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	})
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("cancel subscription")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to cancel subscription"})
		return
	}

	status := string(sub.Status)
	if err := database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Update("stripe_subscription_status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store subscription status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":              "Subscription will end at the close of the current period",
		"cancel_at_period_end": sub.CancelAtPeriodEnd,
	})
}
