package stripewebhooks

import (
	"construlab/database"
	"construlab/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

func applySubscriptionDeleted(sub *stripe.Subscription) error {
	return subscriptionDeleted(database.DB, sub)
}

// subscriptionDeleted returns the subscriber to the free tier.
func subscriptionDeleted(db *gorm.DB, sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	user, err := findSubscriber(db, sub)
	if err != nil || user == nil {
		return err
	}

	user.Downgrade()
	updates := map[string]any{
		"role":                       user.Role,
		"subscription_status":        user.SubscriptionStatus,
		"stripe_subscription_status": string(sub.Status),
		"subscription_id":            nil,
	}

	return db.Model(&users.User{}).Where("id = ?", user.ID).Updates(updates).Error
}
