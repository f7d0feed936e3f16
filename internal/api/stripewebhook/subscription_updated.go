package stripewebhooks

import (
	"errors"
	"strconv"
	"time"

	"construlab/database"
	"construlab/internal/domain/plans"
	"construlab/internal/domain/users"
	stripestatus "construlab/internal/infra/stripe"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

func applySubscriptionUpdated(sub *stripe.Subscription) error {
	return subscriptionUpdated(database.DB, sub)
}

// subscriptionUpdated mirrors the Stripe status onto the account. Unknown
// users are acknowledged, since the account may have been deleted.
func subscriptionUpdated(db *gorm.DB, sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	user, err := findSubscriber(db, sub)
	if err != nil || user == nil {
		return err
	}

	status := string(sub.Status)
	updates := map[string]any{
		"subscription_id":            sub.ID,
		"stripe_subscription_status": status,
	}

	switch {
	case user.IsBanned():
		// a ban outlives the subscription
	case stripestatus.GrantsAccess(status):
		expires := time.Now()
		if sub.CurrentPeriodEnd > 0 {
			expires = time.Unix(sub.CurrentPeriodEnd, 0)
		}
		user.ActivatePro(expires)
		user.SubscriptionStatus = stripestatus.SubscriptionStatus(status)
		updates["subscription_expires_at"] = user.SubscriptionExpiresAt
	default:
		user.Downgrade()
	}
	updates["role"] = user.Role
	updates["subscription_status"] = user.SubscriptionStatus

	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		var plan plans.Plan
		if err := db.Where("stripe_price_id = ?", sub.Items.Data[0].Price.ID).First(&plan).Error; err == nil {
			updates["plan_id"] = plan.ID
		}
	}

	return db.Model(&users.User{}).Where("id = ?", user.ID).Updates(updates).Error
}

// findSubscriber looks the user up by metadata.user_id, then by subscription
// id. It returns nil without error when nobody matches.
func findSubscriber(db *gorm.DB, sub *stripe.Subscription) (*users.User, error) {
	var user users.User
	var err error
	if id := userIDFromMetadata(sub.Metadata); id != 0 {
		err = db.First(&user, id).Error
	} else {
		err = db.Where("subscription_id = ?", sub.ID).First(&user).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func userIDFromMetadata(md map[string]string) uint {
	if md == nil {
		return 0
	}
	s := md["user_id"]
	if s == "" {
		return 0
	}
	uid, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(uid)
}
