package stripewebhooks

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"construlab/database"
	"construlab/internal/domain/billing"
	"construlab/internal/domain/plans"
	"construlab/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
	"github.com/stripe/stripe-go/v75/subscription"
	"gorm.io/gorm"
)

func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	fullSession, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{
				stripe.String("subscription"),
				stripe.String("customer"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("fetch expanded checkout session: %w", err)
	}

	if fullSession.Subscription == nil || fullSession.Subscription.ID == "" {
		return errors.New("checkout session missing subscription")
	}

	subData, err := subscription.Get(fullSession.Subscription.ID, nil)
	if err != nil {
		return fmt.Errorf("fetch subscription: %w", err)
	}

	return applyCheckout(database.DB, fullSession, subData, time.Now())
}

// applyCheckout activates pro for the buyer and records the payment. A
// session that was already recorded is a no-op, since Stripe retries events.
func applyCheckout(db *gorm.DB, session *stripe.CheckoutSession, sub *stripe.Subscription, now time.Time) error {
	if sub == nil || sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return errors.New("subscription missing items")
	}

	var seen int64
	if err := db.Model(&billing.Payment{}).Where("stripe_session_id = ?", session.ID).Count(&seen).Error; err != nil {
		return err
	}
	if seen > 0 {
		return nil
	}

	userID, err := userIDFromSubscriptionOrRef(sub, session.ClientReferenceID)
	if err != nil {
		return err
	}

	var user users.User
	if err := db.First(&user, userID).Error; err != nil {
		return fmt.Errorf("user %d: %w", userID, err)
	}

	priceID := sub.Items.Data[0].Price.ID
	var plan *plans.Plan
	var p plans.Plan
	if err := db.Where("stripe_price_id = ?", priceID).First(&p).Error; err == nil {
		plan = &p
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	expires := plan.ExpiryFrom(now)
	if sub.CurrentPeriodEnd > 0 {
		expires = time.Unix(sub.CurrentPeriodEnd, 0)
	}
	user.ActivatePro(expires)

	subID := sub.ID
	status := string(sub.Status)
	updates := map[string]any{
		"role":                       user.Role,
		"subscription_status":        user.SubscriptionStatus,
		"subscription_expires_at":    user.SubscriptionExpiresAt,
		"subscription_id":            subID,
		"stripe_subscription_status": status,
	}
	if session.Customer != nil && session.Customer.ID != "" {
		updates["stripe_customer_id"] = session.Customer.ID
	}

	payment := billing.Payment{
		UserID:               user.ID,
		StripeSessionID:      session.ID,
		StripeSubscriptionID: &subID,
		AmountEUR:            float64(session.AmountTotal) / 100.0,
		Status:               billing.PaymentPaid,
	}
	if plan != nil {
		updates["plan_id"] = plan.ID
		payment.PlanID = &plan.ID
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&users.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("update user after checkout: %w", err)
		}
		return tx.Create(&payment).Error
	})
}

func userIDFromSubscriptionOrRef(sub *stripe.Subscription, clientRef string) (uint, error) {
	userIDStr := ""
	if sub.Metadata != nil {
		userIDStr = sub.Metadata["user_id"]
	}
	if userIDStr == "" {
		userIDStr = clientRef
	}
	if userIDStr == "" {
		return 0, errors.New("missing user_id (metadata.user_id or client_reference_id)")
	}

	uid64, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user_id %q: %w", userIDStr, err)
	}
	return uint(uid64), nil
}
