package stripe

import (
	"strings"

	"construlab/internal/domain/users"
)

// NormalizeStripeStatus folds Stripe's subscription statuses into the few the
// billing code branches on.
func NormalizeStripeStatus(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "none"
	}
	switch strings.TrimSpace(*s) {
	case "active":
		return "active"
	case "trialing":
		return "trialing"
	case "past_due", "unpaid":
		return "past_due"
	case "canceled", "incomplete_expired":
		return "canceled"
	default:
		return strings.TrimSpace(*s)
	}
}

// SubscriptionStatus maps a Stripe status onto the account's subscription
// status.
func SubscriptionStatus(s string) string {
	switch NormalizeStripeStatus(&s) {
	case "active", "trialing":
		return users.StatusActive
	case "past_due":
		return users.StatusPastDue
	default:
		return users.StatusInactive
	}
}

// GrantsAccess reports whether a Stripe status keeps pro access.
func GrantsAccess(s string) bool {
	switch SubscriptionStatus(s) {
	case users.StatusActive, users.StatusPastDue:
		return true
	}
	return false
}
