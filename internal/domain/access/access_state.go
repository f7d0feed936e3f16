package access

import (
	"time"

	"construlab/internal/domain/users"
)

// ComputeEffectiveAccessState resolves what a user can actually do right now.
// A nil user is anonymous. Paid or trial access past its expiry falls back to free.
func ComputeEffectiveAccessState(now time.Time, u *users.User) AccessState {
	if u == nil {
		return AccessAnonymous
	}
	if u.IsBanned() {
		return AccessBanned
	}
	if u.Role == users.RoleAdmin {
		return AccessAdmin
	}
	if u.Role != users.RolePro {
		return AccessFree
	}

	if u.SubscriptionExpiresAt != nil && !now.Before(*u.SubscriptionExpiresAt) {
		return AccessFree
	}

	switch u.SubscriptionStatus {
	case users.StatusTrial:
		return AccessTrial
	case users.StatusActive, users.StatusPastDue:
		return AccessPro
	default:
		return AccessFree
	}
}
