package users

import (
	"errors"
	"time"
)

var (
	ErrUnknownRole    = errors.New("unknown role")
	ErrTrialUsed      = errors.New("trial already used")
	ErrAlreadyPremium = errors.New("user already has premium access")
)

// StatusForRole is the subscription status an admin role change implies.
func StatusForRole(role string) (string, error) {
	switch role {
	case RoleFree:
		return StatusInactive, nil
	case RolePro, RoleAdmin:
		return StatusActive, nil
	case RoleBanned:
		return StatusBanned, nil
	}
	return "", ErrUnknownRole
}

// SetRole applies an admin role change and the matching status.
func (u *User) SetRole(role string) error {
	status, err := StatusForRole(role)
	if err != nil {
		return err
	}
	u.Role = role
	u.SubscriptionStatus = status
	return nil
}

// ActivatePro grants paid access until expiresAt. Admins keep their role and
// banned users are left untouched.
func (u *User) ActivatePro(expiresAt time.Time) {
	if u.IsBanned() {
		return
	}
	if u.Role != RoleAdmin {
		u.Role = RolePro
	}
	u.SubscriptionStatus = StatusActive
	u.SubscriptionExpiresAt = &expiresAt
}

// StartTrial grants pro access for days, once per account.
func (u *User) StartTrial(now time.Time, days int) error {
	if u.TrialUsedAt != nil {
		return ErrTrialUsed
	}
	if u.Role == RoleAdmin || (u.Role == RolePro && u.SubscriptionStatus == StatusActive) {
		return ErrAlreadyPremium
	}

	end := now.AddDate(0, 0, days)
	u.Role = RolePro
	u.SubscriptionStatus = StatusTrial
	u.SubscriptionExpiresAt = &end
	u.TrialUsedAt = &now
	return nil
}

// Downgrade returns a paying user to the free tier. Banned and admin users are
// left untouched.
func (u *User) Downgrade() {
	if u.Role == RoleBanned || u.Role == RoleAdmin {
		return
	}
	u.Role = RoleFree
	u.SubscriptionStatus = StatusInactive
}

// IsBanned checks both the role and the status, since either may have been set.
func (u *User) IsBanned() bool {
	return u.Role == RoleBanned || u.SubscriptionStatus == StatusBanned
}
