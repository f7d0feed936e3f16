package users

import (
	"time"

	"construlab/internal/domain/plans"
)

// Roles.
const (
	RoleFree   = "free"
	RolePro    = "pro"
	RoleAdmin  = "admin"
	RoleBanned = "banned"
)

// Subscription statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPastDue  = "past_due"
	StatusBanned   = "banned"
	StatusTrial    = "trial"
)

type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string  `gorm:"type:varchar(20);not null;default:'free'"`
	IsVerified   bool

	SubscriptionStatus    string     `gorm:"column:subscription_status;type:varchar(20);not null;default:'inactive'"`
	SubscriptionExpiresAt *time.Time `gorm:"column:subscription_expires_at"`
	TrialUsedAt           *time.Time `gorm:"column:trial_used_at"`

	PlanID *uint
	Plan   *plans.Plan

	SubscriptionId           *string `gorm:"column:subscription_id;uniqueIndex:idx_users_subscription_id"`
	StripeCustomerID         *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id"`
	StripeSubscriptionStatus *string `gorm:"column:stripe_subscription_status"`

	// white-label branding
	CompanyName    *string `gorm:"column:company_name"`
	CompanyLogoURL *string `gorm:"column:company_logo_url"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
