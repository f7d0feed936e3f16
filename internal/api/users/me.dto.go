package users

import "time"

type MeResponse struct {
	User     UserDTO     `json:"user"`
	Billing  BillingDTO  `json:"billing"`
	Access   AccessDTO   `json:"access"`
	Branding BrandingDTO `json:"branding"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	AuthProvider string `json:"auth_provider"`
	IsVerified   bool   `json:"is_verified"`
}

/* ---------- BILLING ---------- */

type BillingDTO struct {
	Status       string           `json:"status"`
	ExpiresAt    *time.Time       `json:"expires_at"`
	Plan         *PlanDTO         `json:"plan"`
	Subscription *SubscriptionDTO `json:"subscription"`
	Trial        *TrialDTO        `json:"trial"`
}

type PlanDTO struct {
	ID            uint    `json:"id"`
	Key           string  `json:"key"`
	Interval      string  `json:"interval"`
	PriceEUR      float64 `json:"price_eur"`
	StripePriceID string  `json:"stripe_price_id"`
}

type SubscriptionDTO struct {
	Status               string  `json:"status"`
	StripeSubscriptionID *string `json:"stripe_subscription_id"`
}

type TrialDTO struct {
	Available bool       `json:"available"`
	UsedAt    *time.Time `json:"used_at"`
	EndsAt    *time.Time `json:"ends_at"`
	DaysLeft  *int       `json:"days_left"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	State        string   `json:"state"` // anonymous|free|trial|pro|admin|banned
	Capabilities []string `json:"capabilities"`
}

/* ---------- BRANDING ---------- */

type BrandingDTO struct {
	CompanyName *string `json:"company_name"`
	LogoURL     *string `json:"logo_url"`
	Enabled     bool    `json:"enabled"`
}
