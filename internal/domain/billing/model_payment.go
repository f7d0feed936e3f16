package billing

import (
	"time"

	"construlab/internal/domain/plans"
	"construlab/internal/domain/users"
)

// Payment statuses.
const (
	PaymentPaid      = "paid"
	PaymentSimulated = "simulated"
)

type Payment struct {
	ID                   uint `gorm:"primaryKey"`
	UserID               uint `gorm:"index"`
	User                 users.User
	PlanID               *uint
	Plan                 *plans.Plan
	StripeSessionID      string `gorm:"uniqueIndex"`
	StripeSubscriptionID *string
	AmountEUR            float64
	Status               string
	CreatedAt            time.Time
}
