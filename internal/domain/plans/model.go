package plans

import "time"

type Plan struct {
	ID             uint `gorm:"primaryKey"`
	Name           string
	PriceEUR       float64
	StripePriceID  string `gorm:"column:stripe_price_id;not null;uniqueIndex:idx_plans_stripe_price_id"`
	Interval       string // "day" | "week" | "month" | "year"
	IntervalCount  int64  `gorm:"column:interval_count;not null;default:1"`
	DurationMonths int    `gorm:"column:duration_months;not null"`
}

// ExpiryFrom returns when a subscription bought at from ends, when Stripe does
// not report a period end. Falls back to the interval times its count, then to
// one year.
func (p *Plan) ExpiryFrom(from time.Time) time.Time {
	if p == nil {
		return from.AddDate(1, 0, 0)
	}
	if p.DurationMonths > 0 {
		return from.AddDate(0, p.DurationMonths, 0)
	}
	n := int(p.IntervalCount)
	if n <= 0 {
		n = 1
	}
	switch p.Interval {
	case "month":
		return from.AddDate(0, n, 0)
	case "week":
		return from.AddDate(0, 0, 7*n)
	case "day":
		return from.AddDate(0, 0, n)
	}
	return from.AddDate(1, 0, 0)
}

// DurationFor maps a Stripe recurring interval to a plan duration.
func DurationFor(interval string, count int64) int {
	if count <= 0 {
		count = 1
	}
	switch interval {
	case "year":
		return int(12 * count)
	case "month":
		return int(count)
	}
	return 0
}
