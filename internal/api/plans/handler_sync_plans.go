package plans

import (
	"net/http"

	"construlab/config"
	"construlab/database"
	"construlab/internal/domain/plans"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/price"
)

type PlanDTO struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	PriceEUR       float64 `json:"price_eur"`
	StripePriceID  string  `json:"stripe_price_id"`
	Interval       string  `json:"interval"`
	DurationMonths int     `json:"duration_months"`
}

// planFromPrice maps a Stripe price onto a plan. ok is false for prices that
// should not be offered: inactive, one-off, non-EUR, another product, or
// hidden with metadata visible=false.
func planFromPrice(p *stripe.Price, productID string) (plans.Plan, bool) {
	if p == nil || !p.Active || p.Recurring == nil || p.Product == nil || !p.Product.Active {
		return plans.Plan{}, false
	}
	if productID != "" && p.Product.ID != productID {
		return plans.Plan{}, false
	}
	if string(p.Currency) != "eur" {
		return plans.Plan{}, false
	}
	if p.Metadata != nil && p.Metadata["visible"] == "false" {
		return plans.Plan{}, false
	}

	name := p.Product.Name
	if p.Metadata != nil && p.Metadata["plan"] != "" {
		name = p.Metadata["plan"]
	}

	interval := string(p.Recurring.Interval)
	return plans.Plan{
		Name:           name,
		PriceEUR:       float64(p.UnitAmount) / 100.0,
		StripePriceID:  p.ID,
		Interval:       interval,
		IntervalCount:  p.Recurring.IntervalCount,
		DurationMonths: plans.DurationFor(interval, p.Recurring.IntervalCount),
	}, true
}

func SyncPlansFromStripe(c *gin.Context) {
	stripe.Key = config.STRIPE_SECRET_KEY
	if stripe.Key == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payments are not configured"})
		return
	}

	params := &stripe.PriceListParams{}
	params.Active = stripe.Bool(true)
	params.Type = stripe.String("recurring")
	params.AddExpand("data.product")

	it := price.List(params)

	synced := 0
	created := 0
	updated := 0
	skipped := 0

	for it.Next() {
		plan, ok := planFromPrice(it.Price(), config.STRIPE_PRODUCT_ID)
		if !ok {
			skipped++
			continue
		}

		var existing plans.Plan
		err := database.DB.Where("stripe_price_id = ?", plan.StripePriceID).First(&existing).Error

		if err != nil {
			if err := database.DB.Create(&plan).Error; err != nil {
				log.WithError(err).WithField("price", plan.StripePriceID).Error("create plan")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
				return
			}
			created++
		} else {
			existing.Name = plan.Name
			existing.PriceEUR = plan.PriceEUR
			existing.Interval = plan.Interval
			existing.IntervalCount = plan.IntervalCount
			existing.DurationMonths = plan.DurationMonths

			if err := database.DB.Save(&existing).Error; err != nil {
				log.WithError(err).WithField("price", plan.StripePriceID).Error("update plan")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
				return
			}
			updated++
		}

		synced++
	}

	if err := it.Err(); err != nil {
		log.WithError(err).Error("list stripe prices")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch Stripe prices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"synced":  synced,
		"created": created,
		"updated": updated,
		"skipped": skipped,
	})
}

func ListPlans(c *gin.Context) {
	var plansList []plans.Plan
	if err := database.DB.Model(&plans.Plan{}).Order("price_eur ASC").Find(&plansList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}

	out := make([]PlanDTO, 0, len(plansList))
	for _, p := range plansList {
		out = append(out, PlanDTO{
			ID:             p.ID,
			Name:           p.Name,
			PriceEUR:       p.PriceEUR,
			StripePriceID:  p.StripePriceID,
			Interval:       p.Interval,
			DurationMonths: p.DurationMonths,
		})
	}
	c.JSON(http.StatusOK, out)
}
