package billing

import (
	"net/http"
	"time"

	"construlab/config"
	"construlab/database"
	"construlab/internal/api/users"
	"construlab/internal/app/http/middleware"
	"construlab/internal/domain/billing"
	"construlab/internal/domain/plans"
	domainusers "construlab/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SimulateSuccess activates pro for one year without Stripe. Only mounted
// when DEMO_PAYMENTS is set, and it checks the flag again.
func SimulateSuccess(c *gin.Context) {
	if !config.DEMO_PAYMENTS {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var body struct {
		PriceID string `json:"price_id"`
	}
	_ = c.ShouldBindJSON(&body)

	var plan *plans.Plan
	if body.PriceID != "" {
		var p plans.Plan
		if err := database.DB.Where("stripe_price_id = ?", body.PriceID).First(&p).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan/price_id"})
			return
		}
		plan = &p
	}

	now := time.Now()
	user.ActivatePro(now.AddDate(1, 0, 0))

	payment := billing.Payment{
		UserID:          user.ID,
		StripeSessionID: "demo_" + uuid.NewString(),
		Status:          billing.PaymentSimulated,
	}
	if plan != nil {
		payment.PlanID = &plan.ID
		payment.AmountEUR = plan.PriceEUR
		user.PlanID = &plan.ID
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domainusers.User{}).Where("id = ?", user.ID).Updates(map[string]any{
			"role":                    user.Role,
			"subscription_status":     user.SubscriptionStatus,
			"subscription_expires_at": user.SubscriptionExpiresAt,
			"plan_id":                 user.PlanID,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("simulate payment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate subscription"})
		return
	}

	log.WithField("user_id", user.ID).Warn("demo payment activated pro")
	c.JSON(http.StatusOK, users.BuildMeResponse(now, *user))
}
