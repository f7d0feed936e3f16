package billing

import (
	"net/http"

	"construlab/database"
	"construlab/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

type PaymentDTO struct {
	ID        uint    `json:"id"`
	PlanName  *string `json:"plan_name,omitempty"`
	AmountEUR float64 `json:"amount_eur"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

func GetPaymentHistory(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	out := make([]PaymentDTO, 0, len(payments))
	for _, p := range payments {
		var planName *string
		if p.Plan != nil {
			planName = &p.Plan.Name
		}
		out = append(out, PaymentDTO{
			ID:        p.ID,
			PlanName:  planName,
			AmountEUR: p.AmountEUR,
			Status:    p.Status,
			CreatedAt: p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, out)
}
