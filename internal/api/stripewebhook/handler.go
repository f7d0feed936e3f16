package stripewebhooks

import (
	"encoding/json"
	"io"
	"net/http"

	"construlab/config"
	"construlab/internal/infra/metrics"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"
)

const maxBodyBytes = 65536

func StripeWebhook(c *gin.Context) {
	// needed for follow-up API calls (checkoutsession.Get, subscription.Get)
	stripe.Key = config.STRIPE_SECRET_KEY
	if stripe.Key == "" || config.STRIPE_WEBHOOK_SECRET == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payments are not configured"})
		return
	}

	payload, err := readStripeBody(c, maxBodyBytes)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		config.STRIPE_WEBHOOK_SECRET,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		log.WithError(err).Warn("stripe signature verification failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	metrics.WebhookEvents.WithLabelValues(string(event.Type)).Inc()
	entry := log.WithFields(log.Fields{"event_id": event.ID, "type": event.Type})

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse session"})
			return
		}
		if err := handleCheckoutSessionCompleted(&session); err != nil {
			entry.WithError(err).Error("checkout completed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process event"})
			return
		}

	case "customer.subscription.updated":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse subscription"})
			return
		}
		if err := applySubscriptionUpdated(&sub); err != nil {
			entry.WithError(err).Error("subscription updated")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process event"})
			return
		}

	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse subscription"})
			return
		}
		if err := applySubscriptionDeleted(&sub); err != nil {
			entry.WithError(err).Error("subscription deleted")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process event"})
			return
		}

	default:
		// acknowledge so Stripe does not retry
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	entry.Info("stripe event processed")
	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

func readStripeBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
