package billing

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"construlab/config"
	"construlab/database"
	"construlab/internal/app/http/middleware"
	"construlab/internal/domain/billing"
	"construlab/internal/domain/plans"
	"construlab/internal/domain/users"
	"construlab/internal/testutil"
)

func newRouter() *gin.Engine {
	r := gin.New()
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.LoadUser())
	auth.GET("/payments", GetPaymentHistory)
	auth.POST("/create-checkout-session", CreateCheckoutSession)
	auth.POST("/billing-portal", CreateBillingPortal)
	auth.POST("/billing/cancel", CancelSubscription)
	auth.POST("/billing/trial", StartTrial)
	auth.POST("/billing/simulate-success", SimulateSuccess)
	return r
}

func withConfig(t *testing.T, demo bool, trialDays int) {
	t.Helper()
	prevDemo, prevDays, prevKey := config.DEMO_PAYMENTS, config.TRIAL_DAYS, config.STRIPE_SECRET_KEY
	config.DEMO_PAYMENTS, config.TRIAL_DAYS, config.STRIPE_SECRET_KEY = demo, trialDays, ""
	t.Cleanup(func() {
		config.DEMO_PAYMENTS, config.TRIAL_DAYS, config.STRIPE_SECRET_KEY = prevDemo, prevDays, prevKey
	})
}

func TestStartTrial(t *testing.T) {
	testutil.SetupDB(t)
	withConfig(t, false, 7)
	r := newRouter()
	u := testutil.CreateUser(t, "trial@example.com", users.RoleFree, users.StatusInactive, "")

	w := testutil.Do(t, r, http.MethodPost, "/billing/trial", nil, testutil.Token(t, u))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var stored users.User
	database.DB.First(&stored, u.ID)
	if stored.Role != users.RolePro || stored.SubscriptionStatus != users.StatusTrial || stored.TrialUsedAt == nil {
		t.Fatalf("unexpected trial state: %+v", stored)
	}
	if d := time.Until(*stored.SubscriptionExpiresAt); d < 6*24*time.Hour || d > 7*24*time.Hour {
		t.Fatalf("expected 7 day trial, got %v", d)
	}

	if w := testutil.Do(t, r, http.MethodPost, "/billing/trial", nil, testutil.Token(t, u)); w.Code != http.StatusConflict {
		t.Fatalf("second trial: expected 409, got %d", w.Code)
	}
}

func TestSimulateSuccess(t *testing.T) {
	testutil.SetupDB(t)
	r := newRouter()
	u := testutil.CreateUser(t, "demo@example.com", users.RoleFree, users.StatusInactive, "")
	token := testutil.Token(t, u)

	withConfig(t, false, 7)
	if w := testutil.Do(t, r, http.MethodPost, "/billing/simulate-success", nil, token); w.Code != http.StatusNotFound {
		t.Fatalf("disabled: expected 404, got %d", w.Code)
	}

	config.DEMO_PAYMENTS = true
	plan := plans.Plan{Name: "Pro yearly", PriceEUR: 49, StripePriceID: "price_year", Interval: "year", DurationMonths: 12}
	database.DB.Create(&plan)

	w := testutil.Do(t, r, http.MethodPost, "/billing/simulate-success", gin.H{"price_id": "price_year"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var stored users.User
	database.DB.First(&stored, u.ID)
	if stored.Role != users.RolePro || stored.SubscriptionStatus != users.StatusActive {
		t.Fatalf("unexpected state: %s/%s", stored.Role, stored.SubscriptionStatus)
	}
	if stored.SubscriptionExpiresAt == nil || stored.SubscriptionExpiresAt.Before(time.Now().AddDate(0, 11, 0)) {
		t.Fatalf("expected about a year of access, got %v", stored.SubscriptionExpiresAt)
	}

	var payments []billing.Payment
	database.DB.Where("user_id = ?", u.ID).Find(&payments)
	if len(payments) != 1 || payments[0].Status != billing.PaymentSimulated || payments[0].AmountEUR != 49 {
		t.Fatalf("unexpected payments: %+v", payments)
	}

	w = testutil.Do(t, r, http.MethodGet, "/payments", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("payments: expected 200, got %d", w.Code)
	}
}

func TestStripeEndpoints_NotConfigured(t *testing.T) {
	testutil.SetupDB(t)
	withConfig(t, false, 7)
	r := newRouter()
	u := testutil.CreateUser(t, "buyer@example.com", users.RoleFree, users.StatusInactive, "")
	database.DB.Create(&plans.Plan{Name: "Pro", PriceEUR: 5, StripePriceID: "price_month", Interval: "month"})

	w := testutil.Do(t, r, http.MethodPost, "/create-checkout-session", gin.H{"price_id": "price_month"}, testutil.Token(t, u))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	w = testutil.Do(t, r, http.MethodPost, "/create-checkout-session", gin.H{"price_id": "price_unknown"}, testutil.Token(t, u))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown price: expected 400, got %d", w.Code)
	}
	if w := testutil.Do(t, r, http.MethodPost, "/billing-portal", nil, testutil.Token(t, u)); w.Code != http.StatusConflict {
		t.Fatalf("portal without customer: expected 409, got %d", w.Code)
	}
	if w := testutil.Do(t, r, http.MethodPost, "/billing/cancel", nil, testutil.Token(t, u)); w.Code != http.StatusConflict {
		t.Fatalf("cancel without subscription: expected 409, got %d", w.Code)
	}
}
