package routes

import (
	"net/http"

	"construlab/config"
	adminapi "construlab/internal/api/admin"
	"construlab/internal/api/ads"
	authapi "construlab/internal/api/auth"
	"construlab/internal/api/billing"
	"construlab/internal/api/contact"
	"construlab/internal/api/estimate"
	"construlab/internal/api/plans"
	projectsapi "construlab/internal/api/projects"
	reportsapi "construlab/internal/api/reports"
	stripewebhooks "construlab/internal/api/stripewebhook"
	"construlab/internal/api/users"
	"construlab/internal/app/http/middleware"
	"construlab/internal/domain/access"
	domainusers "construlab/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if config.METRICS_ENABLED {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
	if config.STORAGE_DRIVER == "local" {
		r.Static("/uploads", config.LOCAL_STORAGE_DIR)
	}

	// sanitises its own fields, see contact.Send
	r.POST("/contact", contact.Send)

	// Input sanitisation applies to public routes only
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plans.ListPlans)
	public.GET("/verify", authapi.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Anonymous or signed in
	open := r.Group("/")
	open.Use(middleware.OptionalAuth())
	open.POST("/estimate/area", middleware.RequireCapability(access.CapCalculate), estimate.Area)
	open.POST("/estimate/materials", middleware.RequireCapability(access.CapCalculate), estimate.Materials)
	open.GET("/materials/presets", estimate.ListPresets)
	open.GET("/ads/slots", ads.Slots)
	open.POST("/reports/pdf", middleware.RequireCapability(access.CapPDFExport), reportsapi.PDF)
	open.POST("/reports/xlsx", middleware.RequireCapability(access.CapXLSXExport), reportsapi.XLSX)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.LoadUser())
	auth.GET("/me", users.GetCurrentUser)
	auth.PUT("/me", users.UpdateMe)
	auth.DELETE("/me", users.DeleteMe)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)
	auth.POST("/billing/cancel", billing.CancelSubscription)
	auth.POST("/billing/trial", billing.StartTrial)
	if config.DEMO_PAYMENTS {
		auth.POST("/billing/simulate-success", billing.SimulateSuccess)
	}

	// White-label
	branding := auth.Group("/me/branding")
	branding.Use(middleware.RequireCapability(access.CapWhiteLabel))
	branding.PUT("", users.UpdateBranding)
	branding.POST("/logo", users.UploadLogo)

	// Cloud projects
	projects := auth.Group("/projects")
	projects.Use(middleware.RequireCapability(access.CapCloudProjects))
	projects.GET("", projectsapi.List)
	projects.GET("/:id", projectsapi.Get)
	projects.POST("", projectsapi.Create)
	projects.PUT("/:id", projectsapi.Update)
	projects.DELETE("/:id", projectsapi.Delete)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.LoadUser(), middleware.RequireRole(domainusers.RoleAdmin))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/user/:id", adminapi.GetUserDetails)
	admin.PUT("/users/:id/role", adminapi.UpdateUserRole)
	admin.DELETE("/users/:id", adminapi.DeleteUser)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.POST("/sync-plans", plans.SyncPlansFromStripe)
}
