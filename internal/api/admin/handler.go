package admin

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"construlab/database"
	usersapi "construlab/internal/api/users"
	"construlab/internal/app/http/middleware"
	"construlab/internal/domain/billing"
	"construlab/internal/domain/projects"
	"construlab/internal/domain/users"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AdminUser struct {
	ID                 uint       `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Role               string     `json:"role"`
	SubscriptionStatus string     `json:"subscription_status"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
	IsVerified         bool       `json:"is_verified"`
	AuthProvider       string     `json:"auth_provider"`
	PlanName           *string    `json:"plan_name,omitempty"`
	StripeCustomerID   *string    `json:"stripe_customer_id,omitempty"`
	StripeSubID        *string    `json:"stripe_subscription_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type AdminPayment struct {
	ID        uint    `json:"id"`
	Email     string  `json:"email"`
	PlanName  *string `json:"plan_name,omitempty"`
	AmountEUR float64 `json:"amount_eur"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type AdminStats struct {
	TotalUsers    int            `json:"total_users"`
	TotalProjects int            `json:"total_projects"`
	TotalRevenue  float64        `json:"total_revenue"`
	RecentRevenue float64        `json:"recent_revenue"`
	UsersPerRole  map[string]int `json:"users_per_role"`
}

func toAdminUser(u users.User) AdminUser {
	var planName *string
	if u.Plan != nil {
		planName = &u.Plan.Name
	}
	return AdminUser{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               u.Role,
		SubscriptionStatus: u.SubscriptionStatus,
		ExpiresAt:          u.SubscriptionExpiresAt,
		IsVerified:         u.IsVerified,
		AuthProvider:       u.AuthProvider,
		PlanName:           planName,
		StripeCustomerID:   u.StripeCustomerID,
		StripeSubID:        u.SubscriptionId,
		CreatedAt:          u.CreatedAt,
	}
}

// AdminDashboard returns the headline numbers.
func AdminDashboard(c *gin.Context) {
	var stats AdminStats

	var totalUsers, totalProjects int64
	var totalRevenue, recentRevenue float64

	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&projects.Project{}).Count(&totalProjects)
	database.DB.Model(&billing.Payment{}).Where("status = ?", billing.PaymentPaid).Select("COALESCE(SUM(amount_eur), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&billing.Payment{}).
		Where("status = ? AND created_at >= ?", billing.PaymentPaid, thirtyDaysAgo).
		Select("COALESCE(SUM(amount_eur), 0)").Scan(&recentRevenue)

	stats.TotalUsers = int(totalUsers)
	stats.TotalProjects = int(totalProjects)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue

	type RoleCount struct {
		Role  string
		Count int
	}
	var counts []RoleCount
	database.DB.
		Model(&users.User{}).
		Select("role, COUNT(id) as count").
		Group("role").
		Scan(&counts)

	stats.UsersPerRole = map[string]int{}
	for _, rc := range counts {
		stats.UsersPerRole[rc.Role] = rc.Count
	}

	c.JSON(http.StatusOK, stats)
}

func ListAllUsers(c *gin.Context) {
	var list []users.User
	err := database.DB.Preload("Plan").Order("created_at DESC").Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	adminUsers := make([]AdminUser, 0, len(list))
	for _, u := range list {
		adminUsers = append(adminUsers, toAdminUser(u))
	}

	c.JSON(http.StatusOK, adminUsers)
}

func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	err := database.DB.Preload("User").Preload("Plan").Order("created_at DESC").Find(&payments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	result := make([]AdminPayment, 0, len(payments))
	for _, p := range payments {
		var planName *string
		if p.Plan != nil {
			planName = &p.Plan.Name
		}
		result = append(result, AdminPayment{
			ID:        p.ID,
			Email:     p.User.Email,
			PlanName:  planName,
			AmountEUR: p.AmountEUR,
			Status:    p.Status,
			CreatedAt: p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, result)
}

func GetUserDetails(c *gin.Context) {
	userID := c.Param("id")

	var user users.User
	if err := database.DB.Preload("Plan").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var payments []billing.Payment
	if err := database.DB.Preload("Plan").Where("user_id = ?", user.ID).Order("created_at DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	var projectCount int64
	database.DB.Model(&projects.Project{}).Where("user_id = ?", user.ID).Count(&projectCount)

	c.JSON(http.StatusOK, gin.H{
		"user":     toAdminUser(user),
		"payments": payments,
		"projects": projectCount,
	})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}

// UpdateUserRole sets the role and the subscription status it implies.
func UpdateUserRole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role is required"})
		return
	}

	if me := middleware.CurrentUser(c); me != nil && me.ID == id && body.Role != users.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot change your own role"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := user.SetRole(body.Role); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Role == users.RolePro && user.SubscriptionExpiresAt != nil && user.SubscriptionExpiresAt.Before(time.Now()) {
		user.SubscriptionExpiresAt = nil
	}

	err := database.DB.Model(&user).Updates(map[string]any{
		"role":                    user.Role,
		"subscription_status":     user.SubscriptionStatus,
		"subscription_expires_at": user.SubscriptionExpiresAt,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}

	log.WithFields(log.Fields{"user_id": user.ID, "role": user.Role}).Info("admin changed role")
	c.JSON(http.StatusOK, toAdminUser(user))
}

func DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if me := middleware.CurrentUser(c); me != nil && me.ID == id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Use account settings to delete your own account"})
		return
	}

	if err := usersapi.DeleteAccount(database.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.WithError(err).WithField("user_id", id).Error("admin delete user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
