package users

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"construlab/database"
	"construlab/internal/app/http/middleware"
	"construlab/internal/domain/billing"
	"construlab/internal/domain/projects"
	"construlab/internal/domain/users"
	"construlab/internal/infra/storage"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const maxCompanyNameLen = 120

func GetCurrentUser(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, BuildMeResponse(time.Now(), *user))
}

func UpdateMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	user.Name = strings.TrimSpace(body.Name)
	if err := database.DB.Model(user).Update("name", user.Name).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, BuildMeResponse(time.Now(), *user))
}

// DeleteMe removes the account together with its projects, tokens and
// payments.
func DeleteMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := DeleteAccount(database.DB, user.ID); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("delete account")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}
	removeLogo(c, user)

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// DeleteAccount is shared with the admin area.
func DeleteAccount(db *gorm.DB, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := projects.DeleteAllForUser(tx, userID); err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&users.VerificationToken{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&billing.Payment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&users.User{}, userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func UpdateBranding(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		CompanyName *string `json:"company_name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var name *string
	if body.CompanyName != nil {
		if trimmed := strings.TrimSpace(*body.CompanyName); trimmed != "" {
			if len([]rune(trimmed)) > maxCompanyNameLen {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Company name is too long"})
				return
			}
			name = &trimmed
		}
	}

	user.CompanyName = name
	if err := database.DB.Model(user).Update("company_name", name).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update branding"})
		return
	}

	c.JSON(http.StatusOK, BuildBrandingDTO(*user, middleware.CurrentPolicy(c)))
}

// UploadLogo accepts a multipart "logo" file.
func UploadLogo(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if storage.Default == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "File uploads are not configured"})
		return
	}

	fh, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing logo file"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, storage.MaxLogoBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable file"})
		return
	}

	ct, ext, err := storage.DetectImage(data)
	switch {
	case errors.Is(err, storage.ErrTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Logo must be 2 MB or smaller"})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Logo must be a PNG, JPEG or WebP image"})
		return
	}

	url, err := storage.Default.Upload(c.Request.Context(), storage.LogoKey(user.ID, ext), data, ct)
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("upload logo")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to store logo"})
		return
	}

	user.CompanyLogoURL = &url
	if err := database.DB.Model(user).Update("company_logo_url", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update branding"})
		return
	}

	c.JSON(http.StatusOK, BuildBrandingDTO(*user, middleware.CurrentPolicy(c)))
}

func removeLogo(c *gin.Context, user *users.User) {
	if storage.Default == nil || user.CompanyLogoURL == nil {
		return
	}
	url := *user.CompanyLogoURL
	i := strings.LastIndex(url, ".")
	if i < 0 {
		return
	}
	key := storage.LogoKey(user.ID, url[i+1:])
	if err := storage.Default.Delete(c.Request.Context(), key); err != nil {
		log.WithError(err).WithField("key", key).Warn("delete logo")
	}
}
