package users

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"construlab/database"
	"construlab/internal/app/http/middleware"
	"construlab/internal/domain/access"
	"construlab/internal/domain/billing"
	"construlab/internal/domain/geometry"
	"construlab/internal/domain/projects"
	"construlab/internal/domain/users"
	"construlab/internal/infra/storage"
	"construlab/internal/testutil"
)

func newRouter() *gin.Engine {
	r := gin.New()
	me := r.Group("/me")
	me.Use(middleware.AuthMiddleware(), middleware.LoadUser())
	me.GET("", GetCurrentUser)
	me.PUT("", UpdateMe)
	me.DELETE("", DeleteMe)
	me.PUT("/branding", middleware.RequireCapability(access.CapWhiteLabel), UpdateBranding)
	me.POST("/branding/logo", middleware.RequireCapability(access.CapWhiteLabel), UploadLogo)
	return r
}

func TestGetCurrentUser(t *testing.T) {
	testutil.SetupDB(t)
	u := testutil.CreateUser(t, "me@example.com", users.RolePro, users.StatusActive, "")

	w := testutil.Do(t, newRouter(), http.MethodGet, "/me", nil, testutil.Token(t, u))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	got := testutil.Decode(t, w)
	acc := got["access"].(map[string]any)
	if acc["state"] != "pro" {
		t.Fatalf("expected pro state, got %v", acc["state"])
	}
	if !strings.Contains(w.Body.String(), `"cloud_projects"`) {
		t.Fatalf("expected cloud_projects capability: %s", w.Body.String())
	}
}

func TestBuildTrialDTO(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	free := users.User{Role: users.RoleFree}
	if dto := BuildTrialDTO(now, free); !dto.Available || dto.DaysLeft != nil {
		t.Fatalf("fresh free user should be offered a trial: %+v", dto)
	}

	end := now.AddDate(0, 0, 3)
	used := now.AddDate(0, 0, -4)
	trial := users.User{Role: users.RolePro, SubscriptionStatus: users.StatusTrial, SubscriptionExpiresAt: &end, TrialUsedAt: &used}
	dto := BuildTrialDTO(now, trial)
	if dto.Available || dto.DaysLeft == nil || *dto.DaysLeft != 3 {
		t.Fatalf("unexpected running trial: %+v", dto)
	}
}

func TestUpdateMe(t *testing.T) {
	testutil.SetupDB(t)
	u := testutil.CreateUser(t, "me@example.com", users.RoleFree, users.StatusInactive, "")
	r := newRouter()

	if w := testutil.Do(t, r, http.MethodPut, "/me", gin.H{"name": "  "}, testutil.Token(t, u)); w.Code != http.StatusBadRequest {
		t.Fatalf("blank name: expected 400, got %d", w.Code)
	}
	if w := testutil.Do(t, r, http.MethodPut, "/me", gin.H{"name": "Maria"}, testutil.Token(t, u)); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var stored users.User
	database.DB.First(&stored, u.ID)
	if stored.Name != "Maria" {
		t.Fatalf("name not stored: %q", stored.Name)
	}
}

func TestDeleteMe_Cascades(t *testing.T) {
	testutil.SetupDB(t)
	u := testutil.CreateUser(t, "gone@example.com", users.RolePro, users.StatusActive, "")
	keep := testutil.CreateUser(t, "keep@example.com", users.RolePro, users.StatusActive, "")

	pts := []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	for _, owner := range []uint{u.ID, keep.ID} {
		if _, err := projects.Save(database.DB, owner, "", "P", projects.Data{Points: pts, Scale: 15}); err != nil {
			t.Fatalf("seed project: %v", err)
		}
	}
	database.DB.Create(&users.VerificationToken{UserID: u.ID, Token: "t1", Type: users.TokenVerify, ExpiresAt: time.Now().Add(time.Hour)})
	database.DB.Create(&billing.Payment{UserID: u.ID, StripeSessionID: "cs_1", Status: billing.PaymentPaid})

	if w := testutil.Do(t, newRouter(), http.MethodDelete, "/me", nil, testutil.Token(t, u)); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var n int64
	database.DB.Model(&users.User{}).Where("id = ?", u.ID).Count(&n)
	if n != 0 {
		t.Fatalf("user still present")
	}
	database.DB.Model(&projects.Project{}).Where("user_id = ?", u.ID).Count(&n)
	if n != 0 {
		t.Fatalf("projects not removed")
	}
	database.DB.Model(&billing.Payment{}).Where("user_id = ?", u.ID).Count(&n)
	if n != 0 {
		t.Fatalf("payments not removed")
	}
	database.DB.Model(&users.VerificationToken{}).Where("user_id = ?", u.ID).Count(&n)
	if n != 0 {
		t.Fatalf("tokens not removed")
	}
	database.DB.Model(&projects.Project{}).Where("user_id = ?", keep.ID).Count(&n)
	if n != 1 {
		t.Fatalf("other user's project must survive, got %d", n)
	}
}

func TestUpdateBranding(t *testing.T) {
	testutil.SetupDB(t)
	r := newRouter()
	free := testutil.CreateUser(t, "free@example.com", users.RoleFree, users.StatusInactive, "")
	pro := testutil.CreateUser(t, "pro@example.com", users.RolePro, users.StatusActive, "")

	body := gin.H{"company_name": "Obras Silva"}
	if w := testutil.Do(t, r, http.MethodPut, "/me/branding", body, testutil.Token(t, free)); w.Code != http.StatusPaymentRequired {
		t.Fatalf("free: expected 402, got %d", w.Code)
	}
	w := testutil.Do(t, r, http.MethodPut, "/me/branding", body, testutil.Token(t, pro))
	if w.Code != http.StatusOK {
		t.Fatalf("pro: expected 200, got %d", w.Code)
	}
	if got := testutil.Decode(t, w); got["company_name"] != "Obras Silva" || got["enabled"] != true {
		t.Fatalf("unexpected branding: %v", got)
	}
}

func uploadLogo(t *testing.T, r http.Handler, token string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("logo", "logo.png")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	_, _ = fw.Write(data)
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/me/branding/logo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadLogo(t *testing.T) {
	testutil.SetupDB(t)
	r := newRouter()
	pro := testutil.CreateUser(t, "pro@example.com", users.RolePro, users.StatusActive, "")
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

	prev := storage.Default
	t.Cleanup(func() { storage.Default = prev })

	storage.Default = nil
	if w := uploadLogo(t, r, testutil.Token(t, pro), png); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("no storage: expected 503, got %d", w.Code)
	}

	local, err := storage.NewLocalUploader(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("local uploader: %v", err)
	}
	storage.Default = local

	if w := uploadLogo(t, r, testutil.Token(t, pro), []byte("plain text")); w.Code != http.StatusBadRequest {
		t.Fatalf("text file: expected 400, got %d", w.Code)
	}
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)
	if w := uploadLogo(t, r, testutil.Token(t, pro), svg); w.Code != http.StatusBadRequest {
		t.Fatalf("svg file: expected 400, got %d", w.Code)
	}

	w := uploadLogo(t, r, testutil.Token(t, pro), png)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	want := "/uploads/logos/user-" + strconv.FormatUint(uint64(pro.ID), 10) + ".png"
	if got := testutil.Decode(t, w); got["logo_url"] != want {
		t.Fatalf("expected %s, got %v", want, got["logo_url"])
	}
}
