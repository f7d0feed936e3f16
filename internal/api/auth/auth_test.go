package auth

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"construlab/database"
	"construlab/internal/domain/users"
	"construlab/internal/infra/mailer"
	"construlab/internal/testutil"
)

type captureMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (m *captureMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *captureMailer) last() mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[len(m.sent)-1]
}

func setup(t *testing.T) (*gin.Engine, *captureMailer) {
	testutil.SetupDB(t)

	mail := &captureMailer{}
	prev := mailer.Default
	mailer.Default = mail
	t.Cleanup(func() { mailer.Default = prev })

	r := gin.New()
	r.POST("/register", Register)
	r.POST("/login", Login)
	r.GET("/verify", VerifyEmail)
	r.POST("/resend-verification", ResendVerification)
	r.POST("/request-password-reset", RequestPasswordReset)
	r.POST("/reset-password", ResetPassword)
	return r, mail
}

func tokenFromLink(t *testing.T, body string) string {
	t.Helper()
	i := strings.Index(body, "token=")
	if i < 0 {
		t.Fatalf("no token in %q", body)
	}
	return strings.TrimSpace(body[i+len("token="):])
}

func TestRegisterVerifyLogin(t *testing.T) {
	r, mail := setup(t)

	w := testutil.Do(t, r, http.MethodPost, "/register", gin.H{
		"name": "Ana", "email": "Ana@Example.com", "password": "secret123",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var u users.User
	if err := database.DB.Where("email = ?", "ana@example.com").First(&u).Error; err != nil {
		t.Fatalf("user not stored with normalized email: %v", err)
	}
	if u.Role != users.RoleFree || u.SubscriptionStatus != users.StatusInactive {
		t.Fatalf("unexpected new account state: %+v", u)
	}

	w = testutil.Do(t, r, http.MethodPost, "/login", gin.H{"email": "ana@example.com", "password": "secret123"}, "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("unverified login: expected 403, got %d", w.Code)
	}

	token := tokenFromLink(t, mail.last().Body)
	w = testutil.Do(t, r, http.MethodGet, "/verify?token="+token, nil, "")
	if w.Code != http.StatusTemporaryRedirect {
		t.Fatalf("verify: expected 307, got %d", w.Code)
	}

	w = testutil.Do(t, r, http.MethodPost, "/login", gin.H{"email": "ana@example.com", "password": "secret123"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := testutil.Decode(t, w); body["token"] == "" {
		t.Fatalf("expected token in login response")
	}

	w = testutil.Do(t, r, http.MethodPost, "/login", gin.H{"email": "ana@example.com", "password": "wrong1234"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password: expected 401, got %d", w.Code)
	}
}

func TestRegister_Validation(t *testing.T) {
	r, _ := setup(t)

	cases := []gin.H{
		{"name": "A", "email": "a@example.com", "password": "short1"},
		{"name": "A", "email": "a@example.com", "password": "lettersonly"},
		{"name": "A", "email": "not-an-email", "password": "secret123"},
		{"email": "a@example.com", "password": "secret123"},
	}
	for _, body := range cases {
		if w := testutil.Do(t, r, http.MethodPost, "/register", body, ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", body, w.Code)
		}
	}

	ok := gin.H{"name": "A", "email": "dup@example.com", "password": "secret123"}
	if w := testutil.Do(t, r, http.MethodPost, "/register", ok, ""); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if w := testutil.Do(t, r, http.MethodPost, "/register", ok, ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", w.Code)
	}
}

func TestLogin_BannedUser(t *testing.T) {
	r, _ := setup(t)
	testutil.CreateUser(t, "banned@example.com", users.RoleBanned, users.StatusBanned, "secret123")

	w := testutil.Do(t, r, http.MethodPost, "/login", gin.H{"email": "banned@example.com", "password": "secret123"}, "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestPasswordReset(t *testing.T) {
	r, mail := setup(t)
	testutil.CreateUser(t, "reset@example.com", users.RoleFree, users.StatusInactive, "oldpass123")

	w := testutil.Do(t, r, http.MethodPost, "/request-password-reset", gin.H{"email": "nobody@example.com"}, "")
	if w.Code != http.StatusOK || len(mail.sent) != 0 {
		t.Fatalf("unknown email must answer 200 without sending, got %d / %d mails", w.Code, len(mail.sent))
	}

	w = testutil.Do(t, r, http.MethodPost, "/request-password-reset", gin.H{"email": "reset@example.com"}, "")
	if w.Code != http.StatusOK || len(mail.sent) != 1 {
		t.Fatalf("expected reset mail, got %d / %d mails", w.Code, len(mail.sent))
	}
	token := tokenFromLink(t, mail.last().Body)
	token = strings.Fields(token)[0]

	w = testutil.Do(t, r, http.MethodPost, "/reset-password", gin.H{"token": token, "new_password": "newpass123"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	w = testutil.Do(t, r, http.MethodPost, "/reset-password", gin.H{"token": token, "new_password": "again1234"}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("reused token: expected 400, got %d", w.Code)
	}

	w = testutil.Do(t, r, http.MethodPost, "/login", gin.H{"email": "reset@example.com", "password": "newpass123"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login with new password: expected 200, got %d", w.Code)
	}
}

func TestChangePassword(t *testing.T) {
	testutil.SetupDB(t)
	u := testutil.CreateUser(t, "change@example.com", users.RoleFree, users.StatusInactive, "oldpass123")

	r := gin.New()
	r.POST("/change-password", func(c *gin.Context) { c.Set("user_id", u.ID) }, ChangePassword)
	r.POST("/login", Login)

	w := testutil.Do(t, r, http.MethodPost, "/change-password", gin.H{"old_password": "nope", "new_password": "newpass123"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong old password: expected 401, got %d", w.Code)
	}

	w = testutil.Do(t, r, http.MethodPost, "/change-password", gin.H{"old_password": "oldpass123", "new_password": "newpass123"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.Do(t, r, http.MethodPost, "/login", gin.H{"email": "change@example.com", "password": "newpass123"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login after change: expected 200, got %d", w.Code)
	}
}

func TestFindOrCreateGoogleUser(t *testing.T) {
	testutil.SetupDB(t)
	existing := testutil.CreateUser(t, "link@example.com", users.RolePro, users.StatusActive, "secret123")

	linked, err := findOrCreateGoogleUser(database.DB, &googleIDClaims{Sub: "g-1", Email: "LINK@example.com", EmailVerified: true})
	if err != nil {
		t.Fatalf("link: %v", err)
	}
	if linked.ID != existing.ID || linked.GoogleSub == nil || *linked.GoogleSub != "g-1" {
		t.Fatalf("expected existing account linked, got %+v", linked)
	}

	again, err := findOrCreateGoogleUser(database.DB, &googleIDClaims{Sub: "g-1", Email: "other@example.com"})
	if err != nil || again.ID != existing.ID {
		t.Fatalf("expected lookup by subject, got %+v (%v)", again, err)
	}

	created, err := findOrCreateGoogleUser(database.DB, &googleIDClaims{Sub: "g-2", Email: "new@example.com", Name: "New Person"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Role != users.RoleFree || !created.IsVerified || created.AuthProvider != "google" || created.Password != nil {
		t.Fatalf("unexpected google account: %+v", created)
	}
}
