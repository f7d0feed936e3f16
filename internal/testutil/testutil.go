// Package testutil wires a throwaway SQLite database and signed tokens for
// handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"construlab/config"
	"construlab/database"
	"construlab/internal/domain/users"
)

const JWTSecret = "test-secret"

// SetupDB points database.DB at a fresh SQLite file and the JWT secret at a
// known value.
func SetupDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	prevDB, prevSecret, prevTTL := database.DB, config.JWT_SECRET, config.JWT_TTL
	database.DB = db
	config.JWT_SECRET = JWTSecret
	config.JWT_TTL = time.Hour
	t.Cleanup(func() {
		database.DB = prevDB
		config.JWT_SECRET = prevSecret
		config.JWT_TTL = prevTTL
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
}

// CreateUser inserts a verified user. A non-empty password is bcrypt-hashed.
func CreateUser(t *testing.T, email, role, status, password string) users.User {
	t.Helper()

	u := users.User{
		Name:               "Test",
		Email:              email,
		AuthProvider:       "local",
		Role:               role,
		SubscriptionStatus: status,
		IsVerified:         true,
	}
	if role == users.RolePro && status != users.StatusInactive {
		exp := time.Now().AddDate(0, 1, 0)
		u.SubscriptionExpiresAt = &exp
	}
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		h := string(hashed)
		u.Password = &h
	}
	if err := database.DB.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func Token(t *testing.T, u users.User) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    u.Role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(JWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// Do performs a request against r. body is JSON-encoded unless nil; token is
// sent as a bearer token when non-empty.
func Do(t *testing.T, r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a JSON response body into a map.
func Decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
