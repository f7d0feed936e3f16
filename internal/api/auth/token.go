package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"construlab/config"
	"construlab/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
)

func issueAppJWT(user users.User) (string, error) {
	ttl := config.JWT_TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	return t.SignedString([]byte(config.JWT_SECRET))
}

func generateVerificationToken() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
