package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"construlab/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errNoHeader       = errors.New("Authorization header missing")
	errMalformedToken = errors.New("Bearer token malformed")
	errInvalidToken   = errors.New("Invalid or expired token")
)

func parseBearer(authHeader string) (jwt.MapClaims, error) {
	if authHeader == "" {
		return nil, errNoHeader
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
		return nil, errMalformedToken
	}

	jwtKey := []byte(config.JWT_SECRET)
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidToken
	}
	return claims, nil
}

func setClaims(c *gin.Context, claims jwt.MapClaims) {
	if email, ok := claims["email"].(string); ok {
		c.Set("email", email)
	}
	if role, ok := claims["role"].(string); ok {
		c.Set("role", role)
	}
	if userIDFloat, ok := claims["user_id"].(float64); ok {
		c.Set("user_id", uint(userIDFloat))
	}
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(config.JWT_SECRET) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			return
		}

		claims, err := parseBearer(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is sent and lets
// anonymous requests through otherwise.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := parseBearer(c.GetHeader("Authorization")); err == nil {
			setClaims(c, claims)
			if !loadUser(c) {
				return
			}
		}
		c.Next()
	}
}

// RequireRole checks the stored role when the user was loaded, since an
// admin may have changed it after the token was issued.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var value any
		if u := CurrentUser(c); u != nil {
			value = u.Role
		} else {
			v, exists := c.Get("role")
			if !exists {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token"})
				return
			}
			value = v
		}

		if value != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.Next()
	}
}
