package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "auth_user_id"
const userEmailKey = "auth_user_email"
const userNameKey = "auth_user_name"

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func parseSession(c *gin.Context, secret []byte) (*sessionClaims, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, errors.New("missing bearer token")
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid session token")
	}
	return &claims, nil
}

// RequireAuth verifies the session credential server-side; the user
// identity is taken from the verified token, never from request input.
func RequireAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		claims, err := parseSession(c, key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(userIDKey, claims.Subject)
		c.Set(userEmailKey, claims.Email)
		c.Set(userNameKey, claims.Name)
		c.Next()
	}
}

// OptionalAuth sets the user identity when a valid session is present
// and stays silent otherwise, so "unknown" and "none" look identical.
func OptionalAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		if claims, err := parseSession(c, key); err == nil {
			c.Set(userIDKey, claims.Subject)
			c.Set(userEmailKey, claims.Email)
			c.Set(userNameKey, claims.Name)
		}
		c.Next()
	}
}

func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func UserEmail(c *gin.Context) string {
	return c.GetString(userEmailKey)
}

func UserName(c *gin.Context) string {
	return c.GetString(userNameKey)
}
