package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-session-secret"

func signSession(t *testing.T, secret, subject string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": "buyer@example.com",
		"name":  "Buyer",
		"exp":   time.Now().Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func identityEcho(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"userId": UserID(c),
		"email":  UserEmail(c),
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(testSecret), identityEcho)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + signSession(t, testSecret, "user-1", time.Hour), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signSession(t, "other-secret", "user-1", time.Hour), http.StatusUnauthorized},
		{"expired", "Bearer " + signSession(t, testSecret, "user-1", -time.Minute), http.StatusUnauthorized},
		{"empty subject", "Bearer " + signSession(t, testSecret, "", time.Hour), http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRequireAuth_SetsIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var gotUserID, gotEmail string
	r.GET("/protected", RequireAuth(testSecret), func(c *gin.Context) {
		gotUserID = UserID(c)
		gotEmail = UserEmail(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signSession(t, testSecret, "user-1", time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if gotUserID != "user-1" {
		t.Errorf("userId = %s", gotUserID)
	}
	if gotEmail != "buyer@example.com" {
		t.Errorf("email = %s", gotEmail)
	}
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var gotUserID string
	r.GET("/open", OptionalAuth(testSecret), func(c *gin.Context) {
		gotUserID = UserID(c)
		c.Status(http.StatusOK)
	})

	// Anonymous request passes with no identity.
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotUserID != "" {
		t.Errorf("userId = %q, want empty", gotUserID)
	}

	// Invalid token is treated as anonymous, not rejected.
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotUserID != "" {
		t.Errorf("userId = %q, want empty", gotUserID)
	}

	// Valid token sets the identity.
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+signSession(t, testSecret, "user-1", time.Hour))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if gotUserID != "user-1" {
		t.Errorf("userId = %s", gotUserID)
	}
}
