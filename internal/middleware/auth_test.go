package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/adnanfr/Binturong/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "middleware-test-secret"

func newProtectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(testSecret, roles...), func(c *gin.Context) {
		claims := ClaimsFrom(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "user_type": claims.UserType})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func expiredToken(t *testing.T) string {
	t.Helper()
	past := time.Now().UTC().Add(-2 * time.Hour)
	claims := auth.Claims{
		UserID:   "12345",
		UserType: auth.RoleStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "12345",
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}
	return token
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	r := newProtectedRouter()

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"bare token", "sometoken"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := doRequest(t, r, tt.header); rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestRequireAuthRejectsInvalidToken(t *testing.T) {
	r := newProtectedRouter()

	otherSecret, err := auth.NewToken("some-other-secret", "12345", auth.RoleStudent)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"wrong secret", otherSecret},
		{"expired", expiredToken(t)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := doRequest(t, r, "Bearer "+tt.token); rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestRequireAuthRoleMismatchIsForbidden(t *testing.T) {
	r := newProtectedRouter(auth.RoleLecturer)

	token, err := auth.NewToken(testSecret, "12345", auth.RoleStudent)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	// The token itself is valid, so this is 403, not 401.
	if rec := doRequest(t, r, "Bearer "+token); rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRequireAuthPassesClaimsThrough(t *testing.T) {
	r := newProtectedRouter(auth.RoleStudent, auth.RoleLecturer)

	token, err := auth.NewToken(testSecret, "12345", auth.RoleStudent)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rec := doRequest(t, r, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{`"user_id":"12345"`, `"user_type":"student"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %s: %s", want, body)
		}
	}
}
