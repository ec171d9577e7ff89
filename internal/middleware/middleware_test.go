package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cbse-prep/backend/internal/auth"
)

func signToken(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func runMiddleware(authHeader string) (*httptest.ResponseRecorder, int64, bool) {
	var gotID int64
	var sawID bool

	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, sawID = r.Context().Value("user_id").(int64)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, gotID, sawID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"user_id": int64(42),
		"exp":     time.Now().Add(time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}, auth.JWTSecret)

	rec, userID, ok := runMiddleware("Bearer " + token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !ok || userID != 42 {
		t.Errorf("expected user_id 42 in context, got %d (present=%v)", userID, ok)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _, _ := runMiddleware("")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	rec, _, _ := runMiddleware("Basic dXNlcjpwYXNz")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"user_id": int64(42),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}, []byte("some-other-secret"))

	rec, _, _ := runMiddleware("Bearer " + token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong signing key, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"user_id": int64(42),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}, auth.JWTSecret)

	rec, _, _ := runMiddleware("Bearer " + token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %d", rec.Code)
	}
}
