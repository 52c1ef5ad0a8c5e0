package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"barkeep/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Service: "test",
	})
}

func mintToken(t *testing.T, secret []byte, accountID, role string) string {
	t.Helper()
	claims := &Claims{
		AccountID: accountID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestAccountIDFromContext(t *testing.T) {
	if id, ok := AccountIDFromContext(context.Background()); ok || id != "" {
		t.Errorf("expected no identity on a bare context, got %q ok=%v", id, ok)
	}

	ctx := context.WithValue(context.Background(), AccountIDKey, "acct-1")
	if id, ok := AccountIDFromContext(ctx); !ok || id != "acct-1" {
		t.Errorf("expected acct-1, got %q ok=%v", id, ok)
	}

	empty := context.WithValue(context.Background(), AccountIDKey, "")
	if _, ok := AccountIDFromContext(empty); ok {
		t.Error("expected empty account ID to read as unauthenticated")
	}
}

func TestAuthenticationInjectsIdentity(t *testing.T) {
	secret := []byte("test-secret")

	var gotID, gotRole string
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = AccountIDFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
	})

	handler := Authentication(secret, testLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, secret, "acct-1", "customer"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !gotOK || gotID != "acct-1" {
		t.Errorf("expected acct-1 in context, got %q ok=%v", gotID, gotOK)
	}
	if gotRole != "customer" {
		t.Errorf("expected customer role, got %q", gotRole)
	}
}

func TestAuthenticationRejectsMissingToken(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	handler := Authentication([]byte("test-secret"), testLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Error("expected next handler not to run")
	}
}
