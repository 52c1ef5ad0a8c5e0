package middleware

import (
	"context"
	"net/http"
	"strings"

	"barkeep/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccountIDKey contextKey = "account_id"
	RoleKey      contextKey = "account_role"
)

// Claims is the token payload issued at login. Role is one of
// customer, staff or admin; BarID is set for staff accounts only.
type Claims struct {
	AccountID string `json:"accountId"`
	Role      string `json:"role"`
	BarID     string `json:"barId,omitempty"`
	jwt.RegisteredClaims
}

// Authentication resolves the caller's account from a bearer token and
// stores it in the request context. WebSocket clients may pass the
// token as a query parameter since browsers cannot set headers on
// upgrade requests.
func Authentication(secret []byte, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractBearerToken(r)
			if tokenString == "" {
				rejectUnauthorized(w, log, r, "Missing bearer token")
				return
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
				return secret, nil
			})
			if err != nil || !token.Valid || claims.AccountID == "" {
				rejectUnauthorized(w, log, r, "Invalid bearer token")
				return
			}

			ctx := context.WithValue(r.Context(), AccountIDKey, claims.AccountID)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if token, found := strings.CutPrefix(header, "Bearer "); found {
		return token
	}
	return r.URL.Query().Get("token")
}

// AccountIDFromContext returns the authenticated caller's account ID.
// The second return is false when the request went through without
// authentication.
func AccountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AccountIDKey).(string)
	return id, ok && id != ""
}

func RoleFromContext(ctx context.Context) string {
	if role, ok := ctx.Value(RoleKey).(string); ok {
		return role
	}
	return ""
}

func rejectUnauthorized(w http.ResponseWriter, log *logger.Logger, r *http.Request, reason string) {
	requestID := ""
	if rid := r.Context().Value(RequestIDKey); rid != nil {
		requestID = rid.(string)
	}

	log.Warn("Authentication failed",
		"request_id", requestID,
		"reason", reason,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
}
