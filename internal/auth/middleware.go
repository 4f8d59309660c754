package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MariamElsayed172/Notes-Management-API/internal/apperr"
)

type contextKey string

const identityKey = contextKey("identity")

// IdentityFromContext returns the authenticated user id attached by the
// middleware. The second return is false if the request never passed
// through Middleware.
func IdentityFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(identityKey).(string)
	return id, ok
}

// Middleware creates a middleware for protecting routes. It extracts a
// bearer token from the Authorization header, verifies it, and attaches
// the resolved identity to the request context. On any failure the
// downstream handler is never invoked.
func Middleware(tm *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenStr == "" {
				unauthorized(w, apperr.ErrMissingToken)
				return
			}

			userID, err := tm.Verify(tokenStr)
			if err != nil {
				unauthorized(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": apperr.Message(err)})
}
