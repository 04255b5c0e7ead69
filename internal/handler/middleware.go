package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/adie253/chatroom-backend/internal/auth"
	"github.com/adie253/chatroom-backend/internal/service"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// ClaimsFromContext returns the verified token claims stored by Authenticate.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims, ok
}

// Authenticate gates privileged routes on a bearer token.
// Missing token: 401. Invalid or expired token: 403.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		claims, err := h.authService.VerifyToken(token)
		if err != nil {
			if errors.Is(err, service.ErrMissingToken) {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.WriteHeader(http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsContextKey, claims)))
	})
}

// corsMiddleware mirrors the permissive CORS posture of the original
// deployment (single trusted frontend, dev convenience).
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
