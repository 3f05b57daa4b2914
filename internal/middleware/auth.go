package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/and161185/marketplace/internal/auth"
	"github.com/and161185/marketplace/internal/model"
)

type contextKey string

const UserContextKey contextKey = "user"

// AuthMiddleware verifies the bearer token from the auth provider and puts
// the authenticated user into the request context. There is no local user
// store: the token subject is the user.
func AuthMiddleware(tm *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			userID, err := tm.ParseToken(tokenStr)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, model.User{ID: userID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
