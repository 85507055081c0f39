// Package middleware provides the HTTP middleware used by the API:
// request tracing and bearer-token authentication.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/membuddy/membuddy-api/internal/api/shared"
	"github.com/membuddy/membuddy-api/internal/domain"
	"github.com/membuddy/membuddy-api/internal/service/auth"
	"github.com/membuddy/membuddy-api/internal/store"
)

// AuthMiddleware provides JWT authentication for routes. It validates the
// bearer token, resolves the subject email to a stored user, and places
// the user in the request context.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates JWT tokens from the Authorization header, loads
// the matching user, and adds it to the request context.
// Every failure mode is a 401 carrying a WWW-Authenticate: Bearer
// challenge; the response does not distinguish an unknown user from a bad
// token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondUnauthorized(w, r, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondUnauthorized(w, r, "Invalid authorization format")
			return
		}

		token := parts[1]

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondUnauthorized(w, r, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken):
				shared.RespondUnauthorized(w, r, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		user, err := m.userStore.GetByEmail(r.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondUnauthorized(w, r, "Could not validate credentials")
				return
			}
			slog.Error("failed to load user for token subject", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.CurrentUserContextKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser extracts the authenticated user from the request context.
// Returns the user and a boolean indicating if it was found.
func GetUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.CurrentUserContextKey).(*domain.User)
	return user, ok
}
