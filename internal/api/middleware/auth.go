package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/myflix/myflix-api/internal/api/shared"
	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/redact"
	"github.com/myflix/myflix-api/internal/service/auth"
)

// AuthMiddleware is the authentication guard for protected routes.
// It delegates to a bearer-token strategy and attaches the resolved
// principal to the request context; on any failure the wrapped handler
// never runs.
type AuthMiddleware struct {
	strategy auth.Strategy
}

// NewAuthMiddleware creates a new AuthMiddleware with the given strategy.
func NewAuthMiddleware(strategy auth.Strategy) *AuthMiddleware {
	return &AuthMiddleware{
		strategy: strategy,
	}
}

// Authenticate validates the bearer token on incoming requests, resolves
// it to a user, and adds that principal to the request context.
// Missing, malformed, expired, or badly signed tokens and tokens whose
// user no longer exists all short-circuit with 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.strategy.Authenticate(r.Context(), r)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			case errors.Is(err, auth.ErrUnknownPrincipal):
				// Token verified but the user is gone; still unauthorized,
				// never a server error.
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to authenticate request", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := shared.WithPrincipal(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentPrincipal extracts the authenticated user from the request context.
// Returns nil and false on public routes where the guard did not run.
func CurrentPrincipal(r *http.Request) (*domain.User, bool) {
	return shared.Principal(r.Context())
}

// GetUserID extracts the authenticated user's ID from the request context.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	return shared.UserID(r.Context())
}
