package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/myflix/myflix-api/internal/api/shared"
	"github.com/myflix/myflix-api/internal/redact"
	"github.com/myflix/myflix-api/internal/service/auth"
)

// AuthHandler handles the login endpoint: credential verification via the
// password strategy followed by token issuance.
type AuthHandler struct {
	passwordStrategy *auth.PasswordStrategy
	jwtService       auth.JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	passwordStrategy *auth.PasswordStrategy,
	jwtService auth.JWTService,
) *AuthHandler {
	return &AuthHandler{
		passwordStrategy: passwordStrategy,
		jwtService:       jwtService,
	}
}

// Login handles the POST /login endpoint.
// On success it returns the user and a fresh bearer token. Any credential
// failure returns the same generic 400 body, so the response never tells
// an unknown username apart from a wrong password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	user, err := h.passwordStrategy.Authenticate(r.Context(), r)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			shared.RespondWithJSON(w, r, http.StatusBadRequest, LoginErrorResponse{
				Message: "Something is not right",
				User:    nil,
			})
			return
		}
		slog.Error("credential store failure during login", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user)
	if err != nil {
		slog.Error("failed to generate token", "error", redact.Error(err), "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		User:  user,
		Token: token,
	})
}
