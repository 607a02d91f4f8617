package api

import (
	"time"

	"github.com/myflix/myflix-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// Field names match the wire format the original clients send.
type RegisterRequest struct {
	Username string     `json:"Username" validate:"required,min=5,alphanum"`
	Password string     `json:"Password" validate:"required,min=6,max=72"`
	Email    string     `json:"Email"    validate:"required,email"`
	Birthday *time.Time `json:"Birthday" validate:"omitempty"`
}

// UpdateUserRequest defines the payload for the profile update endpoint.
// All fields are optional; absent fields are left unchanged.
type UpdateUserRequest struct {
	Username *string    `json:"Username" validate:"omitempty,min=5,alphanum"`
	Password *string    `json:"Password" validate:"omitempty,min=6,max=72"`
	Email    *string    `json:"Email"    validate:"omitempty,email"`
	Birthday *time.Time `json:"Birthday" validate:"omitempty"`
}

// LoginResponse defines the successful response for the login endpoint:
// the authenticated user and a fresh bearer token.
type LoginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// LoginErrorResponse defines the failure response for the login endpoint.
// The message is deliberately generic: it never reveals whether the
// username or the password was wrong.
type LoginErrorResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"` // always null on failure
}

// ValidationErrorResponse carries field validation failures for
// registration and profile updates.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}
