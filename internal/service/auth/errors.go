package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrUnknownPrincipal indicates the token verified but the user it
	// references no longer exists in the credential store. Treated as an
	// authentication failure, never as a server error.
	ErrUnknownPrincipal = errors.New("token principal no longer exists")

	// ErrInvalidCredentials indicates a failed username/password login.
	// The same error is returned for an unknown username and a wrong
	// password so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
