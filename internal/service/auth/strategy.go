package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/platform/logger"
	"github.com/myflix/myflix-api/internal/store"
)

// Strategy authenticates an incoming request and resolves it to a user.
// Two implementations exist: PasswordStrategy for the login endpoint and
// BearerTokenStrategy for every protected route. Routes pick their
// strategy at registration time.
type Strategy interface {
	// Authenticate extracts credentials from the request and resolves the
	// principal. The returned user is valid only for the current request.
	Authenticate(ctx context.Context, r *http.Request) (*domain.User, error)
}

// Credentials is the transient (username, password) pair submitted at
// login. It is never persisted.
type Credentials struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

// PasswordStrategy authenticates a request by the username and password
// in its body. Accepts both JSON and form-encoded bodies.
type PasswordStrategy struct {
	userStore store.UserStore
	verifier  PasswordVerifier
}

// NewPasswordStrategy creates a PasswordStrategy backed by the given
// credential store and password verifier.
func NewPasswordStrategy(userStore store.UserStore, verifier PasswordVerifier) *PasswordStrategy {
	return &PasswordStrategy{
		userStore: userStore,
		verifier:  verifier,
	}
}

// Authenticate implements Strategy. It looks the user up by username and
// verifies the submitted password against the stored hash. An unknown
// username and a wrong password both return ErrInvalidCredentials so the
// response cannot reveal which field was wrong.
func (s *PasswordStrategy) Authenticate(ctx context.Context, r *http.Request) (*domain.User, error) {
	creds, err := extractCredentials(r)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.AuthenticateCredentials(ctx, creds.Username, creds.Password)
}

// AuthenticateCredentials verifies an already-extracted credential pair.
func (s *PasswordStrategy) AuthenticateCredentials(
	ctx context.Context,
	username, password string,
) (*domain.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login failed: unknown username")
			return nil, ErrInvalidCredentials
		}
		log.Error("credential store lookup failed during login", "error", err)
		return nil, err
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login failed: password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// BearerTokenStrategy authenticates a request by the JWT in its
// Authorization header and resolves the embedded user ID against the
// credential store.
type BearerTokenStrategy struct {
	jwtService JWTService
	userStore  store.UserStore
}

// NewBearerTokenStrategy creates a BearerTokenStrategy using the given
// token verifier and credential store.
func NewBearerTokenStrategy(jwtService JWTService, userStore store.UserStore) *BearerTokenStrategy {
	return &BearerTokenStrategy{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate implements Strategy. Verification order: token structure
// and signature, then expiry, then principal resolution. A token whose
// user has since been deleted yields ErrUnknownPrincipal, which callers
// must treat as unauthorized rather than a server fault.
func (s *BearerTokenStrategy) Authenticate(ctx context.Context, r *http.Request) (*domain.User, error) {
	tokenString, err := ExtractBearerToken(r)
	if err != nil {
		return nil, err
	}

	claims, err := s.jwtService.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUnknownPrincipal
		}
		return nil, err
	}

	return user, nil
}

// ExtractBearerToken pulls the token out of a request's
// "Authorization: Bearer <token>" header.
// Returns ErrMissingToken when the header is absent and ErrInvalidToken
// when it does not follow the bearer scheme.
func ExtractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

// extractCredentials reads the login credential pair from a JSON or
// form-encoded request body.
func extractCredentials(r *http.Request) (*Credentials, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "application/json") {
		var creds Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			return nil, err
		}
		return &creds, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &Credentials{
		Username: r.PostFormValue("Username"),
		Password: r.PostFormValue("Password"),
	}, nil
}
