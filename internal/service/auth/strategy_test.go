package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/mocks"
	"github.com/myflix/myflix-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredUser(t *testing.T, username, password string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, "fan@example.com", password)
	require.NoError(t, err)
	user.HashedPassword = "hashed:" + password
	user.Password = ""
	return user
}

func TestPasswordStrategyAuthenticateCredentials(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*auth.PasswordStrategy, *domain.User) {
		t.Helper()
		userStore := mocks.NewMockUserStore()
		user := newStoredUser(t, "moviefan", "password123")
		userStore.Users[user.Username] = user
		return auth.NewPasswordStrategy(userStore, &mocks.MockPasswordHasher{}), user
	}

	t.Run("valid credentials resolve the user", func(t *testing.T) {
		t.Parallel()
		strategy, want := setup(t)

		got, err := strategy.AuthenticateCredentials(context.Background(), "moviefan", "password123")
		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
	})

	t.Run("unknown username and wrong password return the same error", func(t *testing.T) {
		t.Parallel()
		strategy, _ := setup(t)

		_, unknownErr := strategy.AuthenticateCredentials(context.Background(), "nosuchuser", "password123")
		_, wrongPassErr := strategy.AuthenticateCredentials(context.Background(), "moviefan", "wrongpassword")

		// Both failure modes must be indistinguishable to the caller.
		assert.ErrorIs(t, unknownErr, auth.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongPassErr, auth.ErrInvalidCredentials)
		assert.Equal(t, unknownErr, wrongPassErr)
	})

	t.Run("empty credentials are rejected", func(t *testing.T) {
		t.Parallel()
		strategy, _ := setup(t)

		_, err := strategy.AuthenticateCredentials(context.Background(), "", "")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestPasswordStrategyAuthenticate(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) *auth.PasswordStrategy {
		t.Helper()
		userStore := mocks.NewMockUserStore()
		user := newStoredUser(t, "moviefan", "password123")
		userStore.Users[user.Username] = user
		return auth.NewPasswordStrategy(userStore, &mocks.MockPasswordHasher{})
	}

	t.Run("accepts JSON body", func(t *testing.T) {
		t.Parallel()
		strategy := setup(t)

		req := httptest.NewRequest(
			http.MethodPost,
			"/login",
			strings.NewReader(`{"Username":"moviefan","Password":"password123"}`),
		)
		req.Header.Set("Content-Type", "application/json")

		user, err := strategy.Authenticate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "moviefan", user.Username)
	})

	t.Run("accepts form body", func(t *testing.T) {
		t.Parallel()
		strategy := setup(t)

		form := url.Values{}
		form.Set("Username", "moviefan")
		form.Set("Password", "password123")
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		user, err := strategy.Authenticate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "moviefan", user.Username)
	})

	t.Run("malformed JSON is an invalid credential, not a server error", func(t *testing.T) {
		t.Parallel()
		strategy := setup(t)

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"Username":`))
		req.Header.Set("Content-Type", "application/json")

		_, err := strategy.Authenticate(context.Background(), req)
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestBearerTokenStrategy(t *testing.T) {
	t.Parallel()

	user := newStoredUser(t, "moviefan", "password123")

	t.Run("valid token resolves the principal", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		userStore.Users[user.Username] = user
		jwtService := &mocks.MockJWTService{Claims: &auth.Claims{UserID: user.ID, Subject: user.Username}}
		strategy := auth.NewBearerTokenStrategy(jwtService, userStore)

		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		req.Header.Set("Authorization", "Bearer some-valid-token")

		got, err := strategy.Authenticate(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("token for deleted user yields ErrUnknownPrincipal", func(t *testing.T) {
		t.Parallel()
		// Empty store: the token verifies but its user is gone.
		userStore := mocks.NewMockUserStore()
		jwtService := &mocks.MockJWTService{Claims: &auth.Claims{UserID: user.ID, Subject: user.Username}}
		strategy := auth.NewBearerTokenStrategy(jwtService, userStore)

		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		req.Header.Set("Authorization", "Bearer some-valid-token")

		_, err := strategy.Authenticate(context.Background(), req)
		assert.ErrorIs(t, err, auth.ErrUnknownPrincipal)
	})

	t.Run("token validation failure is propagated", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		jwtService := &mocks.MockJWTService{Err: auth.ErrExpiredToken}
		strategy := auth.NewBearerTokenStrategy(jwtService, userStore)

		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		req.Header.Set("Authorization", "Bearer expired-token")

		_, err := strategy.Authenticate(context.Background(), req)
		assert.ErrorIs(t, err, auth.ErrExpiredToken)
	})
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid bearer header",
			header:    "Bearer abc123",
			wantToken: "abc123",
		},
		{
			name:    "missing header",
			header:  "",
			wantErr: auth.ErrMissingToken,
		},
		{
			name:    "wrong scheme",
			header:  "Basic abc123",
			wantErr: auth.ErrInvalidToken,
		},
		{
			name:    "bearer with empty token",
			header:  "Bearer ",
			wantErr: auth.ErrInvalidToken,
		},
		{
			name:    "too many parts",
			header:  "Bearer abc 123",
			wantErr: auth.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/movies", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := auth.ExtractBearerToken(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
