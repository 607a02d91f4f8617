package auth

import (
	"context"
	"testing"
	"time"

	"github.com/myflix/myflix-api/internal/config"
	"github.com/myflix/myflix-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret      = "test-secret-that-is-long-enough-for-testing"
	testWrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

func testAuthConfig(secret string) config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            secret,
		TokenLifetimeMinutes: 7 * 24 * 60,
		BcryptCost:           10,
	}
}

func testUser(t *testing.T) *domain.User {
	t.Helper()
	user, err := domain.NewUser("moviefan", "fan@example.com", "password123")
	require.NoError(t, err)
	return user
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTService(testAuthConfig("too-short"))
		assert.Error(t, err)
	})

	t.Run("rejects empty secret", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTService(testAuthConfig(""))
		assert.Error(t, err)
	})

	t.Run("accepts sufficiently long secret", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(testAuthConfig(testSecret))
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	user := testUser(t)

	svc, err := NewJWTServiceWithTimeFunc(testAuthConfig(testSecret), func() time.Time {
		return fixedTime
	})
	require.NoError(t, err)

	t.Run("generates valid token", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken(context.Background(), user)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)

		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Username, claims.Subject)
		// Compare Unix timestamps to avoid timezone issues
		assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
		assert.Equal(t, fixedTime.Add(7*24*time.Hour).Unix(), claims.ExpiresAt.Unix())
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("tokens carry unique IDs", func(t *testing.T) {
		t.Parallel()
		first, err := svc.GenerateToken(context.Background(), user)
		require.NoError(t, err)
		second, err := svc.GenerateToken(context.Background(), user)
		require.NoError(t, err)

		firstClaims, err := svc.ValidateToken(context.Background(), first)
		require.NoError(t, err)
		secondClaims, err := svc.ValidateToken(context.Background(), second)
		require.NoError(t, err)

		assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
	})
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 7 * 24 * time.Hour
	user := testUser(t)

	newService := func(t *testing.T, secret string, now time.Time) JWTService {
		t.Helper()
		svc, err := NewJWTServiceWithTimeFunc(testAuthConfig(secret), func() time.Time {
			return now
		})
		require.NoError(t, err)
		return svc
	}

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				svc := newService(t, testSecret, fixedTime)
				token, err := svc.GenerateToken(context.Background(), user)
				require.NoError(t, err)
				return svc, token
			},
			wantErr: nil,
		},
		{
			name: "expired token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				genSvc := newService(t, testSecret, fixedTime)
				token, err := genSvc.GenerateToken(context.Background(), user)
				require.NoError(t, err)

				// Validate well past expiry and clock skew allowance
				valSvc := newService(t, testSecret, fixedTime.Add(tokenLifetime+time.Hour))
				return valSvc, token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "token within clock skew of expiry still valid",
			setupFunc: func(t *testing.T) (JWTService, string) {
				genSvc := newService(t, testSecret, fixedTime)
				token, err := genSvc.GenerateToken(context.Background(), user)
				require.NoError(t, err)

				valSvc := newService(t, testSecret, fixedTime.Add(tokenLifetime+time.Minute))
				return valSvc, token
			},
			wantErr: nil,
		},
		{
			name: "invalid signature",
			setupFunc: func(t *testing.T) (JWTService, string) {
				genSvc := newService(t, testWrongSecret, fixedTime)
				token, err := genSvc.GenerateToken(context.Background(), user)
				require.NoError(t, err)

				valSvc := newService(t, testSecret, fixedTime)
				return valSvc, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				return newService(t, testSecret, fixedTime), "not.a.jwt"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "empty token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				return newService(t, testSecret, fixedTime), ""
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tt.setupFunc(t)

			claims, err := svc.ValidateToken(context.Background(), token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				assert.Equal(t, user.ID, claims.UserID)
			}
		})
	}
}
