package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("creates valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("moviefan", "fan@example.com", "password123")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "moviefan", user.Username)
		assert.Equal(t, "fan@example.com", user.Email)
		assert.Equal(t, "password123", user.Password)
		assert.Empty(t, user.HashedPassword)
		assert.NotNil(t, user.FavoriteMovies)
		assert.Empty(t, user.FavoriteMovies)
		assert.False(t, user.CreatedAt.IsZero())
		assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("abc", "fan@example.com", "password123")
		assert.ErrorIs(t, err, ErrUsernameTooShort)
	})
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	validUser := func() *User {
		return &User{
			ID:       uuid.New(),
			Username: "moviefan",
			Email:    "fan@example.com",
			Password: "password123",
		}
	}

	tests := []struct {
		name    string
		modify  func(u *User)
		wantErr error
	}{
		{
			name:    "valid user",
			modify:  func(u *User) {},
			wantErr: nil,
		},
		{
			name:    "empty ID",
			modify:  func(u *User) { u.ID = uuid.Nil },
			wantErr: ErrEmptyUserID,
		},
		{
			name:    "username too short",
			modify:  func(u *User) { u.Username = "abcd" },
			wantErr: ErrUsernameTooShort,
		},
		{
			name:    "username not alphanumeric",
			modify:  func(u *User) { u.Username = "movie-fan!" },
			wantErr: ErrUsernameNotAlphanum,
		},
		{
			name:    "empty email",
			modify:  func(u *User) { u.Email = "" },
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "invalid email format",
			modify:  func(u *User) { u.Email = "not-an-email" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email missing domain dot",
			modify:  func(u *User) { u.Email = "fan@example" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "password too short",
			modify:  func(u *User) { u.Password = "12345" },
			wantErr: ErrPasswordTooShort,
		},
		{
			name:    "password too long",
			modify:  func(u *User) { u.Password = strings.Repeat("a", 73) },
			wantErr: ErrPasswordTooLong,
		},
		{
			name: "no password and no hash",
			modify: func(u *User) {
				u.Password = ""
				u.HashedPassword = ""
			},
			wantErr: ErrEmptyPassword,
		},
		{
			name: "stored user with only a hash is valid",
			modify: func(u *User) {
				u.Password = ""
				u.HashedPassword = "some-bcrypt-hash"
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			user := validUser()
			tt.modify(user)

			err := user.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHasFavorite(t *testing.T) {
	t.Parallel()

	movieID := uuid.New()
	otherID := uuid.New()

	user := &User{FavoriteMovies: []uuid.UUID{movieID}}

	assert.True(t, user.HasFavorite(movieID))
	assert.False(t, user.HasFavorite(otherID))
}
