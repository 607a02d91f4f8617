package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/mocks"
	"github.com/myflix/myflix-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginHandler(t *testing.T, userStore *mocks.MockUserStore) *AuthHandler {
	t.Helper()
	strategy := auth.NewPasswordStrategy(userStore, &mocks.MockPasswordHasher{})
	jwtService := &mocks.MockJWTService{Token: "issued-token"}
	return NewAuthHandler(strategy, jwtService)
}

func storedTestUser(t *testing.T) *domain.User {
	t.Helper()
	user, err := domain.NewUser("moviefan", "fan@example.com", "password123")
	require.NoError(t, err)
	user.HashedPassword = "hashed:password123"
	user.Password = ""
	return user
}

func postLogin(handler *AuthHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.Login(rr, req)
	return rr
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials return user and token", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		user := storedTestUser(t)
		userStore.Users[user.Username] = user
		handler := newLoginHandler(t, userStore)

		rr := postLogin(handler, `{"Username":"moviefan","Password":"password123"}`)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "issued-token", resp.Token)
		require.NotNil(t, resp.User)
		assert.Equal(t, user.ID, resp.User.ID)

		// The password hash must never appear in the response body.
		assert.NotContains(t, rr.Body.String(), "hashed:password123")
	})

	t.Run("unknown username and wrong password return identical responses", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		user := storedTestUser(t)
		userStore.Users[user.Username] = user
		handler := newLoginHandler(t, userStore)

		unknownUser := postLogin(handler, `{"Username":"nosuchuser","Password":"password123"}`)
		wrongPassword := postLogin(handler, `{"Username":"moviefan","Password":"wrongpassword"}`)

		assert.Equal(t, http.StatusBadRequest, unknownUser.Code)
		assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
		// Byte-identical failure bodies: the response must not reveal
		// whether the username exists.
		assert.Equal(t, unknownUser.Body.String(), wrongPassword.Body.String())

		var resp LoginErrorResponse
		require.NoError(t, json.Unmarshal(unknownUser.Body.Bytes(), &resp))
		assert.Equal(t, "Something is not right", resp.Message)
		assert.Nil(t, resp.User)
	})

	t.Run("malformed body is a credential failure", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		handler := newLoginHandler(t, userStore)

		rr := postLogin(handler, `{"Username":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp LoginErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Something is not right", resp.Message)
	})

	t.Run("store failure is a server error, not a credential failure", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		userStore.GetByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			return nil, errors.New("connection refused")
		}
		handler := newLoginHandler(t, userStore)

		rr := postLogin(handler, `{"Username":"moviefan","Password":"password123"}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		// Internal detail must not reach the client.
		assert.NotContains(t, rr.Body.String(), "connection refused")
	})
}
