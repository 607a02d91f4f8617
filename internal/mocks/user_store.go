package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
// Mutation call counters let tests assert that a rejected operation
// never reached the store.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, user *domain.User) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFn  func(ctx context.Context, username string) (*domain.User, error)
	UpdateFn         func(ctx context.Context, user *domain.User) error
	DeleteFn         func(ctx context.Context, id uuid.UUID) error
	AddFavoriteFn    func(ctx context.Context, userID, movieID uuid.UUID) error
	RemoveFavoriteFn func(ctx context.Context, userID, movieID uuid.UUID) error

	// Data for default implementation, keyed by username
	Users map[string]*domain.User

	// Mutation counters
	CreateCalls         int
	UpdateCalls         int
	DeleteCalls         int
	AddFavoriteCalls    int
	RemoveFavoriteCalls int
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.CreateCalls++

	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, exists := m.Users[user.Username]; exists {
		return store.ErrUsernameExists
	}
	for _, existing := range m.Users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	m.Users[user.Username] = user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, store.ErrUserNotFound
}

// GetByUsername implements the UserStore interface
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	user, exists := m.Users[username]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	return user, nil
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	m.UpdateCalls++

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	for username, existing := range m.Users {
		if existing.ID == user.ID {
			if username != user.Username {
				if _, taken := m.Users[user.Username]; taken {
					return store.ErrUsernameExists
				}
				delete(m.Users, username)
			}
			m.Users[user.Username] = user
			return nil
		}
	}

	return store.ErrUserNotFound
}

// Delete implements the UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalls++

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	for username, user := range m.Users {
		if user.ID == id {
			delete(m.Users, username)
			return nil
		}
	}

	return store.ErrUserNotFound
}

// AddFavorite implements the UserStore interface
func (m *MockUserStore) AddFavorite(ctx context.Context, userID, movieID uuid.UUID) error {
	m.AddFavoriteCalls++

	if m.AddFavoriteFn != nil {
		return m.AddFavoriteFn(ctx, userID, movieID)
	}

	for _, user := range m.Users {
		if user.ID == userID {
			if !user.HasFavorite(movieID) {
				user.FavoriteMovies = append(user.FavoriteMovies, movieID)
			}
			return nil
		}
	}

	return store.ErrUserNotFound
}

// RemoveFavorite implements the UserStore interface
func (m *MockUserStore) RemoveFavorite(ctx context.Context, userID, movieID uuid.UUID) error {
	m.RemoveFavoriteCalls++

	if m.RemoveFavoriteFn != nil {
		return m.RemoveFavoriteFn(ctx, userID, movieID)
	}

	for _, user := range m.Users {
		if user.ID == userID {
			kept := user.FavoriteMovies[:0]
			for _, id := range user.FavoriteMovies {
				if id != movieID {
					kept = append(kept, id)
				}
			}
			user.FavoriteMovies = kept
			return nil
		}
	}

	return store.ErrUserNotFound
}

// WithTx implements the UserStore interface. The mock has no transaction
// semantics, so it returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// MutationCalls returns the total number of mutating store calls, used by
// tests asserting that forbidden requests never touch the store.
func (m *MockUserStore) MutationCalls() int {
	return m.CreateCalls + m.UpdateCalls + m.DeleteCalls + m.AddFavoriteCalls + m.RemoveFavoriteCalls
}

var _ store.UserStore = (*MockUserStore)(nil)
