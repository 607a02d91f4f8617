package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/myflix/myflix-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// It is the credential store the authentication subsystem resolves
// identities against.
type UserStore interface {
	// Create saves a new user to the store.
	// The caller must have hashed the password; plaintext is never persisted.
	// Returns ErrUsernameExists or ErrEmailExists on unique violations.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID, including the IDs of
	// their favorite movies.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Update modifies an existing user's details.
	// The caller MUST provide a complete user object including HashedPassword.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrUsernameExists or ErrEmailExists on unique violations.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	// This operation is permanent and cannot be undone.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddFavorite records a movie in the user's favorites set.
	// Adding a movie that is already a favorite is a no-op.
	// Returns ErrUserNotFound if the user does not exist.
	AddFavorite(ctx context.Context, userID, movieID uuid.UUID) error

	// RemoveFavorite removes a movie from the user's favorites set.
	// Removing a movie that is not a favorite is a no-op.
	// Returns ErrUserNotFound if the user does not exist.
	RemoveFavorite(ctx context.Context, userID, movieID uuid.UUID) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
