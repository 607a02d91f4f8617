package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/service/auth"
	"github.com/myflix/myflix-api/internal/store"
)

// ProfileUpdate carries the optional fields of a profile update request.
// Nil fields are left unchanged.
type ProfileUpdate struct {
	Username *string
	Email    *string
	Password *string
	Birthday *time.Time
}

// UserService provides account operations on top of the credential store.
// Every mutating operation takes the authenticated principal's ID and
// refuses to touch another user's record.
type UserService interface {
	// Register creates a new account. The password is hashed before it
	// ever reaches the store.
	Register(ctx context.Context, username, email, password string, birthday *time.Time) (*domain.User, error)

	// GetUser retrieves a user by their ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// UpdateProfile applies the given field changes to the target user.
	// Returns ErrNotOwner without touching the store when the principal
	// is not the target.
	UpdateProfile(ctx context.Context, principalID, targetID uuid.UUID, update ProfileUpdate) (*domain.User, error)

	// DeleteAccount permanently removes the target user.
	// Returns ErrNotOwner without touching the store when the principal
	// is not the target.
	DeleteAccount(ctx context.Context, principalID, targetID uuid.UUID) error

	// AddFavorite adds a movie to the target user's favorites and returns
	// the updated user. Adding an existing favorite is a no-op.
	AddFavorite(ctx context.Context, principalID, targetID, movieID uuid.UUID) (*domain.User, error)

	// RemoveFavorite removes a movie from the target user's favorites and
	// returns the updated user.
	RemoveFavorite(ctx context.Context, principalID, targetID, movieID uuid.UUID) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore  store.UserStore
	movieStore store.MovieStore
	hasher     auth.PasswordHasher
	db         *sql.DB
	logger     *slog.Logger

	// runTx wraps mutations in a transaction. Overridable in tests.
	runTx func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	movieStore store.MovieStore,
	hasher auth.PasswordHasher,
	db *sql.DB,
	logger *slog.Logger,
) UserService {
	return NewUserServiceWithTxRunner(
		userStore, movieStore, hasher, db, logger, store.RunInTransaction)
}

// NewUserServiceWithTxRunner creates a UserService with a custom
// transaction runner. Tests use it to run mutations against in-memory
// stores without a live database.
func NewUserServiceWithTxRunner(
	userStore store.UserStore,
	movieStore store.MovieStore,
	hasher auth.PasswordHasher,
	db *sql.DB,
	logger *slog.Logger,
	runTx func(ctx context.Context, db *sql.DB, fn store.TxFn) error,
) UserService {
	return &UserServiceImpl{
		userStore:  userStore,
		movieStore: movieStore,
		hasher:     hasher,
		db:         db,
		logger:     logger.With("component", "user_service"),
		runTx:      runTx,
	}
}

// Register creates a new account with a hashed password.
func (s *UserServiceImpl) Register(
	ctx context.Context,
	username, email, password string,
	birthday *time.Time,
) (*domain.User, error) {
	user, err := domain.NewUser(username, email, password)
	if err != nil {
		return nil, err
	}
	user.Birthday = birthday

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password during registration",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = "" // plaintext is never stored

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("attempted to register duplicate user",
				"username", username)
		} else {
			s.logger.Error("failed to save user",
				"error", err,
				"username", username)
		}
		return nil, err
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"username", user.Username)

	return user, nil
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies optional field changes after the ownership check.
func (s *UserServiceImpl) UpdateProfile(
	ctx context.Context,
	principalID, targetID uuid.UUID,
	update ProfileUpdate,
) (*domain.User, error) {
	if err := s.requireOwner(principalID, targetID); err != nil {
		return nil, err
	}

	var updated *domain.User
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, targetID)
		if err != nil {
			return err
		}

		if update.Username != nil {
			user.Username = *update.Username
		}
		if update.Email != nil {
			user.Email = *update.Email
		}
		if update.Birthday != nil {
			user.Birthday = update.Birthday
		}
		if update.Password != nil {
			hashed, err := s.hasher.Hash(*update.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			user.HashedPassword = hashed
		}
		user.UpdatedAt = time.Now().UTC()

		if err := user.Validate(); err != nil {
			return err
		}

		if err := txStore.Update(ctx, user); err != nil {
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		if !store.IsDuplicateError(err) && !store.IsNotFoundError(err) {
			s.logger.Error("failed to update user profile",
				"error", err,
				"user_id", targetID)
		}
		return nil, err
	}

	s.logger.Info("user profile updated", "user_id", targetID)
	return updated, nil
}

// DeleteAccount permanently removes the target user after the ownership check.
func (s *UserServiceImpl) DeleteAccount(ctx context.Context, principalID, targetID uuid.UUID) error {
	if err := s.requireOwner(principalID, targetID); err != nil {
		return err
	}

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Delete(ctx, targetID)
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("attempted to delete non-existent user",
				"user_id", targetID)
		} else {
			s.logger.Error("failed to delete user",
				"error", err,
				"user_id", targetID)
		}
		return err
	}

	s.logger.Info("user deleted", "user_id", targetID)
	return nil
}

// AddFavorite adds a movie to the target user's favorites.
func (s *UserServiceImpl) AddFavorite(
	ctx context.Context,
	principalID, targetID, movieID uuid.UUID,
) (*domain.User, error) {
	if err := s.requireOwner(principalID, targetID); err != nil {
		return nil, err
	}

	// The movie must exist before it can be referenced.
	if _, err := s.movieStore.GetByID(ctx, movieID); err != nil {
		return nil, err
	}

	if err := s.userStore.AddFavorite(ctx, targetID, movieID); err != nil {
		s.logger.Error("failed to add favorite",
			"error", err,
			"user_id", targetID,
			"movie_id", movieID)
		return nil, err
	}

	return s.userStore.GetByID(ctx, targetID)
}

// RemoveFavorite removes a movie from the target user's favorites.
func (s *UserServiceImpl) RemoveFavorite(
	ctx context.Context,
	principalID, targetID, movieID uuid.UUID,
) (*domain.User, error) {
	if err := s.requireOwner(principalID, targetID); err != nil {
		return nil, err
	}

	if err := s.userStore.RemoveFavorite(ctx, targetID, movieID); err != nil {
		s.logger.Error("failed to remove favorite",
			"error", err,
			"user_id", targetID,
			"movie_id", movieID)
		return nil, err
	}

	return s.userStore.GetByID(ctx, targetID)
}

// requireOwner is the authorization check: the authenticated principal
// must be the owner of the target resource. It runs before any store
// mutation.
func (s *UserServiceImpl) requireOwner(principalID, targetID uuid.UUID) error {
	if principalID != targetID {
		s.logger.Debug("ownership check failed",
			"principal_id", principalID,
			"target_id", targetID)
		return ErrNotOwner
	}
	return nil
}
