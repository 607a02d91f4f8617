package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/platform/logger"
	"github.com/myflix/myflix-api/internal/store"
)

// Unique constraint names from the users migration; used to tell a
// duplicate username apart from a duplicate email.
const (
	usersUsernameConstraint = "users_username_key"
	usersEmailConstraint    = "users_email_key"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.UserStore.Create
// It saves a new user to the database, mapping unique violations on the
// username and email columns to the matching duplicate sentinels.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	query := `
		INSERT INTO users (id, username, email, hashed_password, birthday, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.Email,
		user.HashedPassword,
		user.Birthday,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, usersUsernameConstraint) {
			log.Debug("duplicate username during user creation",
				slog.String("user_id", user.ID.String()))
			return store.ErrUsernameExists
		}
		if isUniqueViolation(err, usersEmailConstraint) {
			log.Debug("duplicate email during user creation",
				slog.String("user_id", user.ID.String()))
			return store.ErrEmailExists
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))
	return nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, username, email, hashed_password, birthday, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return s.getUser(ctx, query, id)
}

// GetByUsername implements store.UserStore.GetByUsername
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, email, hashed_password, birthday, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	return s.getUser(ctx, query, username)
}

// getUser runs a single-row user query and loads the favorites list.
func (s *PostgresUserStore) getUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.Birthday,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.String("error", err.Error()))
		return nil, err
	}

	favorites, err := s.loadFavorites(ctx, user.ID)
	if err != nil {
		log.Error("failed to load user favorites",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, err
	}
	user.FavoriteMovies = favorites

	return &user, nil
}

// loadFavorites collects the IDs of the user's favorite movies.
func (s *PostgresUserStore) loadFavorites(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT movie_id
		FROM user_favorite_movies
		WHERE user_id = $1
		ORDER BY added_at
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	favorites := []uuid.UUID{}
	for rows.Next() {
		var movieID uuid.UUID
		if err := rows.Scan(&movieID); err != nil {
			return nil, err
		}
		favorites = append(favorites, movieID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return favorites, nil
}

// Update implements store.UserStore.Update
// The caller must provide a complete user object including HashedPassword.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	query := `
		UPDATE users
		SET username = $2, email = $3, hashed_password = $4, birthday = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.Email,
		user.HashedPassword,
		user.Birthday,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, usersUsernameConstraint) {
			return store.ErrUsernameExists
		}
		if isUniqueViolation(err, usersEmailConstraint) {
			return store.ErrEmailExists
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrUserNotFound
	}

	log.Info("user updated successfully",
		slog.String("user_id", user.ID.String()))
	return nil
}

// Delete implements store.UserStore.Delete
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrUserNotFound
	}

	log.Info("user deleted successfully",
		slog.String("user_id", id.String()))
	return nil
}

// AddFavorite implements store.UserStore.AddFavorite
// ON CONFLICT DO NOTHING makes re-adding an existing favorite a no-op.
func (s *PostgresUserStore) AddFavorite(ctx context.Context, userID, movieID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO user_favorite_movies (user_id, movie_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, movie_id) DO NOTHING
	`
	_, err := s.db.ExecContext(ctx, query, userID, movieID)
	if err != nil {
		if isForeignKeyViolation(err) {
			// Either the user or the movie is gone.
			return store.ErrUserNotFound
		}
		log.Error("failed to add favorite",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("movie_id", movieID.String()))
		return err
	}

	return nil
}

// RemoveFavorite implements store.UserStore.RemoveFavorite
// Removing a movie that is not a favorite is a no-op.
func (s *PostgresUserStore) RemoveFavorite(ctx context.Context, userID, movieID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM user_favorite_movies
		WHERE user_id = $1 AND movie_id = $2
	`
	_, err := s.db.ExecContext(ctx, query, userID, movieID)
	if err != nil {
		log.Error("failed to remove favorite",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("movie_id", movieID.String()))
		return err
	}

	return nil
}
