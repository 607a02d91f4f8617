package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/platform/logger"
	"github.com/myflix/myflix-api/internal/store"
)

// PostgresMovieStore implements the store.MovieStore interface
// using a PostgreSQL database as the storage backend.
type PostgresMovieStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMovieStore creates a new PostgreSQL implementation of the
// MovieStore interface. If logger is nil, a default logger will be used.
func NewPostgresMovieStore(db store.DBTX, logger *slog.Logger) *PostgresMovieStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMovieStore{
		db:     db,
		logger: logger.With(slog.String("component", "movie_store")),
	}
}

// Ensure PostgresMovieStore implements store.MovieStore interface
var _ store.MovieStore = (*PostgresMovieStore)(nil)

const movieColumns = `
	id, title, description,
	genre_name, genre_description,
	director_name, director_bio, director_birth, director_death,
	actors, image_path, featured,
	created_at, updated_at
`

// List implements store.MovieStore.List
func (s *PostgresMovieStore) List(ctx context.Context) ([]*domain.Movie, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY title`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list movies",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	movies := []*domain.Movie{}
	for rows.Next() {
		movie, err := scanMovie(rows.Scan)
		if err != nil {
			log.Error("failed to scan movie row",
				slog.String("error", err.Error()))
			return nil, err
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

// GetByID implements store.MovieStore.GetByID
// Returns store.ErrMovieNotFound if the movie does not exist.
func (s *PostgresMovieStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`
	return s.getMovie(ctx, query, id)
}

// GetByTitle implements store.MovieStore.GetByTitle
// Returns store.ErrMovieNotFound if no movie has that title.
func (s *PostgresMovieStore) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE title = $1`
	return s.getMovie(ctx, query, title)
}

// GetByGenreName implements store.MovieStore.GetByGenreName
// Returns one representative movie of the genre, matching the source
// behavior of serving genre details from any movie that carries them.
func (s *PostgresMovieStore) GetByGenreName(ctx context.Context, genreName string) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE genre_name = $1 ORDER BY title LIMIT 1`
	return s.getMovie(ctx, query, genreName)
}

// GetByDirectorName implements store.MovieStore.GetByDirectorName
func (s *PostgresMovieStore) GetByDirectorName(ctx context.Context, directorName string) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE director_name = $1 ORDER BY title LIMIT 1`
	return s.getMovie(ctx, query, directorName)
}

// getMovie runs a single-row movie query.
func (s *PostgresMovieStore) getMovie(ctx context.Context, query string, arg any) (*domain.Movie, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, query, arg)
	movie, err := scanMovie(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrMovieNotFound
		}
		log.Error("failed to get movie",
			slog.String("error", err.Error()))
		return nil, err
	}

	return movie, nil
}

// scanMovie maps one result row onto a domain.Movie. The actors list is
// stored as a JSONB array.
func scanMovie(scan func(dest ...any) error) (*domain.Movie, error) {
	var movie domain.Movie
	var actorsJSON []byte

	err := scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genre.Name,
		&movie.Genre.Description,
		&movie.Director.Name,
		&movie.Director.Bio,
		&movie.Director.Birth,
		&movie.Director.Death,
		&actorsJSON,
		&movie.ImagePath,
		&movie.Featured,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	movie.Actors = []string{}
	if len(actorsJSON) > 0 {
		if err := json.Unmarshal(actorsJSON, &movie.Actors); err != nil {
			return nil, fmt.Errorf("failed to decode actors list: %w", err)
		}
	}

	return &movie, nil
}
