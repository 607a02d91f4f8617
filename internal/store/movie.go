package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/myflix/myflix-api/internal/domain"
)

// MovieStore defines the interface for movie catalog persistence.
type MovieStore interface {
	// List retrieves all movies in the catalog.
	List(ctx context.Context) ([]*domain.Movie, error)

	// GetByID retrieves a movie by its unique ID.
	// Returns ErrMovieNotFound if the movie does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error)

	// GetByTitle retrieves a movie by its exact title.
	// Returns ErrMovieNotFound if no movie has that title.
	GetByTitle(ctx context.Context, title string) (*domain.Movie, error)

	// GetByGenreName retrieves one movie whose genre matches the given name.
	// Returns ErrMovieNotFound if no movie has that genre.
	GetByGenreName(ctx context.Context, genreName string) (*domain.Movie, error)

	// GetByDirectorName retrieves one movie directed by the given director.
	// Returns ErrMovieNotFound if no movie has that director.
	GetByDirectorName(ctx context.Context, directorName string) (*domain.Movie, error)
}
