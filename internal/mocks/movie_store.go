package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/myflix/myflix-api/internal/domain"
	"github.com/myflix/myflix-api/internal/store"
)

// MockMovieStore implements store.MovieStore for testing
type MockMovieStore struct {
	// Function fields for customizable behavior
	ListFn              func(ctx context.Context) ([]*domain.Movie, error)
	GetByIDFn           func(ctx context.Context, id uuid.UUID) (*domain.Movie, error)
	GetByTitleFn        func(ctx context.Context, title string) (*domain.Movie, error)
	GetByGenreNameFn    func(ctx context.Context, genreName string) (*domain.Movie, error)
	GetByDirectorNameFn func(ctx context.Context, directorName string) (*domain.Movie, error)

	// Data for default implementation
	Movies []*domain.Movie
}

// NewMockMovieStore creates a new mock store with initialized defaults
func NewMockMovieStore(movies ...*domain.Movie) *MockMovieStore {
	return &MockMovieStore{
		Movies: movies,
	}
}

// List implements the MovieStore interface
func (m *MockMovieStore) List(ctx context.Context) ([]*domain.Movie, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Movies, nil
}

// GetByID implements the MovieStore interface
func (m *MockMovieStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, movie := range m.Movies {
		if movie.ID == id {
			return movie, nil
		}
	}
	return nil, store.ErrMovieNotFound
}

// GetByTitle implements the MovieStore interface
func (m *MockMovieStore) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	if m.GetByTitleFn != nil {
		return m.GetByTitleFn(ctx, title)
	}

	for _, movie := range m.Movies {
		if movie.Title == title {
			return movie, nil
		}
	}
	return nil, store.ErrMovieNotFound
}

// GetByGenreName implements the MovieStore interface
func (m *MockMovieStore) GetByGenreName(ctx context.Context, genreName string) (*domain.Movie, error) {
	if m.GetByGenreNameFn != nil {
		return m.GetByGenreNameFn(ctx, genreName)
	}

	for _, movie := range m.Movies {
		if movie.Genre.Name == genreName {
			return movie, nil
		}
	}
	return nil, store.ErrMovieNotFound
}

// GetByDirectorName implements the MovieStore interface
func (m *MockMovieStore) GetByDirectorName(ctx context.Context, directorName string) (*domain.Movie, error) {
	if m.GetByDirectorNameFn != nil {
		return m.GetByDirectorNameFn(ctx, directorName)
	}

	for _, movie := range m.Movies {
		if movie.Director.Name == directorName {
			return movie, nil
		}
	}
	return nil, store.ErrMovieNotFound
}

var _ store.MovieStore = (*MockMovieStore)(nil)
