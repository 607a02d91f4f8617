package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Movie validation errors
var (
	ErrEmptyMovieID     = errors.New("movie ID cannot be empty")
	ErrEmptyMovieTitle  = errors.New("movie title cannot be empty")
	ErrEmptyDescription = errors.New("movie description cannot be empty")
)

// Genre describes a movie's genre classification.
type Genre struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Director holds biographical information about a movie's director.
type Director struct {
	Name  string     `json:"name"`
	Bio   string     `json:"bio"`
	Birth *time.Time `json:"birth,omitempty"`
	Death *time.Time `json:"death,omitempty"`
}

// Movie represents a single entry in the movie catalog.
type Movie struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       Genre     `json:"genre"`
	Director    Director  `json:"director"`
	Actors      []string  `json:"actors"`
	ImagePath   string    `json:"image_path,omitempty"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks if the Movie has valid data.
func (m *Movie) Validate() error {
	if m.ID == uuid.Nil {
		return ErrEmptyMovieID
	}
	if m.Title == "" {
		return ErrEmptyMovieTitle
	}
	if m.Description == "" {
		return ErrEmptyDescription
	}
	return nil
}
