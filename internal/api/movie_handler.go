package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/myflix/myflix-api/internal/api/shared"
	"github.com/myflix/myflix-api/internal/store"
)

// MovieHandler handles read-only movie catalog requests. All of its
// routes sit behind the authentication guard.
type MovieHandler struct {
	movieStore store.MovieStore
}

// NewMovieHandler creates a new MovieHandler with the given dependencies.
func NewMovieHandler(movieStore store.MovieStore) *MovieHandler {
	return &MovieHandler{
		movieStore: movieStore,
	}
}

// List handles the GET /movies endpoint.
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.movieStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list movies", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, movies)
}

// GetByTitle handles the GET /movies/{title} endpoint.
func (h *MovieHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	movie, err := h.movieStore.GetByTitle(r.Context(), title)
	if err != nil {
		h.respondMovieError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, movie)
}

// GetGenre handles the GET /movies/genre/{genreName} endpoint.
// It responds with the genre details taken from any movie of that genre.
func (h *MovieHandler) GetGenre(w http.ResponseWriter, r *http.Request) {
	genreName := chi.URLParam(r, "genreName")

	movie, err := h.movieStore.GetByGenreName(r.Context(), genreName)
	if err != nil {
		h.respondMovieError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, movie.Genre)
}

// GetDirector handles the GET /movies/director/{directorName} endpoint.
// It responds with the director details taken from any of their movies.
func (h *MovieHandler) GetDirector(w http.ResponseWriter, r *http.Request) {
	directorName := chi.URLParam(r, "directorName")

	movie, err := h.movieStore.GetByDirectorName(r.Context(), directorName)
	if err != nil {
		h.respondMovieError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, movie.Director)
}

func (h *MovieHandler) respondMovieError(w http.ResponseWriter, r *http.Request, err error) {
	if store.IsNotFoundError(err) {
		shared.RespondWithError(w, r, http.StatusNotFound, GetSafeErrorMessage(err))
		return
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
