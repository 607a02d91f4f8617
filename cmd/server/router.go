package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/myflix/myflix-api/internal/api"
	apimiddleware "github.com/myflix/myflix-api/internal/api/middleware"
	"github.com/myflix/myflix-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Registration and login are the only endpoints reachable
// without a bearer token; every other route sits behind the authentication
// guard.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.passwordStrategy, app.jwtService)
	userHandler := api.NewUserHandler(app.userService)
	movieHandler := api.NewMovieHandler(app.movieStore)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.bearerStrategy)

	// Public endpoints
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithJSON(w, req, http.StatusOK, map[string]string{
			"message": "Welcome to the myFlix API",
		})
	})
	r.Post("/login", authHandler.Login)
	r.Post("/users", userHandler.Register)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		// Movie catalog endpoints
		r.Get("/movies", movieHandler.List)
		r.Get("/movies/{title}", movieHandler.GetByTitle)
		r.Get("/movies/genre/{genreName}", movieHandler.GetGenre)
		r.Get("/movies/director/{directorName}", movieHandler.GetDirector)

		// User account endpoints
		r.Get("/users/{id}", userHandler.Get)
		r.Put("/users/{id}", userHandler.Update)
		r.Delete("/users/{id}", userHandler.Delete)
		r.Post("/users/{id}/favorites/{movieID}", userHandler.AddFavorite)
		r.Delete("/users/{id}/favorites/{movieID}", userHandler.RemoveFavorite)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
