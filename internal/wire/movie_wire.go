package wire

import (
	"github.com/ViniciusSMLuz/movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /api/movies - list all registered movies
	r.Get("/api/movies", movieHandler.GetMovies)

	// POST /api/movies - register a new movie
	r.Post("/api/movies", movieHandler.RegisterMovie)
}
