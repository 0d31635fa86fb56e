package wire

import (
	"github.com/ViniciusSMLuz/movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// GET /api/movies/{id}/reviews - list reviews, newest first
	r.Get("/api/movies/{id}/reviews", reviewHandler.GetMovieReviews)

	// POST /api/movies/{id}/reviews - append a review to the ledger
	r.Post("/api/movies/{id}/reviews", reviewHandler.RecordReview)
}
