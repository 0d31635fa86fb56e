package response

import (
	"github.com/ViniciusSMLuz/movie-review/internal/data/entity"
)

type MovieResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Helper converter
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:    movie.ID.String(),
		Title: movie.Title,
	}
}
