package response

import (
	"time"

	"github.com/ViniciusSMLuz/movie-review/internal/data/entity"
)

// ReviewResponse is one ledger row as returned by a listing. The movie title
// is deliberately absent: the caller already knows which movie it asked
// about, and the catalog and ledger never join server-side.
type ReviewResponse struct {
	MovieID   string    `json:"movie_id"`
	Reviewer  string    `json:"reviewer"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewCreatedResponse echoes the full row identity after an append,
// including the server-assigned review_id and timestamp.
type ReviewCreatedResponse struct {
	MovieID   string    `json:"movie_id"`
	CreatedAt time.Time `json:"created_at"`
	ReviewID  string    `json:"review_id"`
	Reviewer  string    `json:"reviewer"`
	Rating    int       `json:"rating"`
}

// Helper converters
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		MovieID:   review.MovieID.String(),
		Reviewer:  review.Reviewer,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	}
}

func ReviewToCreatedResponse(review *entity.Review) ReviewCreatedResponse {
	return ReviewCreatedResponse{
		MovieID:   review.MovieID.String(),
		CreatedAt: review.CreatedAt,
		ReviewID:  review.ReviewID.String(),
		Reviewer:  review.Reviewer,
		Rating:    review.Rating,
	}
}
