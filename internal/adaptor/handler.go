package adaptor

import (
	"github.com/ViniciusSMLuz/movie-review/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie  *MovieHandler
	Review *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:  NewMovieHandler(service.Movie, log),
		Review: NewReviewHandler(service.Review, log),
	}
}
