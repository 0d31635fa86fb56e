package repository

import (
	"github.com/ViniciusSMLuz/movie-review/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie  MovieRepository
	Review ReviewRepository
}

func NewRepository(session database.Session, log *zap.Logger) *Repository {
	return &Repository{
		Movie:  NewMovieRepository(session, log),
		Review: NewReviewRepository(session, log),
	}
}
