package usecase

import (
	"context"
	"fmt"

	"github.com/ViniciusSMLuz/movie-review/internal/data/entity"
	"github.com/ViniciusSMLuz/movie-review/internal/data/repository"
	"github.com/ViniciusSMLuz/movie-review/internal/dto/request"
	"github.com/ViniciusSMLuz/movie-review/internal/dto/response"
	"github.com/ViniciusSMLuz/movie-review/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	RegisterMovie(ctx context.Context, req *request.RegisterMovieRequest) (*response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	s.log.Info("Movies retrieved", zap.Int("count", len(movies)))

	return movieResponses, nil
}

// RegisterMovie assigns a fresh identifier server-side and persists the
// pair. Identifier generation and the persist step are not transactional
// across retries: a client retry after a timeout produces two movies with
// the same title and different identifiers, which is accepted (titles carry
// no uniqueness constraint).
func (s *movieService) RegisterMovie(ctx context.Context, req *request.RegisterMovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register movie validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	movie := &entity.Movie{
		ID:    uuid.New(),
		Title: req.Title,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to register movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("register movie: %w", err)
	}

	s.log.Info("Movie registered",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}
