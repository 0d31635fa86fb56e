package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ViniciusSMLuz/movie-review/internal/data/entity"
	"github.com/ViniciusSMLuz/movie-review/internal/data/repository"
	"github.com/ViniciusSMLuz/movie-review/internal/dto/request"
	"github.com/ViniciusSMLuz/movie-review/internal/dto/response"
	"github.com/ViniciusSMLuz/movie-review/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewService appends and lists rating events. It takes no dependency on
// the catalog: recording a review for an unregistered movie identifier
// succeeds silently. Whether that orphan tolerance is intentional in the
// product sense is a stakeholder question; structurally it keeps the two
// stores fully independent.
type ReviewService interface {
	GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error)
	RecordReview(ctx context.Context, movieID string, req *request.RecordReviewRequest) (*response.ReviewCreatedResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(
	repo *repository.Repository,
	log *zap.Logger,
) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID string) ([]response.ReviewResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format",
			zap.String("movie_id", movieID),
			zap.Error(err),
		)
		return nil, &ValidationError{Fields: map[string]string{"movie_id": "Must be a valid UUID"}}
	}

	// Rows arrive in the stored clustering order (newest first); an unknown
	// partition is an empty listing, not an error.
	reviews, err := s.repo.Review.FindByMovieID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie reviews",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review)
	}

	s.log.Info("Reviews retrieved",
		zap.String("movie_id", movieID),
		zap.Int("count", len(reviews)),
	)

	return reviewResponses, nil
}

// RecordReview assigns created_at and review_id server-side and appends the
// row. The timestamp is truncated to the millisecond so the value returned
// to the caller matches the stored clustering key exactly; the fresh
// review_id guarantees two reviews in the same millisecond land as two
// distinct rows instead of overwriting each other.
func (s *reviewService) RecordReview(ctx context.Context, movieID string, req *request.RecordReviewRequest) (*response.ReviewCreatedResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Record review validation failed",
			zap.String("movie_id", movieID),
			zap.Any("errors", errs),
		)
		return nil, &ValidationError{Fields: errs}
	}

	id, err := uuid.Parse(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format",
			zap.String("movie_id", movieID),
			zap.Error(err),
		)
		return nil, &ValidationError{Fields: map[string]string{"movie_id": "Must be a valid UUID"}}
	}

	review := &entity.Review{
		MovieID:   id,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		ReviewID:  uuid.New(),
		Reviewer:  req.Reviewer,
		Rating:    *req.Rating,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to record review",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("record review: %w", err)
	}

	s.log.Info("Review recorded",
		zap.String("movie_id", movieID),
		zap.String("review_id", review.ReviewID.String()),
		zap.Int("rating", review.Rating),
	)

	reviewResp := response.ReviewToCreatedResponse(review)
	return &reviewResp, nil
}
