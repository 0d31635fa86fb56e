package repository

import (
	"context"
	"fmt"

	"github.com/ViniciusSMLuz/movie-review/internal/data/entity"
	"github.com/ViniciusSMLuz/movie-review/internal/data/schema"
	"github.com/ViniciusSMLuz/movie-review/pkg/database"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	// Create appends one rating event. The clustering key is always fresh,
	// so this is never an overwrite of an existing row.
	Create(ctx context.Context, review *entity.Review) error

	// FindByMovieID scans a single partition and returns rows in the stored
	// clustering order: created_at descending, review_id ascending.
	// An unknown movie_id yields an empty slice, not an error.
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Review, error)
}

type reviewRepository struct {
	session database.Session
	log     *zap.Logger

	insertStmt string
	selectStmt string
}

func NewReviewRepository(session database.Session, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		session: session,
		log:     log.With(zap.String("repository", "review")),

		insertStmt: fmt.Sprintf(
			`INSERT INTO %s.reviews (movie_id, created_at, review_id, reviewer, rating) VALUES (?, ?, ?, ?, ?)`,
			schema.Keyspace),
		selectStmt: fmt.Sprintf(
			`SELECT movie_id, created_at, review_id, reviewer, rating FROM %s.reviews WHERE movie_id = ?`,
			schema.Keyspace),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	err := r.session.Query(ctx, r.insertStmt,
		gocql.UUID(review.MovieID),
		review.CreatedAt,
		gocql.UUID(review.ReviewID),
		review.Reviewer,
		review.Rating,
	).Exec()

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("movie_id", review.MovieID.String()),
			zap.String("review_id", review.ReviewID.String()),
		)
		return &StorageError{Op: "create review", Err: err}
	}

	return nil
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Review, error) {
	iter := r.session.Query(ctx, r.selectStmt, gocql.UUID(movieID)).Iter()

	reviews := make([]*entity.Review, 0)
	var row entity.Review
	var (
		gMovieID  gocql.UUID
		gReviewID gocql.UUID
	)
	for iter.Scan(&gMovieID, &row.CreatedAt, &gReviewID, &row.Reviewer, &row.Rating) {
		review := row
		review.MovieID = uuid.UUID(gMovieID)
		review.ReviewID = uuid.UUID(gReviewID)
		reviews = append(reviews, &review)
	}

	if err := iter.Close(); err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, &StorageError{Op: "find reviews by movie id", Err: err}
	}

	r.log.Debug("Reviews found",
		zap.String("movie_id", movieID.String()),
		zap.Int("count", len(reviews)),
	)

	return reviews, nil
}
