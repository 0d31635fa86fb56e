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

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindAll(ctx context.Context) ([]*entity.Movie, error)
}

type movieRepository struct {
	session database.Session
	log     *zap.Logger

	insertStmt string
	selectStmt string
}

func NewMovieRepository(session database.Session, log *zap.Logger) MovieRepository {
	return &movieRepository{
		session: session,
		log:     log.With(zap.String("repository", "movie")),

		insertStmt: fmt.Sprintf(`INSERT INTO %s.movies (id, title) VALUES (?, ?)`, schema.Keyspace),
		selectStmt: fmt.Sprintf(`SELECT id, title FROM %s.movies`, schema.Keyspace),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	err := r.session.Query(ctx, r.insertStmt,
		gocql.UUID(movie.ID),
		movie.Title,
	).Exec()

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
			zap.String("title", movie.Title),
		)
		return &StorageError{Op: "create movie", Err: err}
	}

	return nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	iter := r.session.Query(ctx, r.selectStmt).Iter()

	movies := make([]*entity.Movie, 0)
	var (
		id    gocql.UUID
		title string
	)
	for iter.Scan(&id, &title) {
		movies = append(movies, &entity.Movie{
			ID:    uuid.UUID(id),
			Title: title,
		})
	}

	if err := iter.Close(); err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, &StorageError{Op: "find all movies", Err: err}
	}

	r.log.Debug("Movies found", zap.Int("count", len(movies)))

	return movies, nil
}
