package usecase

import (
	"context"

	"github.com/ViniciusSMLuz/movie-review/internal/data/entity"
	"github.com/ViniciusSMLuz/movie-review/internal/data/repository"

	"github.com/google/uuid"
)

type fakeMovieRepo struct {
	movies    []*entity.Movie
	createErr error
	findErr   error
	calls     int
}

func (r *fakeMovieRepo) Create(_ context.Context, movie *entity.Movie) error {
	r.calls++
	if r.createErr != nil {
		return r.createErr
	}
	stored := *movie
	r.movies = append(r.movies, &stored)
	return nil
}

func (r *fakeMovieRepo) FindAll(context.Context) ([]*entity.Movie, error) {
	r.calls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.movies, nil
}

type fakeReviewRepo struct {
	byMovie   map[uuid.UUID][]*entity.Review
	createErr error
	calls     int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{byMovie: make(map[uuid.UUID][]*entity.Review)}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.calls++
	if r.createErr != nil {
		return r.createErr
	}
	stored := *review
	r.byMovie[review.MovieID] = append(r.byMovie[review.MovieID], &stored)
	return nil
}

func (r *fakeReviewRepo) FindByMovieID(_ context.Context, movieID uuid.UUID) ([]*entity.Review, error) {
	r.calls++
	reviews := make([]*entity.Review, 0, len(r.byMovie[movieID]))
	reviews = append(reviews, r.byMovie[movieID]...)
	return reviews, nil
}

func newTestRepository(movie *fakeMovieRepo, review *fakeReviewRepo) *repository.Repository {
	return &repository.Repository{Movie: movie, Review: review}
}
