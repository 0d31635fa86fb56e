package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ViniciusSMLuz/movie-review/internal/data/entity"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestMovieCreateBindsRow(t *testing.T) {
	session := &fakeSession{}
	repo := NewMovieRepository(session, zap.NewNop())

	movie := &entity.Movie{ID: uuid.New(), Title: "Arrival"}
	if err := repo.Create(context.Background(), movie); err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(session.execs) != 1 {
		t.Fatalf("want 1 insert, got %d", len(session.execs))
	}
	bound := session.execs[0]
	if !strings.Contains(bound.stmt, "INSERT INTO movie_review.movies") {
		t.Errorf("unexpected statement: %s", bound.stmt)
	}
	if got := bound.args[0].(gocql.UUID); uuid.UUID(got) != movie.ID {
		t.Errorf("bound id = %v, want %v", got, movie.ID)
	}
	if bound.args[1] != "Arrival" {
		t.Errorf("bound title = %v", bound.args[1])
	}
}

func TestMovieCreateWrapsStorageError(t *testing.T) {
	session := &fakeSession{execErr: errors.New("write timeout")}
	repo := NewMovieRepository(session, zap.NewNop())

	err := repo.Create(context.Background(), &entity.Movie{ID: uuid.New(), Title: "x"})
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("want StorageError, got %v", err)
	}
}

func TestMovieFindAll(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	session := &fakeSession{rows: [][]any{
		{gocql.UUID(first), "Arrival"},
		{gocql.UUID(second), "Solaris"},
	}}
	repo := NewMovieRepository(session, zap.NewNop())

	movies, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("want 2 movies, got %d", len(movies))
	}
	if movies[0].ID != first || movies[0].Title != "Arrival" {
		t.Errorf("first row mismatch: %+v", movies[0])
	}
	if movies[1].ID != second || movies[1].Title != "Solaris" {
		t.Errorf("second row mismatch: %+v", movies[1])
	}
}

func TestMovieFindAllEmptyTable(t *testing.T) {
	repo := NewMovieRepository(&fakeSession{}, zap.NewNop())

	movies, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if movies == nil || len(movies) != 0 {
		t.Errorf("want empty non-nil slice, got %#v", movies)
	}
}

func TestMovieFindAllIterError(t *testing.T) {
	session := &fakeSession{iterErr: errors.New("unavailable")}
	repo := NewMovieRepository(session, zap.NewNop())

	_, err := repo.FindAll(context.Background())
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("want StorageError, got %v", err)
	}
}
