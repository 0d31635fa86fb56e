package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is one immutable rating event. The triple
// (MovieID, CreatedAt, ReviewID) is the row identity: MovieID is the
// partition key, CreatedAt/ReviewID the clustering key. ReviewID breaks
// ties between events recorded in the same millisecond.
type Review struct {
	MovieID   uuid.UUID `db:"movie_id"`
	CreatedAt time.Time `db:"created_at"`
	ReviewID  uuid.UUID `db:"review_id"`
	Reviewer  string    `db:"reviewer"`
	Rating    int       `db:"rating"`
}
