package entity

import (
	"github.com/google/uuid"
)

type Movie struct {
	ID    uuid.UUID `db:"id"`
	Title string    `db:"title"`
}
