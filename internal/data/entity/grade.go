package entity

import (
	"github.com/google/uuid"
)

// Grade is a single user's 1-10 rating of a movie or series.
// One grade per (user, content) pair, enforced by a unique constraint.
type Grade struct {
	Base
	UserID      uuid.UUID   `db:"user_id"`
	ContentType ContentType `db:"content_type"`
	ContentID   uuid.UUID   `db:"content_id"`
	Score       int         `db:"score"`
}
