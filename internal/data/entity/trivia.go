package entity

import (
	"github.com/google/uuid"
)

type Trivia struct {
	Base
	ContentType ContentType `db:"content_type"`
	ContentID   uuid.UUID   `db:"content_id"`
	Question    string      `db:"question"`
	Answer      string      `db:"answer"`
}
