package entity

import (
	"github.com/google/uuid"
)

type Episode struct {
	Base
	SeriesID        uuid.UUID `db:"series_id"`
	Title           string    `db:"title"`
	Description     *string   `db:"description"`
	DurationMinutes int       `db:"duration_minutes"`
	EpisodeNumber   int       `db:"episode_number"`
	CoverImage      *string   `db:"cover_image"`
}
