package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type EpisodeResponse struct {
	ID              string    `json:"id"`
	SeriesID        string    `json:"series_id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	EpisodeNumber   int       `json:"episode_number"`
	CoverImage      *string   `json:"cover_image,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func EpisodeToResponse(episode *entity.Episode) EpisodeResponse {
	return EpisodeResponse{
		ID:              episode.ID.String(),
		SeriesID:        episode.SeriesID.String(),
		Title:           episode.Title,
		Description:     episode.Description,
		DurationMinutes: episode.DurationMinutes,
		EpisodeNumber:   episode.EpisodeNumber,
		CoverImage:      episode.CoverImage,
		CreatedAt:       episode.CreatedAt,
	}
}

func EpisodesToResponse(episodes []*entity.Episode) []EpisodeResponse {
	responses := make([]EpisodeResponse, len(episodes))
	for i, episode := range episodes {
		responses[i] = EpisodeToResponse(episode)
	}
	return responses
}
