package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type SeriesResponse struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	EpisodeCount  int                 `json:"episode_count"`
	Genre         string              `json:"genre"`
	ReleaseYear   int                 `json:"release_year"`
	AverageRating float64             `json:"average_rating"`
	GradeCount    int                 `json:"grade_count"`
	CoverImage    *string             `json:"cover_image,omitempty"`
	Status        entity.SeriesStatus `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
}

type SeriesDetailResponse struct {
	SeriesResponse
	UpdatedAt *time.Time        `json:"updated_at,omitempty"`
	Episodes  []EpisodeResponse `json:"episodes"`
	Trivia    []TriviaResponse  `json:"trivia"`
}

func SeriesToResponse(series *entity.Series, gradeCount int) SeriesResponse {
	return SeriesResponse{
		ID:            series.ID.String(),
		Title:         series.Title,
		Description:   series.Description,
		EpisodeCount:  series.EpisodeCount,
		Genre:         series.Genre,
		ReleaseYear:   series.ReleaseYear,
		AverageRating: series.AverageRating,
		GradeCount:    gradeCount,
		CoverImage:    series.CoverImage,
		Status:        series.Status,
		CreatedAt:     series.CreatedAt,
	}
}

func SeriesToDetailResponse(series *entity.Series, gradeCount int, episodes []EpisodeResponse, trivia []TriviaResponse) SeriesDetailResponse {
	return SeriesDetailResponse{
		SeriesResponse: SeriesToResponse(series, gradeCount),
		UpdatedAt:      &series.UpdatedAt,
		Episodes:       episodes,
		Trivia:         trivia,
	}
}
