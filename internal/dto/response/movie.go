package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type MovieResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Genre           string    `json:"genre"`
	ReleaseYear     int       `json:"release_year"`
	AverageRating   float64   `json:"average_rating"`
	GradeCount      int       `json:"grade_count"`
	CoverImage      *string   `json:"cover_image,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type MovieDetailResponse struct {
	MovieResponse
	UpdatedAt *time.Time       `json:"updated_at,omitempty"`
	Trivia    []TriviaResponse `json:"trivia"`
}

func MovieToResponse(movie *entity.Movie, gradeCount int) MovieResponse {
	return MovieResponse{
		ID:              movie.ID.String(),
		Title:           movie.Title,
		Description:     movie.Description,
		DurationMinutes: movie.DurationMinutes,
		Genre:           movie.Genre,
		ReleaseYear:     movie.ReleaseYear,
		AverageRating:   movie.AverageRating,
		GradeCount:      gradeCount,
		CoverImage:      movie.CoverImage,
		CreatedAt:       movie.CreatedAt,
	}
}

func MovieToDetailResponse(movie *entity.Movie, gradeCount int, trivia []TriviaResponse) MovieDetailResponse {
	return MovieDetailResponse{
		MovieResponse: MovieToResponse(movie, gradeCount),
		UpdatedAt:     &movie.UpdatedAt,
		Trivia:        trivia,
	}
}
