package request

type SeriesRequest struct {
	Title        string  `json:"title" validate:"required,min=1,max=200"`
	Description  string  `json:"description" validate:"required"`
	EpisodeCount int     `json:"episode_count" validate:"min=0,max=9999"`
	Genre        string  `json:"genre" validate:"required,min=1,max=100"`
	ReleaseYear  int     `json:"release_year" validate:"required,min=1800,max=2100"`
	CoverImage   *string `json:"cover_image,omitempty" validate:"omitempty,url"`
	Status       string  `json:"status" validate:"required,oneof=ongoing completed cancelled"`
}

type SeriesUpdateRequest struct {
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description,omitempty" validate:"omitempty,min=1"`
	EpisodeCount *int    `json:"episode_count,omitempty" validate:"omitempty,min=0,max=9999"`
	Genre        *string `json:"genre,omitempty" validate:"omitempty,min=1,max=100"`
	ReleaseYear  *int    `json:"release_year,omitempty" validate:"omitempty,min=1800,max=2100"`
	CoverImage   *string `json:"cover_image,omitempty" validate:"omitempty,url"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=ongoing completed cancelled"`
}
