package request

type EpisodeRequest struct {
	SeriesID        string  `json:"series_id" validate:"required,uuid4"`
	Title           string  `json:"title" validate:"required,min=1,max=200"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=1,max=999"`
	EpisodeNumber   int     `json:"episode_number" validate:"required,min=1,max=9999"`
	CoverImage      *string `json:"cover_image,omitempty" validate:"omitempty,url"`
}

type EpisodeUpdateRequest struct {
	Title           *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" validate:"omitempty,min=1,max=999"`
	EpisodeNumber   *int    `json:"episode_number,omitempty" validate:"omitempty,min=1,max=9999"`
	CoverImage      *string `json:"cover_image,omitempty" validate:"omitempty,url"`
}
