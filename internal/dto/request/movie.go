package request

type MovieRequest struct {
	Title           string  `json:"title" validate:"required,min=1,max=200"`
	Description     string  `json:"description" validate:"required"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=1,max=999"`
	Genre           string  `json:"genre" validate:"required,min=1,max=100"`
	ReleaseYear     int     `json:"release_year" validate:"required,min=1800,max=2100"`
	CoverImage      *string `json:"cover_image,omitempty" validate:"omitempty,url"`
}

type MovieUpdateRequest struct {
	Title           *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string `json:"description,omitempty" validate:"omitempty,min=1"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" validate:"omitempty,min=1,max=999"`
	Genre           *string `json:"genre,omitempty" validate:"omitempty,min=1,max=100"`
	ReleaseYear     *int    `json:"release_year,omitempty" validate:"omitempty,min=1800,max=2100"`
	CoverImage      *string `json:"cover_image,omitempty" validate:"omitempty,url"`
}
