package entity

type Movie struct {
	Base
	Title           string  `db:"title"`
	Description     string  `db:"description"`
	DurationMinutes int     `db:"duration_minutes"`
	Genre           string  `db:"genre"`
	ReleaseYear     int     `db:"release_year"`
	AverageRating   float64 `db:"average_rating"`
	CoverImage      *string `db:"cover_image"`
}

func (m *Movie) ListingTitle() string    { return m.Title }
func (m *Movie) ListingRating() float64  { return m.AverageRating }
func (m *Movie) ListingFields() []string { return []string{m.Title, m.Description, m.Genre} }
