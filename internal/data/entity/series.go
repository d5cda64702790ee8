package entity

type SeriesStatus string

const (
	SeriesStatusOngoing   SeriesStatus = "ongoing"
	SeriesStatusCompleted SeriesStatus = "completed"
	SeriesStatusCancelled SeriesStatus = "cancelled"
)

func ParseSeriesStatus(s string) (SeriesStatus, bool) {
	switch s {
	case string(SeriesStatusOngoing):
		return SeriesStatusOngoing, true
	case string(SeriesStatusCompleted):
		return SeriesStatusCompleted, true
	case string(SeriesStatusCancelled):
		return SeriesStatusCancelled, true
	default:
		return "", false
	}
}

type Series struct {
	Base
	Title         string       `db:"title"`
	Description   string       `db:"description"`
	EpisodeCount  int          `db:"episode_count"`
	Genre         string       `db:"genre"`
	ReleaseYear   int          `db:"release_year"`
	AverageRating float64      `db:"average_rating"`
	CoverImage    *string      `db:"cover_image"`
	Status        SeriesStatus `db:"status"`
}

func (s *Series) ListingTitle() string    { return s.Title }
func (s *Series) ListingRating() float64  { return s.AverageRating }
func (s *Series) ListingFields() []string { return []string{s.Title, s.Description, s.Genre} }
