package entity

// ContentType identifies what a grade or trivia item is attached to.
type ContentType string

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeSeries ContentType = "series"
)

func ParseContentType(s string) (ContentType, bool) {
	switch s {
	case string(ContentTypeMovie):
		return ContentTypeMovie, true
	case string(ContentTypeSeries):
		return ContentTypeSeries, true
	default:
		return "", false
	}
}
