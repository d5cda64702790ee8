package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testItem struct {
	title       string
	rating      float64
	description string
	genre       string
}

func (t testItem) ListingTitle() string   { return t.title }
func (t testItem) ListingRating() float64 { return t.rating }
func (t testItem) ListingFields() []string {
	return []string{t.title, t.description, t.genre}
}

func catalog() []testItem {
	return []testItem{
		{title: "Blade Runner", rating: 8.2, description: "Replicants in Los Angeles", genre: "Sci-Fi"},
		{title: "The Godfather", rating: 9.1, description: "A mafia dynasty", genre: "Crime"},
		{title: "alien", rating: 8.5, description: "Crew meets a xenomorph", genre: "Sci-Fi"},
		{title: "Paddington", rating: 0, description: "A bear in London", genre: "Family"},
	}
}

func TestFilterEmptyTermReturnsInput(t *testing.T) {
	items := catalog()
	got := Filter(items, "")
	assert.Equal(t, items, got)
}

func TestFilterMatchesTitleCaseInsensitive(t *testing.T) {
	got := Filter(catalog(), "ALIEN")
	assert.Len(t, got, 1)
	assert.Equal(t, "alien", got[0].title)
}

func TestFilterMatchesDescriptionAndGenre(t *testing.T) {
	byDescription := Filter(catalog(), "mafia")
	assert.Len(t, byDescription, 1)
	assert.Equal(t, "The Godfather", byDescription[0].title)

	byGenre := Filter(catalog(), "sci-fi")
	assert.Len(t, byGenre, 2)
}

func TestFilterNoMatch(t *testing.T) {
	got := Filter(catalog(), "western")
	assert.Empty(t, got)
}

func TestFilterDoesNotDuplicateMultiFieldMatches(t *testing.T) {
	items := []testItem{
		{title: "Space Odyssey", description: "A space voyage", genre: "Sci-Fi"},
	}
	got := Filter(items, "space")
	assert.Len(t, got, 1)
}
