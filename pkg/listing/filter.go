// Package listing holds the in-memory search and sort helpers applied
// by the catalog list endpoints.
package listing

import (
	"strings"
)

// Item is implemented by catalog entities that can be searched and
// sorted.
type Item interface {
	ListingTitle() string
	ListingRating() float64
	ListingFields() []string
}

// Filter returns the items whose searchable fields contain term,
// case-insensitive. An empty term returns the input unchanged.
func Filter[T Item](items []T, term string) []T {
	if term == "" {
		return items
	}

	needle := strings.ToLower(term)

	var matched []T
	for _, item := range items {
		for _, field := range item.ListingFields() {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, item)
				break
			}
		}
	}

	return matched
}
