package listing

import (
	"sort"
	"strings"
)

type SortField string

const (
	SortByTitle  SortField = "title"
	SortByRating SortField = "rating"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ParseSort maps raw query values onto a sort field and order,
// defaulting to title ascending.
func ParseSort(field, order string) (SortField, SortOrder) {
	sortField := SortByTitle
	if field == string(SortByRating) {
		sortField = SortByRating
	}

	sortOrder := OrderAsc
	if order == string(OrderDesc) {
		sortOrder = OrderDesc
	}

	return sortField, sortOrder
}

// Sort orders items by the given field without mutating the input.
// Titles compare case-insensitively with a case-sensitive tie break so
// the ordering stays deterministic; ratings compare numerically with
// unrated items at 0.
func Sort[T Item](items []T, field SortField, order SortOrder) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	var less func(i, j int) bool
	switch field {
	case SortByRating:
		less = func(i, j int) bool {
			return sorted[i].ListingRating() < sorted[j].ListingRating()
		}
	default:
		less = func(i, j int) bool {
			a := strings.ToLower(sorted[i].ListingTitle())
			b := strings.ToLower(sorted[j].ListingTitle())
			if a != b {
				return a < b
			}
			return sorted[i].ListingTitle() < sorted[j].ListingTitle()
		}
	}

	if order == OrderDesc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}

	sort.SliceStable(sorted, less)
	return sorted
}
