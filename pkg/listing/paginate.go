package listing

// Paginate slices out one page of items. Pages are 1-based; an
// out-of-range page yields an empty slice.
func Paginate[T any](items []T, page, perPage int) []T {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		return nil
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		return nil
	}

	end := start + perPage
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
