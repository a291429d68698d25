package services

// Paginate returns the items on the 1-based page and the page count, which is at least 1.
// A page below 1 reads as page 1 and a page past the end is empty. A pageSize below 1 puts
// everything on a single page.
func Paginate[T any](items []T, pageSize, page int) ([]T, int) {
	if pageSize < 1 {
		return items, 1
	}

	total := TotalPages(len(items), pageSize)
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return items[len(items):], total
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}

// TotalPages is ceil(count/pageSize) with a minimum of 1.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 || count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// ClampPage moves page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	switch {
	case page < 1:
		return 1
	case page > totalPages:
		return totalPages
	default:
		return page
	}
}

type Navigation struct {
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

func PageNavigation(page, totalPages int) Navigation {
	if totalPages < 1 {
		totalPages = 1
	}
	return Navigation{
		Page:       page,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// Prev is the previous page, or the current one on the first page.
func (n Navigation) Prev() int {
	return ClampPage(n.Page-1, n.TotalPages)
}

// Next is the following page, or the last page once there.
func (n Navigation) Next() int {
	return ClampPage(n.Page+1, n.TotalPages)
}
