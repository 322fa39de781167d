package pagenav

import "fmt"

// Source is a paginated data set as seen by the navigation: how many items it holds,
// how many are shown per page and where the shown page starts.
type Source interface {
	// Total returns the number of items in the data set.
	Total() (int64, error)
	// Limit returns the page size.
	Limit() int
	// Offset returns the zero-based index of the first item on the shown page.
	Offset() int
}

// StaticSource is a Source over precomputed numbers.
type StaticSource struct {
	TotalItems int64
	PageSize   int
	Start      int
}

// Total implements Source.
func (s StaticSource) Total() (int64, error) {
	return s.TotalItems, nil
}

// Limit implements Source.
func (s StaticSource) Limit() int {
	return s.PageSize
}

// Offset implements Source.
func (s StaticSource) Offset() int {
	return s.Start
}

var _ Source = StaticSource{}

// CurrentPage returns the one-based page that starts at offset. An offset that does
// not fall on a page boundary rounds up to the following page.
func CurrentPage(offset, limit int) (int, error) {
	if limit <= 0 {
		return 0, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidConfiguration, limit)
	}
	if offset < 0 {
		return 0, fmt.Errorf("%w: offset must not be negative, got %d", ErrInvalidConfiguration, offset)
	}

	if offset < limit {
		return offset/limit + 1, nil
	}

	return (offset+limit-1)/limit + 1, nil
}
