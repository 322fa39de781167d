package pagenav

import (
	"fmt"

	"github.com/samber/lo"
)

// Planner decides which items make up the pagination list.
type Planner interface {
	Plan(totalItems, itemsPerPage, currentPage, maxLinks int) (Plan, error)
}

// PlannerFunc is a function adapter that implements Planner.
type PlannerFunc func(totalItems, itemsPerPage, currentPage, maxLinks int) (Plan, error)

// Plan implements Planner.
func (f PlannerFunc) Plan(totalItems, itemsPerPage, currentPage, maxLinks int) (Plan, error) {
	return f(totalItems, itemsPerPage, currentPage, maxLinks)
}

// DefaultPlanner is the windowed planner implemented by NewPlan.
var DefaultPlanner Planner = PlannerFunc(NewPlan)

// TotalPages returns the number of pages needed to show totalItems, itemsPerPage at a time.
func TotalPages(totalItems, itemsPerPage int) (int, error) {
	if itemsPerPage <= 0 {
		return 0, fmt.Errorf("%w: items per page must be positive, got %d", ErrInvalidConfiguration, itemsPerPage)
	}
	if totalItems < 0 {
		return 0, fmt.Errorf("%w: total items must not be negative, got %d", ErrInvalidConfiguration, totalItems)
	}

	return (totalItems + itemsPerPage - 1) / itemsPerPage, nil
}

// NewPlan builds the pagination list for the given page.
//
// The list consists of:
//   - a previous control, unless currentPage is the first page;
//   - a window of at most maxLinks consecutive pages centered on currentPage;
//   - the first and the last page, joined to the window with a separator when
//     the window does not reach them;
//   - a next control, unless currentPage is the last page.
//
// currentPage beyond the last page is clamped to the last page. An empty plan is
// returned when there is nothing to paginate, whatever currentPage and maxLinks are.
//
// Example: 95 items, 10 per page, page 5, 3 links:
//
//	« 1 … 4 [5] 6 … 10 »
func NewPlan(totalItems, itemsPerPage, currentPage, maxLinks int) (Plan, error) {
	totalPages, err := TotalPages(totalItems, itemsPerPage)
	if err != nil {
		return nil, fmt.Errorf("cannot plan pagination: %w", err)
	}

	if totalPages == 0 {
		return Plan{}, nil
	}

	if currentPage < 1 {
		return nil, fmt.Errorf("cannot plan pagination: %w: current page must be >= 1, got %d",
			ErrInvalidConfiguration, currentPage)
	}
	if maxLinks < 1 {
		return nil, fmt.Errorf("cannot plan pagination: %w: max links must be >= 1, got %d",
			ErrInvalidConfiguration, maxLinks)
	}

	current := min(currentPage, totalPages)
	if totalPages == 1 {
		return Plan{numberItem(1, current)}, nil
	}

	start, end := pageWindow(current, totalPages, maxLinks)

	// previous + first + separator + window + separator + last + next
	plan := make(Plan, 0, end-start+7)
	if current > 1 {
		plan = append(plan, Item{Type: ItemPrevious, Label: DefaultPreviousLabel, Page: current - 1})
	}

	if start > 1 {
		plan = append(plan, numberItem(1, current))
		if start > 2 {
			plan = append(plan, Item{Type: ItemSeparator, Label: DefaultSeparatorLabel, Page: 2})
		}
	}

	for page := start; page <= end; page++ {
		plan = append(plan, numberItem(page, current))
	}

	if end < totalPages {
		if end < totalPages-1 {
			plan = append(plan, Item{Type: ItemSeparator, Label: DefaultSeparatorLabel, Page: end + 1})
		}
		plan = append(plan, numberItem(totalPages, current))
	}

	if current < totalPages {
		plan = append(plan, Item{Type: ItemNext, Label: DefaultNextLabel, Page: current + 1})
	}

	return plan, nil
}

// pageWindow returns the inclusive range of consecutive pages shown around current.
// The window holds min(maxLinks, totalPages) pages. Odd sizes are centered exactly,
// even sizes lean towards the following pages. Near the edges the window is shifted
// so that it never leaves [1, totalPages].
func pageWindow(current, totalPages, maxLinks int) (int, int) {
	size := min(maxLinks, totalPages)

	start := lo.Clamp(current-(size-1)/2, 1, totalPages-size+1)

	return start, start + size - 1
}
