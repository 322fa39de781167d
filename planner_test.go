package pagenav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_TotalPages(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		perPage int
		want    int
		wantErr bool
	}{
		{"empty", 0, 10, 0, false},
		{"partial page", 5, 10, 1, false},
		{"exact pages", 100, 10, 10, false},
		{"rounds up", 95, 10, 10, false},
		{"one more", 101, 10, 11, false},
		{"zero per page", 10, 0, 0, true},
		{"negative per page", 10, -1, 0, true},
		{"negative total", -1, 10, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TotalPages(tt.total, tt.perPage)
			if (err != nil) != tt.wantErr {
				t.Fatalf("%s: err=%v wantErr=%v", tt.name, err, tt.wantErr)
			}
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidConfiguration))
				return
			}
			if got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}
}

func Test_NewPlan(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		perPage   int
		current   int
		maxLinks  int
		wantTypes []ItemType
		wantPages []int
	}{
		{
			name:      "nothing to paginate",
			total:     0,
			perPage:   10,
			current:   3,
			maxLinks:  5,
			wantTypes: []ItemType{},
			wantPages: []int{},
		},
		{
			name:      "nothing to paginate ignores current page",
			total:     0,
			perPage:   10,
			current:   0,
			maxLinks:  5,
			wantTypes: []ItemType{},
			wantPages: []int{},
		},
		{
			name:      "nothing to paginate ignores max links",
			total:     0,
			perPage:   10,
			current:   1,
			maxLinks:  0,
			wantTypes: []ItemType{},
			wantPages: []int{},
		},
		{
			name:      "single page",
			total:     5,
			perPage:   10,
			current:   1,
			maxLinks:  5,
			wantTypes: []ItemType{ItemCurrent},
			wantPages: []int{1},
		},
		{
			name:     "window in the middle",
			total:    95,
			perPage:  10,
			current:  5,
			maxLinks: 3,
			wantTypes: []ItemType{
				ItemPrevious, ItemNumber, ItemSeparator, ItemNumber, ItemCurrent, ItemNumber,
				ItemSeparator, ItemNumber, ItemNext,
			},
			wantPages: []int{4, 1, 2, 4, 5, 6, 7, 10, 6},
		},
		{
			name:      "first page",
			total:     95,
			perPage:   10,
			current:   1,
			maxLinks:  3,
			wantTypes: []ItemType{ItemCurrent, ItemNumber, ItemNumber, ItemSeparator, ItemNumber, ItemNext},
			wantPages: []int{1, 2, 3, 4, 10, 2},
		},
		{
			name:      "last page",
			total:     95,
			perPage:   10,
			current:   10,
			maxLinks:  3,
			wantTypes: []ItemType{ItemPrevious, ItemNumber, ItemSeparator, ItemNumber, ItemNumber, ItemCurrent},
			wantPages: []int{9, 1, 2, 8, 9, 10},
		},
		{
			name:      "window abuts first page",
			total:     95,
			perPage:   10,
			current:   3,
			maxLinks:  3,
			wantTypes: []ItemType{ItemPrevious, ItemNumber, ItemNumber, ItemCurrent, ItemNumber, ItemSeparator, ItemNumber, ItemNext},
			wantPages: []int{2, 1, 2, 3, 4, 5, 10, 4},
		},
		{
			name:      "window abuts last page",
			total:     95,
			perPage:   10,
			current:   8,
			maxLinks:  3,
			wantTypes: []ItemType{ItemPrevious, ItemNumber, ItemSeparator, ItemNumber, ItemCurrent, ItemNumber, ItemNumber, ItemNext},
			wantPages: []int{7, 1, 2, 7, 8, 9, 10, 9},
		},
		{
			name:      "all pages fit",
			total:     30,
			perPage:   10,
			current:   2,
			maxLinks:  5,
			wantTypes: []ItemType{ItemPrevious, ItemNumber, ItemCurrent, ItemNumber, ItemNext},
			wantPages: []int{1, 1, 2, 3, 3},
		},
		{
			name:      "single link still shows boundaries",
			total:     95,
			perPage:   10,
			current:   5,
			maxLinks:  1,
			wantTypes: []ItemType{ItemPrevious, ItemNumber, ItemSeparator, ItemCurrent, ItemSeparator, ItemNumber, ItemNext},
			wantPages: []int{4, 1, 2, 5, 6, 10, 6},
		},
		{
			name:      "two links lean forward",
			total:     95,
			perPage:   10,
			current:   5,
			maxLinks:  2,
			wantTypes: []ItemType{ItemPrevious, ItemNumber, ItemSeparator, ItemCurrent, ItemNumber, ItemSeparator, ItemNumber, ItemNext},
			wantPages: []int{4, 1, 2, 5, 6, 7, 10, 6},
		},
		{
			name:      "current page beyond last is clamped",
			total:     25,
			perPage:   10,
			current:   7,
			maxLinks:  5,
			wantTypes: []ItemType{ItemPrevious, ItemNumber, ItemNumber, ItemCurrent},
			wantPages: []int{2, 1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := NewPlan(tt.total, tt.perPage, tt.current, tt.maxLinks)
			require.NoError(t, err)
			require.Equal(t, tt.wantTypes, plan.Types())

			pages := make([]int, 0, len(plan))
			for _, item := range plan {
				pages = append(pages, item.Page)
			}
			require.Equal(t, tt.wantPages, pages)
			require.NoError(t, plan.validate())
		})
	}
}

func Test_NewPlan_Labels(t *testing.T) {
	plan, err := NewPlan(95, 10, 5, 3)
	require.NoError(t, err)

	labels := make([]string, 0, len(plan))
	for _, item := range plan {
		labels = append(labels, item.Label)
	}

	require.Equal(t, []string{
		DefaultPreviousLabel, "1", DefaultSeparatorLabel, "4", "5", "6", DefaultSeparatorLabel, "10", DefaultNextLabel,
	}, labels)
}

func Test_NewPlan_ExactlyOneCurrent(t *testing.T) {
	for total := 1; total <= 60; total += 7 {
		for perPage := 1; perPage <= 12; perPage += 3 {
			totalPages, err := TotalPages(total, perPage)
			require.NoError(t, err)

			for current := 1; current <= totalPages+2; current++ {
				for maxLinks := 1; maxLinks <= 7; maxLinks++ {
					plan, err := NewPlan(total, perPage, current, maxLinks)
					require.NoError(t, err)

					item, _, ok := plan.Current()
					require.True(t, ok)
					require.Equal(t, min(current, totalPages), item.Page)

					pages := plan.Pages()
					require.Equal(t, 1, pages[0])
					require.Equal(t, totalPages, pages[len(pages)-1])
					require.NoError(t, plan.validate(),
						"total=%d perPage=%d current=%d maxLinks=%d", total, perPage, current, maxLinks)
				}
			}
		}
	}
}

func Test_NewPlan_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		perPage  int
		current  int
		maxLinks int
	}{
		{"zero per page", 10, 0, 1, 5},
		{"negative per page", 10, -5, 1, 5},
		{"zero current page", 10, 5, 0, 5},
		{"negative current page", 10, 5, -1, 5},
		{"zero max links", 10, 5, 1, 0},
		{"negative total", -10, 5, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := NewPlan(tt.total, tt.perPage, tt.current, tt.maxLinks)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidConfiguration)
			require.Nil(t, plan)
		})
	}
}

func Test_Plan_validate(t *testing.T) {
	tests := []struct {
		name string
		plan Plan
		ok   bool
	}{
		{"empty plan", Plan{}, true},
		{"single current", Plan{{Type: ItemCurrent, Label: "1", Page: 1}}, true},
		{"no current", Plan{{Type: ItemNumber, Label: "1", Page: 1}}, false},
		{
			"two currents",
			Plan{{Type: ItemCurrent, Label: "1", Page: 1}, {Type: ItemCurrent, Label: "2", Page: 2}},
			false,
		},
		{
			"adjacent separators",
			Plan{
				{Type: ItemCurrent, Label: "1", Page: 1},
				{Type: ItemSeparator, Page: 2},
				{Type: ItemSeparator, Page: 3},
				{Type: ItemNumber, Label: "9", Page: 9},
			},
			false,
		},
		{
			"pages out of order",
			Plan{{Type: ItemNumber, Label: "2", Page: 2}, {Type: ItemCurrent, Label: "1", Page: 1}},
			false,
		},
		{"unknown type", Plan{{Type: "bogus"}, {Type: ItemCurrent, Label: "1", Page: 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.plan.validate(); (err == nil) != tt.ok {
				t.Errorf("%s: ok=%v err=%v", tt.name, tt.ok, err)
			}
		})
	}
}

func Test_pageWindow(t *testing.T) {
	tests := []struct {
		name                 string
		current, pages, size int
		wantStart, wantEnd   int
	}{
		{"centered odd", 5, 10, 3, 4, 6},
		{"centered even leans forward", 5, 10, 4, 4, 7},
		{"shifted at start", 1, 10, 5, 1, 5},
		{"shifted at end", 10, 10, 5, 6, 10},
		{"wider than pages", 2, 3, 9, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := pageWindow(tt.current, tt.pages, tt.size)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("%s: got [%d,%d] want [%d,%d]", tt.name, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func Test_PlannerFunc(t *testing.T) {
	called := false
	var p Planner = PlannerFunc(func(totalItems, itemsPerPage, currentPage, maxLinks int) (Plan, error) {
		called = true
		return Plan{{Type: ItemCurrent, Label: "1", Page: 1}}, nil
	})

	plan, err := p.Plan(1, 1, 1, 1)
	require.NoError(t, err)
	require.True(t, called)
	require.Len(t, plan, 1)
}
