package pagenav

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

// ItemType defines the role of an item within the pagination list.
type ItemType string

const (
	ItemPrevious  ItemType = "previous"
	ItemNext      ItemType = "next"
	ItemFirst     ItemType = "first"
	ItemLast      ItemType = "last"
	ItemNumber    ItemType = "number"
	ItemCurrent   ItemType = "current"
	ItemSeparator ItemType = "separator"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemPrevious, ItemNext, ItemFirst, ItemLast, ItemNumber, ItemCurrent, ItemSeparator:
		return true
	default:
		return false
	}
}

// IsNumbered returns true for items linking to a page by its number.
func (t ItemType) IsNumbered() bool {
	return t == ItemNumber || t == ItemCurrent
}

// Default labels used by the planner for control and separator items.
const (
	DefaultPreviousLabel  = "&laquo;"
	DefaultNextLabel      = "&raquo;"
	DefaultFirstLabel     = "First"
	DefaultLastLabel      = "Last"
	DefaultSeparatorLabel = "&hellip;"
)

type (
	// Item is a single unit of the pagination list: a page number, a control or a separator.
	Item struct {
		Type  ItemType
		Label string
		// Page is the page the item points to. Separators carry the first page they stand for.
		Page int
	}

	// Plan is the ordered list of items to display, left to right.
	Plan []Item
)

func numberItem(page, current int) Item {
	return Item{
		Type:  lo.Ternary(page == current, ItemCurrent, ItemNumber),
		Label: strconv.Itoa(page),
		Page:  page,
	}
}

// Current returns the item marked as current. The second value is false for an empty plan.
func (p Plan) Current() (Item, int, bool) {
	return lo.FindIndexOf(p, func(item Item) bool {
		return item.Type == ItemCurrent
	})
}

// Pages returns the page numbers of all numbered items in display order.
func (p Plan) Pages() []int {
	numbered := lo.Filter(p, func(item Item, _ int) bool {
		return item.Type.IsNumbered()
	})

	return lo.Map(numbered, func(item Item, _ int) int {
		return item.Page
	})
}

// Types returns item types in display order.
func (p Plan) Types() []ItemType {
	return lo.Map(p, func(item Item, _ int) ItemType {
		return item.Type
	})
}

// validate checks the invariants every planner has to keep. It is used to reject plans
// produced by custom planners before they reach the renderer.
func (p Plan) validate() error {
	if len(p) == 0 {
		return nil
	}

	currents := 0
	lastPage := 0
	for i, item := range p {
		if !item.Type.Valid() {
			return fmt.Errorf("unknown item type '%s' at position %d", item.Type, i)
		}

		if item.Type == ItemSeparator && i > 0 && p[i-1].Type == ItemSeparator {
			return fmt.Errorf("adjacent separators at position %d", i)
		}

		if !item.Type.IsNumbered() {
			continue
		}

		if item.Type == ItemCurrent {
			currents++
		}
		if item.Page <= lastPage {
			return fmt.Errorf("page %d at position %d is out of order", item.Page, i)
		}
		lastPage = item.Page
	}

	if currents != 1 {
		return fmt.Errorf("plan must contain exactly one current item, got %d", currents)
	}

	return nil
}
