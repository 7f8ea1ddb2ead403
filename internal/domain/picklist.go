package domain

import (
	"errors"
	"fmt"
)

// MinRouteItems is the smallest pick list a route is calculated for.
const MinRouteItems = 2

// PickList is the worker's working set of selected locations for a single
// route request. Items keep their add-order; the first item added becomes
// the start of the route.
// A PickList is owned by one caller and is not safe for concurrent use.
type PickList struct {
	items []*Location
}

func NewPickList() *PickList {
	return &PickList{}
}

// Add a single location to the pick list.
// The same location (by identity) cannot be added twice.
func (p *PickList) Add(loc *Location) error {
	if loc == nil {
		return errors.New("add to pick list: location must be non-nil")
	}
	if p.Contains(loc) {
		return fmt.Errorf("add to pick list: %q: %w", loc.Name, ErrDuplicateItem)
	}
	p.items = append(p.items, loc)
	return nil
}

func (p *PickList) Contains(loc *Location) bool {
	for _, it := range p.items {
		if it == loc {
			return true
		}
	}
	return false
}

// Items returns a copy of the selected locations in add-order.
func (p *PickList) Items() []*Location {
	out := make([]*Location, len(p.items))
	copy(out, p.items)
	return out
}

func (p *PickList) Len() int { return len(p.items) }

// Ready reports whether enough items are selected to calculate a route.
func (p *PickList) Ready() error {
	if len(p.items) < MinRouteItems {
		return fmt.Errorf("pick list has %d item(s): %w", len(p.items), ErrTooFewItems)
	}
	return nil
}

// Remove all items from the pick list.
func (p *PickList) Clear() {
	p.items = nil
}
