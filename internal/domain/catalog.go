package domain

import (
	"fmt"
	"strings"
)

// Catalog is the fixed, ordered set of pickable locations, indexed by name.
type Catalog struct {
	ordered []*Location
	byName  map[string]*Location
}

// NewCatalog builds a catalog preserving the given order.
// Names must be non-empty and unique.
func NewCatalog(locs []*Location) (*Catalog, error) {
	c := &Catalog{
		ordered: make([]*Location, 0, len(locs)),
		byName:  make(map[string]*Location, len(locs)),
	}

	for i, loc := range locs {
		if loc == nil {
			return nil, fmt.Errorf("new catalog: location at index %d is nil", i)
		}
		name := strings.TrimSpace(loc.Name)
		if name == "" {
			return nil, fmt.Errorf("new catalog: location at index %d has empty name", i)
		}
		if _, ok := c.byName[name]; ok {
			return nil, fmt.Errorf("new catalog: %q: %w", name, ErrDuplicateItem)
		}
		c.byName[name] = loc
		c.ordered = append(c.ordered, loc)
	}

	return c, nil
}

// Lookup returns the cataloged location with the given name.
func (c *Catalog) Lookup(name string) (*Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("catalog lookup: empty name: %w", ErrItemNotFound)
	}

	loc, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("catalog lookup: %q: %w", name, ErrItemNotFound)
	}
	return loc, nil
}

// Locations returns the cataloged locations in catalog order.
func (c *Catalog) Locations() []*Location {
	out := make([]*Location, len(c.ordered))
	copy(out, c.ordered)
	return out
}

func (c *Catalog) Len() int { return len(c.ordered) }

// WarehouseLocations returns the reference floor layout of five items.
func WarehouseLocations() []*Location {
	return []*Location{
		NewLocation("Item A", 2, 3),
		NewLocation("Item B", 5, 5),
		NewLocation("Item C", 1, 6),
		NewLocation("Item D", 7, 1),
		NewLocation("Item E", 4, 2),
	}
}
