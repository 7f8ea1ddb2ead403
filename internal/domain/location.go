package domain

import (
	"math"
	"strconv"
)

// Location is a named shelf or bin position on the warehouse floor.
// All locations share one planar coordinate unit. A Location is treated as
// immutable once constructed; identity is the pointer, not the field values.
type Location struct {
	Name string
	X    float64
	Y    float64
}

func NewLocation(name string, x, y float64) *Location {
	return &Location{Name: name, X: x, Y: y}
}

// DistanceTo returns the Euclidean distance between two locations.
// other must be non-nil.
func (l *Location) DistanceTo(other *Location) float64 {
	return math.Hypot(l.X-other.X, l.Y-other.Y)
}

// String renders the location as "name (x, y)".
func (l *Location) String() string {
	return l.Name + " (" + formatCoord(l.X) + ", " + formatCoord(l.Y) + ")"
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
