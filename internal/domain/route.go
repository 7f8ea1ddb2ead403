package domain

// Represents the planned visiting order for one pick list.
// A PickRoute is the output of the routing heuristic: each selected location
// appears exactly once in Stops, in visiting order, starting at the first
// item added. TotalDistance is the sum of consecutive leg lengths.
// It is immutable planning data and contains no side effects.
type PickRoute struct {
	Stops         []*Location
	TotalDistance float64
}

// Names returns the stop names in visiting order.
func (r *PickRoute) Names() []string {
	out := make([]string, 0, len(r.Stops))
	for _, s := range r.Stops {
		out = append(out, s.Name)
	}
	return out
}
