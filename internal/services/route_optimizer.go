package services

import (
	"math"
	"warehouse-picker-service/internal/domain"
)

// FindShortestRoute orders locations using a greedy nearest-neighbor heuristic.
//
// The route starts at locations[0] and repeatedly steps to the closest
// unvisited location. It does not attempt global optimization (no 2-opt or
// multi-start search), so the result depends on which item comes first.
// Visited entries are tracked by input index, never by value equality.
//
// The input is not modified. The returned slice is a permutation of it.
func FindShortestRoute(locations []*domain.Location) []*domain.Location {
	if len(locations) == 0 {
		return []*domain.Location{}
	}

	visited := make([]bool, len(locations))
	route := make([]*domain.Location, 0, len(locations))

	current := 0
	visited[current] = true
	route = append(route, locations[current])

	for len(route) < len(locations) {
		best := -1
		minDistance := math.Inf(1)

		// Scan in input order; strict less-than lets the earliest candidate win ties.
		for i, loc := range locations {
			if visited[i] {
				continue
			}
			d := locations[current].DistanceTo(loc)
			if best == -1 || d < minDistance {
				minDistance = d
				best = i
			}
		}

		visited[best] = true
		route = append(route, locations[best])
		current = best
	}

	return route
}

// CalculateTotalDistance sums the leg lengths between consecutive stops.
// Any ordering is accepted; empty and single-stop routes have length 0.
func CalculateTotalDistance(route []*domain.Location) float64 {
	total := 0.0
	for i := 0; i+1 < len(route); i++ {
		total += route[i].DistanceTo(route[i+1])
	}
	return total
}
