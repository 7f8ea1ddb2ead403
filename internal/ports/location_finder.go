package ports

import "warehouse-picker-service/internal/domain"

// Contract for spatial lookups over the catalog.
type LocationFinder interface {
	// Return up to k locations closest to (x, y), nearest first.
	Nearest(x, y float64, k int) ([]*domain.Location, error)
	// Return every location inside the closed box, in catalog order.
	Within(minX, minY, maxX, maxY float64) ([]*domain.Location, error)
}
