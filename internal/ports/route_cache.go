package ports

import "context"

// Ordered stop names and total distance of a previously planned route.
type CachedRoute struct {
	Names         []string `json:"names"`
	TotalDistance float64  `json:"total_distance"`
}

// Contract for memoizing planned routes between identical requests.
type RouteCache interface {
	// Return the cached route for key; ok is false on a miss.
	Get(ctx context.Context, key string) (route CachedRoute, ok bool, err error)
	// Store a planned route under key.
	Put(ctx context.Context, key string, route CachedRoute) error
}
