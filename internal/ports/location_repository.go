package ports

import (
	"context"
	"warehouse-picker-service/internal/domain"
)

// Port: a boundary for retrieving the location catalog from a data source.
type LocationRepository interface {
	// Retrieve all pickable locations in catalog order.
	ListLocations(ctx context.Context) ([]*domain.Location, error)
}
