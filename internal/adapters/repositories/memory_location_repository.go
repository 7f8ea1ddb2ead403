package repositories

import (
	"context"
	"warehouse-picker-service/internal/domain"
)

// In-process implementation of the LocationRepository port.
// The same entities are returned on every call.
type MemoryLocationRepository struct {
	locations []*domain.Location
}

func NewMemoryLocationRepository(locs []*domain.Location) *MemoryLocationRepository {
	cp := make([]*domain.Location, len(locs))
	copy(cp, locs)
	return &MemoryLocationRepository{locations: cp}
}

// Return all locations in the order they were given.
func (m *MemoryLocationRepository) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*domain.Location, len(m.locations))
	copy(out, m.locations)
	return out, nil
}
