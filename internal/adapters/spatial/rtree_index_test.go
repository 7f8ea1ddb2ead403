package spatial

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"
	"warehouse-picker-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func locNames(locs []*domain.Location) []string {
	out := make([]string, len(locs))
	for i, l := range locs {
		out[i] = l.Name
	}
	return out
}

func TestNewLocationIndex(t *testing.T) {
	index := NewLocationIndex(domain.WarehouseLocations())
	assert.NotNil(t, index)
	assert.Equal(t, 5, index.Len())

	empty := NewLocationIndex(nil)
	assert.Equal(t, 0, empty.Len())
	got, err := empty.Nearest(0, 0, 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNearestWarehouse(t *testing.T) {
	index := NewLocationIndex(domain.WarehouseLocations())

	// From (2,3): A 0, E √5, C √10, B √13, D √29
	got, err := index.Nearest(2, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Item A", "Item E", "Item C"}, locNames(got))

	all, err := index.Nearest(2, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Item A", "Item E", "Item C", "Item B", "Item D"}, locNames(all))

	none, err := index.Nearest(2, 3, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestNearestTiesUseIndexOrder(t *testing.T) {
	locs := []*domain.Location{
		domain.NewLocation("far", 10, 10),
		domain.NewLocation("east", 1, 0),
		domain.NewLocation("north", 0, 1),
		domain.NewLocation("west", -1, 0),
		domain.NewLocation("south", 0, -1),
	}
	index := NewLocationIndex(locs)

	got, err := index.Nearest(0, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"east", "north"}, locNames(got))
}

func TestNearestMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	locs := make([]*domain.Location, 200)
	for i := range locs {
		locs[i] = domain.NewLocation(fmt.Sprintf("bin-%d", i), float64(rng.Intn(40)), float64(rng.Intn(40)))
	}
	index := NewLocationIndex(locs)

	for q := 0; q < 25; q++ {
		x, y := rng.Float64()*40, rng.Float64()*40
		k := 1 + rng.Intn(10)

		got, err := index.Nearest(x, y, k)
		require.NoError(t, err)

		type ranked struct {
			pos  int
			dist float64
		}
		all := make([]ranked, len(locs))
		for i, l := range locs {
			all[i] = ranked{pos: i, dist: math.Hypot(l.X-x, l.Y-y)}
		}
		slices.SortStableFunc(all, func(a, b ranked) int {
			switch {
			case a.dist < b.dist:
				return -1
			case a.dist > b.dist:
				return 1
			}
			return 0
		})

		want := make([]*domain.Location, k)
		for i := 0; i < k; i++ {
			want[i] = locs[all[i].pos]
		}
		assert.Equal(t, locNames(want), locNames(got), "query (%v, %v) k=%d", x, y, k)
	}
}

func TestWithin(t *testing.T) {
	index := NewLocationIndex(domain.WarehouseLocations())

	got, err := index.Within(1, 2, 4, 6)
	require.NoError(t, err)
	// A(2,3), C(1,6) on the boundary, E(4,2) on the corner
	assert.Equal(t, []string{"Item A", "Item C", "Item E"}, locNames(got))

	point, err := index.Within(5, 5, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Item B"}, locNames(point))

	_, err = index.Within(5, 5, 1, 1)
	assert.Error(t, err)
}
