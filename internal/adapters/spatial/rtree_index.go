// Package spatial provides an R-tree index over catalog locations for
// "what is near this point" lookups.
package spatial

import (
	"fmt"
	"math"
	"slices"
	"sync"
	"warehouse-picker-service/internal/domain"

	"github.com/dhconnelly/rtreego"
)

const (
	tolerance   = 1e-9
	minChildren = 25
	maxChildren = 50
	dimensions  = 2
)

// indexedLocation wraps a Location for R-tree indexing
type indexedLocation struct {
	loc      *domain.Location
	position int
	rect     *rtreego.Rect
}

func (il *indexedLocation) Bounds() *rtreego.Rect {
	return il.rect
}

// LocationIndex is a thread-safe R-tree over warehouse locations.
type LocationIndex struct {
	tree *rtreego.Rtree
	mu   sync.RWMutex
	size int
}

// NewLocationIndex indexes locs; the slice position is used to break distance ties.
func NewLocationIndex(locs []*domain.Location) *LocationIndex {
	idx := &LocationIndex{
		tree: rtreego.NewTree(dimensions, minChildren, maxChildren),
	}

	for i, loc := range locs {
		if loc == nil {
			continue
		}
		p := rtreego.Point{loc.X, loc.Y}
		idx.tree.Insert(&indexedLocation{loc: loc, position: i, rect: p.ToRect(tolerance)})
		idx.size++
	}

	return idx
}

func (g *LocationIndex) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.size
}

type candidate struct {
	item *indexedLocation
	dist float64
}

// Nearest returns up to k locations ordered by Euclidean distance from (x, y).
// Equidistant locations come out in index order.
func (g *LocationIndex) Nearest(x, y float64, k int) ([]*domain.Location, error) {
	if k <= 0 {
		return []*domain.Location{}, nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.size == 0 {
		return []*domain.Location{}, nil
	}
	if k > g.size {
		k = g.size
	}

	// The tree's pick among points tied at the k-th distance is arbitrary, so
	// use it only to find the search radius, then rank every point inside it.
	query := rtreego.Point{x, y}
	radius := 0.0
	for _, s := range g.tree.NearestNeighbors(k, query) {
		item, ok := s.(*indexedLocation)
		if !ok || item == nil {
			continue
		}
		radius = math.Max(radius, math.Hypot(item.loc.X-x, item.loc.Y-y))
	}

	reach := radius + 2*tolerance
	bounds, err := rtreego.NewRect(rtreego.Point{x - reach, y - reach}, []float64{2 * reach, 2 * reach})
	if err != nil {
		return nil, fmt.Errorf("nearest locations: invalid search box: %w", err)
	}

	cands := make([]candidate, 0, k)
	for _, s := range g.tree.SearchIntersect(bounds) {
		item, ok := s.(*indexedLocation)
		if !ok || item == nil {
			continue
		}
		d := math.Hypot(item.loc.X-x, item.loc.Y-y)
		if d <= radius {
			cands = append(cands, candidate{item: item, dist: d})
		}
	}

	slices.SortFunc(cands, func(a, b candidate) int {
		if a.dist < b.dist {
			return -1
		}
		if a.dist > b.dist {
			return 1
		}
		return a.item.position - b.item.position
	})

	if len(cands) > k {
		cands = cands[:k]
	}

	out := make([]*domain.Location, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.item.loc)
	}
	return out, nil
}

// Within returns all locations inside the closed box [minX, maxX] x [minY, maxY],
// in index order.
func (g *LocationIndex) Within(minX, minY, maxX, maxY float64) ([]*domain.Location, error) {
	if maxX < minX || maxY < minY {
		return nil, fmt.Errorf("locations within: invalid box (%v, %v)-(%v, %v)", minX, minY, maxX, maxY)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	// Pad by tolerance so zero-width boxes and boundary points still intersect.
	bounds, err := rtreego.NewRect(
		rtreego.Point{minX - tolerance, minY - tolerance},
		[]float64{maxX - minX + 2*tolerance, maxY - minY + 2*tolerance},
	)
	if err != nil {
		return nil, fmt.Errorf("locations within: invalid box: %w", err)
	}

	hits := make([]*indexedLocation, 0)
	for _, s := range g.tree.SearchIntersect(bounds) {
		item, ok := s.(*indexedLocation)
		if !ok || item == nil {
			continue
		}
		l := item.loc
		if l.X >= minX && l.X <= maxX && l.Y >= minY && l.Y <= maxY {
			hits = append(hits, item)
		}
	}

	slices.SortFunc(hits, func(a, b *indexedLocation) int { return a.position - b.position })

	out := make([]*domain.Location, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.loc)
	}
	return out, nil
}
