package services

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
	"warehouse-picker-service/internal/domain"
)

const eps = 1e-9

func warehouse() (a, b, c, d, e *domain.Location) {
	locs := domain.WarehouseLocations()
	return locs[0], locs[1], locs[2], locs[3], locs[4]
}

func names(route []*domain.Location) []string {
	out := make([]string, len(route))
	for i, l := range route {
		out[i] = l.Name
	}
	return out
}

func TestFindShortestRouteWarehouseScenario(t *testing.T) {
	a, b, c, d, e := warehouse()
	input := []*domain.Location{a, b, c, d, e}

	route := FindShortestRoute(input)

	// A->E (√5); from E, B and D tie at √10 and B wins by input order;
	// B->C (√17) beats B->D (√20); C->D (√61).
	want := []*domain.Location{a, e, b, c, d}
	if len(route) != len(want) {
		t.Fatalf("expected %d stops, got %d", len(want), len(route))
	}
	for i := range want {
		if route[i] != want[i] {
			t.Fatalf("route = %v, want %v", names(route), names(want))
		}
	}

	total := CalculateTotalDistance(route)
	wantTotal := math.Sqrt(5) + math.Sqrt(10) + math.Sqrt(17) + math.Sqrt(61)
	if math.Abs(total-wantTotal) > eps {
		t.Fatalf("distance = %v, want %v", total, wantTotal)
	}
	if fmt.Sprintf("%.2f", total) != "17.33" {
		t.Fatalf("rounded distance = %.2f, want 17.33", total)
	}

	naive := CalculateTotalDistance(input)
	wantNaive := math.Sqrt(13) + math.Sqrt(17) + math.Sqrt(61) + math.Sqrt(10)
	if math.Abs(naive-wantNaive) > eps {
		t.Fatalf("naive distance = %v, want %v", naive, wantNaive)
	}
	if total > naive {
		t.Fatalf("heuristic distance %v worse than input order %v", total, naive)
	}
}

func TestFindShortestRouteStartsAtFirstAdded(t *testing.T) {
	a, b, c, d, e := warehouse()

	route := FindShortestRoute([]*domain.Location{d, a, b, c, e})
	if route[0] != d {
		t.Fatalf("route starts at %s, want %s", route[0].Name, d.Name)
	}

	// From D(7,1): E(4,2) √10; from E: A √5; from A: C √10 vs B √13; then B.
	want := []string{"Item D", "Item E", "Item A", "Item C", "Item B"}
	got := names(route)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("route = %v, want %v", got, want)
		}
	}
}

func TestFindShortestRouteTieBreakByInputOrder(t *testing.T) {
	start := domain.NewLocation("S", 0, 0)
	left := domain.NewLocation("L", -1, 0)
	right := domain.NewLocation("R", 1, 0)

	route := FindShortestRoute([]*domain.Location{start, right, left})
	if route[1] != right || route[2] != left {
		t.Fatalf("route = %v, want [S R L]", names(route))
	}

	route = FindShortestRoute([]*domain.Location{start, left, right})
	if route[1] != left || route[2] != right {
		t.Fatalf("route = %v, want [S L R]", names(route))
	}
}

func TestFindShortestRouteBoundaries(t *testing.T) {
	empty := FindShortestRoute(nil)
	if empty == nil || len(empty) != 0 {
		t.Fatalf("empty input: got %v, want empty slice", empty)
	}

	a, _, _, _, _ := warehouse()
	single := FindShortestRoute([]*domain.Location{a})
	if len(single) != 1 || single[0] != a {
		t.Fatalf("single input: got %v", names(single))
	}

	if d := CalculateTotalDistance(nil); d != 0 {
		t.Fatalf("empty distance = %v, want 0", d)
	}
	if d := CalculateTotalDistance([]*domain.Location{a}); d != 0 {
		t.Fatalf("single distance = %v, want 0", d)
	}
}

func TestFindShortestRouteDoesNotMutateInput(t *testing.T) {
	a, b, c, d, e := warehouse()
	input := []*domain.Location{a, b, c, d, e}
	snapshot := append([]*domain.Location(nil), input...)

	_ = FindShortestRoute(input)

	for i := range input {
		if input[i] != snapshot[i] {
			t.Fatalf("input mutated at %d: %s != %s", i, input[i].Name, snapshot[i].Name)
		}
	}
}

func TestFindShortestRouteDuplicateEntriesTerminate(t *testing.T) {
	a, b, _, _, _ := warehouse()

	route := FindShortestRoute([]*domain.Location{a, b, a})
	if len(route) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(route))
	}
	// the second A is at distance 0 from the start
	if route[1] != a || route[2] != b {
		t.Fatalf("route = %v, want [Item A Item A Item B]", names(route))
	}
}

func TestFindShortestRouteProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 1; n <= 30; n++ {
		locs := make([]*domain.Location, n)
		for i := range locs {
			locs[i] = domain.NewLocation(
				fmt.Sprintf("bin-%d", i),
				float64(rng.Intn(50)),
				float64(rng.Intn(50)),
			)
		}

		route := FindShortestRoute(locs)

		// permutation
		if len(route) != n {
			t.Fatalf("n=%d: len = %d", n, len(route))
		}
		seen := make(map[*domain.Location]int, n)
		for _, l := range route {
			seen[l]++
		}
		for _, l := range locs {
			if seen[l] != 1 {
				t.Fatalf("n=%d: %s appears %d times", n, l.Name, seen[l])
			}
		}
		if route[0] != locs[0] {
			t.Fatalf("n=%d: route must start at the first input", n)
		}

		// determinism
		again := FindShortestRoute(locs)
		for i := range route {
			if route[i] != again[i] {
				t.Fatalf("n=%d: non-deterministic at %d", n, i)
			}
		}

		// greedy step: every stop is a closest remaining candidate
		for i := 1; i < n; i++ {
			step := route[i-1].DistanceTo(route[i])
			for _, rest := range route[i+1:] {
				if route[i-1].DistanceTo(rest) < step {
					t.Fatalf("n=%d: step %d skipped a closer stop %s", n, i, rest.Name)
				}
			}
		}
	}
}

func TestFindShortestRouteNoWorseThanZigZagInput(t *testing.T) {
	pts := func(coords ...float64) []*domain.Location {
		out := make([]*domain.Location, 0, len(coords)/2)
		for i := 0; i+1 < len(coords); i += 2 {
			out = append(out, domain.NewLocation(fmt.Sprintf("P%d", i/2), coords[i], coords[i+1]))
		}
		return out
	}

	circle := make([]*domain.Location, 0, 8)
	for _, k := range []int{0, 4, 1, 5, 2, 6, 3, 7} {
		angle := float64(k) * math.Pi / 4
		circle = append(circle, domain.NewLocation(fmt.Sprintf("R%d", k), 10*math.Cos(angle), 10*math.Sin(angle)))
	}

	tests := []struct {
		name string
		in   []*domain.Location
		want float64 // greedy total, 0 to skip the exact check
	}{
		{"collinear zig-zag", pts(0, 0, 10, 0, 1, 0, 9, 0, 2, 0), 10},
		{"two aisles alternating", pts(0, 0, 5, 5, 0, 1, 5, 4, 0, 2, 5, 3), 4 + math.Sqrt(26)},
		{"square diagonals", pts(0, 0, 1, 1, 0, 1, 1, 0), 3},
		{"far clusters alternating", pts(0, 0, 100, 0, 1, 0, 101, 0), 101},
		{"ring out of order", circle, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := FindShortestRoute(tt.in)
			if len(route) != len(tt.in) {
				t.Fatalf("expected %d stops, got %d", len(tt.in), len(route))
			}
			if route[0] != tt.in[0] {
				t.Fatalf("route starts at %s, want %s", route[0].Name, tt.in[0].Name)
			}

			got := CalculateTotalDistance(route)
			naive := CalculateTotalDistance(tt.in)
			if got > naive+eps {
				t.Fatalf("heuristic distance %v worse than input order %v", got, naive)
			}
			if tt.want != 0 && math.Abs(got-tt.want) > eps {
				t.Fatalf("distance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateTotalDistanceAnyOrder(t *testing.T) {
	p := []*domain.Location{
		domain.NewLocation("p0", 0, 0),
		domain.NewLocation("p1", 3, 4),
		domain.NewLocation("p2", 3, 0),
	}

	if d := CalculateTotalDistance(p); math.Abs(d-9) > eps {
		t.Fatalf("distance = %v, want 9", d)
	}
	rev := []*domain.Location{p[2], p[1], p[0]}
	if d := CalculateTotalDistance(rev); math.Abs(d-9) > eps {
		t.Fatalf("reversed distance = %v, want 9", d)
	}
}

func BenchmarkFindShortestRoute(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	locs := make([]*domain.Location, 40)
	for i := range locs {
		locs[i] = domain.NewLocation(fmt.Sprintf("bin-%d", i), rng.Float64()*100, rng.Float64()*100)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FindShortestRoute(locs)
	}
}
