package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// buildRandomGrid constructs an n×n grid with roughly p probability of any
// non-endpoint cell being a wall. Deterministic seed for reproducibility;
// walls that would seal off the corners are simply rejected by the grid, so
// the map always keeps its endpoints open.
func buildRandomGrid(b *testing.B, n int, p float64, seed int64) *grid.Grid {
	b.Helper()
	r := rand.New(rand.NewSource(seed))
	g, err := grid.New(n, n, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: n - 1, Col: n - 1})
	if err != nil {
		b.Fatalf("build %dx%d grid: %v", n, n, err)
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if r.Float64() < p {
				g.SetTraversable(grid.Cell{Row: row, Col: col}, false)
			}
		}
	}
	return g
}

// BenchmarkSearchAlgorithms measures every search strategy on grids of
// increasing size and obstacle density. Each algorithm runs as its own
// sub-benchmark so comparisons stay one `benchstat` away.
func BenchmarkSearchAlgorithms(b *testing.B) {
	cases := []struct {
		name string
		n    int
		p    float64
	}{
		{"open-16", 16, 0.0},
		{"sparse-32", 32, 0.1},
		{"dense-64", 64, 0.25},
	}
	for _, tc := range cases {
		g := buildRandomGrid(b, tc.n, tc.p, 42)
		for _, a := range search.Algorithms() {
			b.Run(tc.name+"/"+a.String(), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := search.Run(g, a); err != nil {
						b.Fatalf("run %s: %v", a, err)
					}
				}
			})
		}
	}
}

// BenchmarkBFSLargeOpenGrid isolates the queue-bound baseline on a 128×128
// empty map — the worst case for uninformed searches.
func BenchmarkBFSLargeOpenGrid(b *testing.B) {
	g := buildRandomGrid(b, 128, 0.0, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Run(g, search.BFS); err != nil {
			b.Fatalf("run bfs: %v", err)
		}
	}
}
