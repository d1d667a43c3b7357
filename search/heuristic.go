package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Heuristic estimates the remaining cost from a to b. It must never be
// negative; admissibility (never overestimating) is required for A* and
// IDA* optimality but not enforced.
type Heuristic func(a, b grid.Cell) float64

// Manhattan returns |Δrow| + |Δcol| — exact on an unobstructed 4-connected
// unit grid, hence admissible and consistent. The default heuristic.
func Manhattan(a, b grid.Cell) float64 {
	return math.Abs(float64(a.Row-b.Row)) + math.Abs(float64(a.Col-b.Col))
}

// Euclidean returns the straight-line distance √(Δrow² + Δcol²).
// Admissible on the 4-connected grid (it never exceeds Manhattan).
func Euclidean(a, b grid.Cell) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)

	return math.Sqrt(dr*dr + dc*dc)
}
