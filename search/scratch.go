package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// scratch holds the per-run search bookkeeping: accumulated cost, cached
// heuristic values, predecessor links, and the closed set. A fresh table is
// allocated at the start of every run and owned exclusively by it — nothing
// here survives into the next run or leaks onto the grid.
type scratch struct {
	g      map[grid.Cell]float64
	h      map[grid.Cell]float64
	prev   map[grid.Cell]grid.Cell
	closed map[grid.Cell]bool
}

// newScratch allocates a scratch table sized for n cells.
func newScratch(n int) *scratch {
	return &scratch{
		g:      make(map[grid.Cell]float64, n),
		h:      make(map[grid.Cell]float64, n),
		prev:   make(map[grid.Cell]grid.Cell, n),
		closed: make(map[grid.Cell]bool, n),
	}
}

// gCost returns the best known distance from start to c, +∞ if undiscovered.
func (s *scratch) gCost(c grid.Cell) float64 {
	if v, ok := s.g[c]; ok {
		return v
	}

	return math.Inf(1)
}

// heuristic returns h(c, target), computing it at most once per cell.
func (s *scratch) heuristic(c, target grid.Cell, h Heuristic) float64 {
	if v, ok := s.h[c]; ok {
		return v
	}
	v := h(c, target)
	s.h[c] = v

	return v
}
