// Package search defines core types, options, and sentinel errors
// for the search subpackage of github.com/katalvlaran/gridpath.
package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to Run.
	ErrNilGrid = errors.New("search: grid is nil")
	// ErrUnknownAlgorithm is returned for an Algorithm value outside the enum.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm selects one of the nine search strategies.
type Algorithm int

const (
	// BFS is breadth-first search: minimum edge-count paths on the unit grid.
	BFS Algorithm = iota
	// DFS is depth-first search: no shortest-path guarantee.
	DFS
	// Dijkstra orders expansion by accumulated cost g.
	Dijkstra
	// AStar orders expansion by g + h with an admissible heuristic.
	AStar
	// WeightedAStar orders expansion by g + w·h, trading optimality for speed.
	WeightedAStar
	// Greedy orders expansion by h alone and never revisits a discovered cell.
	Greedy
	// Bidirectional runs two alternating BFS frontiers from start and target.
	Bidirectional
	// IDAStar is iterative-deepening A*: bounded depth-first probes.
	IDAStar
	// JPS is Jump Point Search: A* with axis-aligned symmetry pruning.
	JPS
)

// algorithmNames maps Algorithm values to their canonical names.
var algorithmNames = map[Algorithm]string{
	BFS:           "bfs",
	DFS:           "dfs",
	Dijkstra:      "dijkstra",
	AStar:         "astar",
	WeightedAStar: "weighted-astar",
	Greedy:        "greedy",
	Bidirectional: "bidirectional",
	IDAStar:       "idastar",
	JPS:           "jps",
}

// String returns the canonical lower-case name of the algorithm.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return fmt.Sprintf("algorithm(%d)", int(a))
}

// Algorithms returns all selectable algorithms in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{
		BFS, DFS, Dijkstra, AStar, WeightedAStar,
		Greedy, Bidirectional, IDAStar, JPS,
	}
}

// ParseAlgorithm resolves a canonical name (as produced by String) back to
// its Algorithm value. Returns ErrUnknownAlgorithm for anything else.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if algorithmNames[a] == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Result holds the outcome of one search run:
//   - Trace: cells in finalization order (removed from the open set),
//     append-only, at most one entry per cell.
//   - Path: cells from start to target inclusive, 4-adjacent step to step;
//     empty when Found is false.
//   - Found: whether the target was reached.
//   - Cost: total movement cost of Path (0 when not found).
//   - Expanded: total dequeues, including stale entries discarded by the
//     priority-driven searches; always ≥ len(Trace).
type Result struct {
	Trace    []grid.Cell
	Path     []grid.Cell
	Found    bool
	Cost     float64
	Expanded int
}
