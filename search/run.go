package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Run executes the selected algorithm on g and returns its visitation trace
// and reconstructed path, applying any number of functional Options.
//
// Validation happens before any search work, in order: nil grid, invalid
// options, grid preconditions (endpoints present, distinct, traversable),
// unknown algorithm. A grid with no route to the target is NOT an error:
// the run completes with Found=false, an empty path, and the trace of every
// cell it finalized.
//
// Each invocation allocates fresh scratch state; nothing is shared between
// runs and the grid itself is only read.
func Run(g *grid.Grid, algo Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	switch algo {
	case BFS:
		return runBFS(g, &o), nil
	case DFS:
		return runDFS(g, &o), nil
	case Dijkstra:
		return runDijkstra(g, &o), nil
	case AStar:
		return runAStar(g, &o), nil
	case WeightedAStar:
		return runWeightedAStar(g, &o), nil
	case Greedy:
		return runGreedy(g, &o), nil
	case Bidirectional:
		return runBidirectional(g, &o), nil
	case IDAStar:
		return runIDAStar(g, &o), nil
	case JPS:
		return runJPS(g, &o), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}
