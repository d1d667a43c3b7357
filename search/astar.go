package search

import "github.com/katalvlaran/gridpath/grid"

// runAStar expands cells by f = g + h, breaking ties toward smaller h so
// that cells closer to the target are finalized first among equals. With an
// admissible, consistent heuristic the returned path cost equals Dijkstra's.
func runAStar(g *grid.Grid, o *Options) *Result {
	rule := func(gCost, hCost float64) (f, tie float64) {
		return gCost + hCost, hCost
	}

	return newCostRunner(g, o, rule, true, false).run()
}

// runWeightedAStar expands cells by f = g + w·h with w ≥ 1. Inflating the
// heuristic pulls the search toward the target and typically shrinks the
// trace, at the price of paths up to w times costlier than optimal.
func runWeightedAStar(g *grid.Grid, o *Options) *Result {
	w := o.Weight
	rule := func(gCost, hCost float64) (f, tie float64) {
		return gCost + w*hCost, hCost
	}

	return newCostRunner(g, o, rule, true, false).run()
}
