package search

import "github.com/katalvlaran/gridpath/grid"

// runDijkstra expands cells in non-decreasing accumulated cost g, relaxing a
// neighbor whenever a strictly cheaper route is found. On non-negative costs
// (the grid guarantees positive ones) every finalized distance is exact, so
// the returned path has minimum total cost.
func runDijkstra(g *grid.Grid, o *Options) *Result {
	rule := func(gCost, _ float64) (f, tie float64) {
		return gCost, gCost
	}

	return newCostRunner(g, o, rule, false, false).run()
}
