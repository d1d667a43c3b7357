package search

import "github.com/katalvlaran/gridpath/grid"

// runGreedy expands cells by h alone, ignoring accumulated cost entirely.
// Relaxation uses the first-discovery-wins rule: once a cell has any
// predecessor it is never updated again, even when a cheaper route to it is
// found later. The result is fast and decisive but not optimal; the rule is
// part of the algorithm's contract and covered by a regression test.
func runGreedy(g *grid.Grid, o *Options) *Result {
	rule := func(_, hCost float64) (f, tie float64) {
		return hCost, hCost
	}

	return newCostRunner(g, o, rule, true, true).run()
}
