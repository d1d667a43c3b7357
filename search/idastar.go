package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// idaRunner holds the state of one IDA* run: repeated depth-first probes
// bounded by a growing f-threshold.
type idaRunner struct {
	g   *grid.Grid
	o   *Options
	res *Result

	target    grid.Cell
	threshold float64
	// next collects the minimum f seen beyond the threshold in the current
	// iteration; it becomes the next threshold.
	next float64

	// onPath guards the current DFS branch against revisiting an ancestor.
	// It is reset per iteration, so a cell may be re-explored across
	// iterations or via a cheaper sibling branch within one.
	onPath map[grid.Cell]bool
	// traced remembers cells already appended to the trace across all
	// iterations, keeping the trace to one entry per cell.
	traced map[grid.Cell]bool
	// hCache memoizes heuristic values for the whole run.
	hCache map[grid.Cell]float64
	// prev records the current branch's predecessor links; on success the
	// chain from target back to start is the path.
	prev map[grid.Cell]grid.Cell
}

// runIDAStar performs iterative-deepening A*. The threshold starts at
// h(start); each iteration prunes branches with f = g + h beyond it and
// raises it to the minimum pruned f. Two guards bound the loop: a maximum
// number of iterations and a cap on threshold growth. Either guard ends the
// run with Found=false rather than looping on pathological grids.
func runIDAStar(g *grid.Grid, o *Options) *Result {
	n := g.Rows() * g.Cols()
	r := &idaRunner{
		g:      g,
		o:      o,
		res:    &Result{},
		target: g.Target(),
		traced: make(map[grid.Cell]bool, n),
		hCache: make(map[grid.Cell]float64, n),
		prev:   make(map[grid.Cell]grid.Cell, n),
	}
	start := g.Start()
	r.threshold = r.heuristic(start)

	for iter := 0; iter < o.MaxIterations; iter++ {
		r.onPath = map[grid.Cell]bool{start: true}
		r.next = math.Inf(1)

		if r.probe(start, 0) {
			r.res.Found = true
			r.res.Path = buildPath(r.prev, start, r.target)
			r.res.Cost = pathCost(g, r.res.Path)

			return r.res
		}
		if math.IsInf(r.next, 1) {
			// Nothing was pruned: the reachable region is exhausted.
			return r.res
		}
		if r.next > o.ThresholdGrowthLimit*math.Max(r.threshold, 1) {
			// Runaway threshold growth; give up instead of deepening forever.
			return r.res
		}
		r.threshold = r.next
	}

	return r.res
}

// probe recursively explores from c with accumulated cost gCost, pruning
// once f exceeds the current threshold. Returns true when the target is on
// the current branch.
func (r *idaRunner) probe(c grid.Cell, gCost float64) bool {
	f := gCost + r.heuristic(c)
	if f > r.threshold {
		if f < r.next {
			r.next = f
		}

		return false
	}
	if !r.traced[c] {
		r.traced[c] = true
		r.res.Trace = append(r.res.Trace, c)
		r.res.Expanded++
		r.o.OnExpand(c, f)
	}
	if c == r.target {
		return true
	}

	for _, n := range r.g.Neighbors(c) {
		if r.onPath[n] {
			continue
		}
		r.onPath[n] = true
		r.prev[n] = c
		if r.probe(n, gCost+r.g.Cost(n)) {
			return true
		}
		delete(r.onPath, n)
	}

	return false
}

// heuristic memoizes h(c, target) for the duration of the run.
func (r *idaRunner) heuristic(c grid.Cell) float64 {
	if v, ok := r.hCache[c]; ok {
		return v
	}
	v := r.o.Heuristic(c, r.target)
	r.hCache[c] = v

	return v
}
