package search

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pqueue"
)

// weightedItem is one open-set entry: a cell, its primary priority, and a
// secondary tie-break value. Re-prioritized cells get a fresh entry; the
// superseded one is discarded as stale when it surfaces (see pqueue doc).
type weightedItem struct {
	cell grid.Cell
	f    float64 // primary priority
	tie  float64 // secondary ordering among equal f
}

// lessWeighted orders open-set entries by f ascending, then tie ascending.
func lessWeighted(a, b weightedItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}

	return a.tie < b.tie
}

// priorityRule computes the open-set priority and tie-break for a cell with
// accumulated cost g and cached heuristic h.
type priorityRule func(gCost, hCost float64) (f, tie float64)

// costRunner holds the mutable state shared by Dijkstra, A*, Weighted A*,
// and Greedy Best-First: one relaxation skeleton with a pluggable priority
// rule and relax condition.
type costRunner struct {
	g    *grid.Grid
	o    *Options
	sc   *scratch
	pq   *pqueue.Queue[weightedItem]
	rule priorityRule

	// needH skips heuristic evaluation for Dijkstra.
	needH bool
	// firstDiscovery switches relaxation to Greedy's rule: a cell keeps its
	// first predecessor forever, even if a cheaper route appears later.
	firstDiscovery bool
}

// run executes the skeleton: pop the lowest-priority open cell, discard it
// if stale, otherwise finalize it and relax its neighbors. Terminates with
// success on finalizing the target, with failure on open-set exhaustion.
func (r *costRunner) run() *Result {
	res := &Result{}
	start, target := r.g.Start(), r.g.Target()

	r.sc.g[start] = 0
	r.pq.Enqueue(weightedItem{cell: start, f: r.priority(start, 0), tie: r.tieBreak(start)})

	for {
		item, ok := r.pq.Dequeue()
		if !ok {
			return res
		}
		res.Expanded++
		if r.sc.closed[item.cell] {
			continue // stale entry
		}
		r.sc.closed[item.cell] = true
		res.Trace = append(res.Trace, item.cell)
		r.o.OnExpand(item.cell, item.f)

		if item.cell == target {
			res.Found = true
			res.Path = buildPath(r.sc.prev, start, target)
			res.Cost = r.sc.gCost(target)

			return res
		}
		r.relaxNeighbors(item.cell, start)
	}
}

// relaxNeighbors computes the tentative cost g' for each traversable
// neighbor and applies the configured relax condition.
func (r *costRunner) relaxNeighbors(cur, start grid.Cell) {
	curG := r.sc.gCost(cur)
	for _, n := range r.g.Neighbors(cur) {
		tentative := curG + r.g.Cost(n)

		if r.firstDiscovery {
			// Greedy: first discovery wins. A cell with a predecessor is
			// never reconsidered, so its recorded route may stay suboptimal.
			if n == start {
				continue
			}
			if _, discovered := r.sc.prev[n]; discovered {
				continue
			}
		} else if tentative >= r.sc.gCost(n) {
			continue
		}

		r.sc.g[n] = tentative
		r.sc.prev[n] = cur
		r.pq.Enqueue(weightedItem{cell: n, f: r.priority(n, tentative), tie: r.tieBreak(n)})
	}
}

// priority applies the rule to a cell's g and (lazily cached) h.
func (r *costRunner) priority(c grid.Cell, gCost float64) float64 {
	var h float64
	if r.needH {
		h = r.sc.heuristic(c, r.g.Target(), r.o.Heuristic)
	}
	f, _ := r.rule(gCost, h)

	return f
}

// tieBreak applies the rule's secondary key.
func (r *costRunner) tieBreak(c grid.Cell) float64 {
	var h float64
	if r.needH {
		h = r.sc.heuristic(c, r.g.Target(), r.o.Heuristic)
	}
	_, tie := r.rule(r.sc.gCost(c), h)

	return tie
}

// newCostRunner wires the skeleton for one run.
func newCostRunner(g *grid.Grid, o *Options, rule priorityRule, needH, firstDiscovery bool) *costRunner {
	return &costRunner{
		g:              g,
		o:              o,
		sc:             newScratch(g.Rows() * g.Cols()),
		pq:             pqueue.New(lessWeighted),
		rule:           rule,
		needH:          needH,
		firstDiscovery: firstDiscovery,
	}
}
