package search

import "github.com/katalvlaran/gridpath/grid"

// runBidirectional grows two independent BFS frontiers, one rooted at the
// start and one at the target, each with its own seen/predecessor tables.
// The frontiers advance strictly alternately, one dequeue per side per
// iteration. Overlap is checked both when a cell is dequeued and when a
// neighbor is enqueued — checking only at dequeue time can miss a meeting
// by one step. The first overlapping cell is the meeting cell; the path is
// the forward chain to it joined with the reversed backward chain.
func runBidirectional(g *grid.Grid, o *Options) *Result {
	res := &Result{}
	start, target := g.Start(), g.Target()

	fwd := newBFSWalker(g, start)
	bwd := newBFSWalker(g, target)

	for len(fwd.queue) > 0 && len(bwd.queue) > 0 {
		if meeting, ok := stepFrontier(fwd, bwd, res, o); ok {
			finishBidirectional(g, res, fwd, bwd, meeting)
			return res
		}
		if meeting, ok := stepFrontier(bwd, fwd, res, o); ok {
			finishBidirectional(g, res, fwd, bwd, meeting)
			return res
		}
	}

	return res
}

// stepFrontier advances one frontier by a single dequeue, enqueuing its
// neighbors. It reports the meeting cell as soon as the opposite frontier
// is known to have seen any touched cell.
func stepFrontier(own, other *bfsWalker, res *Result, o *Options) (grid.Cell, bool) {
	if len(own.queue) == 0 {
		return grid.Cell{}, false
	}
	item := own.dequeue()
	res.Trace = append(res.Trace, item.cell)
	res.Expanded++
	o.OnExpand(item.cell, float64(item.depth))

	if other.seen[item.cell] {
		return item.cell, true
	}
	for _, n := range own.g.Neighbors(item.cell) {
		if own.seen[n] {
			continue
		}
		own.enqueue(n, item)
		if other.seen[n] {
			return n, true
		}
	}

	return grid.Cell{}, false
}

// finishBidirectional splices the two predecessor chains at the meeting
// cell: forward chain start→meeting, then the backward chain walked from
// the meeting cell out to the target.
func finishBidirectional(g *grid.Grid, res *Result, fwd, bwd *bfsWalker, meeting grid.Cell) {
	path := buildPath(fwd.prev, g.Start(), meeting)
	for cur := meeting; cur != g.Target(); {
		p, ok := bwd.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	res.Found = true
	res.Path = path
	res.Cost = pathCost(g, path)
}
