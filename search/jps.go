package search

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/pqueue"
)

// jpsRunner holds the state of one Jump Point Search run: an A* loop whose
// successors are jump points rather than immediate neighbors.
//
// JPS prunes the symmetric expansions a plain A* performs on open grids.
// From a cell reached while moving in direction d it walks straight in d
// and only stops at cells where an optimal path could be forced to turn:
//
//   - the target;
//   - a cell with a forced neighbor: a perpendicular traversable cell whose
//     diagonal on the incoming side is blocked, so paths hugging that wall
//     must pass through here;
//   - a gate cell: both perpendicular neighbors blocked where the previous
//     cell had an open side — the sole doorway between two regions;
//   - on vertical walks, any cell from which a horizontal jump would
//     succeed (vertical segments are canonical, so horizontal turning
//     points must be surfaced during the vertical walk).
//
// Hitting a wall or the grid edge ends the walk with no jump point. The
// cost between consecutive jump points is their Manhattan distance — valid
// because movement is axis-aligned and JPS treats the grid as unit-cost.
// Open-set priority and stale-entry handling are identical to A*.
type jpsRunner struct {
	g      *grid.Grid
	o      *Options
	sc     *scratch
	pq     *pqueue.Queue[weightedItem]
	target grid.Cell
}

// runJPS executes Jump Point Search on a 4-connected grid.
func runJPS(g *grid.Grid, o *Options) *Result {
	r := &jpsRunner{
		g:      g,
		o:      o,
		sc:     newScratch(g.Rows() * g.Cols()),
		pq:     pqueue.New(lessWeighted),
		target: g.Target(),
	}
	res := &Result{}
	start := g.Start()

	r.sc.g[start] = 0
	h0 := r.sc.heuristic(start, r.target, o.Heuristic)
	r.pq.Enqueue(weightedItem{cell: start, f: h0, tie: h0})

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
		o.OnExpand(item.cell, item.f)

		if item.cell == r.target {
			res.Found = true
			res.Path = expandAxisPath(buildPath(r.sc.prev, start, r.target))
			res.Cost = r.sc.gCost(r.target)

			return res
		}
		r.expand(item.cell, start)
	}
}

// expand generates jump-point successors of c. The start cell (no incoming
// direction) jumps in all four directions; any other cell jumps straight
// ahead and to both sides of its incoming direction, never backward.
func (r *jpsRunner) expand(c, start grid.Cell) {
	dirs := make([]int, 0, 4)
	if c == start {
		dirs = append(dirs, grid.Up, grid.Right, grid.Down, grid.Left)
	} else {
		p := r.sc.prev[c]
		dRow, dCol := sign(c.Row-p.Row), sign(c.Col-p.Col)
		// Keep the fixed up/right/down/left order among the allowed
		// directions so dequeue tie-breaks stay reproducible.
		for _, dir := range []int{grid.Up, grid.Right, grid.Down, grid.Left} {
			oRow, oCol := grid.Offset(dir)
			if oRow == -dRow && oCol == -dCol {
				continue // backward
			}
			dirs = append(dirs, dir)
		}
	}

	for _, dir := range dirs {
		oRow, oCol := grid.Offset(dir)
		j, ok := r.jump(grid.Cell{Row: c.Row + oRow, Col: c.Col + oCol}, oRow, oCol)
		if !ok {
			continue
		}
		tentative := r.sc.gCost(c) + Manhattan(c, j)
		if tentative >= r.sc.gCost(j) {
			continue
		}
		r.sc.g[j] = tentative
		r.sc.prev[j] = c
		h := r.sc.heuristic(j, r.target, r.o.Heuristic)
		r.pq.Enqueue(weightedItem{cell: j, f: tentative + h, tie: h})
	}
}

// jump walks straight from n in direction (dRow,dCol) until it finds a jump
// point or falls off the traversable region. The walk inspects each cell it
// lands on, n included.
func (r *jpsRunner) jump(n grid.Cell, dRow, dCol int) (grid.Cell, bool) {
	for {
		if !r.g.Traversable(n) {
			return grid.Cell{}, false
		}
		if n == r.target {
			return n, true
		}
		if r.forced(n, dRow, dCol) || r.gate(n, dRow, dCol) {
			return n, true
		}
		// Canonical ordering: vertical walks surface horizontal turns.
		if dRow != 0 {
			if _, ok := r.jump(grid.Cell{Row: n.Row, Col: n.Col + 1}, 0, 1); ok {
				return n, true
			}
			if _, ok := r.jump(grid.Cell{Row: n.Row, Col: n.Col - 1}, 0, -1); ok {
				return n, true
			}
		}
		n = grid.Cell{Row: n.Row + dRow, Col: n.Col + dCol}
	}
}

// forced reports whether n has a forced neighbor relative to movement
// (dRow,dCol): a perpendicular traversable cell whose neighbor on the side
// we came from is blocked. Walking past n would skip the only turn that
// reaches paths hugging that obstacle.
func (r *jpsRunner) forced(n grid.Cell, dRow, dCol int) bool {
	if dRow != 0 { // vertical movement: perpendiculars are left/right
		left := grid.Cell{Row: n.Row, Col: n.Col - 1}
		right := grid.Cell{Row: n.Row, Col: n.Col + 1}
		if r.g.Traversable(left) && !r.g.Traversable(grid.Cell{Row: n.Row - dRow, Col: n.Col - 1}) {
			return true
		}
		if r.g.Traversable(right) && !r.g.Traversable(grid.Cell{Row: n.Row - dRow, Col: n.Col + 1}) {
			return true
		}

		return false
	}
	// horizontal movement: perpendiculars are up/down
	up := grid.Cell{Row: n.Row - 1, Col: n.Col}
	down := grid.Cell{Row: n.Row + 1, Col: n.Col}
	if r.g.Traversable(up) && !r.g.Traversable(grid.Cell{Row: n.Row - 1, Col: n.Col - dCol}) {
		return true
	}
	if r.g.Traversable(down) && !r.g.Traversable(grid.Cell{Row: n.Row + 1, Col: n.Col - dCol}) {
		return true
	}

	return false
}

// gate reports whether n is the entrance of a one-cell-wide passage: both
// perpendicular neighbors blocked while the previous cell still had an open
// side. Such a doorway is the only route between the regions it joins, so
// the walk must stop and let the search turn through it.
func (r *jpsRunner) gate(n grid.Cell, dRow, dCol int) bool {
	prev := grid.Cell{Row: n.Row - dRow, Col: n.Col - dCol}
	if dRow != 0 {
		blockedBoth := !r.g.Traversable(grid.Cell{Row: n.Row, Col: n.Col - 1}) &&
			!r.g.Traversable(grid.Cell{Row: n.Row, Col: n.Col + 1})
		prevOpen := r.g.Traversable(grid.Cell{Row: prev.Row, Col: prev.Col - 1}) ||
			r.g.Traversable(grid.Cell{Row: prev.Row, Col: prev.Col + 1})

		return blockedBoth && prevOpen
	}
	blockedBoth := !r.g.Traversable(grid.Cell{Row: n.Row - 1, Col: n.Col}) &&
		!r.g.Traversable(grid.Cell{Row: n.Row + 1, Col: n.Col})
	prevOpen := r.g.Traversable(grid.Cell{Row: prev.Row - 1, Col: prev.Col}) ||
		r.g.Traversable(grid.Cell{Row: prev.Row + 1, Col: prev.Col})

	return blockedBoth && prevOpen
}
