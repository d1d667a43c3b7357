package search

import "github.com/katalvlaran/gridpath/grid"

// queueItem pairs a cell with its depth from the root of the traversal.
type queueItem struct {
	cell  grid.Cell
	depth int
}

// bfsWalker encapsulates mutable BFS state. Cells are marked seen and given
// a predecessor at enqueue time, so each cell enters the queue exactly once.
type bfsWalker struct {
	g     *grid.Grid
	queue []queueItem
	seen  map[grid.Cell]bool
	prev  map[grid.Cell]grid.Cell
}

// newBFSWalker seeds a walker at root.
func newBFSWalker(g *grid.Grid, root grid.Cell) *bfsWalker {
	n := g.Rows() * g.Cols()
	w := &bfsWalker{
		g:     g,
		queue: make([]queueItem, 0, n),
		seen:  make(map[grid.Cell]bool, n),
		prev:  make(map[grid.Cell]grid.Cell, n),
	}
	w.seen[root] = true
	w.queue = append(w.queue, queueItem{cell: root})

	return w
}

// dequeue pops the head of the FIFO queue.
func (w *bfsWalker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// enqueue marks n seen with predecessor from and appends it to the queue.
func (w *bfsWalker) enqueue(n grid.Cell, from queueItem) {
	w.seen[n] = true
	w.prev[n] = from.cell
	w.queue = append(w.queue, queueItem{cell: n, depth: from.depth + 1})
}

// runBFS explores the grid in non-decreasing depth from start and stops on
// dequeuing the target, guaranteeing a minimum edge-count path.
func runBFS(g *grid.Grid, o *Options) *Result {
	res := &Result{}
	start, target := g.Start(), g.Target()
	w := newBFSWalker(g, start)

	for len(w.queue) > 0 {
		item := w.dequeue()
		res.Trace = append(res.Trace, item.cell)
		res.Expanded++
		o.OnExpand(item.cell, float64(item.depth))

		if item.cell == target {
			res.Found = true
			res.Path = buildPath(w.prev, start, target)
			res.Cost = pathCost(g, res.Path)

			return res
		}
		for _, n := range g.Neighbors(item.cell) {
			if !w.seen[n] {
				w.enqueue(n, item)
			}
		}
	}

	return res
}
