package search

import "github.com/katalvlaran/gridpath/grid"

// runDFS explores the grid with an explicit LIFO stack. Like BFS, cells are
// marked seen and assigned a predecessor at push time. Neighbors are pushed
// in reversed order so the natural exploration order is up→right→down→left.
// DFS makes no shortest-path guarantee.
func runDFS(g *grid.Grid, o *Options) *Result {
	res := &Result{}
	start, target := g.Start(), g.Target()
	n := g.Rows() * g.Cols()

	stack := make([]queueItem, 0, n)
	seen := make(map[grid.Cell]bool, n)
	prev := make(map[grid.Cell]grid.Cell, n)

	seen[start] = true
	stack = append(stack, queueItem{cell: start})

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res.Trace = append(res.Trace, item.cell)
		res.Expanded++
		o.OnExpand(item.cell, float64(item.depth))

		if item.cell == target {
			res.Found = true
			res.Path = buildPath(prev, start, target)
			res.Cost = pathCost(g, res.Path)

			return res
		}

		neighbors := g.Neighbors(item.cell)
		for i := len(neighbors) - 1; i >= 0; i-- {
			nb := neighbors[i]
			if seen[nb] {
				continue
			}
			seen[nb] = true
			prev[nb] = item.cell
			stack = append(stack, queueItem{cell: nb, depth: item.depth + 1})
		}
	}

	return res
}
