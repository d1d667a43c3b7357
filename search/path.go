package search

import "github.com/katalvlaran/gridpath/grid"

// buildPath walks predecessor links from target back to start and reverses
// the chain into start→target order. The predecessor forest is rooted at
// start (start has no entry), so the walk is bounded by the path length.
func buildPath(prev map[grid.Cell]grid.Cell, start, target grid.Cell) []grid.Cell {
	path := []grid.Cell{target}
	for cur := target; cur != start; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	reverseCells(path)

	return path
}

// reverseCells reverses the slice in place.
func reverseCells(cells []grid.Cell) {
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
}

// pathCost sums the movement cost of entering every cell after the first,
// mirroring how the weighted searches accumulate g.
func pathCost(g *grid.Grid, path []grid.Cell) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += g.Cost(path[i])
	}

	return total
}

// expandAxisPath interpolates the intermediate cells between consecutive
// axis-aligned waypoints so that the returned path is 4-adjacent step to
// step. Used by JPS, whose predecessor chain links jump points that may be
// several cells apart along one axis.
func expandAxisPath(waypoints []grid.Cell) []grid.Cell {
	if len(waypoints) == 0 {
		return nil
	}
	out := []grid.Cell{waypoints[0]}
	for i := 1; i < len(waypoints); i++ {
		from, to := waypoints[i-1], waypoints[i]
		dRow := sign(to.Row - from.Row)
		dCol := sign(to.Col - from.Col)
		for cur := from; cur != to; {
			cur = grid.Cell{Row: cur.Row + dRow, Col: cur.Col + dCol}
			out = append(out, cur)
		}
	}

	return out
}

// sign returns -1, 0, or 1.
func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
