package search_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/stretchr/testify/require"
)

// mustGrid builds a rows×cols grid with the given endpoints and walls,
// failing the test on any construction error.
func mustGrid(t testing.TB, rows, cols int, start, target grid.Cell, walls ...grid.Cell) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols, start, target)
	require.NoError(t, err)
	for _, w := range walls {
		require.True(t, g.SetTraversable(w, false), "wall %v must apply", w)
	}

	return g
}

// wallRowWithGap returns the wall cells of a full horizontal wall across
// row, leaving a single opening at gapCol.
func wallRowWithGap(cols, row, gapCol int) []grid.Cell {
	walls := make([]grid.Cell, 0, cols-1)
	for col := 0; col < cols; col++ {
		if col == gapCol {
			continue
		}
		walls = append(walls, grid.Cell{Row: row, Col: col})
	}

	return walls
}

// enclosure returns the four wall cells boxing in c on a 4-connected grid.
func enclosure(c grid.Cell) []grid.Cell {
	return []grid.Cell{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row, Col: c.Col + 1},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
	}
}

// assertConnected checks the path connectivity invariant: consecutive cells
// are 4-adjacent and every cell is traversable.
func assertConnected(t *testing.T, g *grid.Grid, path []grid.Cell) {
	t.Helper()
	for i, c := range path {
		require.True(t, g.Traversable(c), "path cell %v must be traversable", c)
		if i == 0 {
			continue
		}
		p := path[i-1]
		dist := abs(c.Row-p.Row) + abs(c.Col-p.Col)
		require.Equal(t, 1, dist, "cells %v and %v must be 4-adjacent", p, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// containsCell reports whether cells includes c.
func containsCell(cells []grid.Cell, c grid.Cell) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}

	return false
}
