// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and editing.
var (
	// ErrEmptyGrid indicates a grid with zero rows or zero columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrCellOutOfBounds indicates a cell outside the grid rectangle.
	ErrCellOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrSameStartTarget indicates start and target refer to the same cell.
	ErrSameStartTarget = errors.New("grid: start and target must be distinct")
	// ErrNotTraversable indicates an endpoint placed on a non-traversable cell.
	ErrNotTraversable = errors.New("grid: cell is not traversable")
	// ErrBadCost indicates a non-positive movement cost.
	ErrBadCost = errors.New("grid: cost must be positive")
)

// DefaultCost is the movement cost assigned to every cell at construction.
const DefaultCost = 1.0

// Cell identifies a single grid location by row and column.
type Cell struct {
	Row, Col int
}

// String renders the cell as "row,col".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// neighborOffsets lists the 4-connected offsets in the fixed exploration
// order up, right, down, left. Every adjacency walk in this module uses
// this slice so that traversal order is reproducible.
var neighborOffsets = [4][2]int{
	{-1, 0}, // up
	{0, 1},  // right
	{1, 0},  // down
	{0, -1}, // left
}

// Up, Right, Down, Left index into the fixed neighbor order.
const (
	Up = iota
	Right
	Down
	Left
)

// Offset returns the row/column delta for one of the four directions,
// in the fixed order up, right, down, left.
func Offset(dir int) (dRow, dCol int) {
	return neighborOffsets[dir][0], neighborOffsets[dir][1]
}
