// Package grid models a rectangular, strictly 4-connected grid of cells.
// Each cell carries a traversability flag and a positive movement cost.
// Topology is immutable during a search run; editing happens between runs
// through SetTraversable, SetCost, SetStart, and SetTarget.
package grid

import "fmt"

// Grid is a rows×cols matrix of cells stored in flat row-major slices.
// Start and target are always traversable and distinct; wall edits that
// would break that invariant are rejected.
type Grid struct {
	rows, cols int
	walkable   []bool    // false = wall
	costs      []float64 // positive movement cost per cell
	start      Cell
	target     Cell
}

// New constructs a fully traversable rows×cols grid with unit costs.
// Returns ErrEmptyGrid for non-positive dimensions, ErrCellOutOfBounds if an
// endpoint lies outside the rectangle, and ErrSameStartTarget if the two
// endpoints coincide.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, start, target Cell) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}
	g := &Grid{
		rows:     rows,
		cols:     cols,
		walkable: make([]bool, rows*cols),
		costs:    make([]float64, rows*cols),
		start:    start,
		target:   target,
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrCellOutOfBounds, start)
	}
	if !g.InBounds(target) {
		return nil, fmt.Errorf("%w: target %v", ErrCellOutOfBounds, target)
	}
	if start == target {
		return nil, fmt.Errorf("%w: %v", ErrSameStartTarget, start)
	}
	for i := range g.walkable {
		g.walkable[i] = true
		g.costs[i] = DefaultCost
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// Target returns the target cell.
func (g *Grid) Target() Cell { return g.target }

// InBounds reports whether c lies within the grid rectangle.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps a cell to its row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// Traversable reports whether c is in bounds and not a wall.
// Complexity: O(1).
func (g *Grid) Traversable(c Cell) bool {
	return g.InBounds(c) && g.walkable[g.Index(c)]
}

// Cost returns the movement cost of entering c.
// Out-of-bounds cells report DefaultCost; callers are expected to have
// filtered them through Traversable first.
func (g *Grid) Cost(c Cell) float64 {
	if !g.InBounds(c) {
		return DefaultCost
	}

	return g.costs[g.Index(c)]
}

// SetTraversable toggles the wall state of c and reports whether the grid
// changed. Edits to the start cell, the target cell, or out-of-bounds cells
// are rejected as no-ops.
func (g *Grid) SetTraversable(c Cell, ok bool) bool {
	if !g.InBounds(c) || c == g.start || c == g.target {
		return false
	}
	idx := g.Index(c)
	if g.walkable[idx] == ok {
		return false
	}
	g.walkable[idx] = ok

	return true
}

// SetCost assigns a positive movement cost to c.
// Returns ErrCellOutOfBounds or ErrBadCost on invalid input.
func (g *Grid) SetCost(c Cell, cost float64) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrCellOutOfBounds, c)
	}
	if cost <= 0 {
		return fmt.Errorf("%w: %g at %v", ErrBadCost, cost, c)
	}
	g.costs[g.Index(c)] = cost

	return nil
}

// SetStart relocates the start cell. The new cell must be in bounds,
// traversable, and distinct from the target.
func (g *Grid) SetStart(c Cell) error {
	if err := g.checkEndpoint(c, g.target); err != nil {
		return err
	}
	g.start = c

	return nil
}

// SetTarget relocates the target cell. The new cell must be in bounds,
// traversable, and distinct from the start.
func (g *Grid) SetTarget(c Cell) error {
	if err := g.checkEndpoint(c, g.start); err != nil {
		return err
	}
	g.target = c

	return nil
}

// checkEndpoint validates a candidate endpoint against the opposite one.
func (g *Grid) checkEndpoint(c, other Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrCellOutOfBounds, c)
	}
	if c == other {
		return fmt.Errorf("%w: %v", ErrSameStartTarget, c)
	}
	if !g.walkable[g.Index(c)] {
		return fmt.Errorf("%w: %v", ErrNotTraversable, c)
	}

	return nil
}

// Neighbors returns the in-bounds, traversable neighbors of c in the fixed
// order up, right, down, left. The ordering is part of the contract: DFS
// exploration order and tie-breaks depend on it.
// Complexity: O(1) — at most four probes.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.Traversable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Validate checks the search preconditions: both endpoints in bounds,
// distinct, and traversable. Construction and editing preserve these
// invariants, so Validate acts as the precondition gate for callers that
// received the grid from elsewhere.
func (g *Grid) Validate() error {
	if g.rows <= 0 || g.cols <= 0 {
		return ErrEmptyGrid
	}
	if !g.InBounds(g.start) {
		return fmt.Errorf("%w: start %v", ErrCellOutOfBounds, g.start)
	}
	if !g.InBounds(g.target) {
		return fmt.Errorf("%w: target %v", ErrCellOutOfBounds, g.target)
	}
	if g.start == g.target {
		return fmt.Errorf("%w: %v", ErrSameStartTarget, g.start)
	}
	if !g.walkable[g.Index(g.start)] {
		return fmt.Errorf("%w: start %v", ErrNotTraversable, g.start)
	}
	if !g.walkable[g.Index(g.target)] {
		return fmt.Errorf("%w: target %v", ErrNotTraversable, g.target)
	}

	return nil
}

// Clone returns a deep copy of the grid. Useful for taking a snapshot
// before handing the grid to an editor.
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		rows:     g.rows,
		cols:     g.cols,
		walkable: make([]bool, len(g.walkable)),
		costs:    make([]float64, len(g.costs)),
		start:    g.start,
		target:   g.target,
	}
	copy(cp.walkable, g.walkable)
	copy(cp.costs, g.costs)

	return cp
}
