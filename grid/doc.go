// Package grid provides the rectangular 4-connected grid that the search
// package operates on: a rows×cols matrix of cells, each either traversable
// or a wall, each with a positive movement cost.
//
// What
//
//   - Cell: a (Row, Col) identity value, usable as a map key.
//   - Grid: flat row-major storage of traversability and cost, plus the
//     start and target endpoints.
//   - Neighbors: bounded 4-directional adjacency in the fixed order
//     up, right, down, left.
//   - Editing: SetTraversable toggles walls (refusing the endpoints),
//     SetCost changes terrain weight, SetStart/SetTarget relocate the
//     endpoints under the same invariants as construction.
//
// Why
//
//   - Every search algorithm shares one topology contract: 4-connected,
//     rectangular, immutable for the duration of a run. Centralizing bounds
//     checks and neighbor ordering here keeps the algorithms free of
//     geometry code and makes their traversal order reproducible.
//
// Invariants
//
//   - Start and target are always in bounds, traversable, and distinct;
//     New, SetStart, SetTarget, and SetTraversable jointly enforce this.
//   - Neighbors always returns cells in up, right, down, left order; DFS
//     exploration order and priority tie-breaks depend on it.
//
// Complexity
//
//   - Construction and Clone: O(rows×cols).
//   - All queries and edits: O(1).
//
// Errors
//
//   - ErrEmptyGrid          zero rows or columns.
//   - ErrCellOutOfBounds    cell outside the rectangle.
//   - ErrSameStartTarget    start and target coincide.
//   - ErrNotTraversable     endpoint placed on a wall.
//   - ErrBadCost            non-positive movement cost.
package grid
