// Package search implements nine grid-search strategies over a grid.Grid,
// producing for every run a visitation trace (cells in finalization order)
// and a reconstructed start→target path.
//
// What
//
//   - Run(g, algo, opts...) dispatches to one of:
//   - BFS            — FIFO frontier; minimum edge-count path
//   - DFS            — LIFO frontier; up→right→down→left exploration
//   - Dijkstra       — expand by g; minimum-cost path
//   - AStar          — expand by g+h, ties toward smaller h
//   - WeightedAStar  — expand by g+w·h (default w=1.5)
//   - Greedy         — expand by h; first discovery wins, not optimal
//   - Bidirectional  — two alternating BFS frontiers meeting in the middle
//   - IDAStar        — threshold-bounded depth-first deepening
//   - JPS            — A* over jump points, pruning axis symmetry
//   - Result carries Trace, Path, Found, Cost, and the Expanded dequeue
//     count; no-path is a normal outcome (Found=false), never an error.
//
// Why
//
//   - The nine strategies share one data model (grid, scratch table,
//     priority queue, path reconstruction) and differ only in priority
//     semantics, termination, and pruning — keeping them in one package
//     makes those differences visible side by side and lets callers compare
//     exploration behavior on identical grids.
//
// Determinism
//
//	grid.Neighbors returns cells in a fixed order, the priority queue
//	breaks ties by each algorithm's secondary key, and scratch state is
//	rebuilt from scratch per run, so two runs of the same algorithm on an
//	unmodified grid produce identical traces and paths.
//
// Stale entries
//
//	The priority-driven searches re-enqueue a cell instead of decreasing
//	its key; a dequeued cell already in the closed set is discarded without
//	processing. See the pqueue package for the full contract.
//
// Complexity (n = rows×cols)
//
//   - BFS/DFS/Bidirectional: O(n) time, O(n) memory.
//   - Dijkstra/A*/Weighted A*/Greedy/JPS: O(n log n) time, O(n) memory.
//   - IDA*: O(n) memory; time bounded by MaxIterations × reachable region.
//
// Options
//
//   - WithHeuristic(h)              Manhattan (default) or Euclidean.
//   - WithWeight(w)                 Weighted A* multiplier, w ≥ 1.
//   - WithMaxIterations(n)          IDA* deepening cap.
//   - WithThresholdGrowthLimit(m)   IDA* threshold growth cap.
//   - WithOnExpand(fn)              observe each finalized cell live.
//
// Errors
//
//   - ErrNilGrid            nil grid pointer.
//   - ErrUnknownAlgorithm   selector outside the enum.
//   - ErrOptionViolation    invalid option value.
//   - grid.Validate errors  endpoint preconditions, surfaced before any
//     search executes.
package search
