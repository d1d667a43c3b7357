// Package pqueue provides the binary min-heap shared by every priority-driven
// search in github.com/katalvlaran/gridpath.
//
// What
//
//   - Queue[T]: a generic min-heap ordered by a comparator injected at
//     construction (New(less)).
//   - Enqueue / Dequeue / Peek / Len / Empty; Dequeue and Peek report
//     emptiness through a boolean, never an error.
//
// Why
//
//   - The weighted searches differ only in their priority key and tie-break;
//     injecting the comparator lets one heap serve Dijkstra, A*, Weighted A*,
//     Greedy Best-First, and JPS unchanged.
//
// Lazy deletion
//
//	The queue deliberately supports duplicate logical entries for the same
//	cell. When a caller finds a better priority for an already-queued cell it
//	enqueues a fresh entry instead of decreasing the old one; when a stale
//	entry surfaces, the caller recognizes the cell as already finalized and
//	discards it. This trades the O(E log V) of an indexed decrease-key heap
//	for a simpler O(E log E) structure — an accepted simplification, since
//	dequeue order of live entries is unaffected.
//
// Complexity
//
//   - Enqueue, Dequeue: O(log n).
//   - Peek, Len, Empty: O(1).
package pqueue
