// Package gridpath is your in-memory playground for exploring and comparing
// graph-search algorithms over 2D grids — from plain breadth-first search to
// symmetry-pruning Jump Point Search.
//
// 🚀 What is gridpath?
//
//	A small, focused library that brings together:
//		• Grid model: rectangular 4-connected grids with walls and terrain costs
//		• Priority queue: generic comparator-driven binary min-heap
//		• Uninformed search: BFS, DFS, Bidirectional BFS
//		• Weighted search: Dijkstra, A*, Weighted A*, Greedy Best-First
//		• Advanced search: Iterative-Deepening A* (IDA*), Jump Point Search (JPS)
//		• Visitation traces + reconstructed paths for every run
//
// ✨ Why choose gridpath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical runs on an unmodified grid yield identical
//     traces and paths, suitable for replay and visualization
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – observe expansions live via the OnExpand hook
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/   — Grid and Cell types, neighbor lookup, wall & cost editing
//	pqueue/ — generic binary min-heap with an injected comparator
//	search/ — the nine algorithms, heuristics, and the Run entry point
//
// Quick ASCII example:
//
//	    S . . #
//	    . # . #
//	    . # . T
//
//	a 3×4 grid where S is the start, T the target, and # walls; every
//	algorithm in search/ threads the same corridor in its own order.
//
// Dive into each package's doc.go for complexity notes, error contracts,
// and runnable examples.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
