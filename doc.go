// Package statesearch is a small toolkit for cost-optimal state-space
// search: one engine, pluggable expansion strategies, and ready-made
// problem layouts.
//
// 🚀 What is statesearch?
//
//	A focused, deterministic search library that brings together:
//		• Engine: best-first search with a lazy-deletion frontier
//		• Strategies: uniform-cost, A*, breadth-first, depth-first
//		• Layouts: weighted permutation sorting (parity swap costs),
//		  sliding-tile 8-puzzle, and anything implementing search.Layout
//		• Heuristics: admissible cycle-decomposition bound for sorting
//
// ✨ Why choose statesearch?
//
//   - Deterministic runs – equal-cost ties break by discovery order
//   - Optimality guarantees – uniform-cost and admissible A* return
//     cheapest paths, documented per strategy
//   - Pure algorithms – layouts carry the domain, the engine never
//     touches I/O
//   - Extensible – implement the Layout interface and every strategy
//     works on your domain unchanged
//
// Under the hood, everything is organized under three subpackages:
//
//	search/   — the engine: Layout, Node, Strategy, Solve
//	permsort/ — integer-sequence layout with the parity cost rule
//	puzzle/   — 3×3 sliding-tile board layout
//
// Quick example:
//
//	initial, _ := permsort.New("9 7 8")
//	goal, _ := permsort.New("7 8 9")
//	res, _ := search.Solve(initial, goal, search.WithStrategy(search.AStar))
//	fmt.Println(res.Cost) // 22
//
// A command-line front-end lives in cmd/statesearch, with runnable
// scenario demos under examples/.
//
// See the per-package documentation for API details and complexity notes.
package statesearch
