// Package search provides a reusable best-first search engine over implicit,
// dynamically generated state graphs.
//
// Overview:
//
//   - A problem plugs in by implementing Layout: generate successor states,
//     report the cost of the step that produced a state, test goal equality,
//     and (optionally) estimate the remaining cost to a goal.
//   - Solve(initial, goal, ...) drives the exploration and returns the
//     lowest-cost root→goal path as a forward slice of Nodes, or Found=false
//     when no path exists.
//   - The expansion order is a runtime Strategy (UniformCost, AStar,
//     BreadthFirst, DepthFirst) supplied as a functional option — one engine,
//     pluggable frontier disciplines, no subclassing.
//
// When to use:
//
//   - Single-pair shortest-path queries over a state space that is too
//     irregular (or too large) to materialize as an explicit graph.
//   - As the backbone for puzzle solvers, planning toys, and cost-aware
//     rearrangement problems; see the permsort and puzzle packages for two
//     complete Layout implementations.
//
// Key features:
//
//   - Lazy decrease-key frontier: a plain binary heap plus a best-cost map;
//     superseded entries are discarded at pop time instead of being removed,
//     so no decrease-key operation is required.
//   - Deterministic tie-breaking: equal-priority nodes are expanded in
//     discovery order via a per-run sequence counter.
//   - Per-call state: frontier, best-cost map, and sequence counter belong
//     to one Solve invocation; repeated and concurrent calls are isolated.
//   - Defensive invariant checks: negative step costs and negative heuristic
//     estimates fail fast instead of silently corrupting the search order.
//
// Optimality:
//
//   - UniformCost returns a cost-optimal path for any non-negative step
//     costs (Dijkstra's argument).
//   - AStar returns a cost-optimal path whenever Layout.Heuristic is
//     admissible (never overestimates the true remaining cost).
//   - BreadthFirst is optimal in number of steps only; DepthFirst makes no
//     optimality promise. Both reuse the same loop with a different frontier.
//
// API reference:
//
//	func Solve(initial, goal Layout, opts ...Option) (Result, error)
//
//	  - initial, goal: non-nil Layouts of the same domain.
//	  - opts:          WithStrategy(Strategy), WithMaxCost(float64).
//	  - Result:        Path ([]*Node, forward order), Cost, Expanded, Found.
//	  - err:           ErrNilLayout, ErrUnknownStrategy, or an invariant
//	                   violation (ErrNegativeStepCost, ErrNegativeHeuristic).
//
// Thread safety:
//
//   - Solve shares nothing between calls. Layout implementations must be
//     immutable values (the packages in this module satisfy that), in which
//     case any number of Solve calls may run concurrently.
//
// See also:
//
//   - permsort: weighted permutation sorting with a cycle-decomposition
//     admissible heuristic (the AStar showcase).
//   - puzzle: the classic 3×3 sliding-tile board with uniform step costs.
package search
