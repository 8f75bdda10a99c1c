// Package search implements best-first search over an implicit state graph.
//
// Solve explores the graph spanned by Layout.Children starting from an
// initial state, expanding nodes in the order dictated by the selected
// Strategy, until it pops a node whose layout equals the goal or exhausts
// the frontier.
//
// Complexity (UniformCost / AStar over a graph with S reachable states and
// branching factor B):
//
//   - Time:  O(S·B log(S·B))
//   - Each state is expanded at most once: up to S expansions.
//   - Each expansion may push up to B entries; heap operations cost
//     O(log N) for N ≤ S·B queued entries under lazy decrease-key.
//   - Space: O(S·B)
//   - O(S) for the best-cost map, O(S·B) worst case for the frontier.
//
// Notes on implementation choices:
//
//   - The best-cost map is the source of truth; superseded frontier entries
//     are left in place and discarded at pop time (lazy deletion), so no
//     decrease-key-capable heap is needed.
//   - The goal test happens when a node is popped, not when it is generated.
//     Testing at generation time would forfeit cost optimality: a cheaper
//     path to the goal may still be sitting in the frontier.
//   - The sequence counter lives on the per-call runner, so repeated or
//     concurrent Solve invocations never contaminate each other's tie-break
//     ordering.
package search

import (
	"fmt"
	"math"
)

// Solve searches for a lowest-cost path from initial to goal and returns the
// outcome. The expansion order is configured with functional options; the
// default is uniform-cost search with no cost cap.
//
// Returns:
//
//   - Result.Found=true with the forward root→goal path and its total cost,
//   - Result.Found=false when the frontier empties without reaching goal
//     (a legitimate outcome, not an error),
//   - err for invalid inputs (ErrNilLayout, ErrUnknownStrategy) or for
//     invariant violations reported by the Layout implementation
//     (ErrNegativeStepCost, ErrNegativeHeuristic).
//
// Solve is synchronous and runs entirely on the calling goroutine; the
// frontier, best-cost map, and sequence counter are owned by this call and
// released when it returns. Concurrent Solve calls are independent.
func Solve(initial, goal Layout, opts ...Option) (Result, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate layouts.
	if initial == nil || goal == nil {
		return Result{}, ErrNilLayout
	}

	// 3) Select the frontier discipline; rejects out-of-range strategies.
	fr, err := newFrontier(cfg.Strategy)
	if err != nil {
		return Result{}, err
	}

	// 4) Initialize the per-call runner and run the loop.
	r := &runner{
		goal:     goal,
		options:  cfg,
		frontier: fr,
		best:     make(map[string]*Node),
	}

	return r.run(initial)
}

// runner holds the mutable state of a single Solve invocation.
type runner struct {
	goal     Layout
	options  Options
	frontier frontier
	best     map[string]*Node // layout key → cheapest (cost-ordered) or first-discovered (FIFO/LIFO) node
	seq      uint64           // next sequence id; strictly increasing per run
	expanded int
}

// newNode wraps layout in a Node with the next sequence id. The accumulated
// cost is parent.g + step; the root passes parent=nil and step=0.
func (r *runner) newNode(layout Layout, parent *Node, step float64) *Node {
	n := &Node{
		layout: layout,
		parent: parent,
		seq:    r.seq,
	}
	r.seq++
	if parent != nil {
		n.g = parent.g + step
	}

	return n
}

// run drives the main loop: pop best, discard stale, test goal, expand.
func (r *runner) run(initial Layout) (Result, error) {
	// 1) Root node: g=0, seq=0. Record it as the best path to its own state
	//    before the loop starts.
	root := r.newNode(initial, nil, 0)
	if err := r.rate(root); err != nil {
		return Result{}, err
	}
	r.frontier.push(root)
	r.best[initial.Key()] = root

	// 2) Main loop: runs while the frontier holds candidates.
	var n *Node
	for r.frontier.len() > 0 {
		n = r.frontier.pop()

		// 2a) Stale check (lazy deletion): if a strictly cheaper path to this
		//     state was recorded after this entry was pushed, skip it. Only
		//     cost-ordered strategies ever re-push a state, so for the
		//     step-count disciplines this never fires.
		if cur, ok := r.best[n.layout.Key()]; ok && cur.g < n.g {
			continue
		}

		// 2b) Goal test on pop keeps UniformCost/AStar cost-optimal.
		if n.layout.IsGoal(r.goal) {
			return Result{
				Path:     reconstruct(n),
				Cost:     n.g,
				Expanded: r.expanded,
				Found:    true,
			}, nil
		}

		// 2c) Expand.
		if err := r.expand(n); err != nil {
			return Result{}, err
		}
	}

	// 3) Frontier exhausted: no path exists.
	return Result{Expanded: r.expanded, Found: false}, nil
}

// expand generates n's children and pushes every child that improves on the
// best known cost for its state. Entries superseded by a cheaper push are not
// removed from the frontier; the stale check in run discards them at pop time.
func (r *runner) expand(n *Node) error {
	r.expanded++

	var (
		child Layout
		step  float64
		c     *Node
	)
	for _, child = range n.layout.Children() {
		step = child.StepCost()
		if step < 0 || math.IsNaN(step) {
			return fmt.Errorf("%w: state %q step=%v", ErrNegativeStepCost, child.Key(), step)
		}

		// Respect the cost cap: nodes beyond it are never pushed.
		g := n.g + step
		if g > r.options.MaxCost {
			continue
		}

		// Cost-ordered strategies push only on a strict g improvement;
		// "<" (not "≤") avoids flooding the frontier with duplicates of
		// equal-cost rediscoveries. BreadthFirst and DepthFirst settle a
		// state on first discovery: FIFO reaches every state at its
		// minimal depth first, and re-pushing on a cheaper g would trade
		// the fewest-steps guarantee for a cost guarantee the discipline
		// never promised.
		existing, ok := r.best[child.Key()]
		if ok && (!r.options.Strategy.costOrdered() || g >= existing.g) {
			continue
		}

		c = r.newNode(child, n, step)
		if err := r.rate(c); err != nil {
			return err
		}
		r.best[child.Key()] = c
		r.frontier.push(c)
	}

	return nil
}

// rate caches the heuristic estimate on the node when the strategy needs it.
// Computing it once at construction keeps frontier comparisons cheap and
// immune to heuristics that are accidentally non-deterministic.
func (r *runner) rate(n *Node) error {
	if r.options.Strategy != AStar {
		return nil
	}
	h := n.layout.Heuristic(r.goal)
	if h < 0 || math.IsNaN(h) {
		return fmt.Errorf("%w: state %q h=%v", ErrNegativeHeuristic, n.layout.Key(), h)
	}
	n.h = h

	return nil
}

// reconstruct walks parent pointers from the goal node back to the root and
// returns the path in forward (root→goal) order.
func reconstruct(n *Node) []*Node {
	// Count the depth first so the path is allocated exactly once.
	depth := 0
	for cur := n; cur != nil; cur = cur.parent {
		depth++
	}
	path := make([]*Node, depth)
	for cur := n; cur != nil; cur = cur.parent {
		depth--
		path[depth] = cur
	}

	return path
}
