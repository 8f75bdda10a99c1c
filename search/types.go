// Package search defines the core types, configuration options, and sentinel
// errors for the best-first state-space search engine.
//
// The engine explores an implicit graph whose vertices are problem states
// (Layouts) and whose edges are the single-step transformations each Layout
// can produce. The exploration order is a pluggable Strategy selected at
// Solve time, not a property of the states themselves.
//
// Strategies:
//
//	– UniformCost:  expand by accumulated cost g ascending (Dijkstra order).
//	– AStar:        expand by g + Heuristic(goal) ascending; optimal whenever
//	                the heuristic never overestimates the true remaining cost.
//	– BreadthFirst: plain FIFO expansion, ignoring costs.
//	– DepthFirst:   plain LIFO expansion, ignoring costs.
//
// Equal-priority ties are broken by ascending sequence id, so two runs over
// the same inputs always expand nodes in the same order.
//
// Errors (sentinel):
//
//	– ErrNilLayout         if the initial or goal Layout is nil.
//	– ErrUnknownStrategy   if an out-of-range Strategy value is supplied.
//	– ErrBadMaxCost        if WithMaxCost is given a negative or NaN bound.
//	– ErrNegativeStepCost  if a Layout reports a negative step cost.
//	– ErrNegativeHeuristic if a Layout reports a negative heuristic estimate.
package search

import (
	"errors"
	"math"
)

// Sentinel errors returned (or panicked, for option constructors) by Solve.
var (
	// ErrNilLayout indicates that the initial or goal layout passed to Solve is nil.
	ErrNilLayout = errors.New("search: initial and goal layouts must be non-nil")

	// ErrUnknownStrategy indicates a Strategy value outside the declared enum.
	ErrUnknownStrategy = errors.New("search: unknown ordering strategy")

	// ErrBadMaxCost indicates that MaxCost was set to a negative or NaN value,
	// which is not meaningful for a cost cap.
	ErrBadMaxCost = errors.New("search: MaxCost must be non-negative")

	// ErrNegativeStepCost indicates that a Layout produced a child whose step
	// cost is negative. Best-first search is only correct for non-negative
	// step costs, so this is treated as a bug in the Layout implementation
	// and surfaced immediately rather than silently mis-ordering the frontier.
	ErrNegativeStepCost = errors.New("search: negative step cost reported by layout")

	// ErrNegativeHeuristic indicates that a Layout produced a negative
	// heuristic estimate. A negative estimate cannot be admissible and
	// signals a bug in the heuristic implementation.
	ErrNegativeHeuristic = errors.New("search: negative heuristic reported by layout")
)

// Layout is one immutable problem state of the implicit search graph.
//
// Implementations must be value-like: never mutated after construction, with
// Key consistent with structural equality (two layouts are the same state iff
// their Keys are equal). The engine relies on Key to track the best known
// cost per state across different paths.
type Layout interface {
	// Children returns every state reachable from this one by exactly one
	// legal transformation. The slice is freshly allocated on each call and
	// empty (or nil) when no transformation applies.
	Children() []Layout

	// StepCost reports the non-negative cost of the single transformation
	// that produced this layout from its parent; 0 for a root layout.
	StepCost() float64

	// IsGoal reports whether this layout is structurally equal to goal.
	IsGoal(goal Layout) bool

	// Heuristic returns a non-negative estimate of the remaining cost from
	// this layout to goal. Domains without an informed estimate return 0.
	// AStar is cost-optimal only if the estimate never exceeds the true
	// remaining cost.
	Heuristic(goal Layout) float64

	// Key returns a compact encoding of the state, used as the map key for
	// visited/best-cost bookkeeping. Key()==Key() must hold exactly for
	// structurally equal layouts.
	Key() string

	// String renders the state for display.
	String() string
}

// Node wraps a Layout discovered during one Solve run, together with the
// path bookkeeping the engine needs: the parent back-pointer, the accumulated
// path cost g, and a sequence id that is strictly increasing across the run.
//
// Nodes are created exclusively by the engine; callers only ever read them
// out of a Result path.
type Node struct {
	layout Layout
	parent *Node
	g      float64
	h      float64 // cached Heuristic(goal); 0 unless Strategy == AStar
	seq    uint64
}

// Layout returns the state this node wraps.
func (n *Node) Layout() Layout { return n.layout }

// Parent returns the node this one was expanded from, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// G returns the accumulated path cost from the root to this node.
func (n *Node) G() float64 { return n.g }

// Seq returns the node's sequence id within its Solve run. Sequence ids are
// assigned in discovery order and break ties between equal-priority nodes.
func (n *Node) Seq() uint64 { return n.seq }

// String renders the wrapped layout.
func (n *Node) String() string { return n.layout.String() }

// Strategy selects the frontier discipline used by Solve.
type Strategy int

const (
	// UniformCost orders the frontier by accumulated cost g ascending.
	// Guarantees an optimal-cost path with no heuristic information.
	UniformCost Strategy = iota

	// AStar orders the frontier by g + Heuristic(goal) ascending.
	// Guarantees an optimal-cost path when the heuristic is admissible.
	AStar

	// BreadthFirst expands in FIFO order, ignoring costs.
	// Finds a shortest path in number of steps, not in cost.
	BreadthFirst

	// DepthFirst expands in LIFO order, ignoring costs. Supported for
	// completeness of the frontier abstraction; it makes no optimality
	// promise of any kind.
	DepthFirst
)

// costOrdered reports whether the strategy expands nodes in g (or g+h)
// order. Cost-ordered frontiers re-push a state whenever a strictly cheaper
// path is found; the step-count disciplines settle a state on first
// discovery instead.
func (s Strategy) costOrdered() bool {
	return s == UniformCost || s == AStar
}

// String returns the canonical lowercase name of the strategy.
func (s Strategy) String() string {
	switch s {
	case UniformCost:
		return "uniform-cost"
	case AStar:
		return "astar"
	case BreadthFirst:
		return "breadth-first"
	case DepthFirst:
		return "depth-first"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a textual strategy name (as produced by Strategy.String)
// back to its enum value. It returns ErrUnknownStrategy for any other input.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "uniform-cost", "ucs":
		return UniformCost, nil
	case "astar", "a*":
		return AStar, nil
	case "breadth-first", "bfs":
		return BreadthFirst, nil
	case "depth-first", "dfs":
		return DepthFirst, nil
	default:
		return 0, ErrUnknownStrategy
	}
}

// Result is the outcome of one Solve run.
//
// Found=false is the legitimate "no solution" outcome: the frontier emptied
// without reaching the goal. It is not an error.
type Result struct {
	// Path is the forward root→goal sequence of nodes, nil when Found=false.
	// Path[0] wraps the initial layout, Path[len(Path)-1] the goal layout.
	Path []*Node

	// Cost is the accumulated cost of the final node (0 when Found=false).
	Cost float64

	// Expanded counts the nodes whose children were generated; useful for
	// comparing strategies and benchmarking heuristics.
	Expanded int

	// Found reports whether a path to the goal exists.
	Found bool
}

// Options configures one Solve run.
//
// Strategy – frontier discipline (default UniformCost).
// MaxCost  – cap on accumulated cost; nodes whose g would exceed the cap are
//
//	never pushed. Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Strategy Strategy
	MaxCost  float64
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithStrategy selects the frontier discipline for the run.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithMaxCost caps the accumulated cost the engine is willing to explore.
// Nodes whose g would exceed max are not pushed onto the frontier, so a run
// over an otherwise unbounded region of the state space still terminates.
// Must pass a non-negative value; negative or NaN panics with ErrBadMaxCost.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early, same contract as
			// the option constructors elsewhere in this module.
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: UniformCost ordering with no cost cap.
func DefaultOptions() Options {
	return Options{
		Strategy: UniformCost,
		MaxCost:  math.Inf(1),
	}
}
