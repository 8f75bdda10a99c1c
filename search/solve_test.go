// Package search_test contains unit tests for the best-first search engine.
// They validate input checking, cost optimality, lazy deletion of stale
// frontier entries, deterministic tie-breaking, the alternative frontier
// disciplines, and the defensive invariant checks.
package search_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/statesearch/search"
)

// ------------------------------------------------------------------------
// Test fixture: a Layout over an explicit weighted digraph, so engine tests
// control the exact shape of the state space.
// ------------------------------------------------------------------------

// testGraph describes an explicit digraph with optional per-vertex heuristic
// estimates toward a single goal vertex.
type testGraph struct {
	edges map[string][]testEdge
	h     map[string]float64
}

type testEdge struct {
	to string
	w  float64
}

// vertex wraps one graph vertex as a search.Layout.
type vertex struct {
	id   string
	g    *testGraph
	step float64
}

func (v vertex) Children() []search.Layout {
	out := make([]search.Layout, 0, len(v.g.edges[v.id]))
	for _, e := range v.g.edges[v.id] {
		out = append(out, vertex{id: e.to, g: v.g, step: e.w})
	}

	return out
}

func (v vertex) StepCost() float64 { return v.step }

func (v vertex) IsGoal(goal search.Layout) bool {
	o, ok := goal.(vertex)

	return ok && v.id == o.id
}

func (v vertex) Heuristic(search.Layout) float64 { return v.g.h[v.id] }
func (v vertex) Key() string                     { return v.id }
func (v vertex) String() string                  { return v.id }

// at returns the vertex layout for id.
func (g *testGraph) at(id string) vertex { return vertex{id: id, g: g} }

// diamond builds the classic lazy-deletion exercise: the direct edge A→C is
// discovered first but the detour A→B→C is cheaper, so C's first frontier
// entry goes stale and must be skipped at pop time.
func diamond() *testGraph {
	return &testGraph{
		edges: map[string][]testEdge{
			"A": {{to: "C", w: 10}, {to: "B", w: 1}},
			"B": {{to: "C", w: 1}},
			"C": {{to: "D", w: 1}},
		},
		h: map[string]float64{},
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSolve_NilLayouts(t *testing.T) {
	g := diamond()
	if _, err := search.Solve(nil, g.at("A")); !errors.Is(err, search.ErrNilLayout) {
		t.Fatalf("Solve(nil, goal) error = %v; want ErrNilLayout", err)
	}
	if _, err := search.Solve(g.at("A"), nil); !errors.Is(err, search.ErrNilLayout) {
		t.Fatalf("Solve(initial, nil) error = %v; want ErrNilLayout", err)
	}
}

func TestSolve_UnknownStrategy(t *testing.T) {
	g := diamond()
	_, err := search.Solve(g.at("A"), g.at("D"), search.WithStrategy(search.Strategy(42)))
	if !errors.Is(err, search.ErrUnknownStrategy) {
		t.Fatalf("error = %v; want ErrUnknownStrategy", err)
	}
}

func TestWithMaxCost_PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("WithMaxCost(-1) did not panic")
		}
	}()
	search.Solve(diamond().at("A"), diamond().at("D"), search.WithMaxCost(-1))
}

// ------------------------------------------------------------------------
// 2. Core behavior
// ------------------------------------------------------------------------

func TestSolve_IdempotentGoal(t *testing.T) {
	// solve(L, L) yields a single-node path of cost 0 with no expansion,
	// regardless of strategy.
	g := diamond()
	for _, s := range []search.Strategy{search.UniformCost, search.AStar, search.BreadthFirst, search.DepthFirst} {
		res, err := search.Solve(g.at("A"), g.at("A"), search.WithStrategy(s))
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", s, err)
		}
		if !res.Found || len(res.Path) != 1 || res.Cost != 0 {
			t.Errorf("%v: got Found=%v len=%d cost=%v; want single-node zero-cost path", s, res.Found, len(res.Path), res.Cost)
		}
	}
}

func TestSolve_LazyDeletion_PrefersCheaperLaterPath(t *testing.T) {
	// The direct A→C entry (g=10) is pushed before the cheaper A→B→C path
	// (g=2) is discovered; the stale entry must be discarded at pop time.
	g := diamond()
	res, err := search.Solve(g.at("A"), g.at("D"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Found || res.Cost != 3 {
		t.Fatalf("got Found=%v cost=%v; want cost 3 via A→B→C→D", res.Found, res.Cost)
	}
	want := []string{"A", "B", "C", "D"}
	if len(res.Path) != len(want) {
		t.Fatalf("path length = %d; want %d", len(res.Path), len(want))
	}
	for i, n := range res.Path {
		if n.Layout().Key() != want[i] {
			t.Errorf("path[%d] = %s; want %s", i, n.Layout().Key(), want[i])
		}
	}
}

func TestSolve_PathInvariants(t *testing.T) {
	// g(child) = g(parent) + stepCost along the returned path; root has g=0
	// and seq ids strictly increase along the path (discovery order).
	g := diamond()
	res, err := search.Solve(g.at("A"), g.at("D"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Path[0].G() != 0 || res.Path[0].Parent() != nil {
		t.Fatalf("root: g=%v parent=%v; want 0, nil", res.Path[0].G(), res.Path[0].Parent())
	}
	for i := 1; i < len(res.Path); i++ {
		n := res.Path[i]
		if n.Parent() != res.Path[i-1] {
			t.Errorf("path[%d] parent mismatch", i)
		}
		if n.G() < res.Path[i-1].G() {
			t.Errorf("path[%d] g=%v decreased below parent g=%v", i, n.G(), res.Path[i-1].G())
		}
		if n.Seq() <= res.Path[i-1].Seq() {
			t.Errorf("path[%d] seq=%d not increasing", i, n.Seq())
		}
	}
}

func TestSolve_NoSolution(t *testing.T) {
	g := &testGraph{
		edges: map[string][]testEdge{"A": {{to: "B", w: 1}}},
		h:     map[string]float64{},
	}
	res, err := search.Solve(g.at("A"), g.at("Z"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Found || res.Path != nil {
		t.Fatalf("got Found=%v path=%v; want absent result", res.Found, res.Path)
	}
}

func TestSolve_MaxCost_CapsExploration(t *testing.T) {
	g := diamond()
	res, err := search.Solve(g.at("A"), g.at("D"), search.WithMaxCost(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Found {
		t.Fatalf("goal at cost 3 found under MaxCost=2")
	}
	// A generous cap changes nothing.
	res, err = search.Solve(g.at("A"), g.at("D"), search.WithMaxCost(math.Inf(1)))
	if err != nil || !res.Found || res.Cost != 3 {
		t.Fatalf("got Found=%v cost=%v err=%v; want cost 3", res.Found, res.Cost, err)
	}
}

// ------------------------------------------------------------------------
// 3. Strategies
// ------------------------------------------------------------------------

func TestSolve_AStar_AgreesWithUniformCost(t *testing.T) {
	// An admissible heuristic must not change the optimal cost.
	g := diamond()
	g.h = map[string]float64{"A": 3, "B": 2, "C": 1, "D": 0}

	ucs, err := search.Solve(g.at("A"), g.at("D"), search.WithStrategy(search.UniformCost))
	if err != nil {
		t.Fatalf("ucs: %v", err)
	}
	ast, err := search.Solve(g.at("A"), g.at("D"), search.WithStrategy(search.AStar))
	if err != nil {
		t.Fatalf("astar: %v", err)
	}
	if ucs.Cost != ast.Cost {
		t.Fatalf("uniform-cost=%v astar=%v; want equal optimal cost", ucs.Cost, ast.Cost)
	}
	if ast.Expanded > ucs.Expanded {
		t.Errorf("astar expanded %d > uniform-cost %d; informed search should not do more work here", ast.Expanded, ucs.Expanded)
	}
}

func TestSolve_BreadthFirst_FindsFewestSteps(t *testing.T) {
	// Cost-wise the detour is cheaper, but BFS counts steps: A→C→D wins.
	g := diamond()
	res, err := search.Solve(g.at("A"), g.at("D"), search.WithStrategy(search.BreadthFirst))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Found || len(res.Path) != 3 {
		t.Fatalf("got Found=%v len=%d; want 3-node path A→C→D", res.Found, len(res.Path))
	}
}

func TestSolve_BreadthFirst_FewestStepsBeatsCheaperDetour(t *testing.T) {
	// The direct edge A→G costs 10 while the detour A→B→G costs 2. BFS must
	// still return the one-step path: the first discovery of G settles it,
	// and the cheaper two-step rediscovery must not supersede it.
	g := &testGraph{
		edges: map[string][]testEdge{
			"A": {{to: "B", w: 1}, {to: "G", w: 10}},
			"B": {{to: "G", w: 1}},
		},
		h: map[string]float64{},
	}

	res, err := search.Solve(g.at("A"), g.at("G"), search.WithStrategy(search.BreadthFirst))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Found || len(res.Path) != 2 {
		t.Fatalf("got Found=%v len=%d; want the 2-node path A→G", res.Found, len(res.Path))
	}
	if res.Cost != 10 {
		t.Errorf("cost = %v; want 10 along the one-step path", res.Cost)
	}

	// Uniform-cost on the same graph prefers the cheap detour.
	res, err = search.Solve(g.at("A"), g.at("G"), search.WithStrategy(search.UniformCost))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Found || res.Cost != 2 || len(res.Path) != 3 {
		t.Fatalf("uniform-cost: got Found=%v cost=%v len=%d; want cost 2 via A→B→G", res.Found, res.Cost, len(res.Path))
	}
}

func TestSolve_DepthFirst_FindsAPath(t *testing.T) {
	g := diamond()
	res, err := search.Solve(g.at("A"), g.at("D"), search.WithStrategy(search.DepthFirst))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Found {
		t.Fatal("depth-first failed to find any path")
	}
	last := res.Path[len(res.Path)-1]
	if last.Layout().Key() != "D" {
		t.Fatalf("path ends at %s; want D", last.Layout().Key())
	}
}

// ------------------------------------------------------------------------
// 4. Invariant violations
// ------------------------------------------------------------------------

func TestSolve_NegativeStepCost(t *testing.T) {
	g := &testGraph{
		edges: map[string][]testEdge{"A": {{to: "B", w: -1}}},
		h:     map[string]float64{},
	}
	_, err := search.Solve(g.at("A"), g.at("B"))
	if !errors.Is(err, search.ErrNegativeStepCost) {
		t.Fatalf("error = %v; want ErrNegativeStepCost", err)
	}
}

func TestSolve_NegativeHeuristic(t *testing.T) {
	g := diamond()
	g.h = map[string]float64{"A": -1}
	_, err := search.Solve(g.at("A"), g.at("D"), search.WithStrategy(search.AStar))
	if !errors.Is(err, search.ErrNegativeHeuristic) {
		t.Fatalf("error = %v; want ErrNegativeHeuristic", err)
	}
	// Uniform-cost never consults the heuristic, so the same graph solves.
	if _, err = search.Solve(g.at("A"), g.at("D")); err != nil {
		t.Fatalf("uniform-cost: unexpected error: %v", err)
	}
}

// ------------------------------------------------------------------------
// 5. Strategy parsing
// ------------------------------------------------------------------------

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in   string
		want search.Strategy
		err  error
	}{
		{"uniform-cost", search.UniformCost, nil},
		{"ucs", search.UniformCost, nil},
		{"astar", search.AStar, nil},
		{"a*", search.AStar, nil},
		{"bfs", search.BreadthFirst, nil},
		{"dfs", search.DepthFirst, nil},
		{"dijkstra", 0, search.ErrUnknownStrategy},
	}
	for _, tc := range cases {
		got, err := search.ParseStrategy(tc.in)
		if !errors.Is(err, tc.err) {
			t.Errorf("ParseStrategy(%q) error = %v; want %v", tc.in, err, tc.err)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseStrategy(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestStrategy_StringRoundTrip(t *testing.T) {
	for _, s := range []search.Strategy{search.UniformCost, search.AStar, search.BreadthFirst, search.DepthFirst} {
		back, err := search.ParseStrategy(s.String())
		if err != nil || back != s {
			t.Errorf("round trip %v: got %v, %v", s, back, err)
		}
	}
}
