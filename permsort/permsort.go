// Package permsort implements the weighted permutation-sorting search domain:
// an immutable integer-sequence Layout whose moves are pairwise swaps priced
// by the parity rule in types.go, plus the cycle-decomposition heuristic in
// cycles.go.
package permsort

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/statesearch/search"
)

// Array is one immutable state of the sorting domain. Construct it with New
// (textual encoding) or receive it from Children; never mutate the backing
// data after construction.
type Array struct {
	data []int
	step float64 // cost of the swap that produced this state; 0 for a root
	key  string  // cached compact encoding, consistent with equality
}

// New parses a whitespace-separated sequence of integers into an Array.
// Negatives and duplicates are allowed. Empty or whitespace-only input yields
// an empty array (a state with no possible swaps). A malformed token fails
// with ErrBadToken; no other construction error exists.
func New(s string) (Array, error) {
	fields := strings.Fields(s)
	data := make([]int, len(fields))
	for i, tok := range fields {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return Array{}, fmt.Errorf("%w: %q at position %d", ErrBadToken, tok, i)
		}
		data[i] = v
	}

	return Array{data: data, key: encode(data)}, nil
}

// Len returns the number of values in the array.
func (a Array) Len() int { return len(a.data) }

// Values returns a defensive copy of the underlying sequence.
func (a Array) Values() []int {
	out := make([]int, len(a.data))
	copy(out, a.data)

	return out
}

// Children returns every state reachable by one swap of two distinct
// positions: n·(n−1)/2 successors for n values, none for n < 2. Each child
// carries the parity cost of the swap that produced it, computed from the
// parent's values.
func (a Array) Children() []search.Layout {
	n := len(a.data)
	if n < 2 {
		return nil
	}

	children := make([]search.Layout, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			data := make([]int, n)
			copy(data, a.data)
			data[i], data[j] = data[j], data[i]
			children = append(children, Array{
				data: data,
				step: SwapCost(a.data[i], a.data[j]),
				key:  encode(data),
			})
		}
	}

	return children
}

// StepCost reports the cost of the swap that produced this state; 0 for a
// state built by New.
func (a Array) StepCost() float64 { return a.step }

// IsGoal reports structural equality with goal. A non-Array goal is never
// equal.
func (a Array) IsGoal(goal search.Layout) bool {
	g, ok := goal.(Array)
	if !ok || len(a.data) != len(g.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != g.data[i] {
			return false
		}
	}

	return true
}

// Heuristic returns the cycle-decomposition lower bound on the cost of
// sorting this array into goal; see cycles.go. It returns 0 for a non-Array
// goal or a goal of different length (pairs the search will prove unsolvable
// by exhaustion).
func (a Array) Heuristic(goal search.Layout) float64 {
	g, ok := goal.(Array)
	if !ok || len(a.data) != len(g.data) {
		return 0
	}

	return cycleBound(a.data, g.data)
}

// Key returns the compact encoding used for visited-state bookkeeping.
func (a Array) Key() string { return a.key }

// String renders the array as space-joined integers, matching the encoding
// accepted by New.
func (a Array) String() string { return a.key }

// encode builds the canonical space-joined rendering of data.
func encode(data []int) string {
	var sb strings.Builder
	for i, v := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}
