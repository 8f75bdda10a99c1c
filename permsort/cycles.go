// Cycle-decomposition heuristic for the weighted permutation-sorting domain.
//
// The estimate decomposes the current→goal position mapping into disjoint
// cycles and sums a per-cycle cost:
//
//   - k = 2:      the exact cost of the single resolving swap.
//   - k ∈ {3,4}:  the exact optimal cost of resolving the cycle in isolation,
//     found by exhaustive enumeration of all sequences of k−1 swaps
//     over the cycle's position pairs (≤ 6³ = 216 simulations).
//   - k > 4, e≥1: the lower-bound formula (e−1)·2 + o·11 — settle the evens
//     among themselves and absorb every odd through an even pivot.
//   - k > 4, e=0: (k−1)·20, resolving with odd-odd swaps only.
//
// Any all-odd cycle is additionally capped by the borrow bound k·11 when an
// even value exists elsewhere in the array: pulling an external even in as a
// rotating pivot pays mixed cost per swap, and an impure resolution of an
// all-odd k-cycle needs more than k swaps, so k·11 is a valid lower bound.
//
// Duplicate values are matched left-to-right: the i-th occurrence of a value
// in the current array is assigned the i-th position of that value in the
// goal. This keeps the mapping well-defined but can build a larger cycle than
// a smarter pairing would, so for arrays with duplicates the estimate may
// exceed the true remaining cost. It is preserved as the domain's documented
// matching rule; see the package tests for the distinct-value admissibility
// property.
package permsort

import "math"

// cycleBound returns the summed per-cycle estimate for sorting cur into goal.
// Values absent from the goal are mapped to themselves and contribute 0.
func cycleBound(cur, goal []int) float64 {
	n := len(cur)
	perm := matchPositions(cur, goal)

	// Count evens once; cycleCost derives "even outside the cycle" from it.
	evenTotal := 0
	for _, v := range cur {
		if v&1 == 0 {
			evenTotal++
		}
	}

	visited := make([]bool, n)
	total := 0.0
	var i, j int
	for i = 0; i < n; i++ {
		if visited[i] || perm[i] == i {
			visited[i] = true // trivial 1-cycles cost 0
			continue
		}

		// Collect the cycle through i in traversal order.
		cycle := make([]int, 0, 8)
		for j = i; !visited[j]; j = perm[j] {
			visited[j] = true
			cycle = append(cycle, j)
		}

		total += cycleCost(cur, goal, cycle, evenTotal)
	}

	return total
}

// matchPositions builds the permutation mapping: perm[i] is the goal position
// the value cur[i] must occupy. Duplicate values are matched left-to-right.
// A value with no remaining goal position maps to itself (fixed point), which
// keeps the estimate a lower bound for non-permutation pairs.
func matchPositions(cur, goal []int) []int {
	slots := make(map[int][]int, len(goal))
	for idx, v := range goal {
		slots[v] = append(slots[v], idx)
	}

	perm := make([]int, len(cur))
	for i, v := range cur {
		s := slots[v]
		if len(s) == 0 {
			perm[i] = i
			continue
		}
		perm[i] = s[0]
		slots[v] = s[1:]
	}

	return perm
}

// cycleCost estimates the cost of resolving one non-trivial cycle.
// cycle holds the positions in traversal order; evenTotal is the count of
// even values in the whole array.
func cycleCost(cur, goal []int, cycle []int, evenTotal int) float64 {
	k := len(cycle)
	evens := 0
	for _, p := range cycle {
		if cur[p]&1 == 0 {
			evens++
		}
	}
	odds := k - evens

	var cost float64
	switch {
	case k == 2:
		// One swap, exact by definition.
		cost = SwapCost(cur[cycle[0]], cur[cycle[1]])
	case k <= 4:
		cost = smallCycleCost(cur, goal, cycle)
		if math.IsInf(cost, 1) {
			// Duplicates can build a cycle that no sequence of k−1 in-cycle
			// swaps resolves; fall back to the large-cycle bound.
			if evens >= 1 {
				cost = float64(evens-1)*CostEvenEven + float64(odds)*CostMixed
			} else {
				cost = float64(k-1) * CostOddOdd
			}
		}
	case evens >= 1:
		cost = float64(evens-1)*CostEvenEven + float64(odds)*CostMixed
	default:
		cost = float64(k-1) * CostOddOdd
	}

	// Borrow bound: an all-odd cycle may be cheaper to resolve through an
	// external even pivot at mixed cost per swap. Only a cap, never a raise.
	if evens == 0 && evenTotal > 0 {
		if borrow := float64(k) * CostMixed; borrow < cost {
			cost = borrow
		}
	}

	return cost
}

// smallCycleCost returns the exact optimal cost of resolving a 3- or 4-cycle
// using swaps confined to the cycle's own positions. It enumerates every
// sequence of exactly k−1 swaps drawn (with repetition) from the cycle's
// position pairs, simulates each on a scratch copy accumulating true swap
// costs, and keeps the minimum over the sequences that actually sort the
// cycle's values into place. A k-cycle cannot resolve in fewer than k−1
// in-cycle swaps, and with every swap costing at least 2 a longer resolution
// never beats an optimal minimal one, so the bounded enumeration is exact.
func smallCycleCost(cur, goal []int, cycle []int) float64 {
	k := len(cycle)

	// Local slots: vals holds the cycle's current values, want the values the
	// same positions must end up holding.
	vals := make([]int, k)
	want := make([]int, k)
	for s, p := range cycle {
		vals[s] = cur[p]
		want[s] = goal[p]
	}

	// All slot pairs; C(4,2)=6 at most.
	pairs := make([][2]int, 0, k*(k-1)/2)
	var a, b int
	for a = 0; a < k-1; a++ {
		for b = a + 1; b < k; b++ {
			pairs = append(pairs, [2]int{a, b})
		}
	}

	best := math.Inf(1)
	scratch := make([]int, k)
	copy(scratch, vals)

	// Depth-first enumeration over swap sequences of length k−1 (≤ 3),
	// undoing each swap on backtrack so scratch is reused in place.
	var walk func(depth int, cost float64)
	walk = func(depth int, cost float64) {
		if cost >= best {
			return
		}
		if depth == k-1 {
			for s := 0; s < k; s++ {
				if scratch[s] != want[s] {
					return
				}
			}
			best = cost

			return
		}
		for _, pr := range pairs {
			step := SwapCost(scratch[pr[0]], scratch[pr[1]])
			scratch[pr[0]], scratch[pr[1]] = scratch[pr[1]], scratch[pr[0]]
			walk(depth+1, cost+step)
			scratch[pr[0]], scratch[pr[1]] = scratch[pr[1]], scratch[pr[0]]
		}
	}
	walk(0, 0)

	return best
}
