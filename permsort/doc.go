// Package permsort implements the weighted permutation-sorting domain for the
// search engine: states are integer sequences, moves are pairwise swaps, and
// the cost of a swap depends on the parity of the two values involved.
//
// Overview:
//
//   - Array is an immutable search.Layout. New parses the textual encoding
//     (whitespace-separated integers, negatives and duplicates allowed);
//     Children materializes all n·(n−1)/2 single-swap successors.
//   - Swap pricing: even↔even costs 2, odd↔odd costs 20, mixed costs 11.
//     Sorting cheaply is therefore about routing odd values through even
//     pivots instead of swapping odds directly.
//   - Heuristic is an informed lower bound built from the cycle structure of
//     the current→goal mapping, suitable for search.AStar.
//
// The cycle heuristic:
//
//   - Positions already holding their goal value form trivial cycles and
//     contribute nothing.
//   - A 2-cycle costs exactly its one resolving swap.
//   - 3- and 4-cycles are costed exactly by bounded exhaustive search over
//     in-cycle swap sequences (at most 216 simulations per cycle).
//   - Larger cycles use closed-form lower bounds: with e ≥ 1 even members,
//     (e−1)·2 + o·11; all-odd cycles take min((k−1)·20, k·11), where the k·11
//     "borrow" term applies only when an even pivot exists elsewhere.
//   - The per-cycle terms are summed. Each term is a lower bound on the cost
//     of resolving its cycle, so the sum never exceeds the true remaining
//     cost and AStar stays optimal.
//
// Duplicate values:
//
//   - The current→goal mapping matches duplicates left-to-right. That rule is
//     deterministic and cheap, but it can stitch duplicate values into a
//     larger cycle than an optimal pairing would, in which case the estimate
//     may overshoot. Callers who need a strict optimality guarantee on
//     duplicate-heavy inputs should prefer search.UniformCost.
//
// Example:
//
//	initial, _ := permsort.New("9 7 8")
//	goal, _ := permsort.New("7 8 9")
//	res, _ := search.Solve(initial, goal, search.WithStrategy(search.AStar))
//	fmt.Println(res.Cost) // 22
//
// Errors:
//
//   - ErrBadToken: the encoding contains a non-integer token. Construction is
//     the only operation that can fail.
package permsort
