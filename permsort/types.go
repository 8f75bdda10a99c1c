// Package permsort defines the types, cost rule, and sentinel errors for the
// weighted permutation-sorting domain.
//
// A state is an ordered sequence of integers; one move swaps two distinct
// positions. The cost of a swap depends only on the parity of the two values
// being swapped:
//
//	– both even → 2
//	– both odd  → 20
//	– mixed     → 11
//
// Errors (sentinel):
//
//	– ErrBadToken if the textual encoding contains a non-integer token.
package permsort

import "errors"

// ErrBadToken indicates that a token in the textual encoding could not be
// parsed as an integer.
var ErrBadToken = errors.New("permsort: encoding contains a non-integer token")

// Swap costs by parity class of the two swapped values.
const (
	// CostEvenEven is the cost of swapping two even values.
	CostEvenEven = 2.0
	// CostOddOdd is the cost of swapping two odd values.
	CostOddOdd = 20.0
	// CostMixed is the cost of swapping an even value with an odd one.
	CostMixed = 11.0
)

// SwapCost returns the cost of swapping values a and b under the parity rule.
// Parity is taken from the low bit, which classifies negative values
// correctly as well (-3 is odd, -2 is even).
func SwapCost(a, b int) float64 {
	aEven := a&1 == 0
	bEven := b&1 == 0
	switch {
	case aEven && bEven:
		return CostEvenEven
	case !aEven && !bEven:
		return CostOddOdd
	default:
		return CostMixed
	}
}
