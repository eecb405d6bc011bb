// Package compare provides comparison functions for ordered types, in the form
// expected by seq.Compare.
package compare

import "golang.org/x/exp/constraints"

// Function is a comparison function for ordered types.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Reverse returns a comparison function ordering values in the opposite order
// of cmp.
func Reverse[T any](cmp func(T, T) int) func(T, T) int {
	return func(a, b T) int { return cmp(b, a) }
}
