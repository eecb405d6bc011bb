// Package bounds contains the index validation shared by the list
// implementations.
package bounds

import (
	"fmt"

	"github.com/segmentio/chains/seq"
)

// Element checks that i is the index of an element in a container of size n,
// which means that 0 <= i < n.
func Element(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d, size %d", seq.ErrOutOfRange, i, n)
	}
	return nil
}

// Position checks that i is a position in a container of size n, which means
// that 0 <= i <= n. Positions are the places between elements where a cursor
// may stand or a value may be inserted.
func Position(i, n int) error {
	if i < 0 || i > n {
		return fmt.Errorf("%w: position %d, size %d", seq.ErrOutOfRange, i, n)
	}
	return nil
}

// Range checks that [start, stop) is a valid range of positions in a container
// of size n.
func Range(start, stop, n int) error {
	if err := Position(start, n); err != nil {
		return err
	}
	if start > stop {
		return fmt.Errorf("%w: %d is greater than %d", seq.ErrInvalidRange, start, stop)
	}
	return Position(stop, n)
}

// NotEmpty returns seq.ErrEmpty if n is zero.
func NotEmpty(n int) error {
	if n == 0 {
		return seq.ErrEmpty
	}
	return nil
}
