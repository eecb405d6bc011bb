package seq

import "errors"

var (
	// ErrEmpty is returned when accessing or removing the first or last
	// element of an empty container.
	ErrEmpty = errors.New("container is empty")

	// ErrExhausted is returned when a cursor is asked to step past the end
	// (or the beginning) of the range it iterates over.
	ErrExhausted = errors.New("cursor has no more elements")

	// ErrOutOfRange is returned when an index does not designate an element,
	// or a position between elements, of a container.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidCursorState is returned by cursor operations that need the
	// element most recently yielded, when there is none. This happens before
	// the first step of a cursor, and after a call to Add or Remove.
	ErrInvalidCursorState = errors.New("cursor has no current element")

	// ErrUnsupported is returned when an operation is not implemented by a
	// container or cursor, for example stepping backward on a forward-only
	// cursor.
	ErrUnsupported = errors.New("operation not supported")

	// ErrInvalidRange is returned when the lower bound of a range is greater
	// than its upper bound.
	ErrInvalidRange = errors.New("invalid range")
)
