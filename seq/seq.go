// Package seq declares the capabilities shared by the sequential containers of
// this module, and implements the operations that can be derived from them.
//
// The capabilities are split in small interfaces rather than a single wide
// one, so that a container only declares what it can actually do. A
// singly-linked list, for example, produces cursors which can only move
// forward; it implements Cursor but not BidirectionalCursor, and programs
// learn it at compile time instead of through a runtime failure.
//
// Every function of this package is written against Len, Cursor and PushBack
// only. None of them rely on the internal layout of a container:
//
//	l := list.New(1, 2, 3)
//
//	if seq.Contains[int](l, 2) {
//		...
//	}
//
//	fmt.Println(seq.String[int](l)) // [1, 2, 3]
//
// Containers and cursors are not safe to use concurrently from multiple
// goroutines. While a cursor is used to modify a container, the container must
// not be modified through any other cursor or method; doing so leaves both in
// an undefined state. No attempt is made to detect such misuse.
package seq

// Sequence is the minimal capability of a container: it knows its length and
// can be traversed forward from its first element.
type Sequence[T any] interface {
	// Returns the number of elements in the sequence.
	Len() int

	// Returns a cursor positioned before the first element of the sequence.
	Cursor() Cursor[T]
}

// Appender is implemented by containers that can grow at their back.
type Appender[T any] interface {
	PushBack(value T)
}

// FrontMutator is implemented by containers supporting access and mutation of
// their first element.
type FrontMutator[T any] interface {
	PushFront(value T)
	RemoveFront() (T, error)
	Front() (T, error)
	SetFront(value T) (T, error)
}

// BackMutator is implemented by containers supporting access and mutation of
// their last element.
type BackMutator[T any] interface {
	Appender[T]
	RemoveBack() (T, error)
	Back() (T, error)
	SetBack(value T) (T, error)
}

// RandomAccess is implemented by containers which can address their elements
// by index. It says nothing about the cost of doing so.
type RandomAccess[T any] interface {
	// Returns the value at index i.
	Get(i int) (T, error)

	// Replaces the value at index i, returning the previous one.
	Set(i int, value T) (T, error)

	// Inserts value so that it ends up at index i, i may be equal to the
	// length of the container.
	Insert(i int, value T) error

	// Removes the value at index i and returns it.
	Remove(i int) (T, error)
}

// List is the union of all the container capabilities.
type List[T any] interface {
	Sequence[T]
	FrontMutator[T]
	BackMutator[T]
	RandomAccess[T]
}

// Cursor is a stateful traversal handle over a container.
//
// A cursor sits between two elements. NextIndex is the index of the element
// that the next call to Next returns. The element most recently returned by
// Next (or Previous) is the target of Get, Set and Remove. Add and Remove
// forget this element, so a cursor must step again before it can be used to
// mutate the container again.
type Cursor[T any] interface {
	// Returns true if a call to Next would yield an element.
	HasNext() bool

	// Yields the element at NextIndex and advances the cursor.
	Next() (T, error)

	// Returns the element most recently yielded by the cursor.
	Get() (T, error)

	// Replaces the element most recently yielded by the cursor, returning
	// the previous value.
	Set(value T) (T, error)

	// Removes the element most recently yielded by the cursor from the
	// container.
	Remove() error

	// Inserts a value right before the element at NextIndex, and advances the
	// cursor past it.
	Add(value T) error

	// Returns the index of the element most recently yielded, or -1.
	Index() int

	// Returns the index of the element that Next would yield.
	NextIndex() int
}

// BidirectionalCursor is a Cursor which can also step backward.
type BidirectionalCursor[T any] interface {
	Cursor[T]

	// Returns true if a call to Previous would yield an element.
	HasPrevious() bool

	// Yields the element at PrevIndex and moves the cursor back.
	Previous() (T, error)

	// Returns the index of the element that Previous would yield.
	PrevIndex() int
}
