package slist

import (
	"fmt"

	"github.com/segmentio/chains/internal/bounds"
	"github.com/segmentio/chains/seq"
)

// Cursor is a forward-only cursor over a List.
//
// Cursors do not implement seq.BidirectionalCursor, seq.Previous reports
// seq.ErrUnsupported when given one.
type Cursor[T any] struct {
	list   *List[T]
	before *node[T] // node at pos-1, nil when pos == 0
	last   *node[T] // node most recently yielded, nil after Add or Remove
	// Node preceding last, kept so Remove can unlink last without walking
	// the list from its head.
	lastPrev *node[T]
	pos      int
	stop     int // distance from the end of the list
}

// Iterator returns a cursor positioned before the first element of the list.
func (list *List[T]) Iterator() *Cursor[T] {
	return list.cursor(0, 0)
}

// IteratorFrom returns a cursor positioned before the element at index start.
//
// Positioning the cursor walks the list from its front.
func (list *List[T]) IteratorFrom(start int) (*Cursor[T], error) {
	if err := bounds.Position(start, list.size); err != nil {
		return nil, err
	}
	return list.cursor(start, 0), nil
}

// IteratorRange returns a cursor which only yields the elements in
// [start, stop).
func (list *List[T]) IteratorRange(start, stop int) (*Cursor[T], error) {
	if err := bounds.Range(start, stop, list.size); err != nil {
		return nil, err
	}
	return list.cursor(start, list.size-stop), nil
}

// Cursor satisfies seq.Sequence, it is equivalent to Iterator.
func (list *List[T]) Cursor() seq.Cursor[T] { return list.Iterator() }

func (list *List[T]) cursor(pos, stop int) *Cursor[T] {
	return &Cursor[T]{
		list:   list,
		before: list.predecessor(pos),
		pos:    pos,
		stop:   stop,
	}
}

func (c *Cursor[T]) next() *node[T] {
	if c.before == nil {
		return c.list.head
	}
	return c.before.next
}

// HasNext returns true if a call to Next would yield an element.
func (c *Cursor[T]) HasNext() bool {
	return c.pos < c.list.size-c.stop
}

// Next yields the element at NextIndex and advances the cursor.
//
// The method returns seq.ErrExhausted if HasNext is false.
func (c *Cursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return zero[T](), fmt.Errorf("%w: position %d, limit %d", seq.ErrExhausted, c.pos, c.list.size-c.stop)
	}
	c.lastPrev = c.before
	c.last = c.next()
	c.before = c.last
	c.pos++
	return c.last.value, nil
}

// Get returns the element most recently yielded by Next, or
// seq.ErrInvalidCursorState if there is none.
func (c *Cursor[T]) Get() (T, error) {
	if c.last == nil {
		return zero[T](), seq.ErrInvalidCursorState
	}
	return c.last.value, nil
}

// Set replaces the element most recently yielded by Next and returns its
// previous value.
func (c *Cursor[T]) Set(value T) (T, error) {
	if c.last == nil {
		return zero[T](), seq.ErrInvalidCursorState
	}
	return c.last.set(value), nil
}

// Remove removes the element most recently yielded by Next from the list, in
// constant time. NextIndex still designates the same element after the
// removal.
func (c *Cursor[T]) Remove() error {
	if c.last == nil {
		return seq.ErrInvalidCursorState
	}
	c.list.removeAfter(c.lastPrev)
	c.before = c.lastPrev
	c.last, c.lastPrev = nil, nil
	c.pos--
	return nil
}

// Add inserts value before the element at NextIndex, or at the back of the list
// if the cursor is at the end, and advances the cursor past it.
func (c *Cursor[T]) Add(value T) error {
	if c.last == nil {
		return seq.ErrInvalidCursorState
	}
	c.before = c.list.insertAfter(c.before, value)
	c.last, c.lastPrev = nil, nil
	c.pos++
	return nil
}

// Index returns the index of the element most recently yielded by Next, or -1
// if there is none.
func (c *Cursor[T]) Index() int {
	if c.last == nil {
		return -1
	}
	return c.pos - 1
}

// NextIndex returns the index of the element that Next would yield.
func (c *Cursor[T]) NextIndex() int { return c.pos }
