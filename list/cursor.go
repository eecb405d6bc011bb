package list

import (
	"fmt"

	"github.com/segmentio/chains/internal/bounds"
	"github.com/segmentio/chains/seq"
)

// Cursor is a bidirectional cursor over a List.
//
// A cursor is bound to the list that created it. While it is in use, the list
// must only be modified through the cursor's own Add, Remove and Set methods.
type Cursor[T any] struct {
	list *List[T]
	next *node[T] // node at pos, nil when pos == list.size
	last *node[T] // node most recently yielded, nil after Add or Remove
	pos  int
	idx  int // index of last
	// The cursor refuses to step before floor, or past list.size-stop.
	// stop is a distance from the end of the list so it remains valid when
	// elements are added or removed behind the cursor.
	floor int
	stop  int
}

// Iterator returns a cursor positioned before the first element of the list.
func (list *List[T]) Iterator() *Cursor[T] {
	return list.cursor(0, 0, 0)
}

// IteratorFrom returns a cursor positioned before the element at index start.
// The cursor may step backward down to the front of the list.
//
// The method returns seq.ErrOutOfRange if start is not within [0, Len()].
func (list *List[T]) IteratorFrom(start int) (*Cursor[T], error) {
	if err := bounds.Position(start, list.size); err != nil {
		return nil, err
	}
	return list.cursor(start, 0, 0), nil
}

// IteratorRange returns a cursor which only yields the elements in
// [start, stop).
//
// The method returns seq.ErrOutOfRange if start or stop is not within
// [0, Len()], and seq.ErrInvalidRange if start is greater than stop.
func (list *List[T]) IteratorRange(start, stop int) (*Cursor[T], error) {
	if err := bounds.Range(start, stop, list.size); err != nil {
		return nil, err
	}
	return list.cursor(start, start, list.size-stop), nil
}

// Cursor satisfies seq.Sequence, it is equivalent to Iterator.
func (list *List[T]) Cursor() seq.Cursor[T] { return list.Iterator() }

func (list *List[T]) cursor(pos, floor, stop int) *Cursor[T] {
	c := &Cursor[T]{
		list:  list,
		pos:   pos,
		idx:   -1,
		floor: floor,
		stop:  stop,
	}
	if pos != list.size {
		c.next = list.node(pos)
	}
	return c
}

// HasNext returns true if a call to Next would yield an element.
func (c *Cursor[T]) HasNext() bool {
	return c.pos < c.list.size-c.stop
}

// HasPrevious returns true if a call to Previous would yield an element.
func (c *Cursor[T]) HasPrevious() bool {
	return c.pos > c.floor
}

// Next yields the element at NextIndex and advances the cursor.
//
// The method returns seq.ErrExhausted if HasNext is false.
func (c *Cursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return zero[T](), c.exhausted()
	}
	c.last = c.next
	c.next = c.next.next
	c.idx = c.pos
	c.pos++
	return c.last.value, nil
}

// Previous yields the element at PrevIndex and moves the cursor back, so that
// a following call to Next yields the same element again.
//
// The method returns seq.ErrExhausted if HasPrevious is false.
func (c *Cursor[T]) Previous() (T, error) {
	if !c.HasPrevious() {
		return zero[T](), c.exhausted()
	}
	if c.next != nil {
		c.next = c.next.prev
	} else {
		c.next = c.list.tail
	}
	c.last = c.next
	c.pos--
	c.idx = c.pos
	return c.last.value, nil
}

// Get returns the element most recently yielded by Next or Previous.
//
// The method returns seq.ErrInvalidCursorState if no element was yielded since
// the cursor was created, or since the last call to Add or Remove.
func (c *Cursor[T]) Get() (T, error) {
	if c.last == nil {
		return zero[T](), seq.ErrInvalidCursorState
	}
	return c.last.value, nil
}

// Set replaces the element most recently yielded by Next or Previous, and
// returns its previous value.
//
// The method returns seq.ErrInvalidCursorState under the same conditions as
// Get.
func (c *Cursor[T]) Set(value T) (T, error) {
	if c.last == nil {
		return zero[T](), seq.ErrInvalidCursorState
	}
	return c.last.set(value), nil
}

// Remove removes the element most recently yielded by Next or Previous from the
// list. NextIndex still designates the same element after the removal.
//
// The method returns seq.ErrInvalidCursorState under the same conditions as
// Get.
func (c *Cursor[T]) Remove() error {
	if c.last == nil {
		return seq.ErrInvalidCursorState
	}
	if c.last == c.next {
		// last was yielded by Previous, the cursor is positioned right
		// before it.
		c.next = c.last.next
	} else {
		c.pos--
	}
	c.list.remove(c.last)
	c.last = nil
	c.idx = -1
	return nil
}

// Add inserts value before the element at NextIndex, or at the back of the list
// if the cursor is at the end. The cursor is advanced past the new element, so
// a following call to Next is unaffected.
//
// The method returns seq.ErrInvalidCursorState under the same conditions as
// Get.
func (c *Cursor[T]) Add(value T) error {
	if c.last == nil {
		return seq.ErrInvalidCursorState
	}
	if c.next != nil {
		c.list.insertBefore(c.next, value)
	} else {
		c.list.insertAfter(c.list.tail, value)
	}
	c.pos++
	c.last = nil
	c.idx = -1
	return nil
}

// Index returns the index of the element most recently yielded by Next or
// Previous, or -1 if there is none.
func (c *Cursor[T]) Index() int { return c.idx }

// NextIndex returns the index of the element that Next would yield.
func (c *Cursor[T]) NextIndex() int { return c.pos }

// PrevIndex returns the index of the element that Previous would yield.
func (c *Cursor[T]) PrevIndex() int { return c.pos - 1 }

func (c *Cursor[T]) exhausted() error {
	return fmt.Errorf("%w: position %d, range [%d:%d]", seq.ErrExhausted, c.pos, c.floor, c.list.size-c.stop)
}
