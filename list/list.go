// Package list contains the implementation of a type-safe, doubly-linked list
// with positional cursors.
//
// The standard library provides a doubly-linked list in the container/list
// package, which hands out its internal elements to the programs using it and
// stores values as interface{}. The list in this package takes the opposite
// approach: values are stored with their static type, and the nodes that link
// them never leave the list. Programs address elements by index, or traverse
// and mutate the list through a Cursor.
//
// Lists can be constructed by simple declaration since their zero-value
// represents an empty list:
//
//	l := list.List[string]{}
//	l.PushBack("A")
//	l.PushBack("B")
//	l.PushBack("C")
//
//	for c := l.Iterator(); c.HasNext(); {
//		v, _ := c.Next()
//		...
//	}
//
// Cursors keep track of the element they last returned, which lets programs
// remove or insert elements in the middle of a traversal:
//
//	for c := l.Iterator(); c.HasNext(); {
//		if v, _ := c.Next(); v == "B" {
//			c.Remove()
//		}
//	}
//
// The first and last elements are reached in constant time. Accessing an
// element by index walks the list from whichever end is closest to it.
package list

import (
	"github.com/segmentio/chains/internal/bounds"
	"github.com/segmentio/chains/seq"
)

type node[T any] struct {
	prev  *node[T]
	next  *node[T]
	value T
}

// List values are containers of objects which support insertion and removal at
// the front and back of the list in O(1), and at any index in O(n/2).
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

var (
	_ seq.List[int]                = (*List[int])(nil)
	_ seq.BidirectionalCursor[int] = (*Cursor[int])(nil)
)

// New constructs a list holding the values passed as arguments, in order.
func New[T any](values ...T) *List[T] {
	list := new(List[T])
	for _, v := range values {
		list.PushBack(v)
	}
	return list
}

// Len returns the number of elements in the list.
func (list *List[T]) Len() int { return list.size }

// Empty returns true if the list has no elements.
func (list *List[T]) Empty() bool { return list.size == 0 }

// Front returns the element at the front of the list.
//
// The method returns seq.ErrEmpty if the list is empty.
func (list *List[T]) Front() (T, error) {
	if list.head == nil {
		return zero[T](), seq.ErrEmpty
	}
	return list.head.value, nil
}

// Back returns the element at the back of the list.
//
// The method returns seq.ErrEmpty if the list is empty.
func (list *List[T]) Back() (T, error) {
	if list.tail == nil {
		return zero[T](), seq.ErrEmpty
	}
	return list.tail.value, nil
}

// Get returns the element at index i.
//
// The method returns seq.ErrOutOfRange if i is not the index of an element.
func (list *List[T]) Get(i int) (T, error) {
	if err := bounds.Element(i, list.size); err != nil {
		return zero[T](), err
	}
	return list.node(i).value, nil
}

// SetFront replaces the element at the front of the list and returns the
// previous value.
func (list *List[T]) SetFront(value T) (T, error) {
	if list.head == nil {
		return zero[T](), seq.ErrEmpty
	}
	return list.head.set(value), nil
}

// SetBack replaces the element at the back of the list and returns the
// previous value.
func (list *List[T]) SetBack(value T) (T, error) {
	if list.tail == nil {
		return zero[T](), seq.ErrEmpty
	}
	return list.tail.set(value), nil
}

// Set replaces the element at index i and returns the previous value.
func (list *List[T]) Set(i int, value T) (T, error) {
	if err := bounds.Element(i, list.size); err != nil {
		return zero[T](), err
	}
	return list.node(i).set(value), nil
}

// PushFront inserts value at the front of the list.
func (list *List[T]) PushFront(value T) {
	list.pushFront(&node[T]{value: value})
}

// PushBack inserts value at the back of the list.
func (list *List[T]) PushBack(value T) {
	list.pushBack(&node[T]{value: value})
}

// Insert inserts value in the list so that it ends up at index i. When i is
// equal to the length of the list, the operation is equivalent to PushBack.
//
// The method returns seq.ErrOutOfRange if i is not within [0, Len()].
func (list *List[T]) Insert(i int, value T) error {
	if err := bounds.Position(i, list.size); err != nil {
		return err
	}
	if i == list.size {
		list.PushBack(value)
	} else {
		list.insertBefore(list.node(i), value)
	}
	return nil
}

// RemoveFront removes the element at the front of the list and returns it.
//
// The method returns seq.ErrEmpty if the list was empty.
func (list *List[T]) RemoveFront() (T, error) {
	if list.head == nil {
		return zero[T](), seq.ErrEmpty
	}
	return list.remove(list.head), nil
}

// RemoveBack removes the element at the back of the list and returns it.
//
// The method returns seq.ErrEmpty if the list was empty.
func (list *List[T]) RemoveBack() (T, error) {
	if list.tail == nil {
		return zero[T](), seq.ErrEmpty
	}
	return list.remove(list.tail), nil
}

// Remove removes the element at index i and returns it.
//
// The method returns seq.ErrEmpty if the list is empty, or seq.ErrOutOfRange if
// i is not the index of an element.
func (list *List[T]) Remove(i int) (T, error) {
	if err := bounds.NotEmpty(list.size); err != nil {
		return zero[T](), err
	}
	if err := bounds.Element(i, list.size); err != nil {
		return zero[T](), err
	}
	return list.remove(list.node(i)), nil
}

// Clear removes all elements from the list.
func (list *List[T]) Clear() {
	for list.head != nil {
		list.remove(list.head)
	}
}

// SubList returns a new list holding a copy of the elements in [first, last).
func (list *List[T]) SubList(first, last int) (*List[T], error) {
	c, err := list.IteratorRange(first, last)
	if err != nil {
		return nil, err
	}
	sub := new(List[T])
	return sub, seq.Collect[T](sub, c)
}

// Values returns the elements of the list in a slice.
func (list *List[T]) Values() []T { return seq.Values[T](list) }

// String renders the list in the form "[e0, e1, ..., eN]".
func (list *List[T]) String() string { return seq.String[T](list) }

func (list *List[T]) pushFront(n *node[T]) {
	if list.head == nil {
		list.tail = n
	} else {
		n.next = list.head
		list.head.prev = n
	}
	list.head = n
	list.size++
}

func (list *List[T]) pushBack(n *node[T]) {
	if list.tail == nil {
		list.head = n
	} else {
		n.prev = list.tail
		list.tail.next = n
	}
	list.tail = n
	list.size++
}

func (list *List[T]) insertBefore(next *node[T], value T) {
	n := &node[T]{prev: next.prev, next: next, value: value}
	if next.prev == nil {
		list.head = n
	} else {
		next.prev.next = n
	}
	next.prev = n
	list.size++
}

func (list *List[T]) insertAfter(prev *node[T], value T) {
	n := &node[T]{prev: prev, next: prev.next, value: value}
	if prev.next == nil {
		list.tail = n
	} else {
		prev.next.prev = n
	}
	prev.next = n
	list.size++
}

func (list *List[T]) remove(n *node[T]) T {
	prev := n.prev
	next := n.next

	if prev != nil {
		prev.next = next
	} else {
		list.head = next
	}

	if next != nil {
		next.prev = prev
	} else {
		list.tail = prev
	}

	list.size--
	return n.clear()
}

// node returns the node at index i, which must be valid. The walk starts from
// the head when i is in the first half of the list, and from the tail
// otherwise, so it never takes more than size/2 steps.
func (list *List[T]) node(i int) *node[T] {
	if i < list.size>>1 {
		n := list.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := list.tail
	for j := list.size - 1; j > i; j-- {
		n = n.prev
	}
	return n
}

func (n *node[T]) set(value T) (previous T) {
	previous, n.value = n.value, value
	return previous
}

// clear detaches n and returns the value it held. Nodes must not be used after
// being cleared.
func (n *node[T]) clear() T {
	value := n.value
	n.value = zero[T]()
	n.prev = nil
	n.next = nil
	return value
}

func zero[T any]() (value T) { return }
