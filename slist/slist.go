// Package slist contains the implementation of a type-safe, singly-linked list.
//
// Each element of the list only links to its successor. This halves the
// memory spent on links compared to the doubly-linked list of the list
// package, at the expense of removal from the back of the list, and of
// indexed access, which always walk the list from its front. Cursors over a
// singly-linked list can only move forward.
//
// The zero-value of List is an empty list ready to use:
//
//	l := slist.List[int]{}
//	l.PushBack(1)
//	l.PushFront(0)
//	fmt.Println(l.String()) // [0, 1]
package slist

import (
	"github.com/segmentio/chains/internal/bounds"
	"github.com/segmentio/chains/seq"
)

type node[T any] struct {
	next  *node[T]
	value T
}

// List is a singly-linked list of values of type T.
//
// Insertion at either end and removal from the front run in O(1). Removal from
// the back, and any access by index, run in O(n).
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

var (
	_ seq.List[int]   = (*List[int])(nil)
	_ seq.Cursor[int] = (*Cursor[int])(nil)
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

// Front returns the first element of the list, or seq.ErrEmpty.
func (list *List[T]) Front() (T, error) {
	if list.head == nil {
		return zero[T](), seq.ErrEmpty
	}
	return list.head.value, nil
}

// Back returns the last element of the list, or seq.ErrEmpty.
func (list *List[T]) Back() (T, error) {
	if list.tail == nil {
		return zero[T](), seq.ErrEmpty
	}
	return list.tail.value, nil
}

// Get returns the element at index i, or seq.ErrOutOfRange.
func (list *List[T]) Get(i int) (T, error) {
	if err := bounds.Element(i, list.size); err != nil {
		return zero[T](), err
	}
	return list.node(i).value, nil
}

// SetFront replaces the first element and returns its previous value.
func (list *List[T]) SetFront(value T) (T, error) {
	if list.head == nil {
		return zero[T](), seq.ErrEmpty
	}
	return list.head.set(value), nil
}

// SetBack replaces the last element and returns its previous value.
func (list *List[T]) SetBack(value T) (T, error) {
	if list.tail == nil {
		return zero[T](), seq.ErrEmpty
	}
	return list.tail.set(value), nil
}

// Set replaces the element at index i and returns its previous value.
func (list *List[T]) Set(i int, value T) (T, error) {
	if err := bounds.Element(i, list.size); err != nil {
		return zero[T](), err
	}
	return list.node(i).set(value), nil
}

// PushFront inserts value at the front of the list.
func (list *List[T]) PushFront(value T) {
	list.insertAfter(nil, value)
}

// PushBack inserts value at the back of the list.
func (list *List[T]) PushBack(value T) {
	list.insertAfter(list.tail, value)
}

// Insert inserts value so that it ends up at index i. The element previously
// at index i, if any, is shifted to index i+1.
//
// The method returns seq.ErrOutOfRange if i is not within [0, Len()].
func (list *List[T]) Insert(i int, value T) error {
	if err := bounds.Position(i, list.size); err != nil {
		return err
	}
	list.insertAfter(list.predecessor(i), value)
	return nil
}

// RemoveFront removes the first element of the list and returns it.
func (list *List[T]) RemoveFront() (T, error) {
	if list.head == nil {
		return zero[T](), seq.ErrEmpty
	}
	return list.removeAfter(nil), nil
}

// RemoveBack removes the last element of the list and returns it.
//
// Since nodes do not link to their predecessor, the list is walked from the
// front to find the new tail.
func (list *List[T]) RemoveBack() (T, error) {
	if list.tail == nil {
		return zero[T](), seq.ErrEmpty
	}
	return list.removeAfter(list.predecessor(list.size - 1)), nil
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
	return list.removeAfter(list.predecessor(i)), nil
}

// Clear removes all elements from the list.
func (list *List[T]) Clear() {
	for list.head != nil {
		list.removeAfter(nil)
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

// insertAfter links a new node holding value after prev, or at the front of
// the list if prev is nil.
func (list *List[T]) insertAfter(prev *node[T], value T) *node[T] {
	n := &node[T]{value: value}
	if prev == nil {
		n.next = list.head
		list.head = n
	} else {
		n.next = prev.next
		prev.next = n
	}
	if n.next == nil {
		list.tail = n
	}
	list.size++
	return n
}

// removeAfter unlinks the node following prev, or the head if prev is nil, and
// returns its value. The node must exist.
func (list *List[T]) removeAfter(prev *node[T]) T {
	var n *node[T]
	if prev == nil {
		n = list.head
		list.head = n.next
	} else {
		n = prev.next
		prev.next = n.next
	}
	if n == list.tail {
		list.tail = prev
	}
	list.size--
	return n.clear()
}

// predecessor returns the node at index i-1, or nil if i is zero.
func (list *List[T]) predecessor(i int) *node[T] {
	if i == 0 {
		return nil
	}
	if i == list.size {
		return list.tail
	}
	return list.node(i - 1)
}

func (list *List[T]) node(i int) *node[T] {
	n := list.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n
}

func (n *node[T]) set(value T) (previous T) {
	previous, n.value = n.value, value
	return previous
}

func (n *node[T]) clear() T {
	value := n.value
	n.value = zero[T]()
	n.next = nil
	return value
}

func zero[T any]() (value T) { return }
