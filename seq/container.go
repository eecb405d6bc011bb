package seq

import "github.com/emirpasic/gods/v2/containers"

// Container adapts s to the containers.Container interface of the gods
// library, so it can be handed to code written against it.
//
// Clear removes elements one at a time through a cursor of s.
func Container[T any](s Sequence[T]) containers.Container[T] {
	return container[T]{s}
}

type container[T any] struct{ seq Sequence[T] }

func (c container[T]) Empty() bool    { return c.seq.Len() == 0 }
func (c container[T]) Size() int      { return c.seq.Len() }
func (c container[T]) Clear()         { Clear(c.seq) }
func (c container[T]) Values() []T    { return Values(c.seq) }
func (c container[T]) String() string { return String(c.seq) }
