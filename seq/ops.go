package seq

import (
	"fmt"
	"strings"

	"github.com/segmentio/chains/compare"
	"golang.org/x/exp/constraints"
)

// Range calls f for each element of s, in forward order, with the index of the
// element. If f returns false, the iteration stops.
func Range[T any](s Sequence[T], f func(int, T) bool) {
	for c := s.Cursor(); c.HasNext(); {
		i := c.NextIndex()
		v, err := c.Next()
		if err != nil || !f(i, v) {
			return
		}
	}
}

// Values returns a slice holding the elements of s in forward order.
func Values[T any](s Sequence[T]) []T {
	return AppendValues(make([]T, 0, s.Len()), s)
}

// AppendValues appends the elements of s to values and returns the extended
// slice.
func AppendValues[T any](values []T, s Sequence[T]) []T {
	Range(s, func(_ int, v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// String renders s as "[e0, e1, ..., eN]", or "[]" when s is empty. Elements
// are formatted with the %v verb.
func String[T any](s Sequence[T]) string {
	b := new(strings.Builder)
	b.WriteByte('[')
	Range(s, func(i int, v T) bool {
		if i != 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(b, v)
		return true
	})
	b.WriteByte(']')
	return b.String()
}

// Contains returns true if s has an element equal to v.
func Contains[T comparable](s Sequence[T], v T) bool {
	return IndexOf(s, v) >= 0
}

// ContainsFunc returns true if f returns true for at least one element of s.
func ContainsFunc[T any](s Sequence[T], f func(T) bool) bool {
	return IndexFunc(s, f) >= 0
}

// ContainsAll returns true if every value passed as argument is contained in s.
func ContainsAll[T comparable](s Sequence[T], values ...T) bool {
	if len(values) == 0 {
		return true
	}
	missing := setOf(values)
	Range(s, func(_ int, v T) bool {
		delete(missing, v)
		return len(missing) != 0
	})
	return len(missing) == 0
}

// IndexOf returns the index of the first element of s equal to v, or -1.
func IndexOf[T comparable](s Sequence[T], v T) int {
	return IndexFunc(s, func(x T) bool { return x == v })
}

// IndexFunc returns the index of the first element of s for which f returns
// true, or -1.
func IndexFunc[T any](s Sequence[T], f func(T) bool) (index int) {
	index = -1
	Range(s, func(i int, v T) bool {
		if f(v) {
			index = i
			return false
		}
		return true
	})
	return index
}

// Delete removes the first element of s equal to v, returning true if one was
// found.
func Delete[T comparable](s Sequence[T], v T) bool {
	c := s.Cursor()
	for c.HasNext() {
		x, err := c.Next()
		if err != nil {
			break
		}
		if x == v {
			return c.Remove() == nil
		}
	}
	return false
}

// DeleteFunc removes every element of s for which f returns true, and returns
// the number of elements removed.
func DeleteFunc[T any](s Sequence[T], f func(T) bool) (n int) {
	c := s.Cursor()
	for c.HasNext() {
		x, err := c.Next()
		if err != nil {
			break
		}
		if f(x) && c.Remove() == nil {
			n++
		}
	}
	return n
}

// AppendAll pushes values at the back of dst, in order. It returns true if dst
// was modified.
func AppendAll[T any](dst Appender[T], values ...T) bool {
	for _, v := range values {
		dst.PushBack(v)
	}
	return len(values) != 0
}

// RemoveAll removes from s every element equal to one of the values, and
// returns true if s was modified.
func RemoveAll[T comparable](s Sequence[T], values ...T) bool {
	if len(values) == 0 {
		return false
	}
	set := setOf(values)
	return DeleteFunc(s, func(v T) bool { _, ok := set[v]; return ok }) != 0
}

// RetainAll removes from s every element that is not equal to one of the
// values, and returns true if s was modified.
func RetainAll[T comparable](s Sequence[T], values ...T) bool {
	set := setOf(values)
	return DeleteFunc(s, func(v T) bool { _, ok := set[v]; return !ok }) != 0
}

// Clear removes all elements from s, one at a time through a cursor.
func Clear[T any](s Sequence[T]) {
	DeleteFunc(s, func(T) bool { return true })
}

// Collect drains c, pushing every element it yields at the back of dst. The
// cursor is left exhausted.
func Collect[T any](dst Appender[T], c Cursor[T]) error {
	for c.HasNext() {
		v, err := c.Next()
		if err != nil {
			return err
		}
		dst.PushBack(v)
	}
	return nil
}

// Equal returns true if a and b have the same length and equal elements at
// every index.
func Equal[T comparable](a, b Sequence[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but uses eq to compare elements.
func EqualFunc[T any](a, b Sequence[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	ca, cb := a.Cursor(), b.Cursor()
	for ca.HasNext() && cb.HasNext() {
		x, err1 := ca.Next()
		y, err2 := cb.Next()
		if err1 != nil || err2 != nil || !eq(x, y) {
			return false
		}
	}
	return ca.HasNext() == cb.HasNext()
}

// Compare compares a and b lexicographically using cmp to order elements. The
// result is negative if a sorts before b, positive if it sorts after, and zero
// if both sequences hold the same elements. A cursor failing to step ends the
// comparison as if its sequence had no more elements.
func Compare[T any](a, b Sequence[T], cmp func(T, T) int) int {
	ca, cb := a.Cursor(), b.Cursor()
	for ca.HasNext() && cb.HasNext() {
		x, err := ca.Next()
		if err != nil {
			return -1
		}
		y, err := cb.Next()
		if err != nil {
			return +1
		}
		if c := cmp(x, y); c != 0 {
			return c
		}
	}
	switch {
	case ca.HasNext():
		return +1
	case cb.HasNext():
		return -1
	default:
		return 0
	}
}

// CompareOrdered is Compare for sequences of ordered values.
func CompareOrdered[T constraints.Ordered](a, b Sequence[T]) int {
	return Compare(a, b, compare.Function[T])
}

// Hash combines the hashes of the elements of s, computed by hash, in a value
// which depends on their order. Sequences which are Equal have the same hash.
func Hash[T any](s Sequence[T], hash func(T) uint64) uint64 {
	h := uint64(1)
	Range(s, func(_ int, v T) bool {
		h += 31*h + hash(v)
		return true
	})
	return h
}

// HasPrevious returns whether c can step backward. It returns ErrUnsupported if
// c is a forward-only cursor.
func HasPrevious[T any](c Cursor[T]) (bool, error) {
	if b, ok := c.(BidirectionalCursor[T]); ok {
		return b.HasPrevious(), nil
	}
	return false, unsupported(c, "HasPrevious")
}

// Previous steps c backward. It returns ErrUnsupported if c is a forward-only
// cursor.
func Previous[T any](c Cursor[T]) (T, error) {
	if b, ok := c.(BidirectionalCursor[T]); ok {
		return b.Previous()
	}
	var zero T
	return zero, unsupported(c, "Previous")
}

// PrevIndex returns the index of the element that a backward step of c would
// yield. It returns ErrUnsupported if c is a forward-only cursor.
func PrevIndex[T any](c Cursor[T]) (int, error) {
	if b, ok := c.(BidirectionalCursor[T]); ok {
		return b.PrevIndex(), nil
	}
	return -1, unsupported(c, "PrevIndex")
}

func unsupported(c any, op string) error {
	return fmt.Errorf("%w: %s on %T", ErrUnsupported, op, c)
}

func setOf[T comparable](values []T) map[T]struct{} {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
