package slist

import (
	"errors"
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/segmentio/chains/seq"
)

func TestPushFront(t *testing.T) {
	list := new(List[int])

	for i := 0; i < 10; i++ {
		list.PushFront(i)
	}

	assertList(t, list, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0)
}

func TestPushBack(t *testing.T) {
	list := new(List[int])

	for i := 0; i < 10; i++ {
		list.PushBack(i)
	}

	assertList(t, list, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
}

func TestPushBackPreservesOrder(t *testing.T) {
	f := func(values []uint16) bool {
		list := New(values...)
		got := list.Values()
		if len(got) != len(values) || list.Len() != len(values) {
			return false
		}
		for i := range got {
			if got[i] != values[i] {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestInsert(t *testing.T) {
	list := new(List[int])

	assertNoError(t, list.Insert(0, 3))
	assertNoError(t, list.Insert(0, 1))
	assertNoError(t, list.Insert(1, 2))
	assertNoError(t, list.Insert(3, 5))
	assertNoError(t, list.Insert(3, 4))
	assertList(t, list, 1, 2, 3, 4, 5)

	assertError(t, list.Insert(6, 0), seq.ErrOutOfRange)
	assertError(t, list.Insert(-1, 0), seq.ErrOutOfRange)

	list.PushBack(6)
	assertList(t, list, 1, 2, 3, 4, 5, 6)
}

func TestRemoveFront(t *testing.T) {
	list := New(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	values := list.Values()

	for i, v := range values {
		assertValue(t, v)(list.RemoveFront())
		assertList(t, list, values[i+1:]...)
	}

	_, err := list.RemoveFront()
	assertError(t, err, seq.ErrEmpty)
}

func TestRemoveBack(t *testing.T) {
	list := New(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	values := list.Values()

	for i := range values {
		j := len(values) - (i + 1)
		assertValue(t, values[j])(list.RemoveBack())
		assertList(t, list, values[:j]...)
	}

	_, err := list.RemoveBack()
	assertError(t, err, seq.ErrEmpty)

	// The tail must have been maintained, appending after emptying the list
	// from the back must work.
	list.PushBack(42)
	assertList(t, list, 42)
}

func TestRemove(t *testing.T) {
	list := New("a", "b", "c", "d", "e")

	assertValue(t, "a")(list.Remove(0))
	assertList(t, list, "b", "c", "d", "e")

	assertValue(t, "c")(list.Remove(1))
	assertList(t, list, "b", "d", "e")

	assertValue(t, "e")(list.Remove(2))
	assertList(t, list, "b", "d")

	list.PushBack("f")
	assertList(t, list, "b", "d", "f")

	_, err := list.Remove(3)
	assertError(t, err, seq.ErrOutOfRange)

	list.Clear()
	_, err = list.Remove(0)
	assertError(t, err, seq.ErrEmpty)
}

func TestGetAndSet(t *testing.T) {
	list := New(0, 1, 2, 3, 4, 5, 6, 7)

	for i := 0; i < list.Len(); i++ {
		assertValue(t, i)(list.Set(i, i*i))
		assertValue(t, i*i)(list.Get(i))
	}

	_, err := list.Get(8)
	assertError(t, err, seq.ErrOutOfRange)
	_, err = list.Set(-1, 0)
	assertError(t, err, seq.ErrOutOfRange)
}

func TestFrontAndBack(t *testing.T) {
	list := new(List[int])

	_, err := list.Front()
	assertError(t, err, seq.ErrEmpty)
	_, err = list.Back()
	assertError(t, err, seq.ErrEmpty)
	_, err = list.SetFront(1)
	assertError(t, err, seq.ErrEmpty)
	_, err = list.SetBack(1)
	assertError(t, err, seq.ErrEmpty)

	list.PushBack(1)
	assertValue(t, 1)(list.SetBack(2))
	assertValue(t, 2)(list.SetFront(3))
	assertList(t, list, 3)
}

func TestRemovedNodesAreCleared(t *testing.T) {
	list := New(1, 2, 3, 4, 5)

	head := list.head
	second := head.next
	middle := second.next
	tail := list.tail

	assertValue(t, 1)(list.RemoveFront())
	assertValue(t, 3)(list.Remove(1))
	assertValue(t, 5)(list.RemoveBack())
	assertList(t, list, 2, 4)

	for _, n := range []*node[int]{head, middle, tail} {
		if n.next != nil || n.value != 0 {
			t.Errorf("removed node was not cleared: value=%d next=%p", n.value, n.next)
		}
	}

	remaining := second.next
	list.Clear()
	assertList(t, list)

	for _, n := range []*node[int]{second, remaining} {
		if n.next != nil || n.value != 0 {
			t.Errorf("cleared node still holds data: value=%d next=%p", n.value, n.next)
		}
	}
}

func TestSubList(t *testing.T) {
	list := New(10, 11, 12, 13, 14, 15, 16, 17, 18, 19)

	sub, err := list.SubList(2, 5)
	assertNoError(t, err)
	assertList(t, sub, 12, 13, 14)

	sub, err = list.SubList(10, 10)
	assertNoError(t, err)
	assertList(t, sub)

	_, err = list.SubList(3, 1)
	assertError(t, err, seq.ErrInvalidRange)
}

func TestString(t *testing.T) {
	if s := new(List[int]).String(); s != "[]" {
		t.Errorf("wrong string representation: got=%q want=%q", s, "[]")
	}
	if s := New(1, 2, 3).String(); s != "[1, 2, 3]" {
		t.Errorf("wrong string representation: got=%q want=%q", s, "[1, 2, 3]")
	}
}

func assertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertError(t *testing.T, err, target error) {
	t.Helper()

	if !errors.Is(err, target) {
		t.Errorf("error mismatch, expected %v but found %v", target, err)
	}
}

func assertValue[T comparable](t *testing.T, expected T) func(T, error) {
	return func(found T, err error) {
		t.Helper()

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		} else if found != expected {
			t.Errorf("value mismatch, expected %v but found %v", expected, found)
		}
	}
}

func assertList[T comparable](t *testing.T, l *List[T], v ...T) {
	t.Helper()

	if len(v) != 0 {
		if front, err := l.Front(); err != nil || front != v[0] {
			t.Errorf("front of list mismatch, expected %v but found %v (%v)", v[0], front, err)
		}
		if back, err := l.Back(); err != nil || back != v[len(v)-1] {
			t.Errorf("back of list mismatch, expected %v but found %v (%v)", v[len(v)-1], back, err)
		}
	}

	for i, c := 0, l.Iterator(); c.HasNext(); i++ {
		x, _ := c.Next()
		if i >= len(v) {
			t.Errorf("list contains too many elements, expected %d but found %d", len(v), i+1)
			break
		}
		if x != v[i] {
			t.Errorf("list element at index %d mismatch, expected %v but found %v", i, v[i], x)
			break
		}
	}

	if n := l.Len(); n != len(v) {
		t.Errorf("list length mismatch, expected %d but found %d", len(v), n)
	}

	l.checkInvariants(t)
}

func (list *List[T]) checkInvariants(t *testing.T) {
	t.Helper()

	if (list.size == 0) != (list.head == nil) || (list.head == nil) != (list.tail == nil) {
		t.Fatalf("inconsistent empty list: size=%d head=%p tail=%p", list.size, list.head, list.tail)
	}

	n := 0
	for x := list.head; x != nil; x = x.next {
		if x.next == nil && x != list.tail {
			t.Fatalf("last reachable node at index %d is not the tail", n)
		}
		n++
	}
	if n != list.size {
		t.Fatalf("list size mismatch, %d nodes reachable but size is %d", n, list.size)
	}
}

func BenchmarkRemoveBack(b *testing.B) {
	r := rand.New(rand.NewSource(0))
	list := new(List[int])

	for i := 0; i < b.N; i++ {
		if list.Len() == 0 {
			for j := 0; j < 100; j++ {
				list.PushBack(r.Int())
			}
		}
		list.RemoveBack()
	}
}
