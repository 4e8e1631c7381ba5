// Package deque provides double-ended queues that can be used for either LIFO
// or FIFO ordering, or something in between.
//
// Two backends implement the Deque interface: ArrayDeque, a growable circular
// buffer, and LinkedDeque, a doubly linked ring anchored by a sentinel node.
// Callers that only need the contract should depend on Deque and pick the
// backend at construction time. MaxDeque decorates either backend with a
// maximum query.
//
// None of the types in this package are safe for concurrent use.
package deque

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Deque is the contract shared by every backend. Absent values are reported
// with the comma-ok idiom, never with a panic.
type Deque[T any] interface {
	// PushFront puts t at the front. It never fails for lack of space.
	PushFront(t T)
	// PushBack puts t at the back. It never fails for lack of space.
	PushBack(t T)
	// PopFront removes and returns the front element. Returns false if empty.
	PopFront() (T, bool)
	// PopBack removes and returns the back element. Returns false if empty.
	PopBack() (T, bool)
	// PeekFront returns the front element. Returns false if empty.
	PeekFront() (T, bool)
	// PeekBack returns the back element. Returns false if empty.
	PeekBack() (T, bool)
	// At returns the i-th element, 0 being the front. Returns false if i is
	// out of bounds.
	At(i int) (T, bool)
	Len() int
	Empty() bool
	// Clear removes every element.
	Clear()
	// Values copies the elements into a new slice, front first.
	Values() []T
	// Iter yields each element exactly once, front to back. The deque must
	// not be modified while the iterator runs.
	Iter() iter.Seq[T]
	// All is Iter with indexes.
	All() iter.Seq2[int, T]
}

var (
	_ Deque[int] = (*ArrayDeque[int])(nil)
	_ Deque[int] = (*LinkedDeque[int])(nil)
	_ Deque[int] = (*MaxDeque[int])(nil)
)

// Equal returns whether both deques have the same length and the same
// elements in the same order, whatever their backends. Two nil deques are
// equal, but an empty deque and nil are not. This must not be a method,
// otherwise Deque would be constrained to comparable elements.
func Equal[T comparable](d1, d2 Deque[T]) bool {
	return EqualFunc(d1, d2, func(a, b T) bool { return a == b })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](d1, d2 Deque[T], eq func(T, T) bool) bool {
	if d1 == nil || d2 == nil {
		return d1 == nil && d2 == nil
	}
	if d1.Len() != d2.Len() {
		return false
	}

	next, stop := iter.Pull(d2.Iter())
	defer stop()
	for t1 := range d1.Iter() {
		t2, ok := next()
		if !ok || !eq(t1, t2) {
			return false
		}
	}
	return true
}

// format renders a sequence the way fmt renders a slice.
func format[T any](seq iter.Seq[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for t := range seq {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, t)
	}
	sb.WriteByte(']')
	return sb.String()
}

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrNegativeCapacity is returned when asking for a deque with a negative
// capacity.
var ErrNegativeCapacity = errors.New("capacity cannot be negative")
