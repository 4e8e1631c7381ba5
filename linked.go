package deque

import "iter"

type node[T any] struct {
	next, prev *node[T]
	value      T
}

// LinkedDeque is a Deque backed by a circular doubly linked list. A sentinel
// node that never holds an element closes the ring, so sentinel.next is the
// front and sentinel.prev is the back; both point at the sentinel itself when
// the deque is empty.
//
// Use NewLinkedDeque or LinkedDequeFrom to create one; the zero value has no
// sentinel and panics on use. LinkedDeque is not safe for concurrent use.
type LinkedDeque[T any] struct {
	sentinel *node[T]
	n        int
}

// NewLinkedDeque returns an empty LinkedDeque.
func NewLinkedDeque[T any]() *LinkedDeque[T] {
	s := new(node[T])
	s.next, s.prev = s, s
	return &LinkedDeque[T]{sentinel: s}
}

// LinkedDequeFrom pushes every element of s to the back of a new LinkedDeque.
func LinkedDequeFrom[T any](s []T) *LinkedDeque[T] {
	d := NewLinkedDeque[T]()
	for _, t := range s {
		d.PushBack(t)
	}
	return d
}

// Len returns the number of elements, excluding the sentinel.
func (d *LinkedDeque[T]) Len() int { return d.n }

// Empty returns whether the deque is empty.
func (d *LinkedDeque[T]) Empty() bool { return d.sentinel.next == d.sentinel }

// insertAfter links a new node holding t right after at.
func (d *LinkedDeque[T]) insertAfter(at *node[T], t T) {
	e := &node[T]{value: t, prev: at, next: at.next}
	at.next.prev = e
	at.next = e
	d.n++
}

// remove unlinks e, clears it and returns its value.
func (d *LinkedDeque[T]) remove(e *node[T]) T {
	e.prev.next = e.next
	e.next.prev = e.prev
	t := e.value
	var zero T
	e.next, e.prev, e.value = nil, nil, zero
	d.n--
	return t
}

// PushFront puts t at the front of the deque.
func (d *LinkedDeque[T]) PushFront(t T) { d.insertAfter(d.sentinel, t) }

// PushBack puts t at the back of the deque.
func (d *LinkedDeque[T]) PushBack(t T) { d.insertAfter(d.sentinel.prev, t) }

// PopFront removes the first element and returns it. If the deque is empty,
// it returns false.
func (d *LinkedDeque[T]) PopFront() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.remove(d.sentinel.next), true
}

// PopBack removes the last element and returns it. If the deque is empty, it
// returns false.
func (d *LinkedDeque[T]) PopBack() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.remove(d.sentinel.prev), true
}

// PeekFront returns the first element. If the deque is empty, it returns
// false.
func (d *LinkedDeque[T]) PeekFront() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.sentinel.next.value, true
}

// PeekBack returns the last element. If the deque is empty, it returns false.
func (d *LinkedDeque[T]) PeekBack() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.sentinel.prev.value, true
}

// At returns the i-th element in O(min(i, Len()-i)), walking from whichever
// end is closer. It returns false if i is out of bounds.
func (d *LinkedDeque[T]) At(i int) (t T, ok bool) {
	if i < 0 || i >= d.n {
		return
	}
	if i < d.n/2 {
		e := d.sentinel.next
		for ; i > 0; i-- {
			e = e.next
		}
		return e.value, true
	}
	e := d.sentinel.prev
	for j := d.n - 1; j > i; j-- {
		e = e.prev
	}
	return e.value, true
}

// AtRecursive is At expressed as a recursive walk from the front. It exists
// for parity with At and costs O(i) stack frames.
func (d *LinkedDeque[T]) AtRecursive(i int) (t T, ok bool) {
	if i < 0 || i >= d.n {
		return
	}
	return nth(d.sentinel.next, i).value, true
}

func nth[T any](e *node[T], i int) *node[T] {
	if i == 0 {
		return e
	}
	return nth(e.next, i-1)
}

// Clear unlinks every node. The sentinel stays.
func (d *LinkedDeque[T]) Clear() {
	for !d.Empty() {
		d.remove(d.sentinel.next)
	}
}

// Values allocates a slice and copies every element into it, front first.
func (d *LinkedDeque[T]) Values() []T {
	s := make([]T, 0, d.n)
	for t := range d.Iter() {
		s = append(s, t)
	}
	return s
}

// Iter returns an iterator over the elements from front to back. The deque
// must not be modified during iteration.
func (d *LinkedDeque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := d.sentinel.next; e != d.sentinel; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}

// All returns an iterator over index-value pairs from front to back.
func (d *LinkedDeque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for e := d.sentinel.next; e != d.sentinel; e = e.next {
			if !yield(i, e.value) {
				return
			}
			i++
		}
	}
}

// Backward returns an iterator over the elements from back to front.
func (d *LinkedDeque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := d.sentinel.prev; e != d.sentinel; e = e.prev {
			if !yield(e.value) {
				return
			}
		}
	}
}

func (d *LinkedDeque[T]) String() string { return format(d.Iter()) }
