package deque

import "iter"

// minCapacity is the smallest buffer an ArrayDeque ever holds.
const minCapacity = 8

// ArrayDeque is a Deque backed by a single growable circular buffer.
//
// To create an ArrayDeque instance, you must use one of the available
// constructors, NewArrayDeque(), NewArrayDequeWithCapacity(cap) or
// ArrayDequeFrom(s). Creating an ArrayDeque in the following way is wrong:
//
//	var d deque.ArrayDeque[int] // wrong
//
// If a push finds the buffer full, it reallocates to twice the size. After a
// pop leaves the buffer at most 25% full (and the buffer holds at least 16
// slots), it reallocates to twice the remaining length, but never below 8.
// Both reallocations copy the elements to the start of the new buffer.
//
// ArrayDeque is not safe for concurrent use. Guard it with a sync.Mutex if
// several goroutines share it.
type ArrayDeque[T any] struct {
	buf []T
	// front is the slot the next PushFront writes to, back the slot the next
	// PushBack writes to. Element i lives at wrap(front+1+i).
	front, back int
	n           int
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// NewArrayDeque allocates an empty ArrayDeque with the minimum capacity.
func NewArrayDeque[T any]() *ArrayDeque[T] {
	d, _ := NewArrayDequeWithCapacity[T](minCapacity)
	return d
}

// NewArrayDequeWithCapacity takes in the desired capacity. Capacities below 8
// are raised to 8. Returns an error if passed a negative value.
func NewArrayDequeWithCapacity[T any](capacity int) (*ArrayDeque[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	c := max(minCapacity, capacity)
	return &ArrayDeque[T]{buf: make([]T, c), front: c/2 - 1, back: c / 2}, nil
}

// ArrayDequeFrom copies every element of s into a new ArrayDeque, s[0] being
// the front. Memory is not shared with s.
func ArrayDequeFrom[T any](s []T) *ArrayDeque[T] {
	c := max(minCapacity, len(s)*2)
	d := &ArrayDeque[T]{buf: make([]T, c), n: len(s)}
	copy(d.buf, s)
	d.front, d.back = c-1, len(s)
	return d
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the deque.
func (d *ArrayDeque[T]) Len() int { return d.n }

// Cap returns the current buffer capacity.
func (d *ArrayDeque[T]) Cap() int { return len(d.buf) }

// Empty returns whether the deque is empty.
func (d *ArrayDeque[T]) Empty() bool { return d.n == 0 }

func (d *ArrayDeque[T]) full() bool { return d.n == len(d.buf) }

// PushFront puts t at the front of the deque, growing the buffer first if it
// is full.
func (d *ArrayDeque[T]) PushFront(t T) {
	if d.full() {
		d.resize(2 * len(d.buf))
	}
	d.buf[d.front] = t
	d.front = d.wrap(d.front - 1)
	d.n++
}

// PushBack puts t at the back of the deque, growing the buffer first if it is
// full.
func (d *ArrayDeque[T]) PushBack(t T) {
	if d.full() {
		d.resize(2 * len(d.buf))
	}
	d.buf[d.back] = t
	d.back = d.wrap(d.back + 1)
	d.n++
}

// PeekFront returns the first element in the deque. If the deque is empty, it
// returns false.
func (d *ArrayDeque[T]) PeekFront() (t T, ok bool) {
	return d.At(0)
}

// PeekBack returns the last element in the deque. If the deque is empty, it
// returns false.
func (d *ArrayDeque[T]) PeekBack() (t T, ok bool) {
	return d.At(d.n - 1)
}

// PopFront removes the first element in the deque and returns it. If it's
// empty, returns false and leaves the deque untouched. The vacated slot is
// zeroed so the garbage collector can free whatever it referenced.
func (d *ArrayDeque[T]) PopFront() (t T, ok bool) {
	if d.n == 0 {
		return
	}
	d.front = d.wrap(d.front + 1)
	t, ok = d.buf[d.front], true
	var zero T
	d.buf[d.front] = zero
	d.n--
	d.shrinkIfSparse()
	return
}

// PopBack removes the last element in the deque and returns it. If it's
// empty, returns false and leaves the deque untouched. The vacated slot is
// zeroed.
func (d *ArrayDeque[T]) PopBack() (t T, ok bool) {
	if d.n == 0 {
		return
	}
	d.back = d.wrap(d.back - 1)
	t, ok = d.buf[d.back], true
	var zero T
	d.buf[d.back] = zero
	d.n--
	d.shrinkIfSparse()
	return
}

// At returns the i-th element, 0 being the front. It returns false if i is
// out of bounds.
//
// The returned value is a copy of the slot. Any later push or pop may move the
// slot to a new buffer.
func (d *ArrayDeque[T]) At(i int) (t T, ok bool) {
	if i < 0 || i >= d.n {
		return
	}
	return d.buf[d.wrap(d.front+1+i)], true
}

// Clear empties the deque and drops the buffer back to the minimum capacity.
func (d *ArrayDeque[T]) Clear() {
	*d = ArrayDeque[T]{
		buf:   make([]T, minCapacity),
		front: minCapacity/2 - 1,
		back:  minCapacity / 2,
	}
}

/*****************************************************************************
 * RESIZING
 *****************************************************************************/

// wrap maps a slot offset in [-cap, 2*cap) onto the buffer.
func (d *ArrayDeque[T]) wrap(i int) int {
	c := len(d.buf)
	return (i + c) % c
}

func (d *ArrayDeque[T]) shrinkIfSparse() {
	c := len(d.buf)
	if c >= 2*minCapacity && d.n <= c/4 {
		d.resize(max(minCapacity, 2*d.n))
	}
}

// resize moves every element to the start of a buffer of newCap slots, in
// order. newCap must exceed d.n so the back cursor never lands on an element.
func (d *ArrayDeque[T]) resize(newCap int) {
	a, b := d.segments()
	newBuf := make([]T, newCap)
	copy(newBuf[copy(newBuf, a):], b)

	d.buf = newBuf
	d.front = newCap - 1
	d.back = d.n
}

// segments returns the elements as at most two contiguous views of the
// buffer, the first holding the front.
func (d *ArrayDeque[T]) segments() (a, b []T) {
	if d.n == 0 {
		return nil, nil
	}
	h := d.wrap(d.front + 1)
	if h+d.n <= len(d.buf) {
		return d.buf[h : h+d.n], nil
	}
	return d.buf[h:], d.buf[:h+d.n-len(d.buf)]
}

/*****************************************************************************
 * SLICE & ITER API
 *****************************************************************************/

// Values allocates a slice and copies every element into it, front first.
func (d *ArrayDeque[T]) Values() []T {
	a, b := d.segments()
	s := make([]T, d.n)
	copy(s[copy(s, a):], b)
	return s
}

// Iter returns an iterator over the elements from front to back. The deque
// must not be modified during iteration.
func (d *ArrayDeque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		a, b := d.segments()
		for _, t := range a {
			if !yield(t) {
				return
			}
		}
		for _, t := range b {
			if !yield(t) {
				return
			}
		}
	}
}

// All returns an iterator over index-value pairs from front to back. It has
// the same semantics as slices.All.
func (d *ArrayDeque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for t := range d.Iter() {
			if !yield(i, t) {
				return
			}
			i++
		}
	}
}

// String formats the elements like a slice, front first.
func (d *ArrayDeque[T]) String() string { return format(d.Iter()) }
