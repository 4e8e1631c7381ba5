package deque

import "cmp"

// MaxDeque decorates a Deque with a maximum query under an ordering. Every
// Deque method is forwarded unchanged to the wrapped deque. The maximum is
// recomputed on each call, so it always reflects the current contents.
type MaxDeque[T any] struct {
	Deque[T]
	cmp func(a, b T) int
}

// NewMaxDeque wraps d, which must not be used directly afterwards. cmp is the
// default ordering and follows the cmp.Compare convention.
func NewMaxDeque[T any](d Deque[T], cmp func(a, b T) int) *MaxDeque[T] {
	return &MaxDeque[T]{Deque: d, cmp: cmp}
}

// NewMaxArrayDeque returns a MaxDeque over a new ArrayDeque.
func NewMaxArrayDeque[T any](cmp func(a, b T) int) *MaxDeque[T] {
	return NewMaxDeque[T](NewArrayDeque[T](), cmp)
}

// NewOrderedMaxDeque wraps d using the natural ordering of T.
func NewOrderedMaxDeque[T cmp.Ordered](d Deque[T]) *MaxDeque[T] {
	return NewMaxDeque(d, cmp.Compare[T])
}

// Max returns the greatest element under the default ordering, or false if
// the deque is empty.
func (d *MaxDeque[T]) Max() (T, bool) { return d.MaxFunc(d.cmp) }

// MaxFunc returns the greatest element under cmp, or false if the deque is
// empty. If several elements are equally great, the one closest to the front
// wins. A nil cmp means the default ordering.
func (d *MaxDeque[T]) MaxFunc(cmp func(a, b T) int) (best T, ok bool) {
	if cmp == nil {
		cmp = d.cmp
	}
	for t := range d.Iter() {
		if !ok || cmp(t, best) > 0 {
			best, ok = t, true
		}
	}
	return
}

func (d *MaxDeque[T]) String() string { return format(d.Iter()) }
