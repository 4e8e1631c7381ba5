package deque

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxDequeEmpty(t *testing.T) {
	d := NewMaxArrayDeque(cmp.Compare[int])
	v, ok := d.Max()
	require.False(t, ok)
	require.Zero(t, v)

	_, ok = d.MaxFunc(func(a, b int) int { return b - a })
	require.False(t, ok)
}

func TestMaxDequeMatchesScan(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))
	for name, inner := range map[string]Deque[int]{
		"array":  NewArrayDeque[int](),
		"linked": NewLinkedDeque[int](),
	} {
		t.Run(name, func(t *testing.T) {
			d := NewOrderedMaxDeque(inner)
			var pushed []int
			for range 200 {
				v := r.IntN(2000) - 1000
				if r.IntN(2) == 0 {
					d.PushFront(v)
				} else {
					d.PushBack(v)
				}
				pushed = append(pushed, v)

				got, ok := d.Max()
				require.True(t, ok)
				require.Equal(t, slices.Max(pushed), got)
			}
			require.Equal(t, len(pushed), d.Len())
		})
	}
}

func TestMaxDequeFollowsPops(t *testing.T) {
	d := NewOrderedMaxDeque[int](NewLinkedDeque[int]())
	for _, v := range []int{5, 1, 9, 3} {
		d.PushBack(v)
	}
	got, _ := d.Max()
	require.Equal(t, 9, got)

	d.PopBack()
	d.PopBack()
	got, _ = d.Max()
	require.Equal(t, 5, got)

	d.PopFront()
	got, _ = d.Max()
	require.Equal(t, 1, got)
}

func TestMaxDequeTies(t *testing.T) {
	type item struct {
		key  int
		name string
	}
	byKey := func(a, b item) int { return cmp.Compare(a.key, b.key) }

	d := NewMaxArrayDeque(byKey)
	d.PushBack(item{1, "a"})
	d.PushBack(item{3, "b"})
	d.PushBack(item{2, "c"})
	d.PushBack(item{3, "d"})
	d.PushFront(item{3, "e"})

	got, ok := d.Max()
	require.True(t, ok)
	require.Equal(t, "e", got.name)

	d.PopFront()
	got, _ = d.Max()
	require.Equal(t, "b", got.name)
}

func TestMaxDequeMaxFunc(t *testing.T) {
	d := NewMaxArrayDeque(cmp.Compare[string])
	for _, s := range []string{"pear", "fig", "banana", "kiwi"} {
		d.PushBack(s)
	}

	got, _ := d.Max()
	require.Equal(t, "pear", got)

	byLen := func(a, b string) int { return cmp.Compare(len(a), len(b)) }
	got, _ = d.MaxFunc(byLen)
	require.Equal(t, "banana", got)

	reverse := func(a, b string) int { return cmp.Compare(b, a) }
	got, _ = d.MaxFunc(reverse)
	require.Equal(t, "banana", got)

	got, _ = d.MaxFunc(nil)
	require.Equal(t, "pear", got)

	require.Equal(t, "[pear fig banana kiwi]", d.String())
}
