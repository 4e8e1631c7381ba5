package deque_test

import (
	"fmt"
	"strings"

	"github.com/lucasgdosr/deque/v2"
)

func ExampleArrayDeque() {
	d := deque.NewArrayDeque[int]()
	for i := 1; i <= 9; i++ {
		d.PushBack(i)
	}
	fmt.Println(d.Len(), d.Cap())

	for !d.Empty() {
		v, _ := d.PopFront()
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// 9 16
	// 1 2 3 4 5 6 7 8 9
}

func ExampleLinkedDeque() {
	d := deque.NewLinkedDeque[string]()
	d.PushBack("b")
	d.PushFront("a")
	d.PushBack("c")

	v, ok := d.At(1)
	fmt.Println(v, ok)
	_, ok = d.At(3)
	fmt.Println(ok)
	fmt.Println(d)
	// Output:
	// b true
	// false
	// [a b c]
}

func ExampleMaxDeque() {
	d := deque.NewMaxDeque[string](deque.NewLinkedDeque[string](), strings.Compare)
	for _, s := range []string{"kiwi", "banana", "fig"} {
		d.PushBack(s)
	}

	longest, _ := d.MaxFunc(func(a, b string) int { return len(a) - len(b) })
	last, _ := d.Max()
	fmt.Println(longest, last)

	d.PopFront()
	last, _ = d.Max()
	fmt.Println(last)
	// Output:
	// banana kiwi
	// fig
}

func ExampleEqual() {
	a := deque.ArrayDequeFrom([]int{1, 2, 3})
	l := deque.LinkedDequeFrom([]int{1, 2, 3})
	fmt.Println(deque.Equal[int](a, l))

	l.PushFront(0)
	fmt.Println(deque.Equal[int](a, l))
	// Output:
	// true
	// false
}
