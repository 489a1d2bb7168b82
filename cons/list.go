package cons

import (
	"fmt"
	"strings"

	"github.com/npillmayer/adt/maybe"
)

// List is an immutable singly linked list. The zero value is the empty
// list, i.e. this is legal:
//
//     l := cons.List[int]{}.Cons(42)
//
// returning a list containing the single element 42.
//
type List[T any] struct {
	root *cell[T]
}

// cell is a single link of a list: a value followed by the remainder.
type cell[T any] struct {
	head T
	tail *cell[T]
}

// Empty returns the empty list for element type T.
func Empty[T any]() List[T] {
	return List[T]{}
}

// ListOf constructs a list holding the given elements, preserving their
// order. No arguments yield the empty list.
func ListOf[T any](xs ...T) List[T] {
	var root *cell[T]
	for i := len(xs) - 1; i >= 0; i-- {
		root = &cell[T]{head: xs[i], tail: root}
	}
	return List[T]{root: root}
}

// Cons returns a new list with x prepended. l is unaffected and becomes
// the (shared) tail of the result.
func (l List[T]) Cons(x T) List[T] {
	return List[T]{root: &cell[T]{head: x, tail: l.root}}
}

// IsEmpty is true for the empty list.
func (l List[T]) IsEmpty() bool {
	return l.root == nil
}

// Head returns the first element, or Nothing for the empty list.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.root == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.root.head)
}

// Tail returns the remainder of the list after the first element. The
// result is shared with l, not copied. Tail of the empty list is the
// empty list.
func (l List[T]) Tail() List[T] {
	if l.root == nil {
		return l
	}
	return List[T]{root: l.root.tail}
}

// SetHead replaces the first element of the list. Applied to the empty
// list it returns the empty list unchanged.
func (l List[T]) SetHead(x T) List[T] {
	if l.root == nil {
		return l
	}
	return List[T]{root: &cell[T]{head: x, tail: l.root.tail}}
}

// Drop removes the first n elements. Dropping more elements than the
// list holds is not an error and yields the empty list; n < 0 is treated
// as 0. The result is a shared suffix of l.
func (l List[T]) Drop(n int) List[T] {
	node := l.root
	for i := 0; i < n && node != nil; i++ {
		node = node.tail
	}
	return List[T]{root: node}
}

// DropWhile removes elements from the front as long as predicate p
// holds, stopping at the first element for which p is false. The result
// is a shared suffix of l.
func (l List[T]) DropWhile(p func(T) bool) List[T] {
	node := l.root
	for node != nil && p(node.head) {
		node = node.tail
	}
	return List[T]{root: node}
}

// Take returns the first n elements as a new list. Taking more elements
// than the list holds yields a copy of the whole list; n <= 0 yields the
// empty list.
func (l List[T]) Take(n int) List[T] {
	var taken List[T]
	node := l.root
	for i := 0; i < n && node != nil; i++ {
		taken = taken.Cons(node.head)
		node = node.tail
	}
	return taken.Reverse()
}

// TakeWhile returns the longest prefix of elements for which predicate p
// holds.
func (l List[T]) TakeWhile(p func(T) bool) List[T] {
	var taken List[T]
	for node := l.root; node != nil && p(node.head); node = node.tail {
		taken = taken.Cons(node.head)
	}
	return taken.Reverse()
}

// Init returns all elements except the last one. The empty list and
// single-element lists both yield the empty list. Unlike Tail, Init
// cannot share structure and rebuilds the whole prefix.
func (l List[T]) Init() List[T] {
	if l.root == nil || l.root.tail == nil {
		return List[T]{}
	}
	var front List[T]
	for node := l.root; node.tail != nil; node = node.tail {
		front = front.Cons(node.head)
	}
	return front.Reverse()
}

// Reverse returns the list with element order inverted. l is unaffected.
func (l List[T]) Reverse() List[T] {
	return FoldLeft(l, List[T]{}, func(acc List[T], x T) List[T] {
		return acc.Cons(x)
	})
}

// Len returns the number of elements.
func (l List[T]) Len() int {
	return FoldLeft(l, 0, func(n int, _ T) int {
		return n + 1
	})
}

// Filter retains the elements satisfying predicate p, preserving their
// relative order.
func (l List[T]) Filter(p func(T) bool) List[T] {
	var kept List[T]
	for node := l.root; node != nil; node = node.tail {
		if p(node.head) {
			kept = kept.Cons(node.head)
		}
	}
	return kept.Reverse()
}

// Append concatenates other onto the end of l. l's cells are rebuilt;
// other is referenced as the new tail and shared with the result, making
// Append O(len(l)) regardless of the length of other.
func (l List[T]) Append(other List[T]) List[T] {
	tracer().Debugf("appending list of length %d onto list of length %d", other.Len(), l.Len())
	return FoldRight(l, other, func(x T, acc List[T]) List[T] {
		return acc.Cons(x)
	})
}

// Slice returns the elements as a Go slice, preserving order. The empty
// list yields nil.
func (l List[T]) Slice() []T {
	if l.root == nil {
		return nil
	}
	s := make([]T, 0, l.Len())
	for node := l.root; node != nil; node = node.tail {
		s = append(s, node.head)
	}
	return s
}

// String renders a list in Lisp notation, e.g. "(1 2 3)".
func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for node := l.root; node != nil; node = node.tail {
		if node != l.root {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, node.head)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Equal compares two lists element-wise.
func Equal[T comparable](a, b List[T]) bool {
	x, y := a.root, b.root
	for x != nil && y != nil {
		if x.head != y.head {
			return false
		}
		x, y = x.tail, y.tail
	}
	return x == nil && y == nil
}
