package cons

import (
	"github.com/npillmayer/adt"
)

// FoldLeft collapses a list front-to-back: it applies combine to a
// running accumulator, seeded with zero, and each element in turn.
// FoldLeft is an iterative loop and therefore stack-safe for lists of
// any length.
func FoldLeft[T, B any](l List[T], zero B, combine func(B, T) B) B {
	acc := zero
	for node := l.root; node != nil; node = node.tail {
		acc = combine(acc, node.head)
	}
	return acc
}

// FoldRight collapses a list back-to-front: combine is applied from the
// rightmost element inward, i.e.
//
//     FoldRight(ListOf(1, 2, 3), z, f) == f(1, f(2, f(3, z)))
//
// FoldRight recurses on the structure of the list and is not stack-safe
// for very long lists; prefer FoldLeft where the combine function
// permits.
func FoldRight[T, B any](l List[T], zero B, combine func(T, B) B) B {
	return foldRightCells(l.root, zero, combine)
}

func foldRightCells[T, B any](node *cell[T], zero B, combine func(T, B) B) B {
	if node == nil {
		return zero
	}
	return combine(node.head, foldRightCells(node.tail, zero, combine))
}

// Map transforms every element with f, preserving order and length.
func Map[T, B any](l List[T], f func(T) B) List[B] {
	return FoldRight(l, List[B]{}, func(x T, acc List[B]) List[B] {
		return acc.Cons(f(x))
	})
}

// FlatMap maps every element to a list and concatenates the results in
// order.
func FlatMap[T, B any](l List[T], f func(T) List[B]) List[B] {
	return Concat(Map(l, f))
}

// Concat flattens a list of lists into a single list, preserving order.
func Concat[T any](ll List[List[T]]) List[T] {
	return FoldRight(ll, List[T]{}, func(l List[T], acc List[T]) List[T] {
		return l.Append(acc)
	})
}

// ZipWith pairs the elements of two lists positionally, combining each
// pair with f. The result stops at the end of the shorter input, i.e.
// its length is the minimum of the input lengths.
func ZipWith[A, B, C any](a List[A], b List[B], f func(A, B) C) List[C] {
	var zipped List[C]
	x, y := a.root, b.root
	for x != nil && y != nil {
		zipped = zipped.Cons(f(x.head, y.head))
		x, y = x.tail, y.tail
	}
	return zipped.Reverse()
}

// Zip pairs the elements of two lists positionally into a list of pairs.
func Zip[A, B any](a List[A], b List[B]) List[adt.Pair[A, B]] {
	return ZipWith(a, b, adt.P[A, B])
}

// Sum adds up the elements of a numeric list; the empty list sums to the
// zero value.
func Sum[T adt.Number](l List[T]) T {
	var zero T
	return FoldLeft(l, zero, func(acc T, x T) T {
		return acc + x
	})
}

// Product multiplies the elements of a numeric list; the empty list
// yields 1. Scanning left to right, Product short-circuits to 0 on the
// first zero element without touching the remainder.
func Product[T adt.Number](l List[T]) T {
	var zero T
	acc := zero + 1
	for node := l.root; node != nil; node = node.tail {
		if node.head == zero {
			tracer().Debugf("product short-circuits on zero element")
			return zero
		}
		acc *= node.head
	}
	return acc
}

// Exists is true if at least one element satisfies predicate p; it stops
// scanning at the first hit.
func Exists[T any](l List[T], p func(T) bool) bool {
	for node := l.root; node != nil; node = node.tail {
		if p(node.head) {
			return true
		}
	}
	return false
}

// ForAll is true if every element satisfies predicate p; the empty list
// trivially satisfies any predicate.
func ForAll[T any](l List[T], p func(T) bool) bool {
	for node := l.root; node != nil; node = node.tail {
		if !p(node.head) {
			return false
		}
	}
	return true
}

// StartsWith is true if prefix is an element-wise prefix of l. Every
// list starts with the empty list.
func StartsWith[T comparable](l, prefix List[T]) bool {
	x, y := l.root, prefix.root
	for x != nil && y != nil {
		if x.head != y.head {
			return false
		}
		x, y = x.tail, y.tail
	}
	return y == nil
}

// HasSubsequence is true if sub occurs contiguously somewhere in l. The
// empty list is a subsequence of every list.
func HasSubsequence[T comparable](l, sub List[T]) bool {
	for node := l.root; ; node = node.tail {
		if StartsWith(List[T]{root: node}, sub) {
			return true
		}
		if node == nil {
			return false
		}
	}
}
