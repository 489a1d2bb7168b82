/*
Package adt provides small functional building blocks shared by the
immutable data structures of this module: function combinators, a pair
(product) type, and the numeric constraint used by the folding
operations of the sub-packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package adt

// Identity returns its argument unchanged. It is the left and right
// identity of Compose.
func Identity[T any](a T) T {
	return a
}

// Const returns a function that produces a, ignoring its argument.
func Const[A, B any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Flip swaps the argument order of a binary function.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

// Number constrains the element types accepted by the numeric folds
// (Sum, Product, Maximum) of the sub-packages.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
