package adt

// Pair is a product of two values, used by the zip operations of package
// cons.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P is a shorthand constructor for pairs.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose splits a pair into its components.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}
