package bintree

import (
	"github.com/npillmayer/adt"
)

// Fold collapses a tree into a single result of type B, the generalized
// catamorphism over the two variants: leaf transforms each leaf value,
// branch combines the results of the two subtrees. Subtrees are folded
// left before right.
//
// Fold is the single traversal primitive of this package; Size, Maximum,
// Depth and Map are one-line specializations of it. It recurses on the
// structure of the tree, so stack usage grows with tree depth.
func Fold[T, B any](t Tree[T], leaf func(T) B, branch func(B, B) B) B {
	switch n := t.(type) {
	case Leaf[T]:
		return leaf(n.Value)
	case Branch[T]:
		return branch(Fold(n.Left, leaf, branch), Fold(n.Right, leaf, branch))
	}
	panic("bintree: tree variant is neither Leaf nor Branch")
}

// Size returns the total number of nodes, branches included.
func Size[T any](t Tree[T]) int {
	return Fold(t, adt.Const[int, T](1), func(l, r int) int {
		return 1 + l + r
	})
}

// Depth returns the length of the longest path from the root to a leaf,
// counting nodes: a single leaf has depth 1.
func Depth[T any](t Tree[T]) int {
	return Fold(t, adt.Const[int, T](1), func(l, r int) int {
		if l > r {
			return 1 + l
		}
		return 1 + r
	})
}

// Maximum returns the largest leaf value. It is total: every well-formed
// tree holds at least one leaf.
func Maximum[T adt.Number](t Tree[T]) T {
	return Fold(t, adt.Identity[T], func(l, r T) T {
		if l > r {
			return l
		}
		return r
	})
}

// Map applies f to every leaf value, preserving the shape of the tree.
func Map[T, B any](t Tree[T], f func(T) B) Tree[B] {
	return Fold(t, func(v T) Tree[B] {
		return NewLeaf(f(v))
	}, NewBranch[B])
}

// Leaves collects the leaf values in left-to-right order. Unlike Fold it
// traverses iteratively with an explicit work stack and handles trees of
// any depth in constant call-stack space.
func Leaves[T any](t Tree[T]) []T {
	var values []T
	stack := []Tree[T]{t}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n := top.(type) {
		case Leaf[T]:
			values = append(values, n.Value)
		case Branch[T]:
			// right below left, so the left subtree is visited first
			stack = append(stack, n.Right, n.Left)
		}
	}
	tracer().Debugf("collected %d leaves", len(values))
	return values
}
