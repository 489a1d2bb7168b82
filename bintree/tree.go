package bintree

import (
	"fmt"
)

// Tree is a persistent binary tree with values of type T at the leaves.
// It is a closed sum type: the only variants are Leaf and Branch, and
// clients cannot add further ones.
//
// Haskell:
//
//     data Tree a = Leaf a | Branch (Tree a) (Tree a)
//
type Tree[T any] interface {
	isTree()
}

// Leaf is a terminal tree node holding exactly one value.
type Leaf[T any] struct {
	Value T
}

// Branch is an internal tree node owning exactly two subtrees. It holds
// no value of its own.
type Branch[T any] struct {
	Left  Tree[T]
	Right Tree[T]
}

func (Leaf[T]) isTree()   {}
func (Branch[T]) isTree() {}

// NewLeaf constructs a single-leaf tree.
func NewLeaf[T any](value T) Tree[T] {
	return Leaf[T]{Value: value}
}

// NewBranch joins two subtrees under a new branch. Both children must be
// present; the invariant that every branch owns exactly two subtrees is
// enforced here, the only place it could be violated.
func NewBranch[T any](left, right Tree[T]) Tree[T] {
	assertThat(left != nil, "a branch owns exactly two subtrees, left is missing")
	assertThat(right != nil, "a branch owns exactly two subtrees, right is missing")
	return Branch[T]{Left: left, Right: right}
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bintree: "+msg, msgargs...)
		panic(msg)
	}
}
