/*
Package bintree implements a persistent binary tree with values at the
leaves. A tree is a closed sum of two variants: a Leaf holding a single
value, or a Branch owning exactly two subtrees. Branches carry no value.

Trees are immutable after construction: transformations like Map produce
a new tree and leave the input untouched, making trees inherently
concurrency-safe.

The single traversal primitive is Fold, the generalized catamorphism;
Size, Depth, Maximum and Map are specializations of it. Fold recurses on
the structure of the tree, so its stack usage grows with tree depth;
Leaves walks the tree iteratively with an explicit work stack.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bintree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adt.bintree'.
func tracer() tracing.Trace {
	return tracing.Select("adt.bintree")
}
