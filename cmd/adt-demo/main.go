// Command adt-demo constructs a few sample lists and trees and prints the
// results of the core operations on them.
package main

import (
	"fmt"

	tp "github.com/xlab/treeprint"

	"github.com/npillmayer/adt/bintree"
	"github.com/npillmayer/adt/cons"
)

func main() {
	l := cons.ListOf(1, 2, 3, 4, 5)
	fmt.Printf("l                    = %v\n", l)
	fmt.Printf("sum(l)               = %d\n", cons.Sum(l))
	fmt.Printf("length(l)            = %d\n", l.Len())
	fmt.Printf("reverse(l)           = %v\n", l.Reverse())
	fmt.Printf("dropWhile(l, <4)     = %v\n", l.DropWhile(func(x int) bool { return x < 4 }))
	fmt.Printf("filter(l, even)      = %v\n", l.Filter(func(x int) bool { return x%2 == 0 }))
	doubled := cons.FlatMap(l, func(x int) cons.List[int] { return cons.ListOf(x, x) })
	fmt.Printf("flatMap(l, x->(x x)) = %v\n", doubled)
	sums := cons.ZipWith(cons.ListOf(1, 2, 3), cons.ListOf(10, 20), func(a, b int) int { return a + b })
	fmt.Printf("zipWith(+)           = %v\n", sums)

	inner := bintree.NewBranch(bintree.NewLeaf(2), bintree.NewBranch(bintree.NewLeaf(4), bintree.NewLeaf(12)))
	tree := bintree.NewBranch(bintree.NewBranch(inner, bintree.NewLeaf(3)), bintree.NewLeaf(9))
	fmt.Printf("\nt =\n%s\n", printTree(tree))
	fmt.Printf("size(t)    = %d\n", bintree.Size(tree))
	fmt.Printf("depth(t)   = %d\n", bintree.Depth(tree))
	fmt.Printf("maximum(t) = %d\n", bintree.Maximum(tree))
	incr := bintree.Map(tree, func(x int) int { return x + 1 })
	fmt.Printf("leaves(map(t, +1)) = %v\n", bintree.Leaves(incr))
}

func printTree[T any](t bintree.Tree[T]) string {
	printer := tp.New()
	printNode(printer, t)
	return printer.String()
}

func printNode[T any](printer tp.Tree, t bintree.Tree[T]) {
	switch n := t.(type) {
	case bintree.Leaf[T]:
		printer.AddNode(fmt.Sprintf("Leaf(%v)", n.Value))
	case bintree.Branch[T]:
		branch := printer.AddBranch("Branch")
		printNode(branch, n.Left)
		printNode(branch, n.Right)
	}
}
