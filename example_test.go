package bintree_test

import (
	"fmt"

	"github.com/npillmayer/bintree"
)

func Example() {
	tree := bintree.FromValues(50, 30, 70, 20, 40, 50)
	fmt.Println(tree.Len(), tree.Height())
	fmt.Println(tree.InOrder())
	fmt.Println(tree.PreOrder())
	fmt.Println(tree.PostOrder())
	fmt.Println(tree.Contains(40), tree.Contains(45))
	fmt.Println(tree.Release(), tree.Len())
	// Output:
	// 5 3
	// [20 30 40 50 70]
	// [50 30 20 40 70]
	// [20 40 30 70 50]
	// true false
	// 5 0
}
