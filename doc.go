/*
Package bintree implements an unbalanced binary search tree over integers.

# Binary Search Trees

A binary search tree keeps its values ordered: for every node, all values in the
left subtree are strictly less than the node's value, and all values in the
right subtree are strictly greater. Insertion descends from the root along this
ordering until it hits an empty child slot, where the new value is attached as
a leaf. The shape of a tree therefore depends solely on insertion order; there
is no rebalancing.

	Operation     |   Average       |  Worst (sorted input)
	--------------+-----------------+----------------------
	Insert        |   O(log n)      |   O(n)
	Contains      |   O(log n)      |   O(n)
	Traverse      |   O(n)          |   O(n)
	Height, Len   |   O(n)          |   O(n)

Duplicate values are never stored. Inserting a value which is already present
leaves the tree unchanged.

Traversals, height and size computations as well as release of a tree are
implemented with explicit stacks, so degenerate trees (e.g., built from sorted
input) do not exhaust the goroutine stack.

Trees are not safe for concurrent mutation.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package bintree

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrInvariant is flagged by Check whenever a tree violates the search tree
// ordering or a node is reachable more than once.
var ErrInvariant = errors.New("bintree: invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
