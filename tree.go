package bintree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Tree is a binary search tree of distinct integers.
//
// A tree created by
//
//	Tree{}
//
// is a valid object and behaves like an empty tree.
//
// The tree exclusively owns all of its nodes. Nodes are never shared between
// trees and are never handed out to clients.
type Tree struct {
	root *node
}

type node struct {
	value int
	left  *node // values < value
	right *node // values > value
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// FromValues creates a tree and inserts values in the order given.
// Duplicates are silently dropped.
func FromValues(values ...int) *Tree {
	t := New()
	t.InsertAll(values...)
	return t
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Root returns the value at the root of the tree. For an empty tree, ok is false.
func (t *Tree) Root() (value int, ok bool) {
	if t.IsEmpty() {
		return 0, false
	}
	return t.root.value, true
}

// Insert adds value to the tree, descending from the root until an empty
// child slot is found. If value is already present, the tree is left unchanged
// and Insert returns false.
func (t *Tree) Insert(value int) bool {
	assert(t != nil, "Insert called for nil tree")
	if t.root == nil {
		t.root = &node{value: value}
		T().Debugf("bintree: %d becomes root", value)
		return true
	}
	n := t.root
	for {
		switch {
		case value < n.value:
			if n.left == nil {
				n.left = &node{value: value}
				T().Debugf("bintree: %d attached left of %d", value, n.value)
				return true
			}
			n = n.left
		case value > n.value:
			if n.right == nil {
				n.right = &node{value: value}
				T().Debugf("bintree: %d attached right of %d", value, n.value)
				return true
			}
			n = n.right
		default:
			T().Debugf("bintree: discarding duplicate %d", value)
			return false
		}
	}
}

// InsertAll inserts values in order and returns the number of values which
// actually have been added.
func (t *Tree) InsertAll(values ...int) int {
	added := 0
	for _, v := range values {
		if t.Insert(v) {
			added++
		}
	}
	return added
}

// Contains reports whether target is stored in the tree. It needs at most
// Height() comparisons.
func (t *Tree) Contains(target int) bool {
	if t.IsEmpty() {
		return false
	}
	n := t.root
	for n != nil {
		switch {
		case target < n.value:
			n = n.left
		case target > n.value:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	if t.IsEmpty() {
		return 0
	}
	count := 0
	stack := []*node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
	return count
}

// Height returns the number of levels of the tree, where 0 means empty and
// 1 means a single root node.
func (t *Tree) Height() int {
	if t.IsEmpty() {
		return 0
	}
	height := 0
	level := []*node{t.root}
	for len(level) > 0 {
		height++
		var next []*node
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

// Release tears down the tree, unlinking every node after its children, and
// returns the number of nodes visited. Afterwards the tree is empty and may be
// re-used.
func (t *Tree) Release() int {
	if t.IsEmpty() {
		return 0
	}
	released := 0
	t.walkNodes(PostOrder, func(n *node) bool {
		n.left, n.right = nil, nil
		released++
		return true
	})
	t.root = nil
	T().Debugf("bintree: released %d nodes", released)
	return released
}
