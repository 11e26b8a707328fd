package bintree

import "iter"

// Order selects one of the depth-first visitation orders of a tree.
type Order int8

// Depth-first traversal orders.
const (
	InOrder   Order = iota // left subtree, node, right subtree
	PreOrder               // node, left subtree, right subtree
	PostOrder              // left subtree, right subtree, node
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "In-Order"
	case PreOrder:
		return "Pre-Order"
	case PostOrder:
		return "Post-Order"
	}
	return "Unknown-Order"
}

// InOrder returns all values in ascending order.
func (t *Tree) InOrder() []int {
	return t.Traverse(InOrder)
}

// PreOrder returns all values, every node preceding its subtrees.
// The first value is the root of the tree.
func (t *Tree) PreOrder() []int {
	return t.Traverse(PreOrder)
}

// PostOrder returns all values, every node following its subtrees.
// The last value is the root of the tree.
func (t *Tree) PostOrder() []int {
	return t.Traverse(PostOrder)
}

// Traverse collects the values of the tree in the given order. An empty tree
// results in an empty (non-nil) slice.
func (t *Tree) Traverse(order Order) []int {
	values := make([]int, 0, 16)
	t.Walk(order, func(v int) bool {
		values = append(values, v)
		return true
	})
	return values
}

// All returns an iterator over the values of the tree in the given order.
func (t *Tree) All(order Order) iter.Seq[int] {
	return func(yield func(int) bool) {
		t.Walk(order, yield)
	}
}

// Walk calls fn for each value of the tree in the given order.
//
// Iteration stops early if fn returns false.
func (t *Tree) Walk(order Order, fn func(value int) bool) {
	if fn == nil {
		return
	}
	t.walkNodes(order, func(n *node) bool {
		return fn(n.value)
	})
}

func (t *Tree) walkNodes(order Order, fn func(*node) bool) {
	if t.IsEmpty() {
		return
	}
	switch order {
	case InOrder:
		walkInOrder(t.root, fn)
	case PreOrder:
		walkPreOrder(t.root, fn)
	case PostOrder:
		walkPostOrder(t.root, fn)
	default:
		assert(false, "walk called with unknown traversal order")
	}
}

func walkInOrder(root *node, fn func(*node) bool) {
	var stack []*node
	n := root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		n = n.right
	}
}

func walkPreOrder(root *node, fn func(*node) bool) {
	stack := []*node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}

// walkPostOrder visits a node only after both of its subtrees are done.
// fn may unlink the children of the node it is called for.
func walkPostOrder(root *node, fn func(*node) bool) {
	var stack []*node
	var done *node // last node visited
	n := root
	for n != nil || len(stack) > 0 {
		if n != nil {
			stack = append(stack, n)
			n = n.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != done {
			n = top.right
			continue
		}
		stack = stack[:len(stack)-1]
		if !fn(top) {
			return
		}
		done = top
	}
}
