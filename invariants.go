package bintree

import "fmt"

// Check validates the structural invariants of a tree: every node is
// reachable exactly once, and every value lies strictly between the bounds
// imposed by its ancestors.
//
// Check is meant to be used in tests.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.root == nil {
		return nil
	}
	type bounded struct {
		n        *node
		lo, hi   int
		low, upp bool // lo resp. hi is valid
	}
	seen := make(map[*node]struct{})
	stack := []bounded{{n: t.root}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, dup := seen[b.n]; dup {
			return fmt.Errorf("%w: node %d reachable more than once", ErrInvariant, b.n.value)
		}
		seen[b.n] = struct{}{}
		if b.low && b.n.value <= b.lo {
			return fmt.Errorf("%w: node %d not greater than ancestor %d", ErrInvariant, b.n.value, b.lo)
		}
		if b.upp && b.n.value >= b.hi {
			return fmt.Errorf("%w: node %d not less than ancestor %d", ErrInvariant, b.n.value, b.hi)
		}
		if b.n.left != nil {
			stack = append(stack, bounded{n: b.n.left, lo: b.lo, low: b.low, hi: b.n.value, upp: true})
		}
		if b.n.right != nil {
			stack = append(stack, bounded{n: b.n.right, lo: b.n.value, low: true, hi: b.hi, upp: b.upp})
		}
	}
	return nil
}
