package binomial

import "cmp"

// node is one binomial tree node. child points at the highest-dimension
// child; siblings of a node's children are threaded through right.
// Content (key, id) moves between nodes on ReduceKey instead of the nodes
// themselves relocating, so a node's identity is stable once allocated.
type node[K cmp.Ordered, I comparable] struct {
	key       K
	id        I
	parent    *node[K, I]
	child     *node[K, I]
	right     *node[K, I]
	dimension int
}

// mergeTrees merges two binomial trees of equal dimension into one of
// dimension+1: the smaller root becomes the parent of the larger.
func mergeTrees[K cmp.Ordered, I comparable](a, b *node[K, I]) *node[K, I] {
	if b.key < a.key {
		a, b = b, a
	}
	b.parent = a
	b.right = a.child
	a.child = b
	a.dimension++
	return a
}

// mergeTreeLists merges two ascending-dimension root lists, carrying like
// binary addition: at each dimension at most one tree survives, a collision
// produces a carry tree of dimension+1 fed into the next step.
func mergeTreeLists[K cmp.Ordered, I comparable](a, b *node[K, I]) *node[K, I] {
	var headResult, tailResult *node[K, I]
	var carry *node[K, I]

	appendResult := func(n *node[K, I]) {
		n.right = nil
		if headResult == nil {
			headResult, tailResult = n, n
		} else {
			tailResult.right = n
			tailResult = n
		}
	}

	for a != nil || b != nil || carry != nil {
		var dim int
		switch {
		case carry != nil:
			dim = carry.dimension
		case a != nil && (b == nil || a.dimension <= b.dimension):
			dim = a.dimension
		default:
			dim = b.dimension
		}

		var take []*node[K, I]
		if a != nil && a.dimension == dim {
			take = append(take, a)
			a = a.right
		}
		if b != nil && b.dimension == dim {
			take = append(take, b)
			b = b.right
		}
		if carry != nil && carry.dimension == dim {
			take = append(take, carry)
			carry = nil
		}

		switch len(take) {
		case 1:
			appendResult(take[0])
		case 2:
			carry = mergeTrees(take[0], take[1])
		case 3:
			appendResult(take[0])
			carry = mergeTrees(take[1], take[2])
		}
	}
	return headResult
}

// detachChildren reverses n's child chain (stored highest-dimension-first)
// into an ascending-dimension list and clears their parent pointers.
func detachChildren[K cmp.Ordered, I comparable](n *node[K, I]) *node[K, I] {
	var head *node[K, I]
	for c := n.child; c != nil; {
		next := c.right
		c.parent = nil
		c.right = head
		head = c
		c = next
	}
	n.child = nil
	n.dimension = 0
	return head
}
