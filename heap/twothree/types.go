package twothree

import "cmp"

// node is one two-three heap node. Nodes merge into "trunks" of one or two
// same-dimension nodes: a primary and, optionally, a secondary attached via
// partner. child is the highest-dimension ring child; left/right thread a
// circular sibling ring among a parent's children (self-referencing when a
// node is a lone child).
type node[K cmp.Ordered, I comparable] struct {
	key         K
	id          I
	dimension   int
	isSecondary bool
	partner     *node[K, I]
	parent      *node[K, I]
	child       *node[K, I]
	left        *node[K, I]
	right       *node[K, I]
}

// attachPartner makes secondary the secondary half of primary's trunk.
func attachPartner[K cmp.Ordered, I comparable](primary, secondary *node[K, I]) {
	secondary.partner = primary
	primary.partner = secondary
	secondary.parent = primary.parent
	secondary.isSecondary = true
}

// detachFromTrunk removes secondary from its trunk, clearing both
// directions of the partner link.
func detachFromTrunk[K cmp.Ordered, I comparable](secondary *node[K, I]) {
	if p := secondary.partner; p != nil {
		p.partner = nil
	}
	secondary.partner = nil
	secondary.isSecondary = false
	secondary.parent = nil
}

// addChild inserts child into parent's sibling ring and bumps parent's
// dimension. child must already be a lone ring (self-referencing).
func addChild[K cmp.Ordered, I comparable](parent, child *node[K, I]) {
	child.parent = parent
	if parent.child == nil {
		parent.child = child
		child.left, child.right = child, child
	} else {
		child.left = parent.child
		child.right = parent.child.right
		parent.child.right.left = child
		parent.child.right = child
	}
	parent.dimension++
}

// detachFromParentRing removes a primary, non-root ring child from its
// parent, leaving its own subtree and partner untouched.
func detachFromParentRing[K cmp.Ordered, I comparable](n *node[K, I]) {
	p := n.parent
	if n.right == n {
		p.child = nil
	} else {
		if p.child == n {
			p.child = n.right
		}
		n.left.right = n.right
		n.right.left = n.left
	}
	p.dimension--
	n.parent = nil
	n.left, n.right = n, n
}

// mergeTrees merges two detached, equal-dimension trunks. The smaller root
// wins and becomes the primary; it returns the merged primary and, when
// both inputs already carried a secondary, a leftover same-dimension
// residue the caller must reinsert.
func mergeTrees[K cmp.Ordered, I comparable](a, b *node[K, I]) (*node[K, I], *node[K, I]) {
	if b.key < a.key {
		a, b = b, a
	}
	switch {
	case a.partner == nil && b.partner == nil:
		attachPartner(a, b)
		return a, nil
	case a.partner == nil && b.partner != nil:
		bp := b.partner
		detachFromTrunk(bp)
		addChild(a, b)
		attachPartner(a, bp)
		return a, nil
	case a.partner != nil && b.partner == nil:
		ap := a.partner
		detachFromTrunk(ap)
		addChild(a, b)
		attachPartner(a, ap)
		return a, nil
	default:
		ap := a.partner
		detachFromTrunk(ap)
		addChild(a, b)
		return a, ap
	}
}
