package twothree

import (
	"cmp"

	"github.com/ashenvale/pqheaps/heap"
)

// Heap is a two-three heap addressable by id.
type Heap[K cmp.Ordered, I comparable] struct {
	sentinels []*node[K, I] // sentinels[d] is the primary root of dimension d, or nil
	minRoot   *node[K, I]
	nodeOf    map[I]*node[K, I]
}

// New constructs an empty two-three heap.
func New[K cmp.Ordered, I comparable]() *Heap[K, I] {
	return &Heap[K, I]{nodeOf: make(map[I]*node[K, I])}
}

func (h *Heap[K, I]) Size() int { return len(h.nodeOf) }

func (h *Heap[K, I]) Empty() bool { return len(h.nodeOf) == 0 }

func (h *Heap[K, I]) Add(key K, id I) {
	if _, ok := h.nodeOf[id]; ok {
		heap.Failf(heap.DuplicateID, "id=%v", id)
	}
	n := &node[K, I]{key: key, id: id}
	n.left, n.right = n, n
	h.nodeOf[id] = n
	h.insertRoot(0, n)
	h.refreshMinRoot()
}

func (h *Heap[K, I]) LookUp(id I) (K, bool) {
	n, ok := h.nodeOf[id]
	if !ok {
		var zero K
		return zero, false
	}
	return n.key, true
}

func (h *Heap[K, I]) Min() heap.Element[K, I] {
	if h.Empty() {
		heap.Fail(heap.EmptyHeap, "")
	}
	return heap.Element[K, I]{Key: h.minRoot.key, ID: h.minRoot.id}
}

func (h *Heap[K, I]) PopMinimum() heap.Element[K, I] {
	if h.Empty() {
		heap.Fail(heap.EmptyHeap, "")
	}
	min := h.minRoot
	result := heap.Element[K, I]{Key: min.key, ID: min.id}

	if min.isSecondary {
		detachFromTrunk(min)
	} else {
		dim := min.dimension
		if min.partner != nil {
			partner := min.partner
			detachFromTrunk(partner)
			h.sentinels[dim] = partner
		} else {
			h.sentinels[dim] = nil
		}
	}

	if min.child != nil {
		start := min.child
		for c := start; ; {
			next := c.right
			c.parent = nil
			c.left, c.right = c, c
			h.insertRoot(c.dimension, c)
			c = next
			if c == start {
				break
			}
		}
	}

	delete(h.nodeOf, min.id)
	h.refreshMinRoot()
	return result
}

func (h *Heap[K, I]) ReduceKey(newKey K, id I) {
	n, ok := h.nodeOf[id]
	if !ok {
		heap.Failf(heap.UnknownID, "id=%v", id)
	}
	if !(newKey < n.key) {
		heap.Failf(heap.KeyNotDecreased, "id=%v old=%v new=%v", id, n.key, newKey)
	}
	n.key = newKey

	switch {
	case n.isSecondary:
		if n.parent != nil && newKey < n.parent.key {
			detachFromTrunk(n)
			h.insertRoot(n.dimension, n)
		}
	case n.parent != nil && newKey < n.parent.key:
		detachFromParentRing(n)
		h.insertRoot(n.dimension, n)
	}
	h.refreshMinRoot()
}

// insertRoot places tree at dimension dim, merging with and carrying past
// any existing root of that dimension.
func (h *Heap[K, I]) insertRoot(dim int, tree *node[K, I]) {
	for {
		for dim >= len(h.sentinels) {
			h.sentinels = append(h.sentinels, nil)
		}
		existing := h.sentinels[dim]
		if existing == nil {
			h.sentinels[dim] = tree
			return
		}
		h.sentinels[dim] = nil
		merged, residue := mergeTrees(existing, tree)
		if residue != nil {
			h.sentinels[dim] = residue
		}
		tree = merged
		dim++
	}
}

func (h *Heap[K, I]) refreshMinRoot() {
	h.minRoot = nil
	for _, r := range h.sentinels {
		if r == nil {
			continue
		}
		if h.minRoot == nil || r.key < h.minRoot.key {
			h.minRoot = r
		}
		if r.partner != nil && (h.minRoot == nil || r.partner.key < h.minRoot.key) {
			h.minRoot = r.partner
		}
	}
}

func (h *Heap[K, I]) Validate() {
	count := 0
	for _, r := range h.sentinels {
		if r == nil {
			continue
		}
		count += h.validateNode(r, nil)
	}
	if count != len(h.nodeOf) {
		heap.Failf(heap.Inconsistent, "reachable node count %d != tracked %d", count, len(h.nodeOf))
	}
}

func (h *Heap[K, I]) validateNode(n *node[K, I], parent *node[K, I]) int {
	tracked, ok := h.nodeOf[n.id]
	if !ok || tracked != n {
		heap.Failf(heap.Inconsistent, "id index mismatch for id=%v", n.id)
	}
	if parent != nil && n.key < parent.key {
		heap.Fail(heap.Inconsistent, "heap order violated")
	}
	count := 1
	children := 0
	if n.child != nil {
		start := n.child
		for c := start; ; {
			if c.parent != n {
				heap.Fail(heap.Inconsistent, "broken parent pointer")
			}
			children++
			count += h.validateNode(c, n)
			c = c.right
			if c == start {
				break
			}
		}
	}
	if children != n.dimension {
		heap.Failf(heap.Inconsistent, "dimension %d but %d children", n.dimension, children)
	}
	if n.partner != nil && !n.isSecondary {
		p := n.partner
		if p.partner != n || !p.isSecondary {
			heap.Fail(heap.Inconsistent, "broken partner link")
		}
		count += h.validateNode(p, nil)
	}
	return count
}
