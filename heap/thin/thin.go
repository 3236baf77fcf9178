package thin

import (
	"cmp"

	"github.com/ashenvale/pqheaps/heap"
)

// Heap is a thin heap addressable by id.
type Heap[K cmp.Ordered, I comparable] struct {
	root    *node[K, I] // singly-linked root list via right; left is always nil
	minRoot *node[K, I]
	nodeOf  map[I]*node[K, I]
}

// New constructs an empty thin heap.
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
	n.right = h.root
	h.root = n
	h.nodeOf[id] = n
	if h.minRoot == nil || n.key < h.minRoot.key {
		h.minRoot = n
	}
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

	table := make(map[int]*node[K, I])
	for cur := h.root; cur != nil; {
		next := cur.right
		if cur != min {
			cur.right = nil
			h.mergeIntoTable(table, cur)
		}
		cur = next
	}
	for cur := min.child; cur != nil; {
		next := cur.right
		cur.left = nil
		cur.right = nil
		cur.makeThick()
		h.mergeIntoTable(table, cur)
		cur = next
	}

	delete(h.nodeOf, min.id)
	h.root = nil
	h.minRoot = nil
	for _, x := range table {
		x.left = nil
		x.right = h.root
		h.root = x
		if h.minRoot == nil || x.key < h.minRoot.key {
			h.minRoot = x
		}
	}
	return result
}

func (h *Heap[K, I]) mergeIntoTable(table map[int]*node[K, I], x *node[K, I]) {
	for {
		y, ok := table[x.rank]
		if !ok {
			table[x.rank] = x
			return
		}
		delete(table, x.rank)
		x = mergeTrees(x, y)
	}
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
	if h.minRoot == nil || newKey < h.minRoot.key {
		h.minRoot = n
	}
	if n.left != nil {
		h.cutAndMoveToRoot(n)
	}
}

func (h *Heap[K, I]) cutAndMoveToRoot(tree *node[K, I]) {
	h.lowerRank(tree)
	cut(tree)
	tree.makeThick()
	tree.left = nil
	tree.right = h.root
	h.root = tree
}

// lowerRank repairs ranks along tree's ancestor chain so the remaining
// structure stays valid once tree is cut away.
func (h *Heap[K, I]) lowerRank(tree *node[K, I]) {
	rank := tree.rank
	left := tree.left
	for left.child != tree {
		if left.isThick() {
			c := left.detachFirstChild()
			c.left = left
			c.right = left.right
			if left.right != nil {
				left.right.left = c
			}
			left.right = c
			return
		}
		left.rank = rank
		tree = left
		left = left.left
		rank++
	}
	// left is tree's confirmed parent.
	if left.left == nil {
		// left is itself a root; just fix its rank.
		left.rank = rank
		return
	}
	if left.rank == rank+1 {
		return
	}
	h.cutAndMoveToRoot(left)
	left.rank = rank
}

func (h *Heap[K, I]) Validate() {
	if h.Empty() {
		return
	}
	count := 0
	for r := h.root; r != nil; r = r.right {
		if r.left != nil {
			heap.Fail(heap.Inconsistent, "root has non-nil left")
		}
		count += h.validateSubtree(r)
	}
	if count != len(h.nodeOf) {
		heap.Failf(heap.Inconsistent, "reachable node count %d != tracked %d", count, len(h.nodeOf))
	}
}

func (h *Heap[K, I]) validateSubtree(n *node[K, I]) int {
	tracked, ok := h.nodeOf[n.id]
	if !ok || tracked != n {
		heap.Failf(heap.Inconsistent, "id index mismatch for id=%v", n.id)
	}
	count := 1
	for c := n.child; c != nil; c = c.right {
		if c.key < n.key {
			heap.Fail(heap.Inconsistent, "heap order violated")
		}
		count += h.validateSubtree(c)
	}
	return count
}
