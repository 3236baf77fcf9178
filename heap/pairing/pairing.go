package pairing

import (
	"cmp"

	"github.com/ashenvale/pqheaps/heap"
)

// Heap is a pairing heap addressable by id.
type Heap[K cmp.Ordered, I comparable] struct {
	root   *node[K, I]
	nodeOf map[I]*node[K, I]
}

// New constructs an empty pairing heap.
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
	h.nodeOf[id] = n
	if h.root == nil {
		h.root = n
	} else {
		h.root = mergeTrees(h.root, n)
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
	return heap.Element[K, I]{Key: h.root.key, ID: h.root.id}
}

func (h *Heap[K, I]) PopMinimum() heap.Element[K, I] {
	if h.Empty() {
		heap.Fail(heap.EmptyHeap, "")
	}
	min := h.root
	result := heap.Element[K, I]{Key: min.key, ID: min.id}
	children := min.child
	h.root = mergeTreeList(children)
	delete(h.nodeOf, min.id)
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
	if n == h.root {
		return
	}
	detachFromParent(n)
	h.root = mergeTrees(h.root, n)
}

func (h *Heap[K, I]) Validate() {
	if h.Empty() {
		return
	}
	count := h.validateTree(h.root)
	if count != len(h.nodeOf) {
		heap.Failf(heap.Inconsistent, "reachable node count %d != tracked %d", count, len(h.nodeOf))
	}
}

func (h *Heap[K, I]) validateTree(n *node[K, I]) int {
	tracked, ok := h.nodeOf[n.id]
	if !ok || tracked != n {
		heap.Failf(heap.Inconsistent, "id index mismatch for id=%v", n.id)
	}
	count := 1
	for c := n.child; c != nil; c = c.right {
		if c.key < n.key {
			heap.Fail(heap.Inconsistent, "heap order violated")
		}
		count += h.validateTree(c)
	}
	return count
}
