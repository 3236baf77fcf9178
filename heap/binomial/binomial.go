package binomial

import (
	"cmp"

	"github.com/ashenvale/pqheaps/heap"
)

// Heap is a binomial heap addressable by id.
type Heap[K cmp.Ordered, I comparable] struct {
	roots   *node[K, I] // ascending dimension, singly linked via right
	nodeOf  map[I]*node[K, I]
	minimum *node[K, I]
}

// New constructs an empty binomial heap.
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
	h.roots = mergeTreeLists(h.roots, n)
	h.refreshMinimum()
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
	return heap.Element[K, I]{Key: h.minimum.key, ID: h.minimum.id}
}

func (h *Heap[K, I]) PopMinimum() heap.Element[K, I] {
	if h.Empty() {
		heap.Fail(heap.EmptyHeap, "")
	}
	min := h.minimum
	result := heap.Element[K, I]{Key: min.key, ID: min.id}

	// unlink min from the root list
	var head, tail *node[K, I]
	for r := h.roots; r != nil; r = r.right {
		if r == min {
			continue
		}
		if head == nil {
			head = r
		} else {
			tail.right = r
		}
		tail = r
	}
	if tail != nil {
		tail.right = nil
	}

	children := detachChildren(min)
	h.roots = mergeTreeLists(head, children)
	delete(h.nodeOf, min.id)
	h.refreshMinimum()
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
	h.siftUp(n)
	h.refreshMinimum()
}

// siftUp moves (key, id) content upward while it violates heap order,
// rewriting nodeOf at each swapped node rather than relocating nodes.
func (h *Heap[K, I]) siftUp(n *node[K, I]) {
	for n.parent != nil && n.key < n.parent.key {
		p := n.parent
		n.key, p.key = p.key, n.key
		n.id, p.id = p.id, n.id
		h.nodeOf[n.id] = n
		h.nodeOf[p.id] = p
		n = p
	}
}

func (h *Heap[K, I]) refreshMinimum() {
	h.minimum = nil
	for r := h.roots; r != nil; r = r.right {
		if h.minimum == nil || r.key < h.minimum.key {
			h.minimum = r
		}
	}
}

func (h *Heap[K, I]) Validate() {
	if len(h.nodeOf) == 0 {
		return
	}
	seen := 0
	dims := map[int]bool{}
	for r := h.roots; r != nil; r = r.right {
		if dims[r.dimension] {
			heap.Fail(heap.Inconsistent, "duplicate root dimension")
		}
		dims[r.dimension] = true
		seen += h.validateTree(r)
	}
	if seen != len(h.nodeOf) {
		heap.Failf(heap.Inconsistent, "reachable node count %d != tracked %d", seen, len(h.nodeOf))
	}
}

func (h *Heap[K, I]) validateTree(n *node[K, I]) int {
	tracked, ok := h.nodeOf[n.id]
	if !ok || tracked != n {
		heap.Failf(heap.Inconsistent, "id index mismatch for id=%v", n.id)
	}
	count := 1
	childCount := 0
	expectedDim := n.dimension - 1
	for c := n.child; c != nil; c = c.right {
		if c.parent != n {
			heap.Fail(heap.Inconsistent, "broken parent pointer")
		}
		if c.key < n.key {
			heap.Fail(heap.Inconsistent, "heap order violated")
		}
		if c.dimension != expectedDim {
			heap.Failf(heap.Inconsistent, "child dimension %d, want %d", c.dimension, expectedDim)
		}
		expectedDim--
		childCount++
		count += h.validateTree(c)
	}
	if childCount != n.dimension {
		heap.Failf(heap.Inconsistent, "dimension %d but %d children", n.dimension, childCount)
	}
	return count
}
