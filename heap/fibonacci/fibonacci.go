package fibonacci

import (
	"cmp"

	"github.com/ashenvale/pqheaps/heap"
)

// Heap is a Fibonacci heap addressable by id.
type Heap[K cmp.Ordered, I comparable] struct {
	minRoot *node[K, I]
	nodeOf  map[I]*node[K, I]
}

// New constructs an empty Fibonacci heap.
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
	if h.minRoot == nil {
		h.minRoot = n
		return
	}
	addSibling(h.minRoot, n)
	if n.key < h.minRoot.key {
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

	var newRoots []*node[K, I]
	for cur := min.right; cur != min; {
		next := cur.right
		newRoots = append(newRoots, cur)
		cur = next
	}
	if min.child != nil {
		start := min.child
		for cur := start; ; {
			next := cur.right
			cur.parent = nil
			cur.marked = false
			newRoots = append(newRoots, cur)
			cur = next
			if cur == start {
				break
			}
		}
	}

	delete(h.nodeOf, min.id)
	h.minRoot = nil
	h.consolidate(newRoots)
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
	if p := n.parent; p != nil && n.key < p.key {
		cut(n)
		addSibling(h.minRoot, n)
		h.cascadeCut(p)
	}
	if n.key < h.minRoot.key {
		h.minRoot = n
	}
}

func (h *Heap[K, I]) cascadeCut(p *node[K, I]) {
	if p.parent == nil {
		return
	}
	if !p.marked {
		p.marked = true
		return
	}
	gp := p.parent
	cut(p)
	addSibling(h.minRoot, p)
	h.cascadeCut(gp)
}

// consolidate merges roots pairwise by degree until every degree appears
// at most once, then rebuilds the root ring and finds the new minimum.
func (h *Heap[K, I]) consolidate(roots []*node[K, I]) {
	byDegree := make(map[int]*node[K, I])
	for _, r := range roots {
		detachFromSiblings(r)
		x := r
		for {
			y, ok := byDegree[x.degree]
			if !ok {
				byDegree[x.degree] = x
				break
			}
			delete(byDegree, x.degree)
			if y.key < x.key {
				x, y = y, x
			}
			addChild(x, y)
		}
	}
	for _, x := range byDegree {
		if h.minRoot == nil {
			h.minRoot = x
		} else {
			addSibling(h.minRoot, x)
			if x.key < h.minRoot.key {
				h.minRoot = x
			}
		}
	}
}

func (h *Heap[K, I]) Validate() {
	if h.Empty() {
		return
	}
	count := 0
	start := h.minRoot
	for cur := start; ; {
		if cur.parent != nil {
			heap.Fail(heap.Inconsistent, "root has non-nil parent")
		}
		count += h.validateSubtree(cur)
		cur = cur.right
		if cur == start {
			break
		}
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
	children := 0
	if n.child != nil {
		for cur := n.child; ; {
			if cur.parent != n {
				heap.Fail(heap.Inconsistent, "broken parent pointer")
			}
			if cur.key < n.key {
				heap.Fail(heap.Inconsistent, "heap order violated")
			}
			children++
			count += h.validateSubtree(cur)
			cur = cur.right
			if cur == n.child {
				break
			}
		}
	}
	if children != n.degree {
		heap.Failf(heap.Inconsistent, "degree %d but %d children", n.degree, children)
	}
	return count
}
