package weak

import (
	"cmp"

	"github.com/ashenvale/pqheaps/heap"
)

// Heap is an array-backed weak min-heap addressable by id.
type Heap[K cmp.Ordered, I comparable] struct {
	elements   []heap.Element[K, I]
	reverseBit []bool // reverseBit[i]: true if i's distinguished child is the right one
	indexOf    map[I]int
}

// New constructs an empty weak heap.
func New[K cmp.Ordered, I comparable]() *Heap[K, I] {
	return &Heap[K, I]{indexOf: make(map[I]int)}
}

func (h *Heap[K, I]) Size() int { return len(h.elements) }

func (h *Heap[K, I]) Empty() bool { return len(h.elements) == 0 }

func (h *Heap[K, I]) Add(key K, id I) {
	if _, ok := h.indexOf[id]; ok {
		heap.Failf(heap.DuplicateID, "id=%v", id)
	}
	h.elements = append(h.elements, heap.Element[K, I]{Key: key, ID: id})
	h.reverseBit = append(h.reverseBit, false)
	idx := len(h.elements) - 1
	h.indexOf[id] = idx
	h.siftUp(idx)
}

func (h *Heap[K, I]) LookUp(id I) (K, bool) {
	idx, ok := h.indexOf[id]
	if !ok {
		var zero K
		return zero, false
	}
	return h.elements[idx].Key, true
}

func (h *Heap[K, I]) Min() heap.Element[K, I] {
	if h.Empty() {
		heap.Fail(heap.EmptyHeap, "")
	}
	return h.elements[0]
}

func (h *Heap[K, I]) PopMinimum() heap.Element[K, I] {
	if h.Empty() {
		heap.Fail(heap.EmptyHeap, "")
	}
	min := h.elements[0]
	delete(h.indexOf, min.ID)
	last := len(h.elements) - 1
	if last == 0 {
		h.elements = h.elements[:0]
		h.reverseBit = h.reverseBit[:0]
		return min
	}
	h.set(0, h.elements[last])
	h.elements = h.elements[:last]
	h.reverseBit = h.reverseBit[:last]
	h.siftDownFromRoot()
	return min
}

func (h *Heap[K, I]) ReduceKey(newKey K, id I) {
	idx, ok := h.indexOf[id]
	if !ok {
		heap.Failf(heap.UnknownID, "id=%v", id)
	}
	if !(newKey < h.elements[idx].Key) {
		heap.Failf(heap.KeyNotDecreased, "id=%v old=%v new=%v", id, h.elements[idx].Key, newKey)
	}
	h.elements[idx].Key = newKey
	h.siftUp(idx)
}

func (h *Heap[K, I]) set(i int, e heap.Element[K, I]) {
	h.elements[i] = e
	h.indexOf[e.ID] = i
}

func (h *Heap[K, I]) swap(i, j int) {
	h.elements[i], h.elements[j] = h.elements[j], h.elements[i]
	h.indexOf[h.elements[i].ID] = i
	h.indexOf[h.elements[j].ID] = j
}

// ancestorParent finds pos's ancestor-parent: walk up halving the index
// until the bit recorded at the halved index disagrees with which side
// pos came from.
func (h *Heap[K, I]) ancestorParent(pos int) int {
	ancestor := pos
	for {
		isRightChild := ancestor & 1
		ancestor /= 2
		want := 0
		if h.reverseBit[ancestor] {
			want = 1
		}
		if want != isRightChild {
			break
		}
	}
	return ancestor
}

func (h *Heap[K, I]) siftUp(pos int) {
	for pos != 0 {
		a := h.ancestorParent(pos)
		if !(h.elements[pos].Key < h.elements[a].Key) {
			break
		}
		h.swap(pos, a)
		pos = a
	}
}

// siftDownFromRoot restores weak-heap order after the root's content was
// replaced: it follows the distinguished-child path to the deepest
// descendant, then merges the root's value down that path bottom-up,
// flipping the reverse bit at each position where a swap occurred.
func (h *Heap[K, I]) siftDownFromRoot() {
	n := len(h.elements)
	if n <= 1 {
		return
	}
	// The root's reverse bit is invariantly false, so its distinguished
	// child is always position 1, not 2*0+reverseBit[0]; the generic
	// formula only applies once the descent is past the root.
	path := []int{0, 1}
	pos := 1
	for {
		bit := 0
		if h.reverseBit[pos] {
			bit = 1
		}
		child := 2*pos + bit
		if child >= n {
			break
		}
		path = append(path, child)
		pos = child
	}
	for i := len(path) - 1; i > 0; i-- {
		j := path[i]
		if h.elements[j].Key < h.elements[0].Key {
			h.swap(0, j)
			h.reverseBit[j] = !h.reverseBit[j]
		}
	}
}

func (h *Heap[K, I]) Validate() {
	if len(h.indexOf) != len(h.elements) {
		heap.Failf(heap.Inconsistent, "index size %d != element count %d", len(h.indexOf), len(h.elements))
	}
	if len(h.elements) > 0 && h.reverseBit[0] {
		heap.Fail(heap.Inconsistent, "root reverse bit must be false")
	}
	for i, e := range h.elements {
		idx, ok := h.indexOf[e.ID]
		if !ok || idx != i {
			heap.Failf(heap.Inconsistent, "index mismatch for id=%v", e.ID)
		}
		if i > 0 {
			a := h.ancestorParent(i)
			if h.elements[i].Key < h.elements[a].Key {
				heap.Failf(heap.Inconsistent, "heap order violated at index %d", i)
			}
		}
	}
}
