package binary

import (
	"cmp"
	"fmt"

	"github.com/ashenvale/pqheaps/heap"
)

// Heap is an array-backed binary min-heap addressable by id.
type Heap[K cmp.Ordered, I comparable] struct {
	elements []heap.Element[K, I]
	indexOf  map[I]int
}

// New constructs an empty binary heap.
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
	last := len(h.elements) - 1
	h.set(0, h.elements[last])
	h.elements = h.elements[:last]
	delete(h.indexOf, min.ID)
	if len(h.elements) > 0 {
		h.siftDown(0)
	}
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

func (h *Heap[K, I]) Validate() {
	if len(h.indexOf) != len(h.elements) {
		heap.Failf(heap.Inconsistent, "index size %d != element count %d", len(h.indexOf), len(h.elements))
	}
	for i, e := range h.elements {
		idx, ok := h.indexOf[e.ID]
		if !ok || idx != i {
			heap.Failf(heap.Inconsistent, "index mismatch for id=%v", e.ID)
		}
		if i > 0 {
			parent := (i - 1) / 2
			if h.elements[i].Key < h.elements[parent].Key {
				heap.Failf(heap.Inconsistent, "heap order violated at index %d", i)
			}
		}
	}
}

func (h *Heap[K, I]) set(i int, e heap.Element[K, I]) {
	h.elements[i] = e
	h.indexOf[e.ID] = i
}

func (h *Heap[K, I]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !(h.elements[i].Key < h.elements[parent].Key) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *Heap[K, I]) siftDown(i int) {
	n := len(h.elements)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.elements[left].Key < h.elements[smallest].Key {
			smallest = left
		}
		if right < n && h.elements[right].Key < h.elements[smallest].Key {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *Heap[K, I]) swap(i, j int) {
	h.elements[i], h.elements[j] = h.elements[j], h.elements[i]
	h.indexOf[h.elements[i].ID] = i
	h.indexOf[h.elements[j].ID] = j
}

// String renders the heap array for debugging, grounded on the original
// design's PrintTree debug helper.
func (h *Heap[K, I]) String() string {
	return fmt.Sprintf("%v", h.elements)
}
