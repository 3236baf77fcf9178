package binary

import (
	"testing"

	"github.com/ashenvale/pqheaps/heap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_AddPopOrder(t *testing.T) {
	h := New[int, string]()
	h.Add(5, "a")
	h.Add(1, "b")
	h.Add(3, "c")
	h.Validate()

	require.Equal(t, 3, h.Size())
	got := []int{h.PopMinimum().Key, h.PopMinimum().Key, h.PopMinimum().Key}
	assert.Equal(t, []int{1, 3, 5}, got)
	assert.True(t, h.Empty())
}

func TestHeap_LookUp(t *testing.T) {
	h := New[int, string]()
	h.Add(10, "x")
	key, ok := h.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, 10, key)

	_, ok = h.LookUp("missing")
	assert.False(t, ok)
}

func TestHeap_ReduceKey(t *testing.T) {
	h := New[int, string]()
	h.Add(10, "a")
	h.Add(20, "b")
	h.ReduceKey(1, "b")
	h.Validate()
	assert.Equal(t, heap.Element[int, string]{Key: 1, ID: "b"}, h.Min())
}

func TestHeap_DuplicateIDPanics(t *testing.T) {
	h := New[int, string]()
	h.Add(1, "a")
	assert.Panics(t, func() { h.Add(2, "a") })
}

func TestHeap_UnknownIDPanics(t *testing.T) {
	h := New[int, string]()
	assert.Panics(t, func() { h.ReduceKey(1, "ghost") })
}

func TestHeap_KeyNotDecreasedPanics(t *testing.T) {
	h := New[int, string]()
	h.Add(5, "a")
	assert.Panics(t, func() { h.ReduceKey(10, "a") })
}

func TestHeap_EmptyPanics(t *testing.T) {
	h := New[int, string]()
	assert.Panics(t, func() { h.Min() })
	assert.Panics(t, func() { h.PopMinimum() })
}

func TestHeap_DecreaseKeyStressSequence(t *testing.T) {
	h := New[int, int]()
	for id := 0; id < 30; id++ {
		h.Add(100+id, id)
	}
	h.ReduceKey(2, 0)
	h.ReduceKey(3, 1)
	h.ReduceKey(4, 5)
	h.ReduceKey(0, 10)
	h.ReduceKey(1, 20)
	h.Validate()

	var got [][2]int
	for i := 0; i < 5; i++ {
		m := h.PopMinimum()
		got = append(got, [2]int{m.ID, m.Key})
	}
	assert.Equal(t, [][2]int{{10, 0}, {20, 1}, {0, 2}, {1, 3}, {5, 4}}, got)
}
