package weak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_AddPopOrder(t *testing.T) {
	h := New[int, string]()
	for _, k := range []int{5, 1, 3, 9, 2, 7, 0, 8, 4, 6} {
		h.Add(k, string(rune('a'+k)))
	}
	h.Validate()

	var got []int
	for !h.Empty() {
		got = append(got, h.PopMinimum().Key)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestHeap_ReduceKey(t *testing.T) {
	h := New[int, string]()
	h.Add(10, "a")
	h.Add(20, "b")
	h.Add(30, "c")
	h.Add(40, "d")
	h.ReduceKey(1, "d")
	h.Validate()
	require.Equal(t, 1, h.Min().Key)
	assert.Equal(t, "d", h.Min().ID)
}

func TestHeap_ContractViolations(t *testing.T) {
	h := New[int, string]()
	h.Add(1, "a")
	assert.Panics(t, func() { h.Add(2, "a") })
	assert.Panics(t, func() { h.ReduceKey(5, "ghost") })
	assert.Panics(t, func() { h.ReduceKey(5, "a") })

	empty := New[int, string]()
	assert.Panics(t, func() { empty.Min() })
	assert.Panics(t, func() { empty.PopMinimum() })
}

func TestHeap_SingleElement(t *testing.T) {
	h := New[int, string]()
	h.Add(42, "solo")
	h.Validate()
	m := h.PopMinimum()
	assert.Equal(t, 42, m.Key)
	assert.True(t, h.Empty())
}
