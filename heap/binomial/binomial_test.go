package binomial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_AddPopOrder(t *testing.T) {
	h := New[int, string]()
	for _, k := range []int{5, 1, 3, 9, 2, 7} {
		h.Add(k, string(rune('a'+k)))
	}
	h.Validate()

	var got []int
	for !h.Empty() {
		got = append(got, h.PopMinimum().Key)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 7, 9}, got)
}

func TestHeap_ReduceKey(t *testing.T) {
	h := New[int, string]()
	h.Add(10, "a")
	h.Add(20, "b")
	h.Add(30, "c")
	h.ReduceKey(1, "c")
	h.Validate()
	require.Equal(t, 1, h.Min().Key)
	assert.Equal(t, "c", h.Min().ID)
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

func TestHeap_ManyAddsAndPops(t *testing.T) {
	h := New[int, int]()
	for i := 0; i < 50; i++ {
		h.Add(50-i, i)
	}
	h.Validate()
	prev := -1
	for !h.Empty() {
		m := h.PopMinimum()
		assert.GreaterOrEqual(t, m.Key, prev)
		prev = m.Key
	}
}
