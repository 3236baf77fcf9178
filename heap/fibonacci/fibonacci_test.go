package fibonacci

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

func TestHeap_CascadingCut(t *testing.T) {
	h := New[int, int]()
	for id := 0; id < 20; id++ {
		h.Add(100+id, id)
	}
	h.PopMinimum()
	h.Validate()
	for id := 1; id < 10; id++ {
		h.ReduceKey(id, id)
		h.Validate()
	}
	require.Equal(t, 1, h.Min().Key)
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

func TestHeap_InterleavedOps(t *testing.T) {
	h := New[int, int]()
	for id := 0; id < 40; id++ {
		h.Add(1000-id, id)
	}
	for id := 0; id < 40; id += 3 {
		h.ReduceKey(id, id)
	}
	h.Validate()
	prev := -1
	for !h.Empty() {
		m := h.PopMinimum()
		assert.GreaterOrEqual(t, m.Key, prev)
		prev = m.Key
		h.Validate()
	}
}
