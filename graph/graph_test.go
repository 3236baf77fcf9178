package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_DenseSequentialIDs(t *testing.T) {
	b := NewBuilder()
	v0 := b.AddVertex()
	v1 := b.AddVertex()
	v2 := b.AddVertex()
	require.Equal(t, VertexID(0), v0)
	require.Equal(t, VertexID(1), v1)
	require.Equal(t, VertexID(2), v2)

	e0 := b.AddEdge(v0, v1)
	e1 := b.AddEdge(v1, v2)
	require.Equal(t, EdgeID(0), e0)
	require.Equal(t, EdgeID(1), e1)

	require.NoError(t, b.SetWeight(e0, 5))
	require.NoError(t, b.SetWeight(e1, 7))

	g := b.Build()
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 2, g.NumEdges())
	assert.Equal(t, []Edge{{ID: 0, To: v1}}, g.Edges(v0))
	assert.Equal(t, int64(5), g.Weight(e0))
	assert.Equal(t, int64(7), g.Weight(e1))
}

func TestBuilder_DefaultWeight(t *testing.T) {
	b := NewBuilder(WithDefaultWeight(9))
	v0 := b.AddVertex()
	v1 := b.AddVertex()
	e := b.AddEdge(v0, v1)
	g := b.Build()
	assert.Equal(t, int64(9), g.Weight(e))
}

func TestBuilder_NegativeWeightRejected(t *testing.T) {
	b := NewBuilder()
	v0 := b.AddVertex()
	v1 := b.AddVertex()
	e := b.AddEdge(v0, v1)
	assert.ErrorIs(t, b.SetWeight(e, -1), ErrNegativeWeight)
}

func TestGraph_EdgesOutOfRangePanics(t *testing.T) {
	b := NewBuilder()
	b.AddVertex()
	g := b.Build()
	assert.Panics(t, func() { g.Edges(VertexID(5)) })
}

func TestBuilder_IndependentBuilds(t *testing.T) {
	b := NewBuilder()
	v0 := b.AddVertex()
	v1 := b.AddVertex()
	b.AddEdge(v0, v1)
	g1 := b.Build()

	v2 := b.AddVertex()
	b.AddEdge(v1, v2)
	g2 := b.Build()

	assert.Equal(t, 1, g1.NumEdges())
	assert.Equal(t, 2, g2.NumEdges())
}

func TestProperties_DefaultAndGrowth(t *testing.T) {
	p := NewProperties[int64](-1)
	assert.Equal(t, int64(-1), p.Get(3))
	p.Set(3, 42)
	assert.Equal(t, int64(42), p.Get(3))
	assert.Equal(t, int64(-1), p.Get(0))
	assert.Equal(t, int64(-1), p.Get(100))
}
