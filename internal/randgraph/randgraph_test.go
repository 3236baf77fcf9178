package randgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashenvale/pqheaps/graph"
)

func TestGenerate_DeterministicForFixedSeed(t *testing.T) {
	g1 := Generate(20, WithSeed(7), WithEdgeProbability(0.4))
	g2 := Generate(20, WithSeed(7), WithEdgeProbability(0.4))
	require.Equal(t, g1.NumEdges(), g2.NumEdges())
	for v := 0; v < 20; v++ {
		assert.Equal(t, g1.Edges(graph.VertexID(v)), g2.Edges(graph.VertexID(v)))
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	g1 := Generate(30, WithSeed(1), WithEdgeProbability(0.5))
	g2 := Generate(30, WithSeed(2), WithEdgeProbability(0.5))
	assert.NotEqual(t, g1.NumEdges(), g2.NumEdges())
}

func TestGenerate_ZeroProbabilityProducesNoEdges(t *testing.T) {
	g := Generate(10, WithEdgeProbability(0))
	assert.Equal(t, 0, g.NumEdges())
}

func TestGenerate_WeightsWithinRange(t *testing.T) {
	g := Generate(15, WithEdgeProbability(0.8), WithWeightRange(5, 5))
	for v := 0; v < 15; v++ {
		for _, e := range g.Edges(graph.VertexID(v)) {
			assert.Equal(t, int64(5), g.Weight(e.ID))
		}
	}
}

func TestGenerate_InvalidArgumentsPanic(t *testing.T) {
	assert.Panics(t, func() { Generate(0) })
	assert.Panics(t, func() { Generate(5, WithEdgeProbability(1.5)) })
	assert.Panics(t, func() { Generate(5, WithWeightRange(10, 1)) })
}
