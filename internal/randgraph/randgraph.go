// Package randgraph builds random weighted directed graphs, generated
// deterministically from a seed, for use by cmd/heapperf.
package randgraph

import (
	"fmt"
	"math/rand"

	"github.com/ashenvale/pqheaps/graph"
)

// Option configures Generate via functional arguments, following the same
// pattern graph.Builder and dijkstra.Options use.
type Option func(*config)

type config struct {
	seed            int64
	edgeProbability float64
	minWeight       int64
	maxWeight       int64
}

func defaultConfig() config {
	return config{
		seed:            1,
		edgeProbability: 0.3,
		minWeight:       1,
		maxWeight:       10,
	}
}

// WithSeed sets the RNG seed. Two Generate calls with identical
// numVertices, seed, and options produce byte-identical graphs.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithEdgeProbability sets the Bernoulli trial probability applied to each
// ordered pair of distinct vertices. Must be in [0, 1].
func WithEdgeProbability(p float64) Option {
	return func(c *config) { c.edgeProbability = p }
}

// WithWeightRange sets the inclusive range sampled uniformly for each
// edge's weight. Both bounds must be non-negative and min must not exceed
// max.
func WithWeightRange(min, max int64) Option {
	return func(c *config) { c.minWeight, c.maxWeight = min, max }
}

// Generate samples an Erdős–Rényi-style random directed graph over
// numVertices vertices: every ordered pair of distinct vertices (i, j) is
// considered independently, and an edge i->j is added with probability
// edgeProbability, with a weight drawn uniformly from the configured
// weight range. Self-loops are never generated.
//
// Vertex and edge trial order is i ascending, then j ascending, so the
// result is fully determined by numVertices, the seed, and the options
// given.
func Generate(numVertices int, opts ...Option) *graph.Graph {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if numVertices < 1 {
		panic(fmt.Sprintf("randgraph: numVertices must be >= 1, got %d", numVertices))
	}
	if cfg.edgeProbability < 0 || cfg.edgeProbability > 1 {
		panic(fmt.Sprintf("randgraph: edgeProbability must be in [0,1], got %g", cfg.edgeProbability))
	}
	if cfg.minWeight < 0 || cfg.minWeight > cfg.maxWeight {
		panic(fmt.Sprintf("randgraph: invalid weight range [%d,%d]", cfg.minWeight, cfg.maxWeight))
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	b := graph.NewBuilder()
	for i := 0; i < numVertices; i++ {
		b.AddVertex()
	}

	weightSpan := cfg.maxWeight - cfg.minWeight + 1
	for i := 0; i < numVertices; i++ {
		for j := 0; j < numVertices; j++ {
			if i == j {
				continue
			}
			if rng.Float64() > cfg.edgeProbability {
				continue
			}
			e := b.AddEdge(graph.VertexID(i), graph.VertexID(j))
			weight := cfg.minWeight + rng.Int63n(weightSpan)
			if err := b.SetWeight(e, weight); err != nil {
				panic(err)
			}
		}
	}

	return b.Build()
}
