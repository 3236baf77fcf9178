package graph

import "errors"

// Sentinel errors used by Builder and Graph methods.
var (
	// ErrUnknownVertex is the panic value when a VertexID outside
	// [0, NumVertices) is passed to Builder.AddEdge or Graph.Edges.
	ErrUnknownVertex = errors.New("graph: unknown vertex id")

	// ErrNegativeWeight is returned by Builder.SetWeight for a negative
	// weight; the library never represents negative edge weights.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)
