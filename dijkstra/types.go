package dijkstra

import (
	"errors"

	"github.com/ashenvale/pqheaps/graph"
)

// Sentinel errors returned by Run.
var (
	// ErrUnknownStart is returned when start is outside the graph's
	// vertex range.
	ErrUnknownStart = errors.New("dijkstra: unknown start vertex")

	// ErrNegativeWeight is returned if any edge in the graph carries a
	// negative weight; Dijkstra's relaxation order is not correct in
	// that case.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")
)

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds tunables for Run.
type Options struct {
	// ReturnPath, when true, has Run reconstruct the full vertex sequence
	// for each Path. When false, Run only fills in Distance, which is
	// cheaper for callers that only need distances.
	ReturnPath bool
}

// DefaultOptions returns the options Run uses when none are supplied:
// ReturnPath enabled.
func DefaultOptions() Options {
	return Options{ReturnPath: true}
}

// WithReturnPath toggles whether Run reconstructs each Path's Vertices
// slice.
func WithReturnPath(enabled bool) Option {
	return func(o *Options) { o.ReturnPath = enabled }
}

// Path is one vertex's shortest path from the run's start vertex.
type Path struct {
	// Distance is the total edge weight along the shortest path found.
	Distance int64

	// Vertices is the path from start to this vertex, inclusive of both
	// endpoints, in traversal order. Empty unless WithReturnPath(true)
	// (the default).
	Vertices []graph.VertexID
}
