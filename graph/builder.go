package graph

// Option configures a Builder via functional arguments, following the
// same pattern dijkstra.Option and randgraph.Option use elsewhere in this
// repository.
type Option func(*Builder)

// WithDefaultWeight sets the weight edges get when SetWeight is never
// called for them. The default default is zero.
func WithDefaultWeight(w int64) Option {
	return func(b *Builder) {
		b.weights = NewProperties[int64](w)
	}
}

// Builder accumulates vertices and edges, then produces an immutable
// Graph. IDs are assigned densely in call order: the first AddVertex call
// returns VertexID(0), the second VertexID(1), and so on; likewise for
// AddEdge and EdgeID.
type Builder struct {
	outgoing [][]Edge
	numEdges int
	weights  Properties[int64]
}

// NewBuilder constructs an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{weights: NewProperties[int64](0)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddVertex adds a new vertex and returns its id.
func (b *Builder) AddVertex() VertexID {
	b.outgoing = append(b.outgoing, nil)
	return VertexID(len(b.outgoing) - 1)
}

// AddEdge adds a directed edge from -> to and returns its id. Panics if
// either endpoint is not a known vertex id.
func (b *Builder) AddEdge(from, to VertexID) EdgeID {
	b.checkVertex(from)
	b.checkVertex(to)
	id := EdgeID(b.numEdges)
	b.numEdges++
	b.outgoing[from] = append(b.outgoing[from], Edge{ID: id, To: to})
	return id
}

// SetWeight attaches a weight to edge e. Returns ErrNegativeWeight if w is
// negative, since this library never represents negative edge weights.
func (b *Builder) SetWeight(e EdgeID, w int64) error {
	if w < 0 {
		return ErrNegativeWeight
	}
	b.weights.Set(int(e), w)
	return nil
}

// Build returns the immutable Graph assembled so far. The Builder remains
// usable afterward; further AddVertex/AddEdge calls build a second,
// independent Graph sharing no mutable state with the first.
func (b *Builder) Build() *Graph {
	outgoing := make([][]Edge, len(b.outgoing))
	for v, edges := range b.outgoing {
		outgoing[v] = append([]Edge(nil), edges...)
	}
	weights := b.weights
	weights.values = append([]int64(nil), b.weights.values...)
	return &Graph{outgoing: outgoing, numEdges: b.numEdges, weights: weights}
}

func (b *Builder) checkVertex(v VertexID) {
	if v < 0 || int(v) >= len(b.outgoing) {
		panic(ErrUnknownVertex)
	}
}
