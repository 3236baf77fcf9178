package bfs

import (
	"github.com/ashenvale/pqheaps/dijkstra"
	"github.com/ashenvale/pqheaps/graph"
)

// Run computes a shortest-path oracle from start over g using plain
// breadth-first search with re-enqueue on improvement: a vertex may be
// pushed onto the queue more than once if a cheaper route to it is found
// after its first visit. It does not track a settled set the way
// dijkstra.Run does, so it revisits vertices whenever an edge relaxes
// their distance, however many times that takes.
//
// It ignores edge weights for traversal order — the queue is a plain FIFO
// — so it settles nothing early; because every improvement is pushed back
// onto the queue, the distances still converge to the shortest ones on
// graphs with non-negative weights, at the cost of possibly processing a
// vertex many times. Its purpose here is solely to corroborate
// dijkstra.Run's results on small test graphs, not to serve as a
// general-purpose shortest-path algorithm.
func Run(g *graph.Graph, start graph.VertexID) map[graph.VertexID]dijkstra.Path {
	if start < 0 || int(start) >= g.NumVertices() {
		panic("bfs: start vertex out of range")
	}

	results := map[graph.VertexID]dijkstra.Path{
		start: {Distance: 0, Vertices: []graph.VertexID{start}},
	}

	queue := []graph.VertexID{start}
	for len(queue) > 0 {
		vertexID := queue[0]
		queue = queue[1:]
		currentPath := results[vertexID]

		for _, edge := range g.Edges(vertexID) {
			totalDistance := currentPath.Distance + g.Weight(edge.ID)

			existing, known := results[edge.To]
			if known && totalDistance >= existing.Distance {
				continue
			}

			path := dijkstra.Path{
				Distance: totalDistance,
				Vertices: append(append([]graph.VertexID(nil), currentPath.Vertices...), edge.To),
			}
			results[edge.To] = path
			queue = append(queue, edge.To)
		}
	}

	return results
}
