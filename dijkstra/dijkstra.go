package dijkstra

import (
	"github.com/ashenvale/pqheaps/graph"
	"github.com/ashenvale/pqheaps/heap"
)

// Run computes shortest paths from start to every vertex reachable from it
// in g, using a fresh heap built from factory as its priority queue.
// Unreachable vertices are simply absent from the result map.
//
// Relaxation ties break in scan order: among several edges that would
// produce the same improved distance for a vertex, whichever is relaxed
// first wins and later ties are not reapplied, since they no longer
// satisfy the strict less-than check ReduceKey requires.
func Run(
	g *graph.Graph,
	start graph.VertexID,
	factory heap.Factory[int64, graph.VertexID],
	opts ...Option,
) (map[graph.VertexID]Path, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if start < 0 || int(start) >= g.NumVertices() {
		return nil, ErrUnknownStart
	}
	for v := 0; v < g.NumVertices(); v++ {
		for _, e := range g.Edges(graph.VertexID(v)) {
			if g.Weight(e.ID) < 0 {
				return nil, ErrNegativeWeight
			}
		}
	}

	queue := factory.New()
	queue.Add(0, start)
	prevVertex := make(map[graph.VertexID]graph.VertexID)
	results := make(map[graph.VertexID]Path)

	for !queue.Empty() {
		settled := queue.PopMinimum()
		vertexID, distance := settled.ID, settled.Key
		if _, done := results[vertexID]; done {
			continue
		}
		results[vertexID] = Path{Distance: distance}

		for _, edge := range g.Edges(vertexID) {
			if _, done := results[edge.To]; done {
				continue
			}
			totalDistance := distance + g.Weight(edge.ID)
			if currentDistance, known := queue.LookUp(edge.To); !known {
				queue.Add(totalDistance, edge.To)
				prevVertex[edge.To] = vertexID
			} else if totalDistance < currentDistance {
				queue.ReduceKey(totalDistance, edge.To)
				prevVertex[edge.To] = vertexID
			}
		}
	}

	if options.ReturnPath {
		for v, p := range results {
			p.Vertices = reconstructPath(prevVertex, start, v)
			results[v] = p
		}
	}
	return results, nil
}

func reconstructPath(prevVertex map[graph.VertexID]graph.VertexID, start, v graph.VertexID) []graph.VertexID {
	path := []graph.VertexID{v}
	for cur := v; cur != start; {
		p, ok := prevVertex[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
