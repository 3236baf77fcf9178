package dijkstra_test

import (
	"fmt"

	"github.com/ashenvale/pqheaps/dijkstra"
	"github.com/ashenvale/pqheaps/graph"
	"github.com/ashenvale/pqheaps/heap"
	"github.com/ashenvale/pqheaps/heap/binary"
)

func ExampleRun() {
	b := graph.NewBuilder()
	a, c, e := b.AddVertex(), b.AddVertex(), b.AddVertex()
	ac := b.AddEdge(a, c)
	ce := b.AddEdge(c, e)
	_ = b.SetWeight(ac, 4)
	_ = b.SetWeight(ce, 3)
	g := b.Build()

	factory := heap.Factory[int64, graph.VertexID]{
		Name: "binary",
		New:  func() heap.Interface[int64, graph.VertexID] { return binary.New[int64, graph.VertexID]() },
	}

	results, err := dijkstra.Run(g, a, factory)
	if err != nil {
		panic(err)
	}
	fmt.Println(results[e].Distance)
	fmt.Println(results[e].Vertices)

	// Output:
	// 7
	// [0 1 2]
}
