// Command heaptest runs the worked end-to-end scenarios and cross-variant
// consistency checks against every registered heap factory, and exits
// non-zero if any of them fail.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ashenvale/pqheaps/dijkstra"
	"github.com/ashenvale/pqheaps/graph"
	"github.com/ashenvale/pqheaps/heap"
	"github.com/ashenvale/pqheaps/heap/binary"
	"github.com/ashenvale/pqheaps/heap/binomial"
	"github.com/ashenvale/pqheaps/heap/fibonacci"
	"github.com/ashenvale/pqheaps/heap/pairing"
	"github.com/ashenvale/pqheaps/heap/thin"
	"github.com/ashenvale/pqheaps/heap/twothree"
	"github.com/ashenvale/pqheaps/heap/weak"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:          "heaptest",
		Short:        "Validate every heap variant against worked Dijkstra scenarios",
		RunE:         run,
		SilenceUsage: true,
	}
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	failures := 0
	for _, factory := range factories() {
		for _, scenario := range scenarios() {
			if err := scenario.check(factory); err != nil {
				log.WithFields(log.Fields{
					"heap":     factory.Name,
					"scenario": scenario.name,
				}).Errorf("FAIL: %v", err)
				failures++
				continue
			}
			log.WithFields(log.Fields{
				"heap":     factory.Name,
				"scenario": scenario.name,
			}).Debug("PASS")
		}
	}

	if failures > 0 {
		return fmt.Errorf("heaptest: %d scenario(s) failed", failures)
	}
	log.Infof("all scenarios passed across %d heap variants", len(factories()))
	return nil
}

func factories() []heap.Factory[int64, graph.VertexID] {
	return []heap.Factory[int64, graph.VertexID]{
		{Name: "binary", New: func() heap.Interface[int64, graph.VertexID] { return binary.New[int64, graph.VertexID]() }},
		{Name: "binomial", New: func() heap.Interface[int64, graph.VertexID] { return binomial.New[int64, graph.VertexID]() }},
		{Name: "weak", New: func() heap.Interface[int64, graph.VertexID] { return weak.New[int64, graph.VertexID]() }},
		{Name: "pairing", New: func() heap.Interface[int64, graph.VertexID] { return pairing.New[int64, graph.VertexID]() }},
		{Name: "fibonacci", New: func() heap.Interface[int64, graph.VertexID] { return fibonacci.New[int64, graph.VertexID]() }},
		{Name: "thin", New: func() heap.Interface[int64, graph.VertexID] { return thin.New[int64, graph.VertexID]() }},
		{Name: "two_three", New: func() heap.Interface[int64, graph.VertexID] { return twothree.New[int64, graph.VertexID]() }},
	}
}

// scenario is one worked end-to-end check: build a graph, run Dijkstra
// with the given factory, and assert on the result.
type scenario struct {
	name  string
	check func(heap.Factory[int64, graph.VertexID]) error
}

func scenarios() []scenario {
	return []scenario{
		{name: "linear_chain", check: checkLinearChain},
		{name: "diamond", check: checkDiamond},
		{name: "unreachable_vertex", check: checkUnreachable},
		{name: "zero_weight_cycle", check: checkZeroWeightCycle},
	}
}

func checkLinearChain(f heap.Factory[int64, graph.VertexID]) error {
	b := graph.NewBuilder()
	v0, v1, v2 := b.AddVertex(), b.AddVertex(), b.AddVertex()
	e0 := b.AddEdge(v0, v1)
	e1 := b.AddEdge(v1, v2)
	_ = b.SetWeight(e0, 1)
	_ = b.SetWeight(e1, 2)
	g := b.Build()

	results, err := dijkstra.Run(g, v0, f)
	if err != nil {
		return err
	}
	if results[v2].Distance != 3 {
		return fmt.Errorf("distance to v2 = %d, want 3", results[v2].Distance)
	}
	return nil
}

func checkDiamond(f heap.Factory[int64, graph.VertexID]) error {
	b := graph.NewBuilder()
	v0, v1, v2, v3 := b.AddVertex(), b.AddVertex(), b.AddVertex(), b.AddVertex()
	e0 := b.AddEdge(v0, v1)
	e1 := b.AddEdge(v1, v3)
	e2 := b.AddEdge(v0, v2)
	e3 := b.AddEdge(v2, v3)
	_ = b.SetWeight(e0, 1)
	_ = b.SetWeight(e1, 1)
	_ = b.SetWeight(e2, 5)
	_ = b.SetWeight(e3, 5)
	g := b.Build()

	results, err := dijkstra.Run(g, v0, f)
	if err != nil {
		return err
	}
	if results[v3].Distance != 2 {
		return fmt.Errorf("distance to v3 = %d, want 2", results[v3].Distance)
	}
	return nil
}

func checkUnreachable(f heap.Factory[int64, graph.VertexID]) error {
	b := graph.NewBuilder()
	v0, v1 := b.AddVertex(), b.AddVertex()
	v2 := b.AddVertex()
	e0 := b.AddEdge(v0, v1)
	_ = b.SetWeight(e0, 1)
	g := b.Build()

	results, err := dijkstra.Run(g, v0, f)
	if err != nil {
		return err
	}
	if _, ok := results[v2]; ok {
		return fmt.Errorf("v2 should be unreachable but has a result")
	}
	return nil
}

func checkZeroWeightCycle(f heap.Factory[int64, graph.VertexID]) error {
	b := graph.NewBuilder()
	v0, v1, v2 := b.AddVertex(), b.AddVertex(), b.AddVertex()
	e0 := b.AddEdge(v0, v1)
	e1 := b.AddEdge(v1, v2)
	e2 := b.AddEdge(v2, v0)
	_ = b.SetWeight(e0, 0)
	_ = b.SetWeight(e1, 0)
	_ = b.SetWeight(e2, 0)
	g := b.Build()

	results, err := dijkstra.Run(g, v0, f)
	if err != nil {
		return err
	}
	for v, p := range results {
		if p.Distance != 0 {
			return fmt.Errorf("distance to v%d = %d, want 0", v, p.Distance)
		}
	}
	return nil
}
