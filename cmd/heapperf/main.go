// Command heapperf runs Dijkstra over a randomly generated graph with a
// caller-selected heap variant and reports how long it took.
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
	"github.com/ashenvale/pqheaps/internal/perf"
	"github.com/ashenvale/pqheaps/internal/randgraph"
)

var (
	heapName        string
	numVertices     int
	edgeProbability float64
	seed            int64
	verbose         bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "heapperf",
		Short:        "Time Dijkstra over a random graph with a chosen heap variant",
		RunE:         run,
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVar(&heapName, "heap", "binary_heap",
		"heap variant: binary_heap, binomial_heap, weak_heap, pairing_heap, two_three_heap, fibonacci_heap, thin_heap")
	rootCmd.Flags().IntVar(&numVertices, "vertices", 1000, "number of vertices in the generated graph")
	rootCmd.Flags().Float64Var(&edgeProbability, "edge-probability", 0.01, "per-pair edge probability")
	rootCmd.Flags().Int64Var(&seed, "seed", 1, "random graph generator seed")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	factory, ok := factoryByName(heapName)
	if !ok {
		log.Fatalf("heapperf: unknown heap variant %q", heapName)
	}

	g := randgraph.Generate(numVertices,
		randgraph.WithSeed(seed),
		randgraph.WithEdgeProbability(edgeProbability),
	)
	log.WithFields(log.Fields{
		"heap":     heapName,
		"vertices": g.NumVertices(),
		"edges":    g.NumEdges(),
	}).Info("generated graph")

	timer := perf.NewTimer()
	timer.SetReport(fmt.Sprintf("dijkstra/%s", heapName))
	timer.Start()
	results, err := dijkstra.Run(g, graph.VertexID(0), factory, dijkstra.WithReturnPath(false))
	timer.Stop()
	if err != nil {
		return err
	}

	log.WithField("settled", len(results)).Info(timer.Report())
	return nil
}

func factoryByName(name string) (heap.Factory[int64, graph.VertexID], bool) {
	for _, f := range []heap.Factory[int64, graph.VertexID]{
		{Name: "binary_heap", New: func() heap.Interface[int64, graph.VertexID] { return binary.New[int64, graph.VertexID]() }},
		{Name: "binomial_heap", New: func() heap.Interface[int64, graph.VertexID] { return binomial.New[int64, graph.VertexID]() }},
		{Name: "weak_heap", New: func() heap.Interface[int64, graph.VertexID] { return weak.New[int64, graph.VertexID]() }},
		{Name: "pairing_heap", New: func() heap.Interface[int64, graph.VertexID] { return pairing.New[int64, graph.VertexID]() }},
		{Name: "fibonacci_heap", New: func() heap.Interface[int64, graph.VertexID] { return fibonacci.New[int64, graph.VertexID]() }},
		{Name: "thin_heap", New: func() heap.Interface[int64, graph.VertexID] { return thin.New[int64, graph.VertexID]() }},
		{Name: "two_three_heap", New: func() heap.Interface[int64, graph.VertexID] { return twothree.New[int64, graph.VertexID]() }},
	} {
		if f.Name == name {
			return f, true
		}
	}
	return heap.Factory[int64, graph.VertexID]{}, false
}
