// Package pqheaps is a library of addressable priority queues (min-heaps)
// and the shortest-path drivers built on top of them.
//
// What
//
//   - Seven interchangeable heap variants — Binary, Binomial, Weak, Pairing,
//     Fibonacci, Thin and Two-Three — each satisfying one shared contract:
//     Add, LookUp, Min, PopMinimum, ReduceKey, Validate.
//   - An immutable weighted directed graph (package graph) with dense,
//     zero-based vertex and edge identifiers.
//   - A Dijkstra driver (package dijkstra) that runs shortest path over any
//     graph using whichever heap variant is plugged in via heap.Factory.
//   - A BFS oracle (package bfs) used only to cross-check Dijkstra on small
//     graphs; it is not a general shortest-path algorithm.
//
// Why
//
//   - The seven variants trade different asymptotic bounds for Add and
//     ReduceKey; swapping the heap factory passed to dijkstra.Run lets
//     callers pick the trade-off that fits their graph without touching
//     the shortest-path code.
//
// Under the hood, everything is organized under:
//
//	heap/            — the shared Interface, Element and Factory types
//	heap/binary/      heap/binomial/    heap/weak/    heap/pairing/
//	heap/fibonacci/   heap/thin/        heap/twothree/
//	graph/           — vertices, edges, weights, builder
//	dijkstra/        — shortest-path driver
//	bfs/             — oracle for cross-checking small inputs
//	internal/randgraph/ — deterministic random graph generation for tests
//	internal/perf/       — timing helper used by the benchmark binary
//	cmd/heaptest/        — validation harness over every registered variant
//	cmd/heapperf/        — per-variant timing binary
package pqheaps
