// Package graph provides an immutable weighted directed graph with dense,
// zero-based vertex and edge identifiers.
//
// What
//
//   - Build a graph incrementally with Builder: AddVertex, AddEdge,
//     SetWeight, then Build.
//   - Query an assembled Graph with NumVertices, NumEdges, Edges, Weight.
//   - Properties[W] is the generic sparse-with-default table backing edge
//     weights; it is exported so other per-edge or per-vertex annotations
//     can reuse it.
//
// Why
//
//   - dijkstra.Run and bfs.Run are written against *Graph, never against a
//     Builder, so a graph can be shared safely across multiple shortest-path
//     runs without any risk of one run observing another's in-progress
//     edits.
//
// Determinism
//
//	Vertex and edge ids are assigned in call order, and Edges(v) returns
//	edges in ascending EdgeID order, so two runs fed identical Builder call
//	sequences produce identical graphs.
//
// Errors
//
//   - Builder.AddEdge and Graph.Edges panic on an out-of-range VertexID —
//     this indicates a bug at the call site, not a recoverable condition.
//     Graph.Weight does not check its EdgeID: any id without an explicit
//     weight, in range or not, yields the default weight.
//   - Builder.SetWeight returns ErrNegativeWeight instead of panicking,
//     since a negative weight is an ordinary input validation failure a
//     caller building a graph from untrusted data may need to recover
//     from.
package graph
