// Package heap declares the shared contract implemented by every addressable
// priority queue variant in this repository: heap/binary, heap/binomial,
// heap/weak, heap/pairing, heap/fibonacci, heap/thin and heap/twothree.
//
// What
//
//   - Element[K, I] is a (key, id) pair.
//   - Interface[K, I] is the uniform operation set: Size, Empty, Add, LookUp,
//     Min, PopMinimum, ReduceKey, Validate.
//   - Factory[K, I] pairs a name with a constructor so callers (and the
//     cmd/heaptest and cmd/heapperf binaries) can iterate every variant
//     without a type switch.
//
// Why
//
//   - dijkstra.Run is written once against Interface[int64, graph.VertexID];
//     any variant can be swapped in by passing a different Factory, letting
//     callers choose the Add/ReduceKey asymptotic trade-off that fits their
//     graph shape without touching the shortest-path code.
//
// Errors
//
//   - Add, Min, PopMinimum and ReduceKey panic with a *ContractError when the
//     caller breaks an invariant (duplicate id, unknown id, key not strictly
//     decreased, empty heap). These are caller bugs, not recoverable
//     conditions, so they are never surfaced as a returned error.
//   - LookUp is the single soft-failure operation: it returns (zero, false)
//     for an absent id instead of panicking.
//   - Validate panics with Inconsistent when a variant's internal structure
//     no longer satisfies its own invariants; it exists for tests.
package heap
