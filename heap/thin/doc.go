// Package thin implements the thin heap variant of heap.Interface: trees
// indexed by rank like a Fibonacci heap, but ReduceKey eagerly repairs
// ranks along the ancestor chain (lowerRank) instead of deferring the work
// to marks and cascading cuts.
//
// Validate checks heap order and id-index consistency; it does not replay
// the full rank invariant, which is a property of the repair algorithm
// rather than something a cheap structural walk can verify independently.
//
// Complexity (n = current size, amortized)
//
//	Add:        O(1)
//	LookUp:     O(1)
//	Min:        O(1)
//	PopMinimum: O(log n)
//	ReduceKey:  O(1)
package thin
