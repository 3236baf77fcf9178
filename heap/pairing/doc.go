// Package pairing implements the pairing heap variant of heap.Interface: a
// single multiway tree, with children consolidated into one tree using the
// two-pass pairing merge whenever the root is removed.
//
// Complexity (n = current size, amortized)
//
//	Add:        O(1)
//	LookUp:     O(1)
//	Min:        O(1)
//	PopMinimum: O(log n)
//	ReduceKey:  O(log n)
package pairing
