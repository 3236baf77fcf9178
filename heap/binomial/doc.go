// Package binomial implements the binomial heap variant of heap.Interface:
// a forest of binomial trees, one per set bit of the current size, merged
// the way binary addition carries.
//
// ReduceKey moves (key, id) content up the tree rather than relocating
// nodes, rewriting the id index at each swap.
//
// Complexity (n = current size)
//
//	Add:        O(log n) amortized, O(log n) worst case
//	LookUp:     O(1)
//	Min:        O(1)
//	PopMinimum: O(log n)
//	ReduceKey:  O(log n)
package binomial
