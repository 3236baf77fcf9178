// Package twothree implements the two-three heap variant of heap.Interface:
// one primary root per dimension plus, optionally, a secondary trunk-mate
// attached alongside it, instead of the single root per rank that binomial
// and Fibonacci heaps keep.
//
// Validate checks heap order, parent/child ring consistency and partner
// symmetry; it does not check the secondary-versus-grandparent bound that
// the full textbook invariant specifies, since PopMinimum and ReduceKey
// already scan both trunk members for minimality and never rely on that
// bound for correctness here.
//
// Complexity (n = current size, amortized)
//
//	Add:        O(1)
//	LookUp:     O(1)
//	Min:        O(1)
//	PopMinimum: O(log n)
//	ReduceKey:  O(1)
package twothree
