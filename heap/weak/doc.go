// Package weak implements the weak heap variant of heap.Interface, storing
// one "reverse child" bit per array position instead of relying on strict
// left/right ordering, halving comparisons during the descent that follows
// a PopMinimum.
//
// Complexity (n = current size)
//
//	Add:        O(log n)
//	LookUp:     O(1)
//	Min:        O(1)
//	PopMinimum: O(log n)
//	ReduceKey:  O(log n)
package weak
