// Package binary is the array-backed binary min-heap variant of
// heap.Interface: elements live in a slice in level order, with an id→index
// map kept in lockstep so LookUp and ReduceKey run in O(log n).
//
// Complexity (n = current size)
//
//	Add:        O(log n)
//	LookUp:     O(1)
//	Min:        O(1)
//	PopMinimum: O(log n)
//	ReduceKey:  O(log n)
package binary
