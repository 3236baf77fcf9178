// Package fibonacci implements the Fibonacci heap variant of heap.Interface:
// a circular list of heap-ordered trees consolidated lazily on PopMinimum,
// with marks and cascading cuts keeping ReduceKey's amortized cost O(1).
//
// Complexity (n = current size, amortized unless noted)
//
//	Add:        O(1)
//	LookUp:     O(1)
//	Min:        O(1)
//	PopMinimum: O(log n)
//	ReduceKey:  O(1)
package fibonacci
