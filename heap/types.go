package heap

import "cmp"

// Element is one (key, id) pair held by a heap. Key orders elements;
// Id is the caller-chosen handle used by LookUp and ReduceKey.
type Element[K cmp.Ordered, I comparable] struct {
	Key K
	ID  I
}

// Interface is the contract every variant in this repository satisfies.
// K is constrained to cmp.Ordered so ordering falls out of Go's built-in
// comparison operators; only the strict less-than relation is ever used.
// I is comparable so it can key the variant's internal id index.
//
// Add, ReduceKey, Min and PopMinimum panic with a *ContractError when the
// caller breaks an invariant (duplicate id, unknown id, key not strictly
// decreased, or operating on an empty heap) — these are caller bugs, not
// recoverable conditions. LookUp is the only soft-failure operation.
type Interface[K cmp.Ordered, I comparable] interface {
	// Size returns the number of elements currently held.
	Size() int

	// Empty reports whether Size() == 0.
	Empty() bool

	// Add inserts a new (key, id) pair. Panics with DuplicateID if id is
	// already present.
	Add(key K, id I)

	// LookUp returns the current key for id and true, or the zero value
	// and false if id is not present. Never panics.
	LookUp(id I) (K, bool)

	// Min returns the element with the smallest key without removing it.
	// Panics with EmptyHeap if the heap holds no elements.
	Min() Element[K, I]

	// PopMinimum removes and returns the element with the smallest key.
	// Panics with EmptyHeap if the heap holds no elements.
	PopMinimum() Element[K, I]

	// ReduceKey lowers the key associated with id to newKey. Panics with
	// UnknownID if id is absent, or KeyNotDecreased if newKey is not
	// strictly less than the element's current key.
	ReduceKey(newKey K, id I)

	// Validate walks the heap's internal structure and panics with
	// Inconsistent if any structural invariant is broken. Intended for
	// tests, not production call paths.
	Validate()
}

// Factory pairs a human-readable variant name with a constructor, so test
// and benchmark harnesses can enumerate every registered heap variant
// uniformly instead of hard-coding a type per variant.
type Factory[K cmp.Ordered, I comparable] struct {
	Name string
	New  func() Interface[K, I]
}
