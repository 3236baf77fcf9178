package heap

import "fmt"

// Violation names the specific contract rule a caller broke.
type Violation int

const (
	// DuplicateID means Add was called with an id already present in the heap.
	DuplicateID Violation = iota
	// UnknownID means ReduceKey was called with an id the heap does not hold.
	UnknownID
	// KeyNotDecreased means ReduceKey's newKey was not strictly less than the
	// element's current key.
	KeyNotDecreased
	// EmptyHeap means Min or PopMinimum was called on a heap with no elements.
	EmptyHeap
	// Inconsistent means Validate found a structural invariant broken.
	Inconsistent
)

func (v Violation) String() string {
	switch v {
	case DuplicateID:
		return "duplicate id"
	case UnknownID:
		return "unknown id"
	case KeyNotDecreased:
		return "key not decreased"
	case EmptyHeap:
		return "empty heap"
	case Inconsistent:
		return "inconsistent structure"
	default:
		return "unknown violation"
	}
}

// ContractError is panicked by an Interface implementation when the caller
// breaks one of the invariants documented on Interface. It is never returned
// as an error value: these conditions indicate a bug at the call site, not a
// recoverable runtime condition.
type ContractError struct {
	Violation Violation
	Detail    string
}

func (e *ContractError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("heap: %s", e.Violation)
	}
	return fmt.Sprintf("heap: %s: %s", e.Violation, e.Detail)
}

// Fail panics with a *ContractError built from v and detail. Variant
// implementations call this instead of constructing ContractError directly
// so every violation panics in a uniform shape.
func Fail(v Violation, detail string) {
	panic(&ContractError{Violation: v, Detail: detail})
}

// Failf is Fail with a formatted detail string.
func Failf(v Violation, format string, args ...any) {
	Fail(v, fmt.Sprintf(format, args...))
}
