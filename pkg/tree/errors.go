package tree

import "fmt"

// ContractViolation is the payload panicked with when a caller breaks the
// engine's only documented contract: empty construction, out-of-range
// metric offsets, mismatched depths. It is never returned as an error
// value — callers are expected to satisfy the contract, not to recover
// from it.
type ContractViolation struct {
	Op  string
	Msg string
}

func (e ContractViolation) Error() string {
	return fmt.Sprintf("tree: %s: %s", e.Op, e.Msg)
}

// InvariantViolation is returned by assertInvariants when a structural
// invariant is broken. It is never produced by a normal mutation path;
// it exists purely for tests to call (*Tree).AssertInvariants after every
// public operation.
type InvariantViolation struct {
	Msg string
}

func (e InvariantViolation) Error() string {
	return fmt.Sprintf("tree: invariant violated: %s", e.Msg)
}
