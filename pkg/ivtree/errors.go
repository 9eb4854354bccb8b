package ivtree

import "errors"

// errInvariant is the sentinel CheckInvariants wraps its failure messages
// around, so code in this package can recognise a structural audit
// failure with errors.Is. It is unexported: callers outside the package
// see only the error text.
var errInvariant = errors.New("ivtree: invariant violation")

// InvariantViolation is the panic value raised for every precondition
// violation the container's contract treats as a programmer error: an
// interval with low > high, dereferencing an end iterator, or erasing a
// foreign or already-invalidated handle. None of these are recoverable
// conditions; the container never returns them as an error value. A
// structural audit failure found by CheckInvariants is not a panic: it is
// returned as an error wrapping errInvariant.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string {
	return e.Msg
}

// doAssert panics with msg if condition is false. Used for cheap internal
// sanity checks on hot paths, as opposed to CheckInvariants' exhaustive
// audit.
func doAssert(condition bool, msg string) {
	if !condition {
		panic(&InvariantViolation{Msg: msg})
	}
}
