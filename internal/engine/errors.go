package engine

import "errors"

// Sentinel errors surfaced by the matching engine. Anything outside this
// set that escapes a public method is an InvariantViolation and should be
// treated as a matching-engine bug, not a recoverable condition.
var (
	// ErrInvalidOrder is returned when an order fails basic field validation
	// (zero id, non-positive price, negative quantities, or on an iceberg a
	// non-positive peak or a visible slice above the peak).
	ErrInvalidOrder = errors.New("engine: invalid order")

	// ErrDuplicateID is returned when an incoming order's id is already
	// resting in the book. The spec's test corpus guarantees unique ids,
	// but the engine still checks fast rather than silently corrupting a
	// level.
	ErrDuplicateID = errors.New("engine: duplicate order id")
)

// InvariantViolation indicates the matching engine reached a state the
// specification says must never occur (amount > visible in requestTrade,
// negative remaining, and similar). These are matching-engine bugs: the
// engine panics rather than trying to recover from them.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string {
	return "engine: invariant violation: " + e.Msg
}

func panicInvariant(msg string) {
	panic(&InvariantViolation{Msg: msg})
}
