package ers

// ErrInvalidInput is the root of the panics raised when a sequence
// constructor receives an argument it cannot accept: a nil function
// or sequence, or a count or size outside of its permitted range.
const ErrInvalidInput Error = Error("invalid input")

// ErrExhausted is returned by a cursor's Next method when the cursor
// has no more elements.
const ErrExhausted Error = Error("sequence exhausted")

// ErrLengthMismatch is reported by strict zip cursors when the
// underlying sequences disagree about whether another element is
// available.
const ErrLengthMismatch Error = Error("sequence length mismatch")

// ErrUnsupported is returned for operations that a sequence does not
// permit, such as requesting a second cursor from a one-shot
// sequence.
const ErrUnsupported Error = Error("unsupported operation")

// ErrInvariantViolation is the root error of the error object that is
// the content of all panics produced by the invariant helpers.
const ErrInvariantViolation Error = Error("invariant violation")

// ErrRecoveredPanic is at the root of any error returned by a
// function in this module that recovers from a panic.
const ErrRecoveredPanic Error = Error("recovered panic")
