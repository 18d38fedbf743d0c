package tensor

import (
	"errors"
	"fmt"
)

// Condition kinds. Every precondition violation aborts the offending
// operation immediately with one of these; no partial result is produced.
var (
	// ErrShapeMismatch reports operand shapes or ranks that violate an
	// operation's documented compatibility rule.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrOutOfRange reports an index, slice bound, or dimension selector
	// exceeding valid bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidArgument reports a structural precondition violation, such
	// as repeating a non-singleton dimension or an empty concatenation.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ConditionError carries the operation name, the violated condition kind,
// and a descriptive message. It is the panic value raised at operation
// boundaries: these are programmer errors, not recoverable failures.
type ConditionError struct {
	Op   string // Operation that detected the violation (e.g. "int_cat").
	Kind error  // One of ErrShapeMismatch, ErrOutOfRange, ErrInvalidArgument.
	Msg  string // Details about the violation.
}

// Error implements the error interface.
func (e *ConditionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Unwrap exposes the condition kind to errors.Is.
func (e *ConditionError) Unwrap() error {
	return e.Kind
}

// Errf panics with a ConditionError for the given operation and kind.
func Errf(op string, kind error, format string, args ...any) {
	panic(&ConditionError{Op: op, Kind: kind, Msg: fmt.Sprintf(format, args...)})
}
