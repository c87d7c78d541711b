package ers

import (
	"fmt"
	"strings"
)

// ParsePanic converts a panic to an error, if it is not, and attaching
// the ErrRecoveredPanic error to that error. If no panic is
// detected, ParsePanic returns nil.
func ParsePanic(r any) error {
	if r == nil {
		return nil
	}

	switch err := r.(type) {
	case error:
		return Join(err, ErrRecoveredPanic)
	case string:
		return Join(New(err), ErrRecoveredPanic)
	case []error:
		return Join(Join(err...), ErrRecoveredPanic)
	default:
		return Join(fmt.Errorf("[%T]: %v", err, err), ErrRecoveredPanic)
	}
}

// NewInvariantViolation creates a new error object, which always
// includes ErrInvariantViolation, and which annotates any error
// arguments with the formatted remainder of the arguments.
func NewInvariantViolation(args ...any) error {
	if len(args) == 0 {
		return ErrInvariantViolation
	}

	var (
		errs []error
		rest []any
	)
	for _, arg := range args {
		switch val := arg.(type) {
		case nil:
		case error:
			errs = append(errs, val)
		default:
			rest = append(rest, val)
		}
	}

	if len(rest) > 0 {
		errs = append([]error{New(strings.TrimSpace(fmt.Sprintln(rest...)))}, errs...)
	}

	return Join(append(errs, ErrInvariantViolation)...)
}

// WithRecoverCall runs a function without arguments that does not
// produce an error and, if the function panics, converts it into an
// error.
func WithRecoverCall(fn func()) (err error) {
	defer func() { err = ParsePanic(recover()) }()
	fn()
	return
}

// WithRecoverDo runs a function with a panic handler that converts
// the panic to an error.
func WithRecoverDo[T any](fn func() T) (out T, err error) {
	defer func() { err = ParsePanic(recover()) }()
	out = fn()
	return
}
