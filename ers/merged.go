package ers

import (
	"errors"
	"strings"
)

// Stack is an ordered collection of errors that behaves as a single
// error. errors.Is and errors.As inspect every member of the stack.
type Stack struct {
	errs []error
}

// Join takes a slice of errors and converts it into a single error. Nil
// errors are dropped: Join returns nil when no errors remain, the
// error itself when one remains, and a *Stack otherwise.
func Join(errs ...error) error {
	s := &Stack{}
	s.Add(errs...)
	return s.Resolve()
}

// Add pushes the errors onto the stack in order, flattening any
// errors that unwrap to a list of errors. Nil errors are ignored.
func (s *Stack) Add(errs ...error) {
	for _, err := range errs {
		s.Push(err)
	}
}

// Push adds a single error to the stack.
func (s *Stack) Push(err error) {
	switch werr := err.(type) {
	case nil:
		return
	case *Stack:
		s.errs = append(s.errs, werr.errs...)
	case interface{ Unwrap() []error }:
		s.Add(werr.Unwrap()...)
	default:
		s.errs = append(s.errs, err)
	}
}

// Len returns the number of errors in the stack.
func (s *Stack) Len() int {
	if s == nil {
		return 0
	}
	return len(s.errs)
}

// Ok returns true when the stack holds no errors.
func (s *Stack) Ok() bool { return s.Len() == 0 }

// Resolve returns nil for an empty stack, the only error of a stack
// of one, and the stack itself otherwise.
func (s *Stack) Resolve() error {
	switch s.Len() {
	case 0:
		return nil
	case 1:
		return s.errs[0]
	default:
		return s
	}
}

// Error produces the aggregated error strings, in the order that the
// errors were added.
func (s *Stack) Error() string {
	if s.Len() == 0 {
		return "<nil>"
	}

	var buf strings.Builder
	for idx, err := range s.errs {
		if idx > 0 {
			buf.WriteString(": ")
		}
		buf.WriteString(err.Error())
	}
	return buf.String()
}

// Unwrap returns the constituent errors, and is compatible with
// errors.Is and errors.As.
func (s *Stack) Unwrap() []error { return s.errs }

// Is reports whether any error in the stack matches the target.
func (s *Stack) Is(target error) bool {
	for _, err := range s.errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
