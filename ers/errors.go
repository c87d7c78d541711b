package ers

import (
	"fmt"
)

// Wrap produces an error that reports the annotation followed by the
// wrapped error's message. Nil errors are never wrapped.
func Wrap(err error, annotation string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", annotation, err)
}

// Wrapf produces a wrapped error with a formatted annotation. Nil
// errors are never wrapped.
func Wrapf(err error, tmpl string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(tmpl, args...), err)
}

// When returns the error if the condition is true, and nil otherwise.
func When(cond bool, err error) error {
	if !cond {
		return nil
	}
	return err
}
