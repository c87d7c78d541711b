// Package ft provides small generic helpers for choosing between
// values, used throughout the sequence stages to pick sticky errors
// and defaults without repeating the same conditionals.
package ft

// Zero returns the zero value for the type.
func Zero[T any]() (zero T) { return zero }

// IsZero reports whether the value is the zero value for its type.
func IsZero[T comparable](in T) bool { return in == Zero[T]() }

// IfValue returns ifVal when the condition is true and elseVal
// otherwise.
func IfValue[T any](cond bool, ifVal T, elseVal T) T {
	if cond {
		return ifVal
	}
	return elseVal
}

// Default returns the input unless it is the zero value, in which
// case it returns the alternate.
func Default[T comparable](input T, alt T) T { return IfValue(IsZero(input), alt, input) }

// First returns the first of its arguments that is not the zero
// value, or the zero value if they all are.
func First[T comparable](in ...T) T {
	for _, val := range in {
		if !IsZero(val) {
			return val
		}
	}
	return Zero[T]()
}
