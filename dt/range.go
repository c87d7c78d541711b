package dt

import (
	"cmp"
	"fmt"
)

// Range holds an inclusive lower bound and an exclusive upper bound:
// a position p is in the range when Lower <= p < Upper. Ranges are not
// validated on construction; producers are responsible for keeping
// Lower <= Upper.
type Range[T any] struct {
	Lower T `json:"lower"`
	Upper T `json:"upper"`
}

// MakeRange constructs a range from its lower (inclusive) and upper
// (exclusive) bounds.
func MakeRange[T any](lower, upper T) Range[T] { return Range[T]{Lower: lower, Upper: upper} }

func (r Range[T]) From() T        { return r.Lower }
func (r Range[T]) To() T          { return r.Upper }
func (r Range[T]) String() string { return fmt.Sprintf("[%v, %v)", r.Lower, r.Upper) }

// Contains reports whether the value falls within the range.
func Contains[T cmp.Ordered](r Range[T], v T) bool { return r.Lower <= v && v < r.Upper }

// Size returns the number of integer positions in the range.
func Size[T integer](r Range[T]) T { return r.Upper - r.Lower }
