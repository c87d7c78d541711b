package fn

// Integer is the set of primitive integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Constant returns a generator that ignores its position and always
// produces the same value.
func Constant[T any](v T) func(int) T { return func(int) T { return v } }

// Range returns a generator for sequences built with one-based
// ordinals, such that the nth element is start+n-1. Passing it to
// lazy.Init with n elements produces start, start+1, ... start+n-1.
func Range(start int) func(int) int { return func(n int) int { return start - 1 + n } }

// Step returns a generator for positions scaled by a fixed stride,
// useful as the bound function for partitioning.
func Step[T Integer](offset, stride T) func(int) T {
	return func(n int) T { return offset + T(n)*stride }
}

// Square returns the value multiplied by itself.
func Square[T Integer](in T) T { return in * in }
