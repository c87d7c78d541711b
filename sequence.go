// Package lazy provides pull-based lazy sequences and the combinators
// that build them: generators, map and filter stages, windows,
// concatenation, zipping, flattening, range partitioning, and the
// materializers that drain a sequence into a slice, set, or single
// value.
//
// A Sequence is an immutable description of a computation. Nothing
// runs when a sequence is built; elements are computed only when a
// Cursor pulls them, and each element is computed at most once per
// cursor. Most sequences are restartable: every call to Cursor starts
// a fresh, independent pass. One-shot sequences (OneShot, Reverse,
// EveryNth and the remainder returned by TakeNAndYield) fail the
// second call to Cursor with ers.ErrUnsupported.
//
// Invalid arguments (nil functions or sequences, negative counts) are
// programmer errors: combinators check them when the sequence is
// built and panic with an error that matches both ers.ErrInvalidInput
// and ers.ErrInvariantViolation. Conditions that arise while
// consuming a sequence are returned as errors.
//
// Cursors are not safe for concurrent use.
package lazy

import (
	"iter"

	"github.com/shaftesbury/lazy/ers"
)

// Cursor is a single pass over a Sequence.
//
// HasNext reports whether another element is available. It is
// idempotent: calling it repeatedly without an intervening Next
// neither advances the cursor nor recomputes anything. HasNext may do
// work, pulling and caching elements from upstream.
//
// Next returns the next element. It may be called without a
// preceding HasNext. Past the end of the sequence Next returns
// ers.ErrExhausted, or the error reported by Err.
//
// Err returns the error, if any, that caused HasNext to report false,
// such as a length mismatch between zipped sequences. Err returns nil
// for a cursor that reached the end normally.
type Cursor[T any] interface {
	HasNext() bool
	Next() (T, error)
	Err() error
}

// Sequence describes a lazily computed series of values. Calling the
// sequence (or its Cursor method) produces a cursor positioned before
// the first element; it does not compute any elements.
type Sequence[T any] func() (Cursor[T], error)

// Cursor starts a new pass over the sequence.
func (s Sequence[T]) Cursor() (Cursor[T], error) {
	if s == nil {
		return nil, ers.Wrap(ers.ErrInvalidInput, "nil sequence")
	}
	return s()
}

// Iterator adapts the sequence for use with range-over-func loops. Each
// element is yielded with a nil error. If the sequence cannot be
// started, or the cursor fails part of the way through, the iterator
// yields a single zero value with the error and stops.
func (s Sequence[T]) Iterator() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		cur, err := s.Cursor()
		if err != nil {
			yield(zero, err)
			return
		}

		for cur.HasNext() {
			val, err := cur.Next()
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(val, nil) {
				return
			}
		}

		if err := cur.Err(); err != nil {
			yield(zero, err)
		}
	}
}

// Filter is the method form of the Filter function.
func (s Sequence[T]) Filter(pred func(T) bool) Sequence[T] { return Filter(pred, s) }

// Take is the method form of the Take function.
func (s Sequence[T]) Take(n int) Sequence[T] { return Take(n, s) }

// TakeWhile is the method form of the TakeWhile function.
func (s Sequence[T]) TakeWhile(pred func(T) bool) Sequence[T] { return TakeWhile(pred, s) }

// Skip is the method form of the Skip function.
func (s Sequence[T]) Skip(n int) Sequence[T] { return Skip(n, s) }

// SkipWhile is the method form of the SkipWhile function.
func (s Sequence[T]) SkipWhile(pred func(T) bool) Sequence[T] { return SkipWhile(pred, s) }

// Concat returns the elements of s followed by those of next.
func (s Sequence[T]) Concat(next Sequence[T]) Sequence[T] { return Concat(s, next) }

// Append returns s with the item added after its last element.
func (s Sequence[T]) Append(item T) Sequence[T] { return Append(s, item) }

// EveryNth is the method form of the EveryNth function.
func (s Sequence[T]) EveryNth(step int) Sequence[T] { return EveryNth(step, s) }

// OneShot is the method form of the OneShot function.
func (s Sequence[T]) OneShot() Sequence[T] { return OneShot(s) }

// Slice collects the sequence with ToSlice.
func (s Sequence[T]) Slice() ([]T, error) { return ToSlice(s) }

// Count counts the elements of the sequence.
func (s Sequence[T]) Count() (int, error) { return Count(s) }

// Empty returns a restartable sequence with no elements.
func Empty[T any]() Sequence[T] { return Slice[T](nil) }

// Slice returns a restartable sequence over the elements of the slice.
// The sequence reads the slice as it is when each cursor advances, so
// callers should not modify the slice while the sequence is in use.
func Slice[T any](in []T) Sequence[T] {
	return func() (Cursor[T], error) { return &sliceCursor[T]{vals: in}, nil }
}

// Values returns a restartable sequence over its arguments.
func Values[T any](in ...T) Sequence[T] { return Slice(in) }

type sliceCursor[T any] struct {
	vals []T
	idx  int
}

func (c *sliceCursor[T]) HasNext() bool { return c.idx < len(c.vals) }
func (*sliceCursor[T]) Err() error      { return nil }

func (c *sliceCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return stop[T](nil)
	}
	val := c.vals[c.idx]
	c.idx++
	return val, nil
}
