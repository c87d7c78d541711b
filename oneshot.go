package lazy

import (
	"sync/atomic"

	"github.com/shaftesbury/lazy/ers"
)

// OneShot wraps src so that it can produce only one cursor. Later
// calls to Cursor return ers.ErrUnsupported.
func OneShot[T any](src Sequence[T]) Sequence[T] {
	notNil(src, "lazy.OneShot")

	used := &atomic.Bool{}
	return func() (Cursor[T], error) {
		if !used.CompareAndSwap(false, true) {
			return nil, errSecondCursor
		}
		return src.Cursor()
	}
}

// resume converts an in-progress cursor back into a sequence, which
// necessarily can only be consumed once.
func resume[T any](cur Cursor[T]) Sequence[T] {
	return OneShot(func() (Cursor[T], error) { return cur, nil })
}

// Reverse returns a one-shot sequence of the elements of the slice in
// reverse order. The slice must not be empty.
func Reverse[T any](in []T) Sequence[T] {
	invariant(len(in) > 0, "lazy.Reverse", "slice must not be empty")

	return OneShot(func() (Cursor[T], error) { return &reverseCursor[T]{vals: in, idx: len(in)}, nil })
}

type reverseCursor[T any] struct {
	vals []T
	idx  int
}

func (c *reverseCursor[T]) HasNext() bool { return c.idx > 0 }
func (*reverseCursor[T]) Err() error      { return nil }

func (c *reverseCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return stop[T](nil)
	}
	c.idx--
	return c.vals[c.idx], nil
}

// EveryNth returns a one-shot sequence of the first element of src
// followed by every step-th element after it. A step of one yields
// every element.
func EveryNth[T any](step int, src Sequence[T]) Sequence[T] {
	invariant(step >= 1, "lazy.EveryNth", "step must be positive, got ", step)
	notNil(src, "lazy.EveryNth")

	return OneShot(derive(src, func(up Cursor[T]) Cursor[T] {
		return &everyNthCursor[T]{upstream: upstream[T]{up: up}, step: step}
	}))
}

type everyNthCursor[T any] struct {
	upstream[T]
	step    int
	started bool
	next    lookahead[T]
}

func (c *everyNthCursor[T]) HasNext() bool {
	if !c.next.pending() {
		return c.next.ready()
	}

	if c.started {
		for range c.step - 1 {
			if _, ok := c.pull(); !ok {
				c.next.finish()
				return false
			}
		}
	}

	val, ok := c.pull()
	if !ok {
		c.next.finish()
		return false
	}
	c.started = true
	c.next.set(val)
	return true
}

func (c *everyNthCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return stop[T](c.Err())
	}
	return c.next.take(), nil
}

var (
	errSecondCursor   = ers.Wrap(ers.ErrUnsupported, "one-shot sequence cannot produce a second cursor")
	errNilSubsequence = ers.Wrap(ers.ErrInvalidInput, "lazy.Collect: function returned a nil sequence")
)
