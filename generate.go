package lazy

import (
	"github.com/shaftesbury/lazy/dt"
)

// Init returns a sequence of n elements, where the element at
// one-based ordinal i is f(i). The function is called once per
// element, when the element is pulled.
func Init[T any](f func(int) T, n int) Sequence[T] {
	invariant(f != nil, "lazy.Init", "generator must not be nil")
	invariant(n >= 1, "lazy.Init", "count must be positive, got ", n)

	return func() (Cursor[T], error) { return &initCursor[T]{gen: f, limit: n}, nil }
}

// InitInfinite returns a sequence that never ends, where the element
// at one-based ordinal i is f(i). Consume it with a bounded stage such
// as Take or TakeWhile.
func InitInfinite[T any](f func(int) T) Sequence[T] {
	invariant(f != nil, "lazy.InitInfinite", "generator must not be nil")

	return func() (Cursor[T], error) { return &initCursor[T]{gen: f, limit: -1}, nil }
}

type initCursor[T any] struct {
	gen   func(int) T
	limit int
	count int
}

func (c *initCursor[T]) HasNext() bool { return c.limit < 0 || c.count < c.limit }
func (*initCursor[T]) Err() error      { return nil }

func (c *initCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return stop[T](nil)
	}
	c.count++
	return c.gen(c.count), nil
}

// Unfold returns a sequence generated from a seed. For each element,
// step receives the current state and returns either the element and
// the next state, or an absent value to end the sequence. Step runs
// exactly once per element, and once more to discover the end.
func Unfold[T, S any](step func(S) dt.Optional[dt.Tuple[T, S]], seed S) Sequence[T] {
	invariant(step != nil, "lazy.Unfold", "step function must not be nil")

	return func() (Cursor[T], error) { return &unfoldCursor[T, S]{step: step, state: seed}, nil }
}

type unfoldCursor[T, S any] struct {
	step  func(S) dt.Optional[dt.Tuple[T, S]]
	state S
	next  lookahead[T]
}

func (*unfoldCursor[T, S]) Err() error { return nil }

func (c *unfoldCursor[T, S]) HasNext() bool {
	if c.next.pending() {
		out, ok := c.step(c.state).Get()
		if !ok {
			c.next.finish()
			return false
		}
		val, state := out.Split()
		c.state = state
		c.next.set(val)
	}
	return c.next.ready()
}

func (c *unfoldCursor[T, S]) Next() (T, error) {
	if !c.HasNext() {
		return stop[T](nil)
	}
	return c.next.take(), nil
}

// UnfoldUntil is the two function form of Unfold: finished reports
// whether the state has reached the end of the sequence, and
// otherwise step produces the element and the next state.
func UnfoldUntil[T, S any](step func(S) (T, S), finished func(S) bool, seed S) Sequence[T] {
	invariant(step != nil, "lazy.UnfoldUntil", "step function must not be nil")
	invariant(finished != nil, "lazy.UnfoldUntil", "finished function must not be nil")

	return Unfold(func(state S) dt.Optional[dt.Tuple[T, S]] {
		if finished(state) {
			return dt.None[dt.Tuple[T, S]]()
		}
		val, next := step(state)
		return dt.Some(dt.MakeTuple(val, next))
	}, seed)
}
