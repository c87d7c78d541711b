package lazy

import (
	"github.com/shaftesbury/lazy/dt"
)

// Map returns a sequence of f applied to each element of src. The
// function runs once per element, when that element is pulled.
func Map[T, U any](f func(T) U, src Sequence[T]) Sequence[U] {
	invariant(f != nil, "lazy.Map", "function must not be nil")
	notNil(src, "lazy.Map")

	return derive(src, func(up Cursor[T]) Cursor[U] {
		return &mapCursor[T, U]{upstream: upstream[T]{up: up}, op: f}
	})
}

type mapCursor[T, U any] struct {
	upstream[T]
	op func(T) U
}

func (c *mapCursor[T, U]) HasNext() bool { return c.up.HasNext() }

func (c *mapCursor[T, U]) Next() (U, error) {
	val, err := c.up.Next()
	if err != nil {
		return stop[U](err)
	}
	return c.op(val), nil
}

// MapIndexed is Map where the function also receives the zero-based
// position of the element.
func MapIndexed[T, U any](f func(int, T) U, src Sequence[T]) Sequence[U] {
	invariant(f != nil, "lazy.MapIndexed", "function must not be nil")
	notNil(src, "lazy.MapIndexed")

	return derive(src, func(up Cursor[T]) Cursor[U] {
		idx := -1
		return &mapCursor[T, U]{
			upstream: upstream[T]{up: up},
			op:       func(in T) U { idx++; return f(idx, in) },
		}
	})
}

// Filter returns a sequence of the elements of src for which pred
// holds. HasNext pulls from upstream until it finds a match and holds
// that element until the next call to Next.
func Filter[T any](pred func(T) bool, src Sequence[T]) Sequence[T] {
	invariant(pred != nil, "lazy.Filter", "predicate must not be nil")
	notNil(src, "lazy.Filter")

	return Choose(func(in T) dt.Optional[T] { return dt.MakeOptional(in, pred(in)) }, src)
}

// Choose applies f to each element of src, and returns the values of
// the present results, skipping the absent ones. The function runs
// exactly once per upstream element.
func Choose[T, U any](f func(T) dt.Optional[U], src Sequence[T]) Sequence[U] {
	invariant(f != nil, "lazy.Choose", "function must not be nil")
	notNil(src, "lazy.Choose")

	return derive(src, func(up Cursor[T]) Cursor[U] {
		return &chooseCursor[T, U]{upstream: upstream[T]{up: up}, op: f}
	})
}

type chooseCursor[T, U any] struct {
	upstream[T]
	op   func(T) dt.Optional[U]
	next lookahead[U]
}

func (c *chooseCursor[T, U]) HasNext() bool {
	for c.next.pending() {
		val, ok := c.pull()
		if !ok {
			c.next.finish()
			break
		}
		if out, ok := c.op(val).Get(); ok {
			c.next.set(out)
		}
	}
	return c.next.ready()
}

func (c *chooseCursor[T, U]) Next() (U, error) {
	if !c.HasNext() {
		return stop[U](c.Err())
	}
	return c.next.take(), nil
}
