package lazy

// Take returns a sequence of at most the first n elements of src.
// Take never pulls more than n elements from upstream, and with n of
// zero it returns an empty sequence without touching src at all.
func Take[T any](n int, src Sequence[T]) Sequence[T] {
	invariant(n >= 0, "lazy.Take", "count must not be negative, got ", n)
	notNil(src, "lazy.Take")

	if n == 0 {
		return Empty[T]()
	}

	return derive(src, func(up Cursor[T]) Cursor[T] {
		return &takeCursor[T]{upstream: upstream[T]{up: up}, limit: n}
	})
}

type takeCursor[T any] struct {
	upstream[T]
	limit int
	count int
}

func (c *takeCursor[T]) HasNext() bool { return c.count < c.limit && c.up.HasNext() }

func (c *takeCursor[T]) Next() (T, error) {
	if c.count >= c.limit {
		return stop[T](nil)
	}

	val, err := c.up.Next()
	if err != nil {
		return stop[T](err)
	}
	c.count++
	return val, nil
}

// TakeWhile returns the leading elements of src for which pred holds.
// The first element that fails the predicate is pulled from upstream
// and discarded, and nothing after it is pulled.
func TakeWhile[T any](pred func(T) bool, src Sequence[T]) Sequence[T] {
	invariant(pred != nil, "lazy.TakeWhile", "predicate must not be nil")
	notNil(src, "lazy.TakeWhile")

	return derive(src, func(up Cursor[T]) Cursor[T] {
		return &takeWhileCursor[T]{upstream: upstream[T]{up: up}, pred: pred}
	})
}

type takeWhileCursor[T any] struct {
	upstream[T]
	pred func(T) bool
	next lookahead[T]
}

func (c *takeWhileCursor[T]) HasNext() bool {
	if c.next.pending() {
		if val, ok := c.pull(); ok && c.pred(val) {
			c.next.set(val)
		} else {
			c.next.finish()
		}
	}
	return c.next.ready()
}

func (c *takeWhileCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return stop[T](c.Err())
	}
	return c.next.take(), nil
}

// Skip returns src without its first n elements. The skipped elements
// are pulled the first time the cursor is asked about its contents;
// if upstream runs out first, the sequence is empty. With n of zero,
// Skip returns src itself.
func Skip[T any](n int, src Sequence[T]) Sequence[T] {
	invariant(n >= 0, "lazy.Skip", "count must not be negative, got ", n)
	notNil(src, "lazy.Skip")

	if n == 0 {
		return src
	}

	return derive(src, func(up Cursor[T]) Cursor[T] {
		return &skipCursor[T]{upstream: upstream[T]{up: up}, remaining: n}
	})
}

type skipCursor[T any] struct {
	upstream[T]
	remaining int
}

func (c *skipCursor[T]) skip() bool {
	for ; c.remaining > 0; c.remaining-- {
		if _, ok := c.pull(); !ok {
			c.remaining = 0
			break
		}
	}
	return !c.failed()
}

func (c *skipCursor[T]) HasNext() bool { return c.skip() && c.up.HasNext() }

func (c *skipCursor[T]) Next() (T, error) {
	if !c.skip() {
		return stop[T](c.Err())
	}
	return c.up.Next()
}

// SkipWhile returns src without its leading elements for which pred
// holds. The first element that fails the predicate is the first
// element of the result; the predicate is not applied to anything
// after it.
func SkipWhile[T any](pred func(T) bool, src Sequence[T]) Sequence[T] {
	invariant(pred != nil, "lazy.SkipWhile", "predicate must not be nil")
	notNil(src, "lazy.SkipWhile")

	return derive(src, func(up Cursor[T]) Cursor[T] {
		return &skipWhileCursor[T]{upstream: upstream[T]{up: up}, pred: pred}
	})
}

type skipWhileCursor[T any] struct {
	upstream[T]
	pred    func(T) bool
	skipped bool
	first   lookahead[T]
}

func (c *skipWhileCursor[T]) skip() {
	if c.skipped {
		return
	}
	c.skipped = true

	for {
		val, ok := c.pull()
		if !ok {
			return
		}
		if !c.pred(val) {
			c.first.set(val)
			return
		}
	}
}

func (c *skipWhileCursor[T]) HasNext() bool {
	c.skip()
	return c.first.ready() || (!c.failed() && c.up.HasNext())
}

func (c *skipWhileCursor[T]) Next() (T, error) {
	c.skip()
	switch {
	case c.first.ready():
		return c.first.take(), nil
	case c.failed():
		return stop[T](c.Err())
	default:
		return c.up.Next()
	}
}

// TakeNAndYield splits src into a materialized prefix of up to n
// elements and a sequence of the rest. The remainder continues the
// same pass over src, from where the prefix ended, and so can only be
// consumed once. When n is not positive the prefix is empty and the
// remainder is src itself, untouched. When src has no elements the
// remainder is empty.
func TakeNAndYield[T any](src Sequence[T], n int) ([]T, Sequence[T], error) {
	notNil(src, "lazy.TakeNAndYield")

	if n <= 0 {
		return []T{}, src, nil
	}

	cur, err := src.Cursor()
	if err != nil {
		return nil, nil, err
	}

	prefix := make([]T, 0, min(n, prefixCapacity))
	for len(prefix) < n && cur.HasNext() {
		val, err := cur.Next()
		if err != nil {
			return nil, nil, err
		}
		prefix = append(prefix, val)
	}

	if err := cur.Err(); err != nil {
		return nil, nil, err
	}

	if len(prefix) == 0 {
		return prefix, Empty[T](), nil
	}

	return prefix, resume(cur), nil
}

// prefixCapacity bounds the preallocation for TakeNAndYield, which
// may be asked for far more elements than the source holds.
const prefixCapacity = 64
