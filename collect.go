package lazy

// Collect maps each element of src to a sequence and flattens the
// results, preserving order. Each sub-sequence is materialized in
// full when the cursor reaches it, and empty sub-sequences are
// skipped. Errors from a sub-sequence end the flattened sequence and
// are reported by its cursor.
func Collect[T, U any](f func(T) Sequence[U], src Sequence[T]) Sequence[U] {
	invariant(f != nil, "lazy.Collect", "function must not be nil")
	notNil(src, "lazy.Collect")

	return derive(src, func(up Cursor[T]) Cursor[U] {
		return &collectCursor[T, U]{upstream: upstream[T]{up: up}, op: f}
	})
}

type collectCursor[T, U any] struct {
	upstream[T]
	op    func(T) Sequence[U]
	cache []U
	pos   int
}

func (c *collectCursor[T, U]) HasNext() bool {
	for c.pos >= len(c.cache) {
		val, ok := c.pull()
		if !ok {
			c.cache, c.pos = nil, 0
			return false
		}

		sub := c.op(val)
		if sub == nil {
			c.err = errNilSubsequence
			return false
		}

		items, err := ToSlice(sub)
		if err != nil {
			c.err = err
			return false
		}
		c.cache, c.pos = items, 0
	}
	return true
}

func (c *collectCursor[T, U]) Next() (U, error) {
	if !c.HasNext() {
		return stop[U](c.Err())
	}
	val := c.cache[c.pos]
	c.pos++
	return val, nil
}
