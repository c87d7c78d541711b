package lazy

import (
	"slices"

	"github.com/shaftesbury/lazy/dt"
	"github.com/shaftesbury/lazy/ers"
	"github.com/shaftesbury/lazy/ft"
)

// Concat returns the elements of a followed by the elements of b. The
// cursor for b is not created until a is exhausted.
func Concat[T any](a, b Sequence[T]) Sequence[T] {
	notNil(a, "lazy.Concat")
	notNil(b, "lazy.Concat")

	return ConcatAll(a, b)
}

// ConcatAll returns the elements of each sequence in turn.
func ConcatAll[T any](seqs ...Sequence[T]) Sequence[T] {
	for _, seq := range seqs {
		notNil(seq, "lazy.ConcatAll")
	}

	return func() (Cursor[T], error) { return &chainCursor[T]{seqs: seqs}, nil }
}

// Append returns src followed by a single item.
func Append[T any](src Sequence[T], item T) Sequence[T] {
	notNil(src, "lazy.Append")
	return ConcatAll(src, Values(item))
}

// Prepend returns a single item followed by src.
func Prepend[T any](item T, src Sequence[T]) Sequence[T] {
	notNil(src, "lazy.Prepend")
	return ConcatAll(Values(item), src)
}

type chainCursor[T any] struct {
	seqs []Sequence[T]
	cur  Cursor[T]
	err  error
}

// advance moves to the next sequence that has an element, creating
// cursors only as they are needed.
func (c *chainCursor[T]) advance() bool {
	for c.err == nil {
		if c.cur != nil {
			if c.cur.HasNext() {
				return true
			}
			if err := c.cur.Err(); err != nil {
				c.err = err
				return false
			}
		}

		if len(c.seqs) == 0 {
			return false
		}

		c.cur, c.err = c.seqs[0].Cursor()
		c.seqs = c.seqs[1:]
	}
	return false
}

func (c *chainCursor[T]) HasNext() bool { return c.advance() }
func (c *chainCursor[T]) Err() error    { return c.err }

func (c *chainCursor[T]) Next() (T, error) {
	if !c.advance() {
		return stop[T](c.err)
	}
	return c.cur.Next()
}

// Zip pairs the elements of a and b by position. Both sequences must
// have the same length: when one runs out before the other, the zipped
// sequence ends and its cursor reports ers.ErrLengthMismatch.
func Zip[A, B any](a Sequence[A], b Sequence[B]) Sequence[dt.Tuple[A, B]] {
	notNil(a, "lazy.Zip")
	notNil(b, "lazy.Zip")

	return func() (Cursor[dt.Tuple[A, B]], error) {
		ca, cb, err := cursors2(a, b)
		if err != nil {
			return nil, err
		}
		return &zipCursor[A, B]{a: ca, b: cb}, nil
	}
}

type zipCursor[A, B any] struct {
	a   Cursor[A]
	b   Cursor[B]
	err error
}

func (c *zipCursor[A, B]) Err() error { return ft.First(c.err, c.a.Err(), c.b.Err()) }

func (c *zipCursor[A, B]) HasNext() bool {
	if c.err != nil {
		return false
	}
	ha, hb := c.a.HasNext(), c.b.HasNext()
	if ha && hb {
		return true
	}
	c.err = ft.First(c.a.Err(), c.b.Err(), agree("lazy.Zip", ha, hb))
	return false
}

func (c *zipCursor[A, B]) Next() (out dt.Tuple[A, B], err error) {
	if !c.HasNext() {
		return stop[dt.Tuple[A, B]](c.Err())
	}
	if out.One, err = c.a.Next(); err != nil {
		return out, err
	}
	if out.Two, err = c.b.Next(); err != nil {
		return out, err
	}
	return out, nil
}

// Zip3 is Zip for three sequences, producing triples.
func Zip3[A, B, C any](a Sequence[A], b Sequence[B], c Sequence[C]) Sequence[dt.Triple[A, B, C]] {
	notNil(a, "lazy.Zip3")
	notNil(b, "lazy.Zip3")
	notNil(c, "lazy.Zip3")

	return func() (Cursor[dt.Triple[A, B, C]], error) {
		ca, cb, err := cursors2(a, b)
		if err != nil {
			return nil, err
		}
		cc, err := c.Cursor()
		if err != nil {
			return nil, err
		}
		return &zip3Cursor[A, B, C]{a: ca, b: cb, c: cc}, nil
	}
}

type zip3Cursor[A, B, C any] struct {
	a   Cursor[A]
	b   Cursor[B]
	c   Cursor[C]
	err error
}

func (z *zip3Cursor[A, B, C]) Err() error {
	return ft.First(z.err, z.a.Err(), z.b.Err(), z.c.Err())
}

func (z *zip3Cursor[A, B, C]) HasNext() bool {
	if z.err != nil {
		return false
	}
	ha, hb, hc := z.a.HasNext(), z.b.HasNext(), z.c.HasNext()
	if ha && hb && hc {
		return true
	}
	z.err = ft.First(z.a.Err(), z.b.Err(), z.c.Err(), agree("lazy.Zip3", ha, hb, hc))
	return false
}

func (z *zip3Cursor[A, B, C]) Next() (out dt.Triple[A, B, C], err error) {
	if !z.HasNext() {
		return stop[dt.Triple[A, B, C]](z.Err())
	}
	if out.One, err = z.a.Next(); err != nil {
		return out, err
	}
	if out.Two, err = z.b.Next(); err != nil {
		return out, err
	}
	if out.Three, err = z.c.Next(); err != nil {
		return out, err
	}
	return out, nil
}

// ZipShortest pairs the elements of a and b by position, ending as
// soon as either sequence ends. Sequence b is not consulted once a has
// run out.
func ZipShortest[A, B any](a Sequence[A], b Sequence[B]) Sequence[dt.Tuple[A, B]] {
	notNil(a, "lazy.ZipShortest")
	notNil(b, "lazy.ZipShortest")

	return func() (Cursor[dt.Tuple[A, B]], error) {
		ca, cb, err := cursors2(a, b)
		if err != nil {
			return nil, err
		}
		return &zipShortestCursor[A, B]{zipCursor[A, B]{a: ca, b: cb}}, nil
	}
}

type zipShortestCursor[A, B any] struct{ zipCursor[A, B] }

func (c *zipShortestCursor[A, B]) HasNext() bool { return c.a.HasNext() && c.b.HasNext() }

func (c *zipShortestCursor[A, B]) Next() (out dt.Tuple[A, B], err error) {
	if !c.HasNext() {
		return stop[dt.Tuple[A, B]](c.Err())
	}
	if out.One, err = c.a.Next(); err != nil {
		return out, err
	}
	if out.Two, err = c.b.Next(); err != nil {
		return out, err
	}
	return out, nil
}

func cursors2[A, B any](a Sequence[A], b Sequence[B]) (Cursor[A], Cursor[B], error) {
	ca, err := a.Cursor()
	if err != nil {
		return nil, nil, err
	}
	cb, err := b.Cursor()
	if err != nil {
		return nil, nil, err
	}
	return ca, cb, nil
}

// agree returns a length mismatch error unless every cursor gave the
// same answer to HasNext.
func agree(op string, has ...bool) error {
	ahead, behind := slices.Index(has, true), slices.Index(has, false)
	return ers.When(ahead >= 0 && behind >= 0,
		ers.Wrapf(ers.ErrLengthMismatch, "%s: input %d ended before input %d", op, behind, ahead))
}
