package lazy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"

	"github.com/shaftesbury/lazy/dt"
	"github.com/shaftesbury/lazy/ers"
	"github.com/shaftesbury/lazy/fn"
)

func TestConcat(t *testing.T) {
	t.Run("Order", func(t *testing.T) {
		assert.DeepEqual(t, drain(t, Concat(Values(1, 2), Values(3))), []int{1, 2, 3})
		assert.DeepEqual(t, drain(t, Concat(Empty[int](), Values(3))), []int{3})
		assert.DeepEqual(t, drain(t, Concat(Values(1), Empty[int]())), []int{1})
	})
	t.Run("SecondUntouchedUntilFirstDrained", func(t *testing.T) {
		second, cursors, pulls := tracked(3, 4)
		cur, err := Concat(Values(1, 2), second).Cursor()
		assert.NilError(t, err)

		for range 2 {
			assert.Check(t, cur.HasNext())
			_, err := cur.Next()
			assert.NilError(t, err)
		}
		cursors.Expect(t, 0)

		assert.Check(t, cur.HasNext())
		cursors.Expect(t, 1)
		pulls.Expect(t, 0)

		val, err := cur.Next()
		assert.NilError(t, err)
		assert.Equal(t, val, 3)
	})
	t.Run("All", func(t *testing.T) {
		seq := ConcatAll(Values(1), Empty[int](), Values(2, 3), Empty[int]())
		assert.DeepEqual(t, drain(t, seq), []int{1, 2, 3})
		assert.DeepEqual(t, drain(t, seq), []int{1, 2, 3})
		assert.DeepEqual(t, drain(t, ConcatAll[int]()), []int{})
	})
	t.Run("AppendPrepend", func(t *testing.T) {
		assert.DeepEqual(t, drain(t, Append(Values(1, 2), 3)), []int{1, 2, 3})
		assert.DeepEqual(t, drain(t, Prepend(0, Values(1, 2))), []int{0, 1, 2})
		assert.DeepEqual(t, drain(t, Append(Empty[int](), 3)), []int{3})
	})
	t.Run("ErrorFromOneShot", func(t *testing.T) {
		once := OneShot(Values(1))
		seq := Concat(once, once)
		_, err := ToSlice(seq)
		assert.ErrorIs(t, err, ers.ErrUnsupported)
	})
	t.Run("Invalid", func(t *testing.T) {
		expectInvalid(t, "lazy.Concat", func() { Concat(Values(1), nil) })
		expectInvalid(t, "lazy.ConcatAll", func() { ConcatAll(Values(1), nil) })
		expectInvalid(t, "lazy.Append", func() { Append(nil, 1) })
	})
}

func TestZip(t *testing.T) {
	t.Run("Pairs", func(t *testing.T) {
		out := drain(t, Zip(Values(1, 2, 3), Values("a", "b", "c")))
		expected := []dt.Tuple[int, string]{
			dt.MakeTuple(1, "a"),
			dt.MakeTuple(2, "b"),
			dt.MakeTuple(3, "c"),
		}
		if diff := cmp.Diff(expected, out); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, len(drain(t, Zip(Empty[int](), Empty[string]()))), 0)
	})
	t.Run("MismatchTiming", func(t *testing.T) {
		cur, err := Zip(Values(1, 2, 3), Values(1, 2)).Cursor()
		assert.NilError(t, err)

		for _, expected := range []int{1, 2} {
			assert.Check(t, cur.HasNext())
			assert.NilError(t, cur.Err())
			val, err := cur.Next()
			assert.NilError(t, err)
			assert.Equal(t, val, dt.MakeTuple(expected, expected))
		}

		assert.Check(t, !cur.HasNext())
		assert.ErrorIs(t, cur.Err(), ers.ErrLengthMismatch)
		assert.ErrorContains(t, cur.Err(), "lazy.Zip")

		_, err = cur.Next()
		assert.ErrorIs(t, err, ers.ErrLengthMismatch)
		assert.Check(t, !cur.HasNext())
	})
	t.Run("MismatchEitherSide", func(t *testing.T) {
		_, err := ToSlice(Zip(Values(1), Values(1, 2)))
		assert.ErrorIs(t, err, ers.ErrLengthMismatch)
		_, err = ToSlice(Zip(Empty[int](), Values(1)))
		assert.ErrorIs(t, err, ers.ErrLengthMismatch)
	})
	t.Run("MismatchPropagates", func(t *testing.T) {
		seq := Map(func(tp dt.Tuple[int, int]) int { return tp.One + tp.Two }, Zip(Values(1, 2, 3), Values(1, 2)))
		out, err := ToSlice(Filter(fn.IsEven[int], seq))
		assert.ErrorIs(t, err, ers.ErrLengthMismatch)
		assert.Check(t, out == nil)
	})
	t.Run("Infinite", func(t *testing.T) {
		seq := Take(3, Zip(InitInfinite(fn.Range(1)), InitInfinite(fn.Constant("x"))))
		out := drain(t, seq)
		assert.Equal(t, len(out), 3)
		assert.Equal(t, out[2], dt.MakeTuple(3, "x"))
	})
	t.Run("Invalid", func(t *testing.T) {
		expectInvalid(t, "lazy.Zip", func() { Zip[int, int](nil, Values(1)) })
	})
}

func TestZip3(t *testing.T) {
	t.Run("Triples", func(t *testing.T) {
		out := drain(t, Zip3(Values(1, 2), Values("a", "b"), Values(true, false)))
		expected := []dt.Triple[int, string, bool]{
			dt.MakeTriple(1, "a", true),
			dt.MakeTriple(2, "b", false),
		}
		if diff := cmp.Diff(expected, out); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("Mismatch", func(t *testing.T) {
		cur, err := Zip3(Values(1, 2), Values(1, 2), Values(1)).Cursor()
		assert.NilError(t, err)
		assert.Check(t, cur.HasNext())
		_, err = cur.Next()
		assert.NilError(t, err)
		assert.Check(t, !cur.HasNext())
		assert.ErrorIs(t, cur.Err(), ers.ErrLengthMismatch)
		assert.ErrorContains(t, cur.Err(), "input 2 ended before input 0")
	})
	t.Run("Invalid", func(t *testing.T) {
		expectInvalid(t, "lazy.Zip3", func() { Zip3[int, int, int](Values(1), Values(1), nil) })
	})
}

func TestZipShortest(t *testing.T) {
	t.Run("Truncates", func(t *testing.T) {
		out := drain(t, ZipShortest(Values(1, 2, 3), Values("a", "b")))
		assert.DeepEqual(t, out, []dt.Tuple[int, string]{dt.MakeTuple(1, "a"), dt.MakeTuple(2, "b")})

		out = drain(t, ZipShortest(Values(1), Values("a", "b")))
		assert.DeepEqual(t, out, []dt.Tuple[int, string]{dt.MakeTuple(1, "a")})
	})
	t.Run("DoesNotPullPastShortFirst", func(t *testing.T) {
		second, _, pulls := tracked(1, 2, 3)
		out := drain(t, ZipShortest(Values(9), second))
		assert.Equal(t, len(out), 1)
		pulls.Expect(t, 1)
	})
}
