package lazy

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/shaftesbury/lazy/dt"
	"github.com/shaftesbury/lazy/ers"
	"github.com/shaftesbury/lazy/fn"
	"github.com/shaftesbury/lazy/testt"
)

func TestCollect(t *testing.T) {
	repeat := func(n int) Sequence[int] {
		if n == 0 {
			return Empty[int]()
		}
		return Init(fn.Constant(n), n)
	}

	t.Run("Ordering", func(t *testing.T) {
		seq := Collect(repeat, Values(1, 0, 3, 0, 2))
		assert.DeepEqual(t, drain(t, seq), []int{1, 3, 3, 3, 2, 2})
		assert.DeepEqual(t, drain(t, seq), []int{1, 3, 3, 3, 2, 2})
	})
	t.Run("AllEmpty", func(t *testing.T) {
		assert.DeepEqual(t, drain(t, Collect(repeat, Values(0, 0))), []int{})
		assert.DeepEqual(t, drain(t, Collect(repeat, Empty[int]())), []int{})
	})
	t.Run("OneSubsequenceAtATime", func(t *testing.T) {
		op, calls := testt.Counted(repeat)
		cur, err := Collect(op, InitInfinite(fn.Range(1))).Cursor()
		assert.NilError(t, err)
		calls.Expect(t, 0)

		for _, expected := range []int{1, 2, 2} {
			val, err := cur.Next()
			assert.NilError(t, err)
			assert.Equal(t, val, expected)
		}
		calls.Expect(t, 2)

		assert.Check(t, cur.HasNext())
		calls.Expect(t, 3)
	})
	t.Run("SubsequenceError", func(t *testing.T) {
		seq := Collect(func(n int) Sequence[int] {
			if n == 2 {
				return Map(func(tp dt.Tuple[int, int]) int { return tp.One }, Zip(Values(1), Empty[int]()))
			}
			return Values(n)
		}, Values(1, 2, 3))

		cur, err := seq.Cursor()
		assert.NilError(t, err)
		val, err := cur.Next()
		assert.NilError(t, err)
		assert.Equal(t, val, 1)

		assert.Check(t, !cur.HasNext())
		assert.ErrorIs(t, cur.Err(), ers.ErrLengthMismatch)
		_, err = cur.Next()
		assert.ErrorIs(t, err, ers.ErrLengthMismatch)
	})
	t.Run("NilSubsequence", func(t *testing.T) {
		_, err := ToSlice(Collect(func(int) Sequence[int] { return nil }, Values(1)))
		assert.ErrorIs(t, err, ers.ErrInvalidInput)
	})
	t.Run("Invalid", func(t *testing.T) {
		expectInvalid(t, "lazy.Collect", func() { Collect[int, int](nil, Values(1)) })
	})
}
