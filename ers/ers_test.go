package ers

import (
	"errors"
	"io"
	"testing"

	"gotest.tools/v3/assert"
)

func TestConstant(t *testing.T) {
	t.Run("Is", func(t *testing.T) {
		const expected Error = "hello"
		assert.Check(t, expected.Is(Error("hello")))
		assert.Check(t, !expected.Is(Error("world")))
		assert.Check(t, !expected.Is(errors.New("hello")))
		assert.Check(t, !expected.Is(nil))
		assert.Check(t, Error("").Is(nil))
	})
	t.Run("Wrap", func(t *testing.T) {
		assert.NilError(t, Wrap(nil, "hello"))
		assert.NilError(t, Wrapf(nil, "hello %s %s", "args", "argsd"))

		const expected Error = "hello"
		err := Wrap(expected, "hello")
		assert.Equal(t, err.Error(), "hello: hello")
		assert.ErrorIs(t, err, expected)

		err = Wrapf(expected, "hello %s", "world")
		assert.Equal(t, err.Error(), "hello world: hello")
		assert.ErrorIs(t, err, expected)
	})
	t.Run("When", func(t *testing.T) {
		assert.NilError(t, When(false, ErrExhausted))
		assert.ErrorIs(t, When(true, ErrExhausted), ErrExhausted)
	})
}

func TestStack(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.NilError(t, Join())
		assert.NilError(t, Join(nil, nil))

		s := &Stack{}
		assert.Check(t, s.Ok())
		assert.Equal(t, s.Error(), "<nil>")
		var nilStack *Stack
		assert.Equal(t, nilStack.Len(), 0)
	})
	t.Run("Single", func(t *testing.T) {
		err := Join(nil, ErrExhausted, nil)
		assert.Equal(t, err, error(ErrExhausted))
	})
	t.Run("Ordering", func(t *testing.T) {
		err := Join(ErrUnsupported, io.EOF)
		assert.Equal(t, err.Error(), "unsupported operation: EOF")
		assert.ErrorIs(t, err, ErrUnsupported)
		assert.ErrorIs(t, err, io.EOF)
		assert.Check(t, !errors.Is(err, ErrExhausted))
	})
	t.Run("Flattens", func(t *testing.T) {
		inner := Join(ErrUnsupported, io.EOF)
		outer := Join(inner, errors.Join(ErrExhausted, ErrLengthMismatch))

		var st *Stack
		assert.Assert(t, errors.As(outer, &st))
		assert.Equal(t, st.Len(), 4)
		assert.ErrorIs(t, outer, ErrLengthMismatch)
	})
}

func TestPanics(t *testing.T) {
	t.Run("NoPanic", func(t *testing.T) {
		assert.NilError(t, ParsePanic(nil))
		assert.NilError(t, WithRecoverCall(func() {}))
	})
	t.Run("ErrorValue", func(t *testing.T) {
		err := WithRecoverCall(func() { panic(ErrUnsupported) })
		assert.ErrorIs(t, err, ErrUnsupported)
		assert.ErrorIs(t, err, ErrRecoveredPanic)
	})
	t.Run("StringValue", func(t *testing.T) {
		err := WithRecoverCall(func() { panic("boom") })
		assert.ErrorIs(t, err, ErrRecoveredPanic)
		assert.ErrorContains(t, err, "boom")
	})
	t.Run("ErrorSlice", func(t *testing.T) {
		err := ParsePanic([]error{io.EOF, ErrExhausted})
		assert.ErrorIs(t, err, io.EOF)
		assert.ErrorIs(t, err, ErrExhausted)
		assert.ErrorIs(t, err, ErrRecoveredPanic)
	})
	t.Run("OtherValue", func(t *testing.T) {
		err := ParsePanic(42)
		assert.ErrorContains(t, err, "[int]: 42")
	})
	t.Run("Do", func(t *testing.T) {
		out, err := WithRecoverDo(func() int { return 42 })
		assert.NilError(t, err)
		assert.Equal(t, out, 42)

		out, err = WithRecoverDo(func() int { panic(io.EOF) })
		assert.ErrorIs(t, err, io.EOF)
		assert.Equal(t, out, 0)
	})
	t.Run("Invariant", func(t *testing.T) {
		assert.Equal(t, NewInvariantViolation(), error(ErrInvariantViolation))

		err := NewInvariantViolation("lazy.Take", ErrInvalidInput)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.ErrorIs(t, err, ErrInvariantViolation)
		assert.ErrorContains(t, err, "lazy.Take")
	})
}
