package lazy

import (
	"fmt"

	"github.com/shaftesbury/lazy/ers"
	"github.com/shaftesbury/lazy/ft"
)

// phase tracks the single element of lookahead that filtering stages
// hold between HasNext and Next.
type phase uint8

const (
	unprimed phase = iota
	primed
	exhausted
)

type lookahead[T any] struct {
	phase phase
	value T
}

func (l *lookahead[T]) ready() bool   { return l.phase == primed }
func (l *lookahead[T]) pending() bool { return l.phase == unprimed }
func (l *lookahead[T]) set(v T)       { l.phase, l.value = primed, v }

func (l *lookahead[T]) finish() {
	var zero T
	l.phase, l.value = exhausted, zero
}

func (l *lookahead[T]) take() T {
	var zero T
	val := l.value
	l.phase, l.value = unprimed, zero
	return val
}

// upstream wraps the cursor a stage reads from and records the first
// error the stage observes, so that it can be reported from Err.
type upstream[T any] struct {
	up  Cursor[T]
	err error
}

// Err reports the stage's own error, or the upstream cursor's.
func (u *upstream[T]) Err() error { return ft.Default(u.err, u.up.Err()) }

func (u *upstream[T]) failed() bool { return u.err != nil }

// pull fetches the next upstream element, reporting false once
// upstream is exhausted or has failed.
func (u *upstream[T]) pull() (T, bool) {
	var zero T
	if u.err != nil || !u.up.HasNext() {
		return zero, false
	}

	val, err := u.up.Next()
	if err != nil {
		u.err = err
		return zero, false
	}
	return val, true
}

// stop produces the return values of Next past the end of a cursor.
func stop[T any](err error) (T, error) { return ft.Zero[T](), ft.Default[error](err, ers.ErrExhausted) }

// derive builds a sequence whose cursors wrap a fresh cursor of the
// source sequence.
func derive[T, U any](src Sequence[T], mk func(Cursor[T]) Cursor[U]) Sequence[U] {
	return func() (Cursor[U], error) {
		up, err := src.Cursor()
		if err != nil {
			return nil, err
		}
		return mk(up), nil
	}
}

// invariant panics with an invalid input error, annotated with the
// operation name and message, when the condition does not hold.
func invariant(cond bool, op string, args ...any) {
	if !cond {
		panic(ers.NewInvariantViolation(op, fmt.Sprint(args...), ers.ErrInvalidInput))
	}
}

func notNil[T any](src Sequence[T], op string) { invariant(src != nil, op, "sequence must not be nil") }
