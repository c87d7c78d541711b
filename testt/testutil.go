// Package testt (for test tools) provides helpers for testing lazy
// pipelines: counters that record how often the functions handed to a
// stage actually run, and logging helpers that only speak up when a
// test has already failed.
package testt

import (
	"sync/atomic"
	"testing"
)

// Counter records the number of calls made through the functions it
// wraps. The zero value is ready to use, and counters are safe for
// concurrent use.
type Counter struct{ calls atomic.Int64 }

func (c *Counter) Calls() int { return int(c.calls.Load()) }
func (c *Counter) Reset()     { c.calls.Store(0) }
func (c *Counter) Inc()       { c.calls.Add(1) }

// Expect fails the test, without stopping it, when the counter does not
// hold the expected number of calls.
func (c *Counter) Expect(t testing.TB, expected int) {
	t.Helper()
	if calls := c.Calls(); calls != expected {
		t.Errorf("expected %d calls, observed %d", expected, calls)
	}
}

// Count wraps a single-argument function so that each call increments
// the counter before running it.
func Count[A, B any](c *Counter, op func(A) B) func(A) B {
	return func(in A) B { c.Inc(); return op(in) }
}

// Count2 is Count for two-argument functions, such as the callbacks
// for indexed maps and folds.
func Count2[A, B, C any](c *Counter, op func(A, B) C) func(A, B) C {
	return func(a A, b B) C { c.Inc(); return op(a, b) }
}

// Counted is a convenience wrapper around Count that allocates the
// counter.
func Counted[A, B any](op func(A) B) (func(A) B, *Counter) {
	c := &Counter{}
	return Count(c, op), c
}

// Log calls t.Log with the given arguments *if* the test has failed.
func Log(t testing.TB, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Log(args...)
	}
}

// Logf calls t.Logf with the given arguments *if* the test has failed.
func Logf(t testing.TB, format string, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Logf(format, args...)
	}
}
