package lazy

import (
	"slices"
)

// ForEach drains the sequence, calling fn on each element in order.
func ForEach[T any](seq Sequence[T], fn func(T)) error {
	invariant(fn != nil, "lazy.ForEach", "function must not be nil")

	cur, err := seq.Cursor()
	if err != nil {
		return err
	}

	for cur.HasNext() {
		val, err := cur.Next()
		if err != nil {
			return err
		}
		fn(val)
	}
	return cur.Err()
}

// Fold combines the elements of the sequence, in order, into a single
// value, starting from the initial value.
func Fold[A, T any](f func(A, T) A, initial A, seq Sequence[T]) (A, error) {
	invariant(f != nil, "lazy.Fold", "function must not be nil")

	acc := initial
	if err := ForEach(seq, func(in T) { acc = f(acc, in) }); err != nil {
		return initial, err
	}
	return acc, nil
}

// ToSlice drains the sequence into a new slice. The result is never
// nil when the error is nil.
func ToSlice[T any](seq Sequence[T]) ([]T, error) {
	out := []T{}
	if err := ForEach(seq, func(in T) { out = append(out, in) }); err != nil {
		return nil, err
	}
	return out, nil
}

// ToArray is ToSlice, with the capacity of the result trimmed to its
// length.
func ToArray[T any](seq Sequence[T]) ([]T, error) {
	out, err := ToSlice(seq)
	if err != nil {
		return nil, err
	}
	return slices.Clip(out), nil
}

// ToSet drains the sequence into a set of its distinct elements.
func ToSet[T comparable](seq Sequence[T]) (map[T]struct{}, error) {
	out := map[T]struct{}{}
	if err := ForEach(seq, func(in T) { out[in] = struct{}{} }); err != nil {
		return nil, err
	}
	return out, nil
}

// Count drains the sequence and returns the number of elements.
func Count[T any](seq Sequence[T]) (int, error) {
	return Fold(func(n int, _ T) int { return n + 1 }, 0, seq)
}
