package lazy

import (
	"github.com/shaftesbury/lazy/dt"
)

// Stage is a sequence transformation with its arguments already
// bound, such as a map with its function, ready to be applied to a
// source sequence. Arguments are checked when the stage is built.
type Stage[T, U any] func(Sequence[T]) Sequence[U]

// Apply runs the stage over the source sequence.
func (st Stage[T, U]) Apply(src Sequence[T]) Sequence[U] { return st(src) }

// Compose returns a stage that applies a and then b.
func Compose[T, U, V any](a Stage[T, U], b Stage[U, V]) Stage[T, V] {
	invariant(a != nil && b != nil, "lazy.Compose", "stages must not be nil")
	return func(src Sequence[T]) Sequence[V] { return b(a(src)) }
}

// MapWith binds the function of a Map stage.
func MapWith[T, U any](f func(T) U) Stage[T, U] {
	invariant(f != nil, "lazy.MapWith", "function must not be nil")
	return func(src Sequence[T]) Sequence[U] { return Map(f, src) }
}

// MapIndexedWith binds the function of a MapIndexed stage.
func MapIndexedWith[T, U any](f func(int, T) U) Stage[T, U] {
	invariant(f != nil, "lazy.MapIndexedWith", "function must not be nil")
	return func(src Sequence[T]) Sequence[U] { return MapIndexed(f, src) }
}

// FilterWith binds the predicate of a Filter stage.
func FilterWith[T any](pred func(T) bool) Stage[T, T] {
	invariant(pred != nil, "lazy.FilterWith", "predicate must not be nil")
	return func(src Sequence[T]) Sequence[T] { return Filter(pred, src) }
}

// ChooseWith binds the function of a Choose stage.
func ChooseWith[T, U any](f func(T) dt.Optional[U]) Stage[T, U] {
	invariant(f != nil, "lazy.ChooseWith", "function must not be nil")
	return func(src Sequence[T]) Sequence[U] { return Choose(f, src) }
}

// CollectWith binds the function of a Collect stage.
func CollectWith[T, U any](f func(T) Sequence[U]) Stage[T, U] {
	invariant(f != nil, "lazy.CollectWith", "function must not be nil")
	return func(src Sequence[T]) Sequence[U] { return Collect(f, src) }
}

// TakeWith binds the count of a Take stage.
func TakeWith[T any](n int) Stage[T, T] {
	invariant(n >= 0, "lazy.TakeWith", "count must not be negative, got ", n)
	return func(src Sequence[T]) Sequence[T] { return Take(n, src) }
}

// TakeWhileWith binds the predicate of a TakeWhile stage.
func TakeWhileWith[T any](pred func(T) bool) Stage[T, T] {
	invariant(pred != nil, "lazy.TakeWhileWith", "predicate must not be nil")
	return func(src Sequence[T]) Sequence[T] { return TakeWhile(pred, src) }
}

// SkipWith binds the count of a Skip stage.
func SkipWith[T any](n int) Stage[T, T] {
	invariant(n >= 0, "lazy.SkipWith", "count must not be negative, got ", n)
	return func(src Sequence[T]) Sequence[T] { return Skip(n, src) }
}

// SkipWhileWith binds the predicate of a SkipWhile stage.
func SkipWhileWith[T any](pred func(T) bool) Stage[T, T] {
	invariant(pred != nil, "lazy.SkipWhileWith", "predicate must not be nil")
	return func(src Sequence[T]) Sequence[T] { return SkipWhile(pred, src) }
}
