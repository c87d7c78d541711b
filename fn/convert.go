// Package fn holds the function objects that are passed into lazy
// sequence stages: converters for Map, filters for same-typed
// transformations, predicates for Filter/TakeWhile/SkipWhile, and
// generators for Init and PartitionBy.
package fn

import (
	"github.com/shaftesbury/lazy/ft"
)

// Converter is a function that transforms one value into another, as
// used by Map.
type Converter[I, O any] func(I) O

func MakeConverter[I, O any](f func(I) O) Converter[I, O] { return f }
func (cf Converter[I, O]) Convert(in I) O                 { return cf(in) }

// PreFilter returns a converter that passes its input through the
// filter before converting it.
func (cf Converter[I, O]) PreFilter(fl Filter[I]) Converter[I, O] {
	return func(in I) O { return cf(fl(in)) }
}

// PostFilter returns a converter that passes the converted value
// through the filter.
func (cf Converter[I, O]) PostFilter(fl Filter[O]) Converter[I, O] {
	return func(in I) O { return fl(cf(in)) }
}

// Then composes two converters, so that the output of the first is the
// input of the second.
func Then[A, B, C any](first Converter[A, B], next Converter[B, C]) Converter[A, C] {
	return func(in A) C { return next(first(in)) }
}

// Filter is a converter whose input and output share a type.
type Filter[T any] func(T) T

func MakeFilter[T any](fl func(T) T) Filter[T]         { return fl }
func (fl Filter[T]) Apply(v T) T                       { return fl(v) }
func (fl Filter[T]) Ptr(v *T)                          { *v = fl(*v) }
func (fl Filter[T]) WithNext(next Filter[T]) Filter[T] { return func(v T) T { return next(fl(v)) } }

// If returns a filter that only runs when the condition is true, and
// otherwise returns its input unchanged.
func (fl Filter[T]) If(cond bool) Filter[T] { return ft.IfValue[Filter[T]](cond, fl, Identity[T]) }

// Join returns a filter that applies this filter followed by all of
// the provided filters in order. Nil filters are skipped.
func (fl Filter[T]) Join(fls ...Filter[T]) Filter[T] {
	return func(v T) T {
		for _, next := range append([]Filter[T]{fl}, fls...) {
			if next != nil {
				v = next(v)
			}
		}
		return v
	}
}

// Identity returns its input.
func Identity[T any](in T) T { return in }
