package fn

import "cmp"

// Predicate reports whether a value satisfies some condition. Filter,
// TakeWhile and SkipWhile take predicates.
type Predicate[T any] func(T) bool

func MakePredicate[T any](p func(T) bool) Predicate[T] { return p }
func (p Predicate[T]) Test(in T) bool                  { return p(in) }
func (p Predicate[T]) Not() Predicate[T]               { return func(in T) bool { return !p(in) } }

// And returns a predicate that holds when this predicate and all of
// the others hold. Evaluation stops at the first failure.
func (p Predicate[T]) And(others ...Predicate[T]) Predicate[T] {
	return func(in T) bool {
		if !p(in) {
			return false
		}
		for _, op := range others {
			if !op(in) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate that holds when this predicate or any of the
// others hold. Evaluation stops at the first success.
func (p Predicate[T]) Or(others ...Predicate[T]) Predicate[T] {
	return func(in T) bool {
		if p(in) {
			return true
		}
		for _, op := range others {
			if op(in) {
				return true
			}
		}
		return false
	}
}

func Not[T any](p func(T) bool) Predicate[T] { return Predicate[T](p).Not() }

func IsEven[T Integer](in T) bool { return in%2 == 0 }
func IsOdd[T Integer](in T) bool  { return in%2 != 0 }

func Equal[T comparable](v T) Predicate[T]               { return func(in T) bool { return in == v } }
func GreaterThan[T cmp.Ordered](v T) Predicate[T]        { return func(in T) bool { return in > v } }
func GreaterThanOrEqual[T cmp.Ordered](v T) Predicate[T] { return func(in T) bool { return in >= v } }
func LessThan[T cmp.Ordered](v T) Predicate[T]           { return func(in T) bool { return in < v } }
func LessThanOrEqual[T cmp.Ordered](v T) Predicate[T]    { return func(in T) bool { return in <= v } }
