package lazy

import (
	"github.com/shaftesbury/lazy/dt"
	"github.com/shaftesbury/lazy/fn"
)

// PartitionBy divides the positions 0 through total-1 into parts
// contiguous ranges whose sizes differ by at most one, with the
// larger ranges first. Each boundary position is passed through gen,
// so the ranges can be expressed in any type: the i-th range is
// [gen(b(i)), gen(b(i+1))). Every boundary is generated exactly once,
// as the sequence is consumed.
//
// When parts exceeds total, the trailing ranges are empty.
func PartitionBy[T any](gen func(int) T, total, parts int) Sequence[dt.Range[T]] {
	invariant(gen != nil, "lazy.PartitionBy", "generator must not be nil")
	invariant(total > 0, "lazy.PartitionBy", "total must be positive, got ", total)
	invariant(parts > 0, "lazy.PartitionBy", "number of parts must be positive, got ", parts)

	size, rem := total/parts, total%parts
	bound := func(k int) int { return k*size + min(k, rem) }

	// The state holds the index of the next range and its lower bound,
	// which is absent until the first range is produced.
	return Unfold(func(st dt.Tuple[int, dt.Optional[T]]) dt.Optional[dt.Tuple[dt.Range[T], dt.Tuple[int, dt.Optional[T]]]] {
		k, lower := st.Split()
		if k >= parts {
			return dt.None[dt.Tuple[dt.Range[T], dt.Tuple[int, dt.Optional[T]]]]()
		}

		from, ok := lower.Get()
		if !ok {
			from = gen(bound(k))
		}
		upper := gen(bound(k + 1))
		return dt.Some(dt.MakeTuple(dt.MakeRange(from, upper), dt.MakeTuple(k+1, dt.Some(upper))))
	}, dt.Tuple[int, dt.Optional[T]]{})
}

// Partition divides the integers 0 through total-1 into parts
// contiguous ranges. See PartitionBy.
func Partition(total, parts int) Sequence[dt.Range[int]] {
	return PartitionBy(fn.Identity[int], total, parts)
}
