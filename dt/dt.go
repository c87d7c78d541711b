// Package dt provides the small value types that flow through lazy
// sequences: Optional for the result of partial transformations,
// Tuple and Triple for zipped elements, and Range for partitioned
// index spaces.
//
// All of the types are plain values: copying one copies its contents,
// and none of them hold references to the sequences that produced
// them.
package dt

// integer is the set of primitive integer types, used for the
// arithmetic helpers on Range.
type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
