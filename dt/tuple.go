package dt

import (
	"encoding/json"
	"fmt"

	"github.com/shaftesbury/lazy/ers"
)

// Tuple holds a pair of values, as produced by zipping two sequences.
type Tuple[A any, B any] struct {
	One A
	Two B
}

// MakeTuple constructs a tuple object. This is identical to using the
// literal constructor but may be more ergonomic as the compiler seems
// to be better at inferring types in function calls over literal
// constructors.
func MakeTuple[A any, B any](a A, b B) Tuple[A, B] { return Tuple[A, B]{One: a, Two: b} }

// Split returns the two values of the tuple.
func (t Tuple[A, B]) Split() (A, B) { return t.One, t.Two }

// MarshalJSON encodes the tuple as a two element array.
func (t Tuple[A, B]) MarshalJSON() ([]byte, error) { return json.Marshal([]any{t.One, t.Two}) }

// UnmarshalJSON decodes a one or two element array into the tuple.
func (t *Tuple[A, B]) UnmarshalJSON(in []byte) error {
	rt, err := unmarshalArray(in, 2)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(rt[0], &t.One); err != nil {
		return ers.Wrap(err, "tuple.One")
	}
	if len(rt) == 2 {
		if err := json.Unmarshal(rt[1], &t.Two); err != nil {
			return ers.Wrap(err, "tuple.Two")
		}
	}
	return nil
}

// Triple holds three values, as produced by zipping three sequences.
type Triple[A any, B any, C any] struct {
	One   A
	Two   B
	Three C
}

// MakeTriple constructs a triple.
func MakeTriple[A any, B any, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{One: a, Two: b, Three: c}
}

// Split returns the three values of the triple.
func (t Triple[A, B, C]) Split() (A, B, C) { return t.One, t.Two, t.Three }

// MarshalJSON encodes the triple as a three element array.
func (t Triple[A, B, C]) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.One, t.Two, t.Three})
}

// UnmarshalJSON decodes an array of at most three elements into the
// triple.
func (t *Triple[A, B, C]) UnmarshalJSON(in []byte) error {
	rt, err := unmarshalArray(in, 3)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(rt[0], &t.One); err != nil {
		return ers.Wrap(err, "triple.One")
	}
	if len(rt) >= 2 {
		if err := json.Unmarshal(rt[1], &t.Two); err != nil {
			return ers.Wrap(err, "triple.Two")
		}
	}
	if len(rt) == 3 {
		if err := json.Unmarshal(rt[2], &t.Three); err != nil {
			return ers.Wrap(err, "triple.Three")
		}
	}
	return nil
}

func unmarshalArray(in []byte, limit int) ([]json.RawMessage, error) {
	rt := []json.RawMessage{}
	if err := json.Unmarshal(in, &rt); err != nil {
		return nil, err
	}
	if len(rt) == 0 || len(rt) > limit {
		return nil, ers.Wrap(ers.ErrInvalidInput, fmt.Sprintf("json value has %d items", len(rt)))
	}
	return rt, nil
}
