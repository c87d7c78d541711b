package dt

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Optional is a wrapper type for a value that may or may not be
// present. The zero value is absent. A present Optional always holds
// a real value: a present Optional of a pointer type may hold a nil
// pointer, and that is distinct from an absent Optional.
type Optional[T any] struct {
	v       T
	defined bool
}

// Some constructs a present Optional holding the value.
func Some[T any](in T) Optional[T] { return Optional[T]{v: in, defined: true} }

// None constructs an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// MakeOptional bridges the common "value, ok" return pattern: the
// Optional is present only when ok is true.
func MakeOptional[T any](in T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}
	return Some(in)
}

func (o Optional[T]) OK() bool       { return o.defined }
func (o Optional[T]) Get() (T, bool) { return o.v, o.defined }
func (o *Optional[T]) Set(in T)      { *o = Some(in) }
func (o *Optional[T]) Reset()        { *o = None[T]() }

// Resolve returns the value, or the zero value of T when the Optional
// is absent.
func (o Optional[T]) Resolve() T { return o.v }

// Default returns the value when present and the provided value
// otherwise.
func (o Optional[T]) Default(in T) T {
	if o.defined {
		return o.v
	}
	return in
}

func (o Optional[T]) String() string {
	if !o.defined {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.v)
}

// MarshalJSON encodes absent values as null, and present values as
// the encoding of the value.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.defined {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}

// UnmarshalJSON decodes null as an absent value, and any other
// document as a present value.
func (o *Optional[T]) UnmarshalJSON(in []byte) error {
	if bytes.Equal(bytes.TrimSpace(in), []byte("null")) {
		o.Reset()
		return nil
	}

	var val T
	if err := json.Unmarshal(in, &val); err != nil {
		return err
	}
	o.Set(val)
	return nil
}
