package opsheet

import "encoding/json"

// Optional holds a value that may be absent.
//
// In report rows an absent value means "not applicable": the weighted price of an
// operation without fills, or the quantity of a dividend. It is rendered as a dash
// and marshalled as null, never as a zero.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, ok: true} }

// None returns an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// IsSome reports whether the value is present.
func (o Optional[T]) IsSome() bool { return o.ok }

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
