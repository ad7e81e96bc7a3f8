package dto

import (
	"bytes"
	"encoding/json"
)

// Optional is a field of a partial-update request. Set records whether the
// key appeared in the JSON body at all; Set with a nil Value means the client
// sent an explicit null and wants the field cleared.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON is only invoked for keys present in the payload.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// MarshalJSON writes the value or null. Absent fields should be omitted by callers.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// Some builds a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null builds a present Optional that clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// Merge returns current when the field was absent, otherwise the patched value.
func (o Optional[T]) Merge(current *T) *T {
	if !o.Set {
		return current
	}
	return o.Value
}

// IsNull reports whether the field was present and explicitly null.
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}
