package domain

import "encoding/json"

// Optional carries the tri-state partial-update semantics for a nullable
// field: absent (leave unchanged), explicit null (clear), or a value (set).
// A plain *T cannot distinguish the first two cases, so presence is tracked
// explicitly.
type Optional[T any] struct {
	// Set reports whether the field was provided at all.
	Set bool
	// Value is nil when the field was provided as an explicit null.
	Value *T
}

// Some returns a provided Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a provided Optional holding an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is only invoked for keys present in the payload, which is
// exactly the presence signal Set captures.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
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

// MarshalJSON renders the value, or null when cleared/absent.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
