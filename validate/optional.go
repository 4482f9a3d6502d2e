package validate

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state field for partial updates: absent (leave unchanged),
// explicit null (clear, for nullable columns), or an explicit value. A plain
// pointer cannot tell the first two apart, which is exactly how omitted fields
// get wiped by accident in generic merges.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

var jsonNull = []byte("null")

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, jsonNull) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}

// HasValue reports whether an actual value (not null) was supplied
func (o Optional[T]) HasValue() bool {
	return o.Set && !o.Null
}
