package types

import "encoding/json"

// NullableInt represents an optional integer field in an update payload.
type NullableInt struct {
	Value   int
	Valid   bool
	Present bool
}

// Int returns the value if valid, or zero.
func (ni NullableInt) Int() int {
	if ni.Valid {
		return ni.Value
	}
	return 0
}

// IsNil reports whether the field was an explicit null.
func (ni NullableInt) IsNil() bool {
	return ni.Present && !ni.Valid
}

// Set assigns a value and marks the field present and valid.
func (ni *NullableInt) Set(value int) {
	ni.Value = value
	ni.Valid = true
	ni.Present = true
}

// MarshalJSON renders the value, or null when invalid.
func (ni NullableInt) MarshalJSON() ([]byte, error) {
	if ni.Valid {
		return json.Marshal(ni.Value)
	}
	return json.Marshal(nil)
}

// UnmarshalJSON marks the field present; a JSON null leaves Valid false.
func (ni *NullableInt) UnmarshalJSON(data []byte) error {
	ni.Present = true
	if len(data) == 0 || string(data) == "null" {
		ni.Value = 0
		ni.Valid = false
		return nil
	}
	ni.Valid = true
	return json.Unmarshal(data, &ni.Value)
}

// NullableIntFrom creates a present, valid NullableInt.
func NullableIntFrom(v int) NullableInt {
	return NullableInt{Value: v, Valid: true, Present: true}
}

var _ json.Marshaler = &NullableInt{}
var _ json.Unmarshaler = &NullableInt{}
var _ Nullable = &NullableInt{}
