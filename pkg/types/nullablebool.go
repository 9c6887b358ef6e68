package types

import "encoding/json"

// NullableBool represents an optional boolean field in an update payload.
type NullableBool struct {
	Value   bool
	Valid   bool
	Present bool
}

// Bool returns the value if valid, or false.
func (nb NullableBool) Bool() bool {
	return nb.Valid && nb.Value
}

// IsNil reports whether the field was an explicit null.
func (nb NullableBool) IsNil() bool {
	return nb.Present && !nb.Valid
}

// Set assigns a value and marks the field present and valid.
func (nb *NullableBool) Set(value bool) {
	nb.Value = value
	nb.Valid = true
	nb.Present = true
}

// MarshalJSON renders the value, or null when invalid.
func (nb NullableBool) MarshalJSON() ([]byte, error) {
	if nb.Valid {
		return json.Marshal(nb.Value)
	}
	return json.Marshal(nil)
}

// UnmarshalJSON marks the field present; a JSON null leaves Valid false.
func (nb *NullableBool) UnmarshalJSON(data []byte) error {
	nb.Present = true
	if len(data) == 0 || string(data) == "null" {
		nb.Value = false
		nb.Valid = false
		return nil
	}
	nb.Valid = true
	return json.Unmarshal(data, &nb.Value)
}

// NullableBoolFrom creates a present, valid NullableBool.
func NullableBoolFrom(v bool) NullableBool {
	return NullableBool{Value: v, Valid: true, Present: true}
}

var _ json.Marshaler = &NullableBool{}
var _ json.Unmarshaler = &NullableBool{}
var _ Nullable = &NullableBool{}
