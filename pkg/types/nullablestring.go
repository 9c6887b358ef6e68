package types

import "encoding/json"

// NullableString represents an optional string field in an update payload.
// Present is true when the field appeared in the JSON at all; Valid is true
// when it carried a non-null value.
type NullableString struct {
	Value   string
	Valid   bool
	Present bool
}

// String returns the value if valid, or an empty string.
func (ns NullableString) String() string {
	if ns.Valid {
		return ns.Value
	}
	return ""
}

// IsNil reports whether the field was an explicit null.
func (ns NullableString) IsNil() bool {
	return ns.Present && !ns.Valid
}

// Set assigns a value and marks the field present and valid.
func (ns *NullableString) Set(value string) {
	ns.Value = value
	ns.Valid = true
	ns.Present = true
}

// MarshalJSON renders the value, or null when invalid.
func (ns NullableString) MarshalJSON() ([]byte, error) {
	if ns.Valid {
		return json.Marshal(ns.Value)
	}
	return json.Marshal(nil)
}

// UnmarshalJSON is only invoked for fields present in the payload, so it
// always marks the field present. A JSON null leaves Valid false.
func (ns *NullableString) UnmarshalJSON(data []byte) error {
	ns.Present = true
	if len(data) == 0 || string(data) == "null" {
		ns.Value = ""
		ns.Valid = false
		return nil
	}
	ns.Valid = true
	return json.Unmarshal(data, &ns.Value)
}

// NullableStringFrom creates a present, valid NullableString.
func NullableStringFrom(s string) NullableString {
	return NullableString{Value: s, Valid: true, Present: true}
}

// NullString creates a present, explicitly null NullableString.
func NullString() NullableString {
	return NullableString{Present: true}
}

var _ json.Marshaler = &NullableString{}
var _ json.Unmarshaler = &NullableString{}
var _ Nullable = &NullableString{}
