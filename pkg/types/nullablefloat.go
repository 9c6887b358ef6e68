package types

import "encoding/json"

// NullableFloat represents an optional float field in an update payload.
type NullableFloat struct {
	Value   float64
	Valid   bool
	Present bool
}

// Float returns the value if valid, or zero.
func (nf NullableFloat) Float() float64 {
	if nf.Valid {
		return nf.Value
	}
	return 0
}

// IsNil reports whether the field was an explicit null.
func (nf NullableFloat) IsNil() bool {
	return nf.Present && !nf.Valid
}

// Set assigns a value and marks the field present and valid.
func (nf *NullableFloat) Set(value float64) {
	nf.Value = value
	nf.Valid = true
	nf.Present = true
}

// MarshalJSON renders the value, or null when invalid.
func (nf NullableFloat) MarshalJSON() ([]byte, error) {
	if nf.Valid {
		return json.Marshal(nf.Value)
	}
	return json.Marshal(nil)
}

// UnmarshalJSON marks the field present; a JSON null leaves Valid false.
func (nf *NullableFloat) UnmarshalJSON(data []byte) error {
	nf.Present = true
	if len(data) == 0 || string(data) == "null" {
		nf.Value = 0
		nf.Valid = false
		return nil
	}
	nf.Valid = true
	return json.Unmarshal(data, &nf.Value)
}

// NullableFloatFrom creates a present, valid NullableFloat.
func NullableFloatFrom(v float64) NullableFloat {
	return NullableFloat{Value: v, Valid: true, Present: true}
}

var _ json.Marshaler = &NullableFloat{}
var _ json.Unmarshaler = &NullableFloat{}
var _ Nullable = &NullableFloat{}
