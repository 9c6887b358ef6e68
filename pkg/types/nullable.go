// Package types provides nullable JSON value types for update payloads.
// Each type tracks three states: absent from the payload, explicitly null,
// or carrying a value. The distinction drives the field-access policy at the
// update boundary: an explicit null is a request to clear the field.
package types

// Nullable is implemented by types that can represent an explicit null.
type Nullable interface {
	// IsNil reports whether the value is null.
	IsNil() bool
}
