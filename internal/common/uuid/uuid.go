// Package uuid wraps github.com/google/uuid with UUIDv7 (time-ordered) as the
// default version for newly generated identifiers. Time ordering keeps
// inventory listings roughly insertion-ordered without an extra sort column.
package uuid

import (
	"github.com/google/uuid"
)

// UUID is an alias for github.com/google/uuid.UUID.
type UUID = uuid.UUID

// NullUUID is an alias for github.com/google/uuid.NullUUID, used for optional
// foreign keys such as a component's parent.
type NullUUID = uuid.NullUUID

// Nil is the zero UUID.
var Nil = uuid.Nil

// New returns a new UUIDv7. Panics if generation fails.
func New() UUID {
	u, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return u
}

// NewRandom returns a new UUIDv7 and any error encountered during generation.
func NewRandom() (UUID, error) {
	return uuid.NewV7()
}

// Parse parses a UUID string.
func Parse(s string) (UUID, error) {
	return uuid.Parse(s)
}

// MustParse parses a UUID string and panics on failure.
func MustParse(s string) UUID {
	return uuid.MustParse(s)
}

// NullFrom wraps a UUID in a valid NullUUID.
func NullFrom(u UUID) NullUUID {
	return NullUUID{UUID: u, Valid: true}
}
