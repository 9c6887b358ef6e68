package uuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsV7(t *testing.T) {
	u := New()
	assert.NotEqual(t, Nil, u)
	assert.Equal(t, 7, int(u.Version()))
}

func TestNewIsOrdered(t *testing.T) {
	a := New()
	b := New()
	// UUIDv7 sorts lexically by generation time.
	assert.LessOrEqual(t, a.String(), b.String())
}

func TestParseRoundTrip(t *testing.T) {
	u := New()
	parsed, err := Parse(u.String())
	assert.NoError(t, err)
	assert.Equal(t, u, parsed)
}

func TestNullFrom(t *testing.T) {
	u := New()
	n := NullFrom(u)
	assert.True(t, n.Valid)
	assert.Equal(t, u, n.UUID)
}
