package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodedEntryProperties(t *testing.T) {
	e := &CodedEntry{Code: "SWITCH"}

	assert.False(t, e.HasProperty("vendor"))
	assert.Equal(t, "", e.Property("vendor"))
	assert.Equal(t, "generic", e.PropertyOrDefault("vendor", "generic"))

	e.SetProperty("vendor", "cisco")
	assert.True(t, e.HasProperty("vendor"))
	assert.Equal(t, "cisco", e.Property("vendor"))
	assert.Equal(t, "cisco", e.PropertyOrDefault("vendor", "generic"))
}

func TestPropertyMapRoundTrip(t *testing.T) {
	m := PropertyMap{"rack_style": "open-frame", "color": "black"}

	v, err := m.Value()
	require.NoError(t, err)

	var got PropertyMap
	require.NoError(t, got.Scan(v))
	assert.Equal(t, m, got)

	var empty PropertyMap
	require.NoError(t, empty.Scan(nil))
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestDefaultCatalogsAreConsistent(t *testing.T) {
	// every transition target in the default graphs resolves to a seeded
	// status, so the shipped graph has no dangling edges
	statuses := DefaultComponentStatuses()
	codes := map[string]bool{}
	for _, s := range statuses {
		codes[s.Code] = true
	}
	for _, s := range statuses {
		for _, next := range s.NextStatusCodes {
			assert.True(t, codes[next], "%s -> %s dangles", s.Code, next)
		}
	}

	// every seeded type references a seeded category
	cats := map[string]bool{}
	for _, c := range DefaultComponentCategories() {
		cats[c.Code] = true
	}
	for _, ct := range DefaultComponentTypes() {
		assert.True(t, cats[ct.CategoryCode], "type %s references unknown category %s", ct.Code, ct.CategoryCode)
	}
}
