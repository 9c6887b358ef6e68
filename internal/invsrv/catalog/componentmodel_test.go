package catalog

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func model(code string) *ComponentModel {
	return &ComponentModel{
		CodedEntry:   CodedEntry{Code: code, DisplayName: code, Active: true},
		Manufacturer: "Cisco",
		ModelNumber:  code,
		TypeCode:     "SWITCH",
	}
}

func TestComponentModelLifecycle(t *testing.T) {
	m := model("C9300-24T")
	assert.True(t, m.IsCurrentlySupported())
	assert.True(t, m.IsAvailableForPurchase())
	assert.Equal(t, "ACTIVE", m.LifecycleStatus())

	m.Discontinued = true
	assert.False(t, m.IsCurrentlySupported())
	assert.False(t, m.IsAvailableForPurchase())
	assert.Equal(t, "DISCONTINUED", m.LifecycleStatus())

	m.EndOfLife = true
	assert.Equal(t, "END_OF_LIFE", m.LifecycleStatus())
}

func TestComponentModelNeedsReplacement(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	m := model("C9300-24T")
	assert.False(t, m.NeedsReplacement(now))

	m.DiscontinueDate = sql.NullTime{Time: now.Add(24 * time.Hour), Valid: true}
	assert.False(t, m.NeedsReplacement(now), "a future discontinue date is not yet a replacement trigger")

	m.DiscontinueDate = sql.NullTime{Time: now.Add(-24 * time.Hour), Valid: true}
	assert.True(t, m.NeedsReplacement(now))
}

func TestComponentModelConfiguration(t *testing.T) {
	m := model("C9300-24T")
	assert.True(t, m.IsValidConfiguration())

	m.Manufacturer = ""
	assert.False(t, m.IsValidConfiguration())
	m.Manufacturer = "Cisco"

	release := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m.ReleaseDate = sql.NullTime{Time: release, Valid: true}
	m.DiscontinueDate = sql.NullTime{Time: release.Add(-time.Hour), Valid: true}
	assert.False(t, m.IsValidConfiguration(), "discontinued before release is inconsistent")
}

func TestComponentModelCertifications(t *testing.T) {
	m := model("C9300-24T")
	m.Certifications = "CE, FCC, UL"

	assert.True(t, m.HasCertification("fcc"))
	assert.True(t, m.HasCertification("CE"))
	assert.False(t, m.HasCertification("RoHS"))
	assert.False(t, m.HasCertification(""))

	assert.Equal(t, "Cisco C9300-24T", m.ModelDesignation())
}
