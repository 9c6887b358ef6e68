package catalog

import (
	"database/sql"
	"strings"
	"time"
)

// ComponentModel is a hardware catalog entry for a purchasable piece of
// equipment. The code is the model designation as it appears in orders;
// manufacturer plus model number identify the hardware itself and are unique
// as a pair.
type ComponentModel struct {
	CodedEntry

	// Identification
	Manufacturer string `db:"manufacturer" json:"manufacturer"`
	ModelNumber  string `db:"model_number" json:"modelNumber"`
	PartNumber   string `db:"part_number" json:"partNumber,omitempty"`
	Sku          string `db:"sku" json:"sku,omitempty"`

	// TypeCode names the component type this model instantiates.
	TypeCode string `db:"type_code" json:"typeCode"`

	// Lifecycle
	Discontinued    bool         `db:"is_discontinued" json:"discontinued"`
	EndOfLife       bool         `db:"is_end_of_life" json:"endOfLife"`
	ReleaseDate     sql.NullTime `db:"release_date" json:"releaseDate,omitempty"`
	DiscontinueDate sql.NullTime `db:"discontinue_date" json:"discontinueDate,omitempty"`

	// Documentation
	DatasheetURL string `db:"datasheet_url" json:"datasheetUrl,omitempty"`
	ManualURL    string `db:"manual_url" json:"manualUrl,omitempty"`

	// Warranty and upkeep, zero when unspecified
	WarrantyYears             int `db:"warranty_years" json:"warrantyYears,omitempty"`
	ExpectedLifespanYears     int `db:"expected_lifespan_years" json:"expectedLifespanYears,omitempty"`
	MaintenanceIntervalMonths int `db:"maintenance_interval_months" json:"maintenanceIntervalMonths,omitempty"`

	// Physical characteristics
	WeightKg     float64 `db:"weight_kg" json:"weightKg,omitempty"`
	DimensionsMm string  `db:"dimensions_mm" json:"dimensionsMm,omitempty"`

	// Certifications, comma-separated (CE, FCC, UL)
	Certifications string `db:"certifications" json:"certifications,omitempty"`
}

// ModelDesignation is the human-readable manufacturer plus model number.
func (m *ComponentModel) ModelDesignation() string {
	return m.Manufacturer + " " + m.ModelNumber
}

// IsCurrentlySupported reports whether the model is still carried and
// supported by its manufacturer.
func (m *ComponentModel) IsCurrentlySupported() bool {
	return m.Active && !m.Discontinued && !m.EndOfLife
}

// IsAvailableForPurchase reports whether the model can still be ordered.
func (m *ComponentModel) IsAvailableForPurchase() bool {
	return m.Active && !m.Discontinued
}

// NeedsReplacement reports whether equipment of this model should be planned
// out of the inventory.
func (m *ComponentModel) NeedsReplacement(now time.Time) bool {
	if m.Discontinued || m.EndOfLife {
		return true
	}
	return m.DiscontinueDate.Valid && m.DiscontinueDate.Time.Before(now)
}

// HasCertification reports whether the certification list carries the given
// entry, case-insensitively.
func (m *ComponentModel) HasCertification(cert string) bool {
	if cert == "" {
		return false
	}
	for _, c := range strings.Split(m.Certifications, ",") {
		if strings.EqualFold(strings.TrimSpace(c), cert) {
			return true
		}
	}
	return false
}

// LifecycleStatus buckets the model's lifecycle for display.
func (m *ComponentModel) LifecycleStatus() string {
	switch {
	case m.EndOfLife:
		return "END_OF_LIFE"
	case m.Discontinued:
		return "DISCONTINUED"
	case !m.Active:
		return "INACTIVE"
	default:
		return "ACTIVE"
	}
}

// IsValidConfiguration checks the model's internal consistency: the identity
// fields are present and the discontinue date does not precede the release.
func (m *ComponentModel) IsValidConfiguration() bool {
	if m.Manufacturer == "" || m.ModelNumber == "" || m.TypeCode == "" {
		return false
	}
	if m.ReleaseDate.Valid && m.DiscontinueDate.Valid &&
		m.DiscontinueDate.Time.Before(m.ReleaseDate.Time) {
		return false
	}
	return true
}
