package catalog

// InstallableType classifies what kinds of items can be the subject of an
// installation record and how they are typically installed.
type InstallableType struct {
	CodedEntry

	// Configuration flags
	RequiresRackPosition         bool `db:"requires_rack_position" json:"requiresRackPosition"`
	HasStandardRackUnits         bool `db:"has_standard_rack_units" json:"hasStandardRackUnits"`
	SupportsPowerManagement      bool `db:"supports_power_management" json:"supportsPowerManagement"`
	RequiresEnvironmentalControl bool `db:"requires_environmental_control" json:"requiresEnvironmentalControl"`

	// Installation characteristics
	TypicalInstallationTimeMinutes int  `db:"typical_installation_time_minutes" json:"typicalInstallationTimeMinutes,omitempty"`
	RequiresShutdown               bool `db:"requires_shutdown" json:"requiresShutdown"`
	HotSwappable                   bool `db:"hot_swappable" json:"hotSwappable"`

	// Physical characteristics
	DefaultRackUnits int     `db:"default_rack_units" json:"defaultRackUnits"`
	MaxWeightKg      float64 `db:"max_weight_kg" json:"maxWeightKg,omitempty"`

	// Priority for ordering installation work, 1 (highest) to 10.
	InstallationPriority int `db:"installation_priority" json:"installationPriority"`
}

// RequiresSpecialHandling reports whether installing this item needs more
// than a routine swap.
func (t *InstallableType) RequiresSpecialHandling() bool {
	return t.RequiresShutdown || !t.HotSwappable || t.RequiresEnvironmentalControl
}

func (t *InstallableType) IsHighPriority() bool {
	return t.InstallationPriority > 0 && t.InstallationPriority <= 3
}

func (t *InstallableType) IsLowPriority() bool {
	return t.InstallationPriority >= 7
}

// PriorityLevel buckets the installation priority.
func (t *InstallableType) PriorityLevel() string {
	switch {
	case t.IsHighPriority():
		return "HIGH"
	case t.IsLowPriority():
		return "LOW"
	default:
		return "MEDIUM"
	}
}

// RackUnitsOrDefault returns the default rack units for the item, falling
// back to 1U.
func (t *InstallableType) RackUnitsOrDefault() int {
	if t.DefaultRackUnits > 0 {
		return t.DefaultRackUnits
	}
	return 1
}
