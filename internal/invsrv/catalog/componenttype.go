package catalog

// ComponentType is a specific type within a category, e.g. SWITCH or ROUTER
// in connectivity, RACK or CHASSIS in housing. Type codes are unique within
// their category. Capability flags on the type drive every derived property
// on components of that type.
type ComponentType struct {
	CodedEntry
	CategoryCode string `db:"category_code" json:"categoryCode"`
	SystemType   bool   `db:"is_system_type" json:"systemType"`

	// Physical properties
	RequiresRackSpace    bool `db:"requires_rack_space" json:"requiresRackSpace"`
	TypicalRackUnits     int  `db:"typical_rack_units" json:"typicalRackUnits,omitempty"`
	CanContainComponents bool `db:"can_contain_components" json:"canContainComponents"`
	Installable          bool `db:"is_installable" json:"installable"`

	// Technical properties
	RequiresManagement      bool `db:"requires_management" json:"requiresManagement"`
	SupportsSnmp            bool `db:"supports_snmp" json:"supportsSnmp"`
	HasFirmware             bool `db:"has_firmware" json:"hasFirmware"`
	CanHaveIPAddress        bool `db:"can_have_ip_address" json:"canHaveIpAddress"`
	ProcessesNetworkTraffic bool `db:"processes_network_traffic" json:"processesNetworkTraffic"`

	// Power and cooling
	RequiresPower                bool `db:"requires_power" json:"requiresPower"`
	TypicalPowerConsumptionWatts int  `db:"typical_power_consumption_watts" json:"typicalPowerConsumptionWatts,omitempty"`
	GeneratesHeat                bool `db:"generates_heat" json:"generatesHeat"`
	NeedsCooling                 bool `db:"needs_cooling" json:"needsCooling"`

	// Maintenance
	MaintenanceIntervalMonths int `db:"maintenance_interval_months" json:"maintenanceIntervalMonths,omitempty"`
	TypicalLifespanYears      int `db:"typical_lifespan_years" json:"typicalLifespanYears,omitempty"`

	// Containment allow-lists (for housing components)
	AllowedChildTypeCodes     []string `db:"allowed_child_type_codes" json:"allowedChildTypeCodes,omitempty"`
	AllowedChildCategoryCodes []string `db:"allowed_child_category_codes" json:"allowedChildCategoryCodes,omitempty"`

	// Category is the resolved category row, populated by the manager layer.
	// Not persisted with the type.
	Category *ComponentCategory `db:"-" json:"-"`
}

// Category delegation
func (t *ComponentType) IsHousingComponent() bool {
	return t.Category != nil && t.Category.IsHousing()
}

func (t *ComponentType) IsConnectivityComponent() bool {
	return t.Category != nil && t.Category.IsConnectivity()
}

func (t *ComponentType) IsSupportComponent() bool {
	return t.Category != nil && t.Category.IsSupport()
}

func (t *ComponentType) IsModuleComponent() bool {
	return t.Category != nil && t.Category.IsModule()
}

func (t *ComponentType) CanBeMountedInRack() bool {
	return t.RequiresRackSpace
}

// IsNetworkingEquipment reports whether the type is core networking gear.
func (t *ComponentType) IsNetworkingEquipment() bool {
	return t.IsConnectivityComponent() &&
		(t.Code == "SWITCH" || t.Code == "ROUTER" || t.Code == "PATCH_PANEL")
}

// CanContainType evaluates the containment rule chain for a prospective
// parent/child type pair. Three tiers are checked in order: the explicit
// child-type allow-list, the explicit child-category allow-list, and finally
// the category-level default policy. The explicit tiers always win over the
// default. Containment is evaluated pairwise on the direct parent and child
// only; it does not chain through intermediate types.
func (t *ComponentType) CanContainType(child *ComponentType) bool {
	if !t.CanContainComponents || child == nil {
		return false
	}

	if containsCode(t.AllowedChildTypeCodes, child.Code) {
		return true
	}

	if child.Category != nil && containsCode(t.AllowedChildCategoryCodes, child.Category.Code) {
		return true
	}

	return t.Category != nil && t.Category.CanContainCategory(child.Category)
}

// CanContainTypeCode checks only the explicit type allow-list tier.
func (t *ComponentType) CanContainTypeCode(childTypeCode string) bool {
	return t.CanContainComponents && containsCode(t.AllowedChildTypeCodes, childTypeCode)
}

// CanContainCategoryCode checks only the explicit category allow-list tier.
func (t *ComponentType) CanContainCategoryCode(childCategoryCode string) bool {
	return t.CanContainComponents && containsCode(t.AllowedChildCategoryCodes, childCategoryCode)
}

// IsValidConfiguration verifies the structural invariants of the type: code,
// name, and category are set; rack-space types declare a positive unit count;
// managed types can carry an IP address.
func (t *ComponentType) IsValidConfiguration() bool {
	if t.Code == "" || t.DisplayName == "" || t.CategoryCode == "" {
		return false
	}

	if t.RequiresRackSpace && t.TypicalRackUnits <= 0 {
		return false
	}

	if t.RequiresManagement && !t.CanHaveIPAddress {
		return false
	}

	return true
}

// MaintenanceIntervalOrDefault returns the recommended maintenance interval
// in months, defaulting from the type's characteristics when unset: active
// equipment every 6 months, housing every 24, everything else every 12.
func (t *ComponentType) MaintenanceIntervalOrDefault() int {
	if t.MaintenanceIntervalMonths > 0 {
		return t.MaintenanceIntervalMonths
	}

	if t.RequiresManagement || t.ProcessesNetworkTraffic {
		return 6
	}

	if t.IsHousingComponent() {
		return 24
	}

	return 12
}

// LifespanOrDefault returns the typical lifespan in years, defaulting to 7
// for networking equipment, 15 for housing, and 10 otherwise.
func (t *ComponentType) LifespanOrDefault() int {
	if t.TypicalLifespanYears > 0 {
		return t.TypicalLifespanYears
	}

	if t.IsNetworkingEquipment() {
		return 7
	}

	if t.IsHousingComponent() {
		return 15
	}

	return 10
}

// PowerConsumptionCategory classifies the type's typical power draw. A type
// that does not require power is "none"; a type that requires power but has
// no declared wattage falls back to its category's typical class.
func (t *ComponentType) PowerConsumptionCategory() string {
	if !t.RequiresPower && t.TypicalPowerConsumptionWatts == 0 {
		return "none"
	}

	switch watts := t.TypicalPowerConsumptionWatts; {
	case watts == 0:
		if t.Category != nil {
			return t.Category.TypicalPowerConsumption()
		}
		return "unknown"
	case watts < 50:
		return "low"
	case watts < 200:
		return "medium"
	case watts < 500:
		return "high"
	default:
		return "very_high"
	}
}

// CanBeDeleted reports whether the type may be hard-deleted given the number
// of active components referencing it. System types are never deletable.
func (t *ComponentType) CanBeDeleted(activeComponentCount int) bool {
	return !t.SystemType && activeComponentCount == 0
}

// CanBeDeactivated follows the same rule as deletion: a type still assigned
// to active components stays active.
func (t *ComponentType) CanBeDeactivated(activeComponentCount int) bool {
	return t.CanBeDeleted(activeComponentCount)
}
