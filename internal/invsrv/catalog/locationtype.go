package catalog

// LocationType classifies nodes of the location tree (building, floor, room,
// rack, ...) and gates which children a location may have and whether it can
// hold equipment.
type LocationType struct {
	CodedEntry
	ColorCategory string `db:"color_category" json:"colorCategory,omitempty"`
	MapSymbol     string `db:"map_symbol" json:"mapSymbol,omitempty"`

	// Hierarchy characteristics. Lower hierarchy levels sit higher in the
	// tree.
	HierarchyLevel   int  `db:"hierarchy_level" json:"hierarchyLevel"`
	CanHaveChildren  bool `db:"can_have_children" json:"canHaveChildren"`
	CanHoldEquipment bool `db:"can_hold_equipment" json:"canHoldEquipment"`
	RequiresAddress  bool `db:"requires_address" json:"requiresAddress"`

	// Physical characteristics
	PhysicalLocation bool `db:"is_physical_location" json:"physicalLocation"`
	RackLike         bool `db:"is_rack_like" json:"rackLike"`
	RoomLike         bool `db:"is_room_like" json:"roomLike"`
	BuildingLike     bool `db:"is_building_like" json:"buildingLike"`

	// Capacity constraints; zero means unconstrained.
	MaxChildrenCount  int `db:"max_children_count" json:"maxChildrenCount,omitempty"`
	MaxEquipmentCount int `db:"max_equipment_count" json:"maxEquipmentCount,omitempty"`
	DefaultRackUnits  int `db:"default_rack_units" json:"defaultRackUnits,omitempty"`

	// Business rules
	RequiresAccessControl   bool `db:"requires_access_control" json:"requiresAccessControl"`
	RequiresClimateControl  bool `db:"requires_climate_control" json:"requiresClimateControl"`
	RequiresPowerManagement bool `db:"requires_power_management" json:"requiresPowerManagement"`
	RequiresMonitoring      bool `db:"requires_monitoring" json:"requiresMonitoring"`

	// Allowed child type codes; an empty list allows any child type.
	AllowedChildTypeCodes []string `db:"allowed_child_type_codes" json:"allowedChildTypeCodes,omitempty"`
}

// CanHaveChildOfType reports whether a location of this type may have a
// child of the given type. An empty allow-list permits any child type.
func (t *LocationType) CanHaveChildOfType(child *LocationType) bool {
	if child == nil || !t.CanHaveChildren {
		return false
	}
	return len(t.AllowedChildTypeCodes) == 0 || containsCode(t.AllowedChildTypeCodes, child.Code)
}

// CanBeChildOf reports whether a location of this type may sit under a
// parent of the given type.
func (t *LocationType) CanBeChildOf(parent *LocationType) bool {
	return parent != nil && parent.CanHaveChildOfType(t)
}

func (t *LocationType) IsTopLevel() bool {
	return t.HierarchyLevel > 0 && t.HierarchyLevel <= 10
}

func (t *LocationType) IsMiddleLevel() bool {
	return t.HierarchyLevel > 10 && t.HierarchyLevel <= 50
}

func (t *LocationType) IsBottomLevel() bool {
	return t.HierarchyLevel > 50
}

func (t *LocationType) IsVirtual() bool {
	return !t.PhysicalLocation
}
