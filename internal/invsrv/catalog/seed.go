package catalog

// Default catalog contents used for first-run bootstrap and tests. The
// component status graph mirrors the standard equipment lifecycle:
// procurement (PLANNED, ORDERED), deployment (INSTALLING, TESTING,
// CONFIGURED), operation (ACTIVE, INACTIVE, RESERVED), maintenance
// (MAINTENANCE, DAMAGED, FAULTY, REPAIRED), and end of life
// (DECOMMISSIONED, DISPOSED), with UNKNOWN as the unclassified escape hatch.

func coded(code, name, description string, sortOrder int) CodedEntry {
	return CodedEntry{
		Code:        code,
		DisplayName: name,
		Description: description,
		Active:      true,
		SortOrder:   sortOrder,
	}
}

// DefaultComponentCategories returns the four system categories the
// containment defaults key off.
func DefaultComponentCategories() []*ComponentCategory {
	return []*ComponentCategory{
		{CodedEntry: coded(CategoryHousing, "Housing", "Racks, cabinets and enclosures", 10), SystemCategory: true, Infrastructure: true},
		{CodedEntry: coded(CategoryConnectivity, "Connectivity", "Switches, routers and cabling", 20), SystemCategory: true},
		{CodedEntry: coded(CategorySupport, "Support", "Power, cooling and cable management", 30), SystemCategory: true, Infrastructure: true},
		{CodedEntry: coded(CategoryModule, "Module", "Line cards, transceivers and inserts", 40), SystemCategory: true},
	}
}

// DefaultComponentTypes returns the core built-in types.
func DefaultComponentTypes() []*ComponentType {
	return []*ComponentType{
		{
			CodedEntry:           coded("RACK", "Rack", "Standard equipment rack", 10),
			CategoryCode:         CategoryHousing,
			SystemType:           true,
			CanContainComponents: true,
			TypicalRackUnits:     42,
		},
		{
			CodedEntry:                   coded("SWITCH", "Network Switch", "Managed network switch", 20),
			CategoryCode:                 CategoryConnectivity,
			SystemType:                   true,
			RequiresRackSpace:            true,
			TypicalRackUnits:             1,
			Installable:                  true,
			RequiresManagement:           true,
			SupportsSnmp:                 true,
			HasFirmware:                  true,
			CanHaveIPAddress:             true,
			ProcessesNetworkTraffic:      true,
			RequiresPower:                true,
			TypicalPowerConsumptionWatts: 150,
			GeneratesHeat:                true,
			NeedsCooling:                 true,
			CanContainComponents:         true,
			AllowedChildCategoryCodes:    []string{CategoryModule},
		},
		{
			CodedEntry:                   coded("ROUTER", "Router", "Network router", 30),
			CategoryCode:                 CategoryConnectivity,
			SystemType:                   true,
			RequiresRackSpace:            true,
			TypicalRackUnits:             1,
			Installable:                  true,
			RequiresManagement:           true,
			SupportsSnmp:                 true,
			HasFirmware:                  true,
			CanHaveIPAddress:             true,
			ProcessesNetworkTraffic:      true,
			RequiresPower:                true,
			TypicalPowerConsumptionWatts: 120,
			GeneratesHeat:                true,
			NeedsCooling:                 true,
		},
		{
			CodedEntry:                   coded("ACCESS_POINT", "Access Point", "Wireless access point", 40),
			CategoryCode:                 CategoryConnectivity,
			SystemType:                   true,
			Installable:                  true,
			RequiresManagement:           true,
			SupportsSnmp:                 true,
			HasFirmware:                  true,
			CanHaveIPAddress:             true,
			ProcessesNetworkTraffic:      true,
			RequiresPower:                true,
			TypicalPowerConsumptionWatts: 25,
		},
		{
			CodedEntry:        coded("PATCH_PANEL", "Patch Panel", "Passive patch panel", 50),
			CategoryCode:      CategoryConnectivity,
			SystemType:        true,
			RequiresRackSpace: true,
			TypicalRackUnits:  1,
			Installable:       true,
		},
		{
			CodedEntry:   coded("CABLE_RUN", "Cable Run", "Structured cabling run", 60),
			CategoryCode: CategoryConnectivity,
			SystemType:   true,
		},
		{
			CodedEntry:   coded("CONNECTOR", "Connector", "Cable connector", 70),
			CategoryCode: CategoryConnectivity,
			SystemType:   true,
		},
	}
}

// DefaultComponentNatures returns the active/passive/support classifiers.
func DefaultComponentNatures() []*ComponentNature {
	return []*ComponentNature{
		{
			CodedEntry:              coded("ACTIVE", "Active", "Powered equipment processing traffic", 10),
			RequiresManagement:      true,
			CanHaveIPAddress:        true,
			HasFirmware:             true,
			ProcessesNetworkTraffic: true,
			SupportsSnmpMonitoring:  true,
			PowerConsumption:        "high",
		},
		{
			CodedEntry:       coded("PASSIVE", "Passive", "Unpowered infrastructure", 20),
			PowerConsumption: "none",
		},
		{
			CodedEntry:       coded("SUPPORT", "Support", "Supporting infrastructure", 30),
			PowerConsumption: "variable",
		},
	}
}

// DefaultComponentStatuses returns the component lifecycle graph.
func DefaultComponentStatuses() []*ComponentStatus {
	statuses := []*ComponentStatus{
		{CodedEntry: coded("PLANNED", "Planned", "Component is planned for installation", 10), LifecyclePhase: "procurement", InInventory: true, InTransition: true,
			NextStatusCodes: []string{"ORDERED", "DECOMMISSIONED"}},
		{CodedEntry: coded("ORDERED", "Ordered", "Component is being ordered", 20), LifecyclePhase: "procurement", InInventory: true, InTransition: true, RequiresAttention: true,
			NextStatusCodes: []string{"INSTALLING", "DECOMMISSIONED"}},
		{CodedEntry: coded("INSTALLING", "Installing", "Component is being installed", 30), LifecyclePhase: "deployment", InInventory: true, InTransition: true, RequiresAttention: true,
			NextStatusCodes: []string{"TESTING", "FAULTY", "DECOMMISSIONED"}},
		{CodedEntry: coded("TESTING", "Testing", "Component is being tested", 40), LifecyclePhase: "deployment", Operational: true, CanAcceptInstallations: true, PhysicallyPresent: true, InInventory: true, InTransition: true,
			NextStatusCodes: []string{"ACTIVE", "REPAIRED", "FAULTY", "CONFIGURED"}},
		{CodedEntry: coded("CONFIGURED", "Configured", "Component is configured and ready for use", 50), LifecyclePhase: "deployment", Available: true, Operational: true, CanAcceptInstallations: true, PhysicallyPresent: true, InInventory: true, InTransition: true, CanBeReserved: true,
			NextStatusCodes: []string{"ACTIVE", "RESERVED", "TESTING"}},
		{CodedEntry: coded("ACTIVE", "Active", "Component is operational and available", 60), LifecyclePhase: "operational", Available: true, Operational: true, CanAcceptInstallations: true, PhysicallyPresent: true, InInventory: true,
			NextStatusCodes: []string{"INACTIVE", "MAINTENANCE", "FAULTY", "DAMAGED", "RESERVED", "DECOMMISSIONED"}},
		{CodedEntry: coded("INACTIVE", "Inactive", "Component is temporarily not in use", 70), LifecyclePhase: "operational", PhysicallyPresent: true, InInventory: true, CanBeReserved: true,
			NextStatusCodes: []string{"ACTIVE", "MAINTENANCE", "RESERVED", "DECOMMISSIONED"}},
		{CodedEntry: coded("RESERVED", "Reserved", "Component is reserved for specific use", 80), LifecyclePhase: "operational", PhysicallyPresent: true, InInventory: true,
			NextStatusCodes: []string{"ACTIVE", "INACTIVE", "PLANNED"}},
		{CodedEntry: coded("MAINTENANCE", "Maintenance", "Component is under maintenance", 90), LifecyclePhase: "maintenance", RequiresAttention: true, PhysicallyPresent: true, InInventory: true, InTransition: true,
			NextStatusCodes: []string{"ACTIVE", "REPAIRED", "FAULTY", "DAMAGED"}},
		{CodedEntry: coded("DAMAGED", "Damaged", "Component is damaged but potentially repairable", 100), LifecyclePhase: "maintenance", RequiresAttention: true, PhysicallyPresent: true, InInventory: true,
			NextStatusCodes: []string{"MAINTENANCE", "FAULTY", "DECOMMISSIONED", "DISPOSED"}},
		{CodedEntry: coded("FAULTY", "Faulty", "Component needs repair", 110), LifecyclePhase: "maintenance", RequiresAttention: true, PhysicallyPresent: true, InInventory: true,
			NextStatusCodes: []string{"MAINTENANCE", "REPAIRED", "DECOMMISSIONED", "DISPOSED"}},
		{CodedEntry: coded("REPAIRED", "Repaired", "Component is fully functional", 120), LifecyclePhase: "maintenance", Available: true, Operational: true, CanAcceptInstallations: true, PhysicallyPresent: true, InInventory: true, InTransition: true, CanBeReserved: true,
			NextStatusCodes: []string{"ACTIVE", "TESTING", "RESERVED"}},
		{CodedEntry: coded("DECOMMISSIONED", "Decommissioned", "Component is permanently out of service", 130), LifecyclePhase: "end-of-life", InInventory: true,
			NextStatusCodes: []string{"DISPOSED", "PLANNED"}},
		{CodedEntry: coded("DISPOSED", "Disposed", "Component is removed from inventory", 140), LifecyclePhase: "end-of-life"},
		{CodedEntry: coded(StatusUnknown, "Unknown", "Component status is unknown", 150), LifecyclePhase: "unclassified", RequiresAttention: true, InInventory: true},
	}
	return statuses
}

// DefaultInstallationStatuses returns the installation lifecycle graph.
func DefaultInstallationStatuses() []*InstallationStatus {
	return []*InstallationStatus{
		{CodedEntry: coded("PLANNED", "Planned", "Installation is planned", 10), ColorCategory: "info", StatusOrder: 10,
			NextStatusCodes: []string{"IN_PROGRESS", "FAILED"}},
		{CodedEntry: coded("IN_PROGRESS", "In Progress", "Installation is currently being performed", 20), ColorCategory: "info", StatusOrder: 20, PhysicallyPresent: true, RequiresAttention: true, AllowsMaintenance: true,
			NextStatusCodes: []string{"INSTALLED", "FAILED"}},
		{CodedEntry: coded("INSTALLED", "Installed", "Equipment is successfully installed and operational", 30), ColorCategory: "success", StatusOrder: 30, PhysicallyPresent: true, Operational: true, AllowsEquipmentOperation: true, AllowsMaintenance: true,
			NextStatusCodes: []string{"TEMPORARILY_REMOVED", "PENDING_REMOVAL", "FAILED"}},
		{CodedEntry: coded("TEMPORARILY_REMOVED", "Temporarily Removed", "Equipment temporarily removed for maintenance", 40), ColorCategory: "warning", StatusOrder: 40, PhysicallyPresent: true, AllowsMaintenance: true,
			NextStatusCodes: []string{"INSTALLED", "REMOVED", "FAILED"}},
		{CodedEntry: coded("PENDING_REMOVAL", "Pending Removal", "Equipment scheduled for removal", 50), ColorCategory: "warning", StatusOrder: 50, RequiresAttention: true, RequiresDocumentation: true,
			NextStatusCodes: []string{"REMOVED", "INSTALLED"}},
		{CodedEntry: coded("REMOVED", "Removed", "Equipment permanently removed from this location", 60), ColorCategory: "danger", StatusOrder: 60, FinalStatus: true, RequiresDocumentation: true,
			NextStatusCodes: []string{"PLANNED"}},
		{CodedEntry: coded("FAILED", "Failed", "Installation failed or equipment malfunctioned", 70), ColorCategory: "danger", StatusOrder: 70, ErrorStatus: true, RequiresAttention: true, NotifiesStakeholders: true,
			NextStatusCodes: []string{"PLANNED"}},
	}
}

// DefaultInstallableTypes returns the installable item classifiers.
func DefaultInstallableTypes() []*InstallableType {
	return []*InstallableType{
		{CodedEntry: coded("DEVICE", "Device", "Managed network device", 10),
			RequiresRackPosition: true, HasStandardRackUnits: true, DefaultRackUnits: 1,
			SupportsPowerManagement: true, TypicalInstallationTimeMinutes: 60, RequiresShutdown: true, InstallationPriority: 3},
		{CodedEntry: coded("CONNECTIVITY", "Connectivity Component", "Passive connectivity equipment", 20),
			RequiresRackPosition: true, HasStandardRackUnits: true, DefaultRackUnits: 1,
			TypicalInstallationTimeMinutes: 30, HotSwappable: true, InstallationPriority: 5},
		{CodedEntry: coded("SUPPORT", "Support Component", "Supporting infrastructure", 30),
			TypicalInstallationTimeMinutes: 45, InstallationPriority: 7},
	}
}

// DefaultLocationTypes returns the building/floor/room/rack hierarchy.
func DefaultLocationTypes() []*LocationType {
	return []*LocationType{
		{CodedEntry: coded("BUILDING", "Building", "Building or datacenter", 10),
			HierarchyLevel: 10, CanHaveChildren: true, CanHoldEquipment: false, RequiresAddress: true,
			PhysicalLocation: true, BuildingLike: true,
			AllowedChildTypeCodes: []string{"FLOOR", "ROOM"}},
		{CodedEntry: coded("FLOOR", "Floor", "Floor within a building", 20),
			HierarchyLevel: 20, CanHaveChildren: true, CanHoldEquipment: false,
			PhysicalLocation:      true,
			AllowedChildTypeCodes: []string{"ROOM"}},
		{CodedEntry: coded("ROOM", "Room", "Room or closet", 30),
			HierarchyLevel: 40, CanHaveChildren: true, CanHoldEquipment: true,
			PhysicalLocation: true, RoomLike: true,
			RequiresAccessControl: true,
			AllowedChildTypeCodes: []string{"RACK_LOCATION"}},
		{CodedEntry: coded("RACK_LOCATION", "Rack", "Rack position within a room", 40),
			HierarchyLevel: 60, CanHaveChildren: false, CanHoldEquipment: true,
			PhysicalLocation: true, RackLike: true, DefaultRackUnits: 42,
			RequiresClimateControl: true, RequiresPowerManagement: true, RequiresMonitoring: true},
	}
}
