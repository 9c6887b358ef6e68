// Description: This file contains the table descriptors and CRUD methods for
// the catalog tables.
package postgresql

import (
	"context"

	"github.com/lib/pq"

	"github.com/switchscope/switchscope/internal/common/apperrors"
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/catalog"
)

var componentCategoryTable = catalogTable[catalog.ComponentCategory]{
	table: "component_categories",
	label: "component category",
	extraCols: []string{
		"is_system_category", "is_infrastructure",
	},
	entry: func(c *catalog.ComponentCategory) *catalog.CodedEntry { return &c.CodedEntry },
	args: func(c *catalog.ComponentCategory) []any {
		return []any{c.SystemCategory, c.Infrastructure}
	},
	dest: func(c *catalog.ComponentCategory) []any {
		return []any{&c.SystemCategory, &c.Infrastructure}
	},
}

var componentTypeTable = catalogTable[catalog.ComponentType]{
	table: "component_types",
	label: "component type",
	extraCols: []string{
		"category_code", "is_system_type",
		"requires_rack_space", "typical_rack_units", "can_contain_components", "is_installable",
		"requires_management", "supports_snmp", "has_firmware", "can_have_ip_address",
		"processes_network_traffic",
		"requires_power", "typical_power_consumption_watts", "generates_heat", "needs_cooling",
		"maintenance_interval_months", "typical_lifespan_years",
		"allowed_child_type_codes", "allowed_child_category_codes",
	},
	entry: func(t *catalog.ComponentType) *catalog.CodedEntry { return &t.CodedEntry },
	args: func(t *catalog.ComponentType) []any {
		return []any{
			t.CategoryCode, t.SystemType,
			t.RequiresRackSpace, t.TypicalRackUnits, t.CanContainComponents, t.Installable,
			t.RequiresManagement, t.SupportsSnmp, t.HasFirmware, t.CanHaveIPAddress,
			t.ProcessesNetworkTraffic,
			t.RequiresPower, t.TypicalPowerConsumptionWatts, t.GeneratesHeat, t.NeedsCooling,
			t.MaintenanceIntervalMonths, t.TypicalLifespanYears,
			pq.Array(t.AllowedChildTypeCodes), pq.Array(t.AllowedChildCategoryCodes),
		}
	},
	dest: func(t *catalog.ComponentType) []any {
		return []any{
			&t.CategoryCode, &t.SystemType,
			&t.RequiresRackSpace, &t.TypicalRackUnits, &t.CanContainComponents, &t.Installable,
			&t.RequiresManagement, &t.SupportsSnmp, &t.HasFirmware, &t.CanHaveIPAddress,
			&t.ProcessesNetworkTraffic,
			&t.RequiresPower, &t.TypicalPowerConsumptionWatts, &t.GeneratesHeat, &t.NeedsCooling,
			&t.MaintenanceIntervalMonths, &t.TypicalLifespanYears,
			pq.Array(&t.AllowedChildTypeCodes), pq.Array(&t.AllowedChildCategoryCodes),
		}
	},
}

var componentModelTable = catalogTable[catalog.ComponentModel]{
	table: "component_models",
	label: "component model",
	extraCols: []string{
		"manufacturer", "model_number", "part_number", "sku", "type_code",
		"is_discontinued", "is_end_of_life", "release_date", "discontinue_date",
		"datasheet_url", "manual_url",
		"warranty_years", "expected_lifespan_years", "maintenance_interval_months",
		"weight_kg", "dimensions_mm", "certifications",
	},
	entry: func(m *catalog.ComponentModel) *catalog.CodedEntry { return &m.CodedEntry },
	args: func(m *catalog.ComponentModel) []any {
		return []any{
			m.Manufacturer, m.ModelNumber, m.PartNumber, m.Sku, m.TypeCode,
			m.Discontinued, m.EndOfLife, m.ReleaseDate, m.DiscontinueDate,
			m.DatasheetURL, m.ManualURL,
			m.WarrantyYears, m.ExpectedLifespanYears, m.MaintenanceIntervalMonths,
			m.WeightKg, m.DimensionsMm, m.Certifications,
		}
	},
	dest: func(m *catalog.ComponentModel) []any {
		return []any{
			&m.Manufacturer, &m.ModelNumber, &m.PartNumber, &m.Sku, &m.TypeCode,
			&m.Discontinued, &m.EndOfLife, &m.ReleaseDate, &m.DiscontinueDate,
			&m.DatasheetURL, &m.ManualURL,
			&m.WarrantyYears, &m.ExpectedLifespanYears, &m.MaintenanceIntervalMonths,
			&m.WeightKg, &m.DimensionsMm, &m.Certifications,
		}
	},
}

var componentNatureTable = catalogTable[catalog.ComponentNature]{
	table: "component_natures",
	label: "component nature",
	extraCols: []string{
		"requires_management", "can_have_ip_address", "has_firmware",
		"processes_network_traffic", "supports_snmp_monitoring", "power_consumption_category",
	},
	entry: func(n *catalog.ComponentNature) *catalog.CodedEntry { return &n.CodedEntry },
	args: func(n *catalog.ComponentNature) []any {
		return []any{
			n.RequiresManagement, n.CanHaveIPAddress, n.HasFirmware,
			n.ProcessesNetworkTraffic, n.SupportsSnmpMonitoring, n.PowerConsumption,
		}
	},
	dest: func(n *catalog.ComponentNature) []any {
		return []any{
			&n.RequiresManagement, &n.CanHaveIPAddress, &n.HasFirmware,
			&n.ProcessesNetworkTraffic, &n.SupportsSnmpMonitoring, &n.PowerConsumption,
		}
	},
}

var componentStatusTable = catalogTable[catalog.ComponentStatus]{
	table: "component_statuses",
	label: "component status",
	extraCols: []string{
		"lifecycle_phase",
		"is_available", "is_operational", "can_accept_installations", "requires_attention",
		"is_physically_present", "is_in_inventory", "is_in_transition", "can_be_reserved",
		"next_status_codes",
	},
	entry: func(s *catalog.ComponentStatus) *catalog.CodedEntry { return &s.CodedEntry },
	args: func(s *catalog.ComponentStatus) []any {
		return []any{
			s.LifecyclePhase,
			s.Available, s.Operational, s.CanAcceptInstallations, s.RequiresAttention,
			s.PhysicallyPresent, s.InInventory, s.InTransition, s.CanBeReserved,
			pq.Array(s.NextStatusCodes),
		}
	},
	dest: func(s *catalog.ComponentStatus) []any {
		return []any{
			&s.LifecyclePhase,
			&s.Available, &s.Operational, &s.CanAcceptInstallations, &s.RequiresAttention,
			&s.PhysicallyPresent, &s.InInventory, &s.InTransition, &s.CanBeReserved,
			pq.Array(&s.NextStatusCodes),
		}
	},
}

var installationStatusTable = catalogTable[catalog.InstallationStatus]{
	table: "installation_statuses",
	label: "installation status",
	extraCols: []string{
		"color_category",
		"is_physically_present", "is_operational", "requires_attention",
		"is_final_status", "is_error_status",
		"status_order", "auto_transition_minutes",
		"allows_equipment_operation", "allows_maintenance",
		"requires_documentation", "notifies_stakeholders",
		"next_status_codes",
	},
	entry: func(s *catalog.InstallationStatus) *catalog.CodedEntry { return &s.CodedEntry },
	args: func(s *catalog.InstallationStatus) []any {
		return []any{
			s.ColorCategory,
			s.PhysicallyPresent, s.Operational, s.RequiresAttention,
			s.FinalStatus, s.ErrorStatus,
			s.StatusOrder, s.AutoTransitionMinutes,
			s.AllowsEquipmentOperation, s.AllowsMaintenance,
			s.RequiresDocumentation, s.NotifiesStakeholders,
			pq.Array(s.NextStatusCodes),
		}
	},
	dest: func(s *catalog.InstallationStatus) []any {
		return []any{
			&s.ColorCategory,
			&s.PhysicallyPresent, &s.Operational, &s.RequiresAttention,
			&s.FinalStatus, &s.ErrorStatus,
			&s.StatusOrder, &s.AutoTransitionMinutes,
			&s.AllowsEquipmentOperation, &s.AllowsMaintenance,
			&s.RequiresDocumentation, &s.NotifiesStakeholders,
			pq.Array(&s.NextStatusCodes),
		}
	},
}

var installableTypeTable = catalogTable[catalog.InstallableType]{
	table: "installable_types",
	label: "installable type",
	extraCols: []string{
		"requires_rack_position", "has_standard_rack_units",
		"supports_power_management", "requires_environmental_control",
		"typical_installation_time_minutes", "requires_shutdown", "hot_swappable",
		"default_rack_units", "max_weight_kg", "installation_priority",
	},
	entry: func(t *catalog.InstallableType) *catalog.CodedEntry { return &t.CodedEntry },
	args: func(t *catalog.InstallableType) []any {
		return []any{
			t.RequiresRackPosition, t.HasStandardRackUnits,
			t.SupportsPowerManagement, t.RequiresEnvironmentalControl,
			t.TypicalInstallationTimeMinutes, t.RequiresShutdown, t.HotSwappable,
			t.DefaultRackUnits, t.MaxWeightKg, t.InstallationPriority,
		}
	},
	dest: func(t *catalog.InstallableType) []any {
		return []any{
			&t.RequiresRackPosition, &t.HasStandardRackUnits,
			&t.SupportsPowerManagement, &t.RequiresEnvironmentalControl,
			&t.TypicalInstallationTimeMinutes, &t.RequiresShutdown, &t.HotSwappable,
			&t.DefaultRackUnits, &t.MaxWeightKg, &t.InstallationPriority,
		}
	},
}

var locationTypeTable = catalogTable[catalog.LocationType]{
	table: "location_types",
	label: "location type",
	extraCols: []string{
		"color_category", "map_symbol",
		"hierarchy_level", "can_have_children", "can_hold_equipment", "requires_address",
		"is_physical_location", "is_rack_like", "is_room_like", "is_building_like",
		"max_children_count", "max_equipment_count", "default_rack_units",
		"requires_access_control", "requires_climate_control",
		"requires_power_management", "requires_monitoring",
		"allowed_child_type_codes",
	},
	entry: func(t *catalog.LocationType) *catalog.CodedEntry { return &t.CodedEntry },
	args: func(t *catalog.LocationType) []any {
		return []any{
			t.ColorCategory, t.MapSymbol,
			t.HierarchyLevel, t.CanHaveChildren, t.CanHoldEquipment, t.RequiresAddress,
			t.PhysicalLocation, t.RackLike, t.RoomLike, t.BuildingLike,
			t.MaxChildrenCount, t.MaxEquipmentCount, t.DefaultRackUnits,
			t.RequiresAccessControl, t.RequiresClimateControl,
			t.RequiresPowerManagement, t.RequiresMonitoring,
			pq.Array(t.AllowedChildTypeCodes),
		}
	},
	dest: func(t *catalog.LocationType) []any {
		return []any{
			&t.ColorCategory, &t.MapSymbol,
			&t.HierarchyLevel, &t.CanHaveChildren, &t.CanHoldEquipment, &t.RequiresAddress,
			&t.PhysicalLocation, &t.RackLike, &t.RoomLike, &t.BuildingLike,
			&t.MaxChildrenCount, &t.MaxEquipmentCount, &t.DefaultRackUnits,
			&t.RequiresAccessControl, &t.RequiresClimateControl,
			&t.RequiresPowerManagement, &t.RequiresMonitoring,
			pq.Array(&t.AllowedChildTypeCodes),
		}
	},
}

// Component Category

func (cm *catalogManager) CreateComponentCategory(ctx context.Context, c *catalog.ComponentCategory) apperrors.Error {
	return createCoded(ctx, cm.conn(), componentCategoryTable, c)
}

func (cm *catalogManager) GetComponentCategory(ctx context.Context, id uuid.UUID) (*catalog.ComponentCategory, apperrors.Error) {
	return getCodedByID(ctx, cm.conn(), componentCategoryTable, id)
}

func (cm *catalogManager) GetComponentCategoryByCode(ctx context.Context, code string) (*catalog.ComponentCategory, apperrors.Error) {
	return getCodedByCode(ctx, cm.conn(), componentCategoryTable, code)
}

func (cm *catalogManager) ListComponentCategories(ctx context.Context, activeOnly bool) ([]*catalog.ComponentCategory, apperrors.Error) {
	return listCoded(ctx, cm.conn(), componentCategoryTable, activeOnly)
}

func (cm *catalogManager) UpdateComponentCategory(ctx context.Context, c *catalog.ComponentCategory) apperrors.Error {
	return updateCoded(ctx, cm.conn(), componentCategoryTable, c)
}

func (cm *catalogManager) DeleteComponentCategory(ctx context.Context, id uuid.UUID) apperrors.Error {
	return deleteCoded(ctx, cm.conn(), componentCategoryTable, id)
}

// Component Type

func (cm *catalogManager) CreateComponentType(ctx context.Context, t *catalog.ComponentType) apperrors.Error {
	return createCoded(ctx, cm.conn(), componentTypeTable, t)
}

func (cm *catalogManager) GetComponentType(ctx context.Context, id uuid.UUID) (*catalog.ComponentType, apperrors.Error) {
	return getCodedByID(ctx, cm.conn(), componentTypeTable, id)
}

func (cm *catalogManager) GetComponentTypeByCode(ctx context.Context, code string) (*catalog.ComponentType, apperrors.Error) {
	return getCodedByCode(ctx, cm.conn(), componentTypeTable, code)
}

func (cm *catalogManager) ListComponentTypes(ctx context.Context, activeOnly bool) ([]*catalog.ComponentType, apperrors.Error) {
	return listCoded(ctx, cm.conn(), componentTypeTable, activeOnly)
}

func (cm *catalogManager) UpdateComponentType(ctx context.Context, t *catalog.ComponentType) apperrors.Error {
	return updateCoded(ctx, cm.conn(), componentTypeTable, t)
}

func (cm *catalogManager) DeleteComponentType(ctx context.Context, id uuid.UUID) apperrors.Error {
	return deleteCoded(ctx, cm.conn(), componentTypeTable, id)
}

// CountActiveTypesInCategory returns the number of active component types
// referencing the category code. Used by the category deletion guard.
func (cm *catalogManager) CountActiveTypesInCategory(ctx context.Context, categoryCode string) (int, apperrors.Error) {
	query := `
		SELECT count(*)
		FROM component_types
		WHERE upper(category_code) = upper($1) AND is_active = true;
	`
	var n int
	if err := cm.conn().QueryRowContext(ctx, query, categoryCode).Scan(&n); err != nil {
		return 0, dberrorFromScan(ctx, err, "failed to count types in category")
	}
	return n, nil
}

// Component Model

func (cm *catalogManager) CreateComponentModel(ctx context.Context, m *catalog.ComponentModel) apperrors.Error {
	return createCoded(ctx, cm.conn(), componentModelTable, m)
}

func (cm *catalogManager) GetComponentModel(ctx context.Context, id uuid.UUID) (*catalog.ComponentModel, apperrors.Error) {
	return getCodedByID(ctx, cm.conn(), componentModelTable, id)
}

func (cm *catalogManager) GetComponentModelByCode(ctx context.Context, code string) (*catalog.ComponentModel, apperrors.Error) {
	return getCodedByCode(ctx, cm.conn(), componentModelTable, code)
}

func (cm *catalogManager) ListComponentModels(ctx context.Context, activeOnly bool) ([]*catalog.ComponentModel, apperrors.Error) {
	return listCoded(ctx, cm.conn(), componentModelTable, activeOnly)
}

func (cm *catalogManager) UpdateComponentModel(ctx context.Context, m *catalog.ComponentModel) apperrors.Error {
	return updateCoded(ctx, cm.conn(), componentModelTable, m)
}

func (cm *catalogManager) DeleteComponentModel(ctx context.Context, id uuid.UUID) apperrors.Error {
	return deleteCoded(ctx, cm.conn(), componentModelTable, id)
}

// Component Nature

func (cm *catalogManager) CreateComponentNature(ctx context.Context, n *catalog.ComponentNature) apperrors.Error {
	return createCoded(ctx, cm.conn(), componentNatureTable, n)
}

func (cm *catalogManager) GetComponentNature(ctx context.Context, id uuid.UUID) (*catalog.ComponentNature, apperrors.Error) {
	return getCodedByID(ctx, cm.conn(), componentNatureTable, id)
}

func (cm *catalogManager) GetComponentNatureByCode(ctx context.Context, code string) (*catalog.ComponentNature, apperrors.Error) {
	return getCodedByCode(ctx, cm.conn(), componentNatureTable, code)
}

func (cm *catalogManager) ListComponentNatures(ctx context.Context, activeOnly bool) ([]*catalog.ComponentNature, apperrors.Error) {
	return listCoded(ctx, cm.conn(), componentNatureTable, activeOnly)
}

func (cm *catalogManager) UpdateComponentNature(ctx context.Context, n *catalog.ComponentNature) apperrors.Error {
	return updateCoded(ctx, cm.conn(), componentNatureTable, n)
}

func (cm *catalogManager) DeleteComponentNature(ctx context.Context, id uuid.UUID) apperrors.Error {
	return deleteCoded(ctx, cm.conn(), componentNatureTable, id)
}

// Component Status

func (cm *catalogManager) CreateComponentStatus(ctx context.Context, s *catalog.ComponentStatus) apperrors.Error {
	return createCoded(ctx, cm.conn(), componentStatusTable, s)
}

func (cm *catalogManager) GetComponentStatus(ctx context.Context, id uuid.UUID) (*catalog.ComponentStatus, apperrors.Error) {
	return getCodedByID(ctx, cm.conn(), componentStatusTable, id)
}

func (cm *catalogManager) GetComponentStatusByCode(ctx context.Context, code string) (*catalog.ComponentStatus, apperrors.Error) {
	return getCodedByCode(ctx, cm.conn(), componentStatusTable, code)
}

func (cm *catalogManager) ListComponentStatuses(ctx context.Context, activeOnly bool) ([]*catalog.ComponentStatus, apperrors.Error) {
	return listCoded(ctx, cm.conn(), componentStatusTable, activeOnly)
}

func (cm *catalogManager) UpdateComponentStatus(ctx context.Context, s *catalog.ComponentStatus) apperrors.Error {
	return updateCoded(ctx, cm.conn(), componentStatusTable, s)
}

func (cm *catalogManager) DeleteComponentStatus(ctx context.Context, id uuid.UUID) apperrors.Error {
	return deleteCoded(ctx, cm.conn(), componentStatusTable, id)
}

// Installation Status

func (cm *catalogManager) CreateInstallationStatus(ctx context.Context, s *catalog.InstallationStatus) apperrors.Error {
	return createCoded(ctx, cm.conn(), installationStatusTable, s)
}

func (cm *catalogManager) GetInstallationStatus(ctx context.Context, id uuid.UUID) (*catalog.InstallationStatus, apperrors.Error) {
	return getCodedByID(ctx, cm.conn(), installationStatusTable, id)
}

func (cm *catalogManager) GetInstallationStatusByCode(ctx context.Context, code string) (*catalog.InstallationStatus, apperrors.Error) {
	return getCodedByCode(ctx, cm.conn(), installationStatusTable, code)
}

func (cm *catalogManager) ListInstallationStatuses(ctx context.Context, activeOnly bool) ([]*catalog.InstallationStatus, apperrors.Error) {
	return listCoded(ctx, cm.conn(), installationStatusTable, activeOnly)
}

func (cm *catalogManager) UpdateInstallationStatus(ctx context.Context, s *catalog.InstallationStatus) apperrors.Error {
	return updateCoded(ctx, cm.conn(), installationStatusTable, s)
}

func (cm *catalogManager) DeleteInstallationStatus(ctx context.Context, id uuid.UUID) apperrors.Error {
	return deleteCoded(ctx, cm.conn(), installationStatusTable, id)
}

// Installable Type

func (cm *catalogManager) CreateInstallableType(ctx context.Context, t *catalog.InstallableType) apperrors.Error {
	return createCoded(ctx, cm.conn(), installableTypeTable, t)
}

func (cm *catalogManager) GetInstallableType(ctx context.Context, id uuid.UUID) (*catalog.InstallableType, apperrors.Error) {
	return getCodedByID(ctx, cm.conn(), installableTypeTable, id)
}

func (cm *catalogManager) GetInstallableTypeByCode(ctx context.Context, code string) (*catalog.InstallableType, apperrors.Error) {
	return getCodedByCode(ctx, cm.conn(), installableTypeTable, code)
}

func (cm *catalogManager) ListInstallableTypes(ctx context.Context, activeOnly bool) ([]*catalog.InstallableType, apperrors.Error) {
	return listCoded(ctx, cm.conn(), installableTypeTable, activeOnly)
}

func (cm *catalogManager) UpdateInstallableType(ctx context.Context, t *catalog.InstallableType) apperrors.Error {
	return updateCoded(ctx, cm.conn(), installableTypeTable, t)
}

func (cm *catalogManager) DeleteInstallableType(ctx context.Context, id uuid.UUID) apperrors.Error {
	return deleteCoded(ctx, cm.conn(), installableTypeTable, id)
}

// Location Type

func (cm *catalogManager) CreateLocationType(ctx context.Context, t *catalog.LocationType) apperrors.Error {
	return createCoded(ctx, cm.conn(), locationTypeTable, t)
}

func (cm *catalogManager) GetLocationType(ctx context.Context, id uuid.UUID) (*catalog.LocationType, apperrors.Error) {
	return getCodedByID(ctx, cm.conn(), locationTypeTable, id)
}

func (cm *catalogManager) GetLocationTypeByCode(ctx context.Context, code string) (*catalog.LocationType, apperrors.Error) {
	return getCodedByCode(ctx, cm.conn(), locationTypeTable, code)
}

func (cm *catalogManager) ListLocationTypes(ctx context.Context, activeOnly bool) ([]*catalog.LocationType, apperrors.Error) {
	return listCoded(ctx, cm.conn(), locationTypeTable, activeOnly)
}

func (cm *catalogManager) UpdateLocationType(ctx context.Context, t *catalog.LocationType) apperrors.Error {
	return updateCoded(ctx, cm.conn(), locationTypeTable, t)
}

func (cm *catalogManager) DeleteLocationType(ctx context.Context, id uuid.UUID) apperrors.Error {
	return deleteCoded(ctx, cm.conn(), locationTypeTable, id)
}
