package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cat(code string) *ComponentCategory {
	return &ComponentCategory{CodedEntry: coded(code, code, "", 0)}
}

func typ(code string, category *ComponentCategory) *ComponentType {
	t := &ComponentType{CodedEntry: coded(code, code, "", 0)}
	if category != nil {
		t.CategoryCode = category.Code
		t.Category = category
	}
	return t
}

func TestCategoryContainmentDefaults(t *testing.T) {
	housing := cat(CategoryHousing)
	connectivity := cat(CategoryConnectivity)
	support := cat(CategorySupport)
	module := cat(CategoryModule)
	custom := cat("sensors")

	assert.True(t, housing.CanContainCategory(connectivity))
	assert.True(t, housing.CanContainCategory(support))
	assert.True(t, housing.CanContainCategory(module))
	assert.False(t, housing.CanContainCategory(housing))
	assert.False(t, housing.CanContainCategory(custom))

	assert.True(t, connectivity.CanContainCategory(module))
	assert.False(t, connectivity.CanContainCategory(connectivity))
	assert.False(t, connectivity.CanContainCategory(support))

	assert.False(t, support.CanContainCategory(module))
	assert.False(t, module.CanContainCategory(module))
	assert.False(t, custom.CanContainCategory(module))

	assert.False(t, housing.CanContainCategory(nil))
}

func TestCanContainTypeShortCircuit(t *testing.T) {
	housing := cat(CategoryHousing)
	connectivity := cat(CategoryConnectivity)

	rack := typ("RACK", housing)
	sw := typ("SWITCH", connectivity)

	// parent that cannot contain components denies everything
	assert.False(t, rack.CanContainType(sw))

	rack.CanContainComponents = true
	assert.True(t, rack.CanContainType(sw))
	assert.False(t, rack.CanContainType(nil))
}

func TestCanContainTypeTierPrecedence(t *testing.T) {
	// Category default would deny: a support parent never contains
	// connectivity children.
	support := cat(CategorySupport)
	connectivity := cat(CategoryConnectivity)

	shelf := typ("SHELF", support)
	shelf.CanContainComponents = true
	sw := typ("SWITCH", connectivity)

	assert.False(t, shelf.CanContainType(sw), "category default should deny")

	// The explicit type allow-list wins over the category default.
	shelf.AllowedChildTypeCodes = []string{"SWITCH"}
	assert.True(t, shelf.CanContainType(sw))

	// The explicit category allow-list also wins over the default.
	shelf.AllowedChildTypeCodes = nil
	shelf.AllowedChildCategoryCodes = []string{CategoryConnectivity}
	assert.True(t, shelf.CanContainType(sw))
}

func TestContainmentIsNotTransitive(t *testing.T) {
	housing := cat(CategoryHousing)
	connectivity := cat(CategoryConnectivity)
	module := cat(CategoryModule)

	rack := typ("RACK", housing)
	rack.CanContainComponents = true
	sw := typ("SWITCH", connectivity)
	sw.CanContainComponents = true
	sfp := typ("SFP", module)

	// rack holds switch; switch holds module
	assert.True(t, rack.CanContainType(sw))
	assert.True(t, sw.CanContainType(sfp))

	// but the chain does not collapse: rack-to-module is evaluated on its
	// own and happens to pass only because housing may contain modules
	// directly. Use a stricter pair to show the absence of transitivity.
	patchCord := typ("PATCH_CORD", module)
	patchCord.CanContainComponents = true
	pin := typ("PIN", cat("parts"))

	assert.True(t, sw.CanContainType(patchCord))
	patchCord.AllowedChildTypeCodes = []string{"PIN"}
	assert.True(t, patchCord.CanContainType(pin))
	assert.False(t, sw.CanContainType(pin), "A contains B and B contains C must not imply A contains C")
}

func TestTypeConfigurationValidation(t *testing.T) {
	connectivity := cat(CategoryConnectivity)

	sw := typ("SWITCH", connectivity)
	sw.DisplayName = "Switch"
	assert.True(t, sw.IsValidConfiguration())

	sw.RequiresRackSpace = true
	assert.False(t, sw.IsValidConfiguration(), "rack space without units is invalid")
	sw.TypicalRackUnits = 1
	assert.True(t, sw.IsValidConfiguration())

	sw.RequiresManagement = true
	assert.False(t, sw.IsValidConfiguration(), "managed without IP address is invalid")
	sw.CanHaveIPAddress = true
	assert.True(t, sw.IsValidConfiguration())
}

func TestCategoryDeletionGuard(t *testing.T) {
	connectivity := cat(CategoryConnectivity)

	// one active SWITCH type blocks deletion; deactivating it unblocks
	assert.False(t, connectivity.CanBeDeleted(1))
	assert.True(t, connectivity.CanBeDeleted(0))

	connectivity.SystemCategory = true
	assert.False(t, connectivity.CanBeDeleted(0), "system categories are never deletable")
	assert.False(t, connectivity.CanBeDeactivated(0))
}

func TestTypeDeactivationGuard(t *testing.T) {
	sw := typ("SWITCH", cat(CategoryConnectivity))

	// An active component referencing the type blocks deactivation.
	assert.False(t, sw.CanBeDeactivated(1))
	assert.True(t, sw.CanBeDeactivated(0))

	sw.SystemType = true
	assert.False(t, sw.CanBeDeactivated(0), "system types stay active")
}

func TestPowerConsumptionCategory(t *testing.T) {
	connectivity := cat(CategoryConnectivity)
	housing := cat(CategoryHousing)

	tests := []struct {
		name  string
		typ   *ComponentType
		watts int
		power bool
		want  string
	}{
		{"unpowered", typ("RACK", housing), 0, false, "none"},
		{"low", typ("AP", connectivity), 25, true, "low"},
		{"medium", typ("SWITCH", connectivity), 150, true, "medium"},
		{"high", typ("CORE_SWITCH", connectivity), 450, true, "high"},
		{"very high", typ("CHASSIS_SWITCH", connectivity), 900, true, "very_high"},
		{"undeclared falls back to category", typ("SWITCH", connectivity), 0, true, "high"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.typ.RequiresPower = tt.power
			tt.typ.TypicalPowerConsumptionWatts = tt.watts
			assert.Equal(t, tt.want, tt.typ.PowerConsumptionCategory())
		})
	}
}

func TestMaintenanceAndLifespanDefaults(t *testing.T) {
	connectivity := cat(CategoryConnectivity)
	housing := cat(CategoryHousing)
	support := cat(CategorySupport)

	sw := typ("SWITCH", connectivity)
	sw.RequiresManagement = true
	assert.Equal(t, 6, sw.MaintenanceIntervalOrDefault())
	assert.Equal(t, 7, sw.LifespanOrDefault())

	rack := typ("RACK", housing)
	assert.Equal(t, 24, rack.MaintenanceIntervalOrDefault())
	assert.Equal(t, 15, rack.LifespanOrDefault())

	shelf := typ("SHELF", support)
	assert.Equal(t, 12, shelf.MaintenanceIntervalOrDefault())
	assert.Equal(t, 10, shelf.LifespanOrDefault())

	sw.MaintenanceIntervalMonths = 3
	sw.TypicalLifespanYears = 5
	assert.Equal(t, 3, sw.MaintenanceIntervalOrDefault())
	assert.Equal(t, 5, sw.LifespanOrDefault())
}
