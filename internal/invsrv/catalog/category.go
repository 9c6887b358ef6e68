package catalog

import "strings"

// Well-known category codes. The category-level containment defaults key off
// these; operator-defined categories fall through to the deny default.
const (
	CategoryHousing      = "housing"
	CategoryConnectivity = "connectivity"
	CategorySupport      = "support"
	CategoryModule       = "module"
)

// ComponentCategory is the high-level grouping of component types.
// Examples: housing, connectivity, support, module.
type ComponentCategory struct {
	CodedEntry
	SystemCategory bool `db:"is_system_category" json:"systemCategory"`
	Infrastructure bool `db:"is_infrastructure" json:"infrastructure"`
}

func (c *ComponentCategory) IsHousing() bool { return strings.EqualFold(c.Code, CategoryHousing) }
func (c *ComponentCategory) IsConnectivity() bool {
	return strings.EqualFold(c.Code, CategoryConnectivity)
}
func (c *ComponentCategory) IsSupport() bool { return strings.EqualFold(c.Code, CategorySupport) }
func (c *ComponentCategory) IsModule() bool  { return strings.EqualFold(c.Code, CategoryModule) }

// CanContainCategory is the category-level default containment policy, the
// coarsest tier of the containment rule chain. Housing holds connectivity,
// support, and module equipment; connectivity equipment holds modules; every
// other pairing is denied.
func (c *ComponentCategory) CanContainCategory(other *ComponentCategory) bool {
	if other == nil {
		return false
	}

	if c.IsHousing() {
		return other.IsConnectivity() || other.IsSupport() || other.IsModule()
	}

	if c.IsConnectivity() {
		return other.IsModule()
	}

	return false
}

// TypicalPowerConsumption returns the power consumption class typical for
// components of this category.
func (c *ComponentCategory) TypicalPowerConsumption() string {
	switch {
	case c.IsHousing():
		return "none"
	case c.IsConnectivity():
		return "high"
	case c.IsSupport():
		return "variable"
	case c.IsModule():
		return "medium"
	default:
		return "unknown"
	}
}

// CanBeDeleted reports whether the category may be hard-deleted given the
// number of active types still assigned to it. System categories are never
// deletable.
func (c *ComponentCategory) CanBeDeleted(activeTypeCount int) bool {
	return !c.SystemCategory && activeTypeCount == 0
}

// CanBeDeactivated follows the same rule as deletion.
func (c *ComponentCategory) CanBeDeactivated(activeTypeCount int) bool {
	return !c.SystemCategory && activeTypeCount == 0
}
