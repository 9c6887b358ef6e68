// Package component implements the inventory semantics of physical
// components: derived state from the catalog rows a component references,
// containment checks, parent chains, rack space accounting, and port
// link evaluation. Everything here is pure; storage access happens in the
// invmanager layer.
package component

import (
	"strconv"

	"github.com/switchscope/switchscope/internal/invsrv/catalog"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
)

// View is a component row joined with the catalog rows it references.
// Status and Nature may be nil when the referenced row is inactive or the
// caller did not resolve them; derivations treat nil as "capability absent".
type View struct {
	Row    *models.Component
	Type   *catalog.ComponentType
	Status *catalog.ComponentStatus
	Nature *catalog.ComponentNature
}

// IsOperational reports whether the component's status marks it operational.
func (v *View) IsOperational() bool {
	return v.Status != nil && v.Status.Operational
}

// IsAvailable reports whether the component's status marks it available for
// use or assignment.
func (v *View) IsAvailable() bool {
	return v.Status != nil && v.Status.Available
}

// RequiresAttention reports whether the component's status demands operator
// attention.
func (v *View) RequiresAttention() bool {
	return v.Status != nil && v.Status.RequiresAttention
}

// CanAcceptInstallations reports whether items may be installed into the
// component in its current status.
func (v *View) CanAcceptInstallations() bool {
	return v.Status != nil && v.Status.CanAcceptInstallations
}

// The management capabilities come from the component type. The nature row
// carries the same flags for grouping and reporting, but the type is
// authoritative when the two disagree.

func (v *View) RequiresManagement() bool {
	return v.Type != nil && v.Type.RequiresManagement
}

func (v *View) SupportsSnmp() bool {
	return v.Type != nil && v.Type.SupportsSnmp
}

func (v *View) CanHaveIPAddress() bool {
	return v.Type != nil && v.Type.CanHaveIPAddress
}

func (v *View) HasFirmware() bool {
	return v.Type != nil && v.Type.HasFirmware
}

func (v *View) ProcessesNetworkTraffic() bool {
	return v.Type != nil && v.Type.ProcessesNetworkTraffic
}

// PowerConsumptionCategory classifies the component's power draw from its
// type declaration.
func (v *View) PowerConsumptionCategory() string {
	if v.Type == nil {
		return "unknown"
	}
	return v.Type.PowerConsumptionCategory()
}

// CanHoldOtherComponents reports whether the component may contain children
// at all.
func (v *View) CanHoldOtherComponents() bool {
	return v.Type != nil && v.Type.CanContainComponents
}

// CanContain evaluates whether the child component may be placed inside this
// one. The check is pairwise over the two component types and is not
// transitive.
func (v *View) CanContain(child *View) bool {
	if v.Type == nil || child == nil || child.Type == nil {
		return false
	}
	return v.Type.CanContainType(child.Type)
}

// CanTransitionTo reports whether the component's status graph allows a move
// to the target status code.
func (v *View) CanTransitionTo(statusCode string) bool {
	return v.Status != nil && v.Status.CanTransitionTo(statusCode)
}

// IsInstallable reports whether the component's type allows it to be the
// subject of an installation.
func (v *View) IsInstallable() bool {
	return v.Type != nil && v.Type.Installable
}

// Specifications returns display key-value pairs describing the component.
func (v *View) Specifications() map[string]string {
	specs := map[string]string{}
	if v.Row == nil {
		return specs
	}
	if v.Row.Manufacturer != "" {
		specs["Manufacturer"] = v.Row.Manufacturer
	}
	if v.Row.Model != "" {
		specs["Model"] = v.Row.Model
	}
	if v.Row.SerialNumber != "" {
		specs["Serial Number"] = v.Row.SerialNumber
	}
	if v.Row.PartNumber != "" {
		specs["Part Number"] = v.Row.PartNumber
	}
	if v.Type != nil {
		specs["Type"] = v.Type.DisplayName
		if v.Type.RequiresRackSpace && v.Type.TypicalRackUnits > 0 {
			specs["Rack Units"] = strconv.Itoa(v.Type.TypicalRackUnits)
		}
		if v.Type.RequiresPower && v.Type.TypicalPowerConsumptionWatts > 0 {
			specs["Power"] = strconv.Itoa(v.Type.TypicalPowerConsumptionWatts) + "W"
		}
	}
	if v.Status != nil {
		specs["Status"] = v.Status.DisplayName
	}
	return specs
}
