// Package installation implements the lifecycle rules for installation
// records: status transitions over the installation status graph, write-once
// removal stamping, rack placement validation, and auto-transition polling.
package installation

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/switchscope/switchscope/internal/common/apperrors"
	"github.com/switchscope/switchscope/internal/invsrv/catalog"
	"github.com/switchscope/switchscope/internal/invsrv/component"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
)

var (
	// ErrIllegalTransition indicates the status graph has no edge from the
	// current status to the requested one.
	ErrIllegalTransition apperrors.Error = apperrors.New("status transition not allowed").SetStatusCode(http.StatusConflict)

	// ErrInvalidPlacement indicates the requested rack position or location
	// cannot hold the item.
	ErrInvalidPlacement apperrors.Error = apperrors.New("invalid installation placement").SetStatusCode(http.StatusBadRequest)
)

// ChangeStatus moves an installation to the next status. The move must be a
// declared edge in the status graph; an illegal move returns
// ErrIllegalTransition and leaves the record untouched.
//
// The first entry into a terminal or error status stamps RemovedAt and
// RemovedBy. The stamps are write-once: a record that already carries them
// keeps the original values on any later transition.
func ChangeStatus(inst *models.Installation, current, next *catalog.InstallationStatus, who string, now time.Time) apperrors.Error {
	if current == nil || next == nil {
		return ErrInvalidPlacement.Msg("unknown installation status")
	}
	if !current.CanTransitionTo(next.Code) {
		return ErrIllegalTransition.Msg("cannot move installation from " + current.Code + " to " + next.Code)
	}

	inst.StatusCode = next.Code
	if (next.IsTerminal() || next.ErrorStatus) && !inst.RemovedAt.Valid {
		inst.RemovedAt = sql.NullTime{Time: now, Valid: true}
		inst.RemovedBy = sql.NullString{String: who, Valid: true}
	}
	return nil
}

// MarkAsRemoved stamps the installation removed with the given status. The
// status must be reachable from the current one.
func MarkAsRemoved(inst *models.Installation, current, removed *catalog.InstallationStatus, who string, now time.Time) apperrors.Error {
	return ChangeStatus(inst, current, removed, who, now)
}

// ValidateRackPlacement checks that the installation's claimed rack range
// lies inside the rack and does not overlap an occupied unit. Installations
// without a rack position are always valid here.
func ValidateRackPlacement(inst *models.Installation, rack *component.Rack, occupied map[int]bool) apperrors.Error {
	if !inst.OccupiesRackSpace() {
		if inst.RackPosition.Valid != inst.RackUnitHeight.Valid {
			return ErrInvalidPlacement.Msg("rack position and height must be set together")
		}
		return nil
	}

	pos := int(inst.RackPosition.Int32)
	height := int(inst.RackUnitHeight.Int32)
	if pos < 1 || height < 1 {
		return ErrInvalidPlacement.Msg("rack position and height must be positive")
	}
	if pos+height-1 > rack.UnitsTotal {
		return ErrInvalidPlacement.Msg("installation extends past the top of the rack")
	}
	if !rack.IsPositionRangeAvailable(occupied, pos, height) {
		return ErrInvalidPlacement.Msg("rack position range is already occupied")
	}
	return nil
}

// ValidateLocationPlacement checks that the target location's type can hold
// equipment and has capacity left. A negative or zero max equipment count on
// both the location and its type means unlimited.
func ValidateLocationPlacement(loc *models.Location, locType *catalog.LocationType, equipmentCount int) apperrors.Error {
	if locType == nil || !locType.CanHoldEquipment {
		return ErrInvalidPlacement.Msg("location cannot hold equipment")
	}
	max := locType.MaxEquipmentCount
	if loc.MaxEquipmentCount.Valid {
		max = int(loc.MaxEquipmentCount.Int32)
	}
	if max > 0 && equipmentCount >= max {
		return ErrInvalidPlacement.Msg("location is at equipment capacity")
	}
	return nil
}

// ShouldAutoTransition reports whether the installation has sat in its
// current status past the status's auto-transition timer. Pull-based: the
// caller polls candidates and applies the transition itself.
func ShouldAutoTransition(inst *models.Installation, status *catalog.InstallationStatus, now time.Time) bool {
	if status == nil || !status.HasAutoTransition() || !inst.IsActive() {
		return false
	}
	minutes := int64(now.Sub(inst.UpdatedAt) / time.Minute)
	return status.ShouldAutoTransition(minutes)
}
