// Package location implements the site hierarchy rules: path derivation,
// child acceptance gating by location type, capacity checks, and
// environmental range validation.
package location

import (
	"net/http"
	"strings"

	"github.com/switchscope/switchscope/internal/common/apperrors"
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/catalog"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
)

var (
	// ErrInvalidHierarchy indicates a parent-child pairing the location types
	// do not allow, or a write that would corrupt the tree.
	ErrInvalidHierarchy apperrors.Error = apperrors.New("invalid location hierarchy").SetStatusCode(http.StatusBadRequest)

	// ErrInvalidEnvironment indicates inconsistent environmental ranges.
	ErrInvalidEnvironment apperrors.Error = apperrors.New("invalid environmental range").SetStatusCode(http.StatusBadRequest)
)

// MaxTreeDepth is the deepest location chain a write may produce.
const MaxTreeDepth = 16

// Path returns the slash-joined name chain from the root ancestor down to
// the location itself. Ancestors are given immediate parent first.
func Path(l *models.Location, ancestors []*models.Location) string {
	names := make([]string, 0, len(ancestors)+1)
	for i := len(ancestors) - 1; i >= 0; i-- {
		names = append(names, ancestors[i].Name)
	}
	names = append(names, l.Name)
	return strings.Join(names, "/")
}

// Level returns the depth of the location in the tree, zero for a root.
func Level(ancestors []*models.Location) int {
	return len(ancestors)
}

// CanAcceptChild reports whether the parent location may take a child of the
// given type, considering the type gate and the children capacity. A zero
// max children count means unlimited; a location override narrows the type
// limit.
func CanAcceptChild(parent *models.Location, parentType, childType *catalog.LocationType, childCount int) bool {
	if parentType == nil || !parentType.CanHaveChildOfType(childType) {
		return false
	}
	max := parentType.MaxChildrenCount
	if parent.MaxChildrenCount.Valid {
		max = int(parent.MaxChildrenCount.Int32)
	}
	return max <= 0 || childCount < max
}

// WouldCreateCycle reports whether re-parenting the location under the new
// parent would close a loop. parentAncestors is the parent chain of the
// candidate parent.
func WouldCreateCycle(locationID, newParentID uuid.UUID, parentAncestors []*models.Location) bool {
	if locationID == newParentID {
		return true
	}
	for _, a := range parentAncestors {
		if a.ID == locationID {
			return true
		}
	}
	return false
}

// ExceedsDepth reports whether placing a location under a parent with the
// given ancestor chain would push past MaxTreeDepth.
func ExceedsDepth(parentAncestors []*models.Location) bool {
	return len(parentAncestors)+1 >= MaxTreeDepth
}

// TotalRackUnits resolves the rack capacity of a location: its own declared
// units, then the type default, then the standard 42U.
func TotalRackUnits(l *models.Location, locType *catalog.LocationType) int {
	if l.AvailableRackUnits.Valid && l.AvailableRackUnits.Int32 > 0 {
		return int(l.AvailableRackUnits.Int32)
	}
	if locType != nil && locType.DefaultRackUnits > 0 {
		return locType.DefaultRackUnits
	}
	return 42
}

// ValidateEnvironment checks that declared temperature and humidity ranges
// are internally consistent: a minimum must not exceed its maximum, and
// humidity must sit within 0-100 percent.
func ValidateEnvironment(l *models.Location) apperrors.Error {
	if l.MinTemperatureCelsius.Valid && l.MaxTemperatureCelsius.Valid &&
		l.MinTemperatureCelsius.Float64 > l.MaxTemperatureCelsius.Float64 {
		return ErrInvalidEnvironment.Msg("minimum temperature exceeds maximum")
	}
	if l.MinHumidityPercent.Valid &&
		(l.MinHumidityPercent.Float64 < 0 || l.MinHumidityPercent.Float64 > 100) {
		return ErrInvalidEnvironment.Msg("humidity must be between 0 and 100 percent")
	}
	if l.MaxHumidityPercent.Valid &&
		(l.MaxHumidityPercent.Float64 < 0 || l.MaxHumidityPercent.Float64 > 100) {
		return ErrInvalidEnvironment.Msg("humidity must be between 0 and 100 percent")
	}
	if l.MinHumidityPercent.Valid && l.MaxHumidityPercent.Valid &&
		l.MinHumidityPercent.Float64 > l.MaxHumidityPercent.Float64 {
		return ErrInvalidEnvironment.Msg("minimum humidity exceeds maximum")
	}
	return nil
}

// RequiresAddress reports whether the location's type demands a street
// address and one is missing.
func RequiresAddress(l *models.Location, locType *catalog.LocationType) bool {
	return locType != nil && locType.RequiresAddress && strings.TrimSpace(l.Address) == ""
}
