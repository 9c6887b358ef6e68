package component

import (
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
)

// DefaultRackUnits is the standard rack height used when neither the
// component attrs nor its type declare one.
const DefaultRackUnits = 42

// Rack wraps a housing component with rack space accounting over its active
// installations.
type Rack struct {
	View
	UnitsTotal int
}

// NewRack builds a rack view. The unit count resolves from the component
// attrs, then the type's typical rack units, then the 42U default.
func NewRack(v View) (*Rack, error) {
	units := 0
	if v.Row != nil {
		attrs, err := DecodeAttrs(v.Row.Attrs)
		if err != nil {
			return nil, err
		}
		units = attrs.RackUnitsTotal
	}
	if units <= 0 && v.Type != nil {
		units = v.Type.TypicalRackUnits
	}
	if units <= 0 {
		units = DefaultRackUnits
	}
	return &Rack{View: v, UnitsTotal: units}, nil
}

// OccupiedPositions expands the given spans into the set of occupied rack
// units.
func OccupiedPositions(spans []models.RackSpan) map[int]bool {
	occupied := make(map[int]bool)
	for _, s := range spans {
		for pos := s.Position; pos < s.Position+s.Height; pos++ {
			occupied[pos] = true
		}
	}
	return occupied
}

// OccupiedPositionsExcluding builds the occupied set while skipping spans
// held by the given installation, so an update is checked against every span
// but its own.
func OccupiedPositionsExcluding(spans []models.RackSpan, exclude uuid.UUID) map[int]bool {
	occupied := make(map[int]bool)
	for _, s := range spans {
		if s.InstallationID == exclude {
			continue
		}
		for pos := s.Position; pos < s.Position+s.Height; pos++ {
			occupied[pos] = true
		}
	}
	return occupied
}

// OccupiedSpace returns the number of occupied rack units.
func (r *Rack) OccupiedSpace(spans []models.RackSpan) int {
	return len(OccupiedPositions(spans))
}

// AvailableSpace returns the number of free rack units.
func (r *Rack) AvailableSpace(spans []models.RackSpan) int {
	return r.UnitsTotal - r.OccupiedSpace(spans)
}

// IsPositionAvailable reports whether a single rack unit is free.
func (r *Rack) IsPositionAvailable(occupied map[int]bool, position int) bool {
	if position < 1 || position > r.UnitsTotal {
		return false
	}
	return !occupied[position]
}

// IsPositionRangeAvailable reports whether the units [startPosition,
// startPosition+height) are all inside the rack and free.
func (r *Rack) IsPositionRangeAvailable(occupied map[int]bool, startPosition, height int) bool {
	if startPosition < 1 || startPosition+height-1 > r.UnitsTotal {
		return false
	}
	for pos := startPosition; pos < startPosition+height; pos++ {
		if occupied[pos] {
			return false
		}
	}
	return true
}

// FirstAvailablePosition returns the lowest position where an item of the
// given height fits, scanning from unit 1 upward. The second return is false
// when no contiguous range is free.
func (r *Rack) FirstAvailablePosition(occupied map[int]bool, height int) (int, bool) {
	if height <= 0 {
		return 0, false
	}
	for pos := 1; pos <= r.UnitsTotal-height+1; pos++ {
		if r.IsPositionRangeAvailable(occupied, pos, height) {
			return pos, true
		}
	}
	return 0, false
}

// UtilizationPercent returns the fraction of occupied rack units as a
// percentage.
func (r *Rack) UtilizationPercent(spans []models.RackSpan) float64 {
	if r.UnitsTotal == 0 {
		return 0.0
	}
	return float64(r.OccupiedSpace(spans)) / float64(r.UnitsTotal) * 100.0
}
