package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackc/pgtype"

	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/catalog"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
)

func testRack(t *testing.T, units int) *Rack {
	t.Helper()
	attrs, err := EncodeAttrs(Attrs{RackUnitsTotal: units})
	require.Nil(t, err)
	row := &models.Component{
		ID:    uuid.New(),
		Kind:  models.KindRack,
		Name:  "rack-1",
		Attrs: attrs,
	}
	r, rerr := NewRack(View{Row: row})
	require.NoError(t, rerr)
	return r
}

func spans(pairs ...[2]int) []models.RackSpan {
	out := make([]models.RackSpan, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, models.RackSpan{Position: p[0], Height: p[1]})
	}
	return out
}

func TestFirstAvailablePositionSkipsFragmentedGaps(t *testing.T) {
	r := testRack(t, 42)

	// Units 1-4 and 10-12 are taken. A 3U item does not fit at 1 and the
	// scan must not jump over the 5-9 gap.
	occupied := OccupiedPositions(spans([2]int{1, 4}, [2]int{10, 3}))

	pos, ok := r.FirstAvailablePosition(occupied, 3)
	assert.True(t, ok)
	assert.Equal(t, 5, pos)
}

func TestFirstAvailablePositionPrefersLowestFit(t *testing.T) {
	r := testRack(t, 42)
	occupied := OccupiedPositions(nil)

	pos, ok := r.FirstAvailablePosition(occupied, 4)
	assert.True(t, ok)
	assert.Equal(t, 1, pos)
}

func TestFirstAvailablePositionFullRack(t *testing.T) {
	r := testRack(t, 4)
	occupied := OccupiedPositions(spans([2]int{1, 4}))

	_, ok := r.FirstAvailablePosition(occupied, 1)
	assert.False(t, ok)

	// A gap shorter than the item does not count.
	occupied = OccupiedPositions(spans([2]int{1, 2}, [2]int{4, 1}))
	_, ok = r.FirstAvailablePosition(occupied, 2)
	assert.False(t, ok)

	_, ok = r.FirstAvailablePosition(occupied, 0)
	assert.False(t, ok)
}

func TestPositionRangeBounds(t *testing.T) {
	r := testRack(t, 42)
	occupied := OccupiedPositions(nil)

	assert.True(t, r.IsPositionRangeAvailable(occupied, 40, 3))
	assert.False(t, r.IsPositionRangeAvailable(occupied, 41, 3))
	assert.False(t, r.IsPositionRangeAvailable(occupied, 0, 3))
	assert.False(t, r.IsPositionAvailable(occupied, 43))
	assert.True(t, r.IsPositionAvailable(occupied, 42))
}

func TestRackUnitsFallbackChain(t *testing.T) {
	// Attrs win over the type.
	attrs, err := EncodeAttrs(Attrs{RackUnitsTotal: 24})
	require.Nil(t, err)
	typ := &catalog.ComponentType{TypicalRackUnits: 45}
	r, rerr := NewRack(View{
		Row:  &models.Component{Kind: models.KindRack, Attrs: attrs},
		Type: typ,
	})
	require.NoError(t, rerr)
	assert.Equal(t, 24, r.UnitsTotal)

	// No attrs, type units apply.
	r, rerr = NewRack(View{
		Row:  &models.Component{Kind: models.KindRack, Attrs: pgtype.JSONB{Status: pgtype.Null}},
		Type: typ,
	})
	require.NoError(t, rerr)
	assert.Equal(t, 45, r.UnitsTotal)

	// Neither set, standard 42U.
	r, rerr = NewRack(View{
		Row: &models.Component{Kind: models.KindRack, Attrs: pgtype.JSONB{Status: pgtype.Null}},
	})
	require.NoError(t, rerr)
	assert.Equal(t, 42, r.UnitsTotal)
}

func TestUtilizationPercent(t *testing.T) {
	r := testRack(t, 42)
	assert.InDelta(t, 0.0, r.UtilizationPercent(nil), 0.001)

	occupied := spans([2]int{1, 21})
	assert.InDelta(t, 50.0, r.UtilizationPercent(occupied), 0.001)
	assert.Equal(t, 21, r.AvailableSpace(occupied))
}
