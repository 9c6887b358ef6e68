package location

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/catalog"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
)

func loc(name string) *models.Location {
	return &models.Location{ID: uuid.New(), Name: name, TypeCode: "ROOM"}
}

func locType(code string, children ...string) *catalog.LocationType {
	return &catalog.LocationType{
		CodedEntry:            catalog.CodedEntry{Code: code, Active: true},
		CanHaveChildren:       true,
		AllowedChildTypeCodes: children,
	}
}

func TestPathAndLevel(t *testing.T) {
	building := loc("hq")
	floor := loc("floor-2")
	room := loc("server-room")

	assert.Equal(t, "hq/floor-2/server-room", Path(room, []*models.Location{floor, building}))
	assert.Equal(t, "hq", Path(building, nil))
	assert.Equal(t, 2, Level([]*models.Location{floor, building}))
}

func TestCanAcceptChildTypeGate(t *testing.T) {
	parent := loc("hq")
	building := locType("BUILDING", "FLOOR", "ROOM")
	floor := locType("FLOOR")
	rackLoc := locType("RACK_LOCATION")

	assert.True(t, CanAcceptChild(parent, building, floor, 0))
	assert.False(t, CanAcceptChild(parent, building, rackLoc, 0))

	// An empty allow-list accepts any type.
	open := locType("CAMPUS")
	assert.True(t, CanAcceptChild(parent, open, rackLoc, 0))

	// Leaves accept nothing.
	leaf := &catalog.LocationType{CodedEntry: catalog.CodedEntry{Code: "RACK_LOCATION", Active: true}}
	assert.False(t, CanAcceptChild(parent, leaf, floor, 0))
	assert.False(t, CanAcceptChild(parent, nil, floor, 0))
}

func TestCanAcceptChildCapacity(t *testing.T) {
	parent := loc("floor-2")
	floor := locType("FLOOR", "ROOM")
	floor.MaxChildrenCount = 2
	room := locType("ROOM")

	assert.True(t, CanAcceptChild(parent, floor, room, 1))
	assert.False(t, CanAcceptChild(parent, floor, room, 2))

	// A location override narrows the type limit.
	parent.MaxChildrenCount = sql.NullInt32{Int32: 1, Valid: true}
	assert.False(t, CanAcceptChild(parent, floor, room, 1))

	// An override of zero lifts the limit.
	parent.MaxChildrenCount = sql.NullInt32{Int32: 0, Valid: true}
	assert.True(t, CanAcceptChild(parent, floor, room, 100))
}

func TestWouldCreateCycle(t *testing.T) {
	a := loc("a")
	b := loc("b")
	c := loc("c")

	assert.True(t, WouldCreateCycle(a.ID, a.ID, nil))
	assert.True(t, WouldCreateCycle(a.ID, c.ID, []*models.Location{b, a}))
	assert.False(t, WouldCreateCycle(a.ID, c.ID, []*models.Location{b}))
}

func TestTotalRackUnitsFallbackChain(t *testing.T) {
	l := loc("rack-loc")
	rackLike := &catalog.LocationType{
		CodedEntry:       catalog.CodedEntry{Code: "RACK_LOCATION", Active: true},
		DefaultRackUnits: 45,
	}

	l.AvailableRackUnits = sql.NullInt32{Int32: 24, Valid: true}
	assert.Equal(t, 24, TotalRackUnits(l, rackLike))

	l.AvailableRackUnits = sql.NullInt32{}
	assert.Equal(t, 45, TotalRackUnits(l, rackLike))

	assert.Equal(t, 42, TotalRackUnits(l, &catalog.LocationType{}))
	assert.Equal(t, 42, TotalRackUnits(l, nil))
}

func TestValidateEnvironment(t *testing.T) {
	l := loc("server-room")
	assert.Nil(t, ValidateEnvironment(l))

	l.MinTemperatureCelsius = sql.NullFloat64{Float64: 18, Valid: true}
	l.MaxTemperatureCelsius = sql.NullFloat64{Float64: 27, Valid: true}
	l.MinHumidityPercent = sql.NullFloat64{Float64: 30, Valid: true}
	l.MaxHumidityPercent = sql.NullFloat64{Float64: 60, Valid: true}
	assert.Nil(t, ValidateEnvironment(l))

	l.MinTemperatureCelsius = sql.NullFloat64{Float64: 30, Valid: true}
	assert.NotNil(t, ValidateEnvironment(l))

	l.MinTemperatureCelsius = sql.NullFloat64{Float64: 18, Valid: true}
	l.MaxHumidityPercent = sql.NullFloat64{Float64: 120, Valid: true}
	assert.NotNil(t, ValidateEnvironment(l))

	l.MaxHumidityPercent = sql.NullFloat64{Float64: 20, Valid: true}
	assert.NotNil(t, ValidateEnvironment(l))
}

func TestRequiresAddress(t *testing.T) {
	l := loc("hq")
	addressed := &catalog.LocationType{
		CodedEntry:      catalog.CodedEntry{Code: "BUILDING", Active: true},
		RequiresAddress: true,
	}

	assert.True(t, RequiresAddress(l, addressed))
	l.Address = "1 Main St"
	assert.False(t, RequiresAddress(l, addressed))
	assert.False(t, RequiresAddress(l, &catalog.LocationType{}))
}
