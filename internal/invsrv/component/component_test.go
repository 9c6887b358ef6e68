package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/catalog"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
)

func namedComponent(name string) *models.Component {
	return &models.Component{ID: uuid.New(), Kind: models.KindSwitch, Name: name}
}

func TestPathJoinsRootToSelf(t *testing.T) {
	self := namedComponent("sw-01")
	rack := namedComponent("rack-a")
	row := namedComponent("row-3")

	// Ancestors come back immediate parent first.
	assert.Equal(t, "row-3/rack-a/sw-01", Path(self, []*models.Component{rack, row}))
	assert.Equal(t, "sw-01", Path(self, nil))
	assert.Equal(t, 2, Level([]*models.Component{rack, row}))
	assert.Equal(t, 0, Level(nil))
}

func TestWouldCreateCycle(t *testing.T) {
	a := namedComponent("a")
	b := namedComponent("b")
	c := namedComponent("c")

	// a is its own ancestor through the candidate parent chain.
	assert.True(t, WouldCreateCycle(a.ID, c.ID, []*models.Component{b, a}))
	// Self-parenting.
	assert.True(t, WouldCreateCycle(a.ID, a.ID, nil))
	// Unrelated chain is fine.
	assert.False(t, WouldCreateCycle(a.ID, c.ID, []*models.Component{b}))
}

func TestExceedsDepth(t *testing.T) {
	chain := make([]*models.Component, MaxNestingDepth-1)
	assert.True(t, ExceedsDepth(chain))
	assert.False(t, ExceedsDepth(chain[:MaxNestingDepth-2]))
}

func TestViewDerivationsNilSafety(t *testing.T) {
	v := &View{Row: namedComponent("sw-01")}

	assert.False(t, v.IsOperational())
	assert.False(t, v.IsAvailable())
	assert.False(t, v.RequiresManagement())
	assert.False(t, v.CanHoldOtherComponents())
	assert.False(t, v.CanContain(&View{}))
	assert.False(t, v.CanContain(nil))
	assert.False(t, v.CanTransitionTo("ACTIVE"))
	assert.Equal(t, "unknown", v.PowerConsumptionCategory())
}

func TestViewDerivesFromCatalogRows(t *testing.T) {
	active := &catalog.ComponentStatus{
		CodedEntry:      catalog.CodedEntry{Code: "ACTIVE", Active: true},
		Operational:     true,
		Available:       false,
		NextStatusCodes: []string{"INACTIVE", "MAINTENANCE"},
	}
	swType := &catalog.ComponentType{
		CodedEntry:         catalog.CodedEntry{Code: "SWITCH", DisplayName: "Network Switch", Active: true},
		CategoryCode:       catalog.CategoryConnectivity,
		RequiresManagement: true,
		SupportsSnmp:       true,
		CanHaveIPAddress:   true,
		RequiresPower:      true,

		TypicalPowerConsumptionWatts: 150,
	}

	v := &View{Row: namedComponent("sw-01"), Type: swType, Status: active}
	assert.True(t, v.IsOperational())
	assert.False(t, v.IsAvailable())
	assert.True(t, v.RequiresManagement())
	assert.True(t, v.SupportsSnmp())
	assert.Equal(t, "medium", v.PowerConsumptionCategory())
	assert.True(t, v.CanTransitionTo("MAINTENANCE"))
	assert.False(t, v.CanTransitionTo("DISPOSED"))
}

func TestViewSpecifications(t *testing.T) {
	row := namedComponent("sw-01")
	row.Manufacturer = "Cisco"
	row.Model = "C9300-24T"
	row.SerialNumber = "FOC1234X0AB"

	v := &View{Row: row, Type: &catalog.ComponentType{
		CodedEntry:        catalog.CodedEntry{Code: "SWITCH", DisplayName: "Network Switch"},
		RequiresRackSpace: true,
		TypicalRackUnits:  1,
	}}

	specs := v.Specifications()
	assert.Equal(t, "Cisco", specs["Manufacturer"])
	assert.Equal(t, "Network Switch", specs["Type"])
	assert.Equal(t, "1", specs["Rack Units"])
	_, hasPower := specs["Power"]
	assert.False(t, hasPower)
}

func TestAttrsRoundTrip(t *testing.T) {
	in := Attrs{
		ManagementIP:    "10.0.0.5",
		FirmwareVersion: "17.9.4a",
		RackUnitsTotal:  42,
	}
	col, err := EncodeAttrs(in)
	assert.Nil(t, err)

	out, err := DecodeAttrs(col)
	assert.Nil(t, err)
	assert.Equal(t, in, out)

	// The zero document stores as null and decodes back to zero.
	col, err = EncodeAttrs(Attrs{})
	assert.Nil(t, err)
	out, err = DecodeAttrs(col)
	assert.Nil(t, err)
	assert.Equal(t, Attrs{}, out)
}
