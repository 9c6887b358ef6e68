package installation

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/catalog"
	"github.com/switchscope/switchscope/internal/invsrv/component"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
)

func statusByCode(t *testing.T, code string) *catalog.InstallationStatus {
	t.Helper()
	for _, s := range catalog.DefaultInstallationStatuses() {
		if s.Code == code {
			return s
		}
	}
	t.Fatalf("no default installation status %q", code)
	return nil
}

func activeInstallation() *models.Installation {
	return &models.Installation{
		ID:                uuid.New(),
		LocationID:        uuid.New(),
		InstalledItemType: "DEVICE",
		InstalledItemID:   uuid.New(),
		StatusCode:        "INSTALLED",
	}
}

func TestChangeStatusFollowsGraph(t *testing.T) {
	inst := activeInstallation()
	now := time.Now()

	err := ChangeStatus(inst, statusByCode(t, "INSTALLED"), statusByCode(t, "PENDING_REMOVAL"), "alex", now)
	require.Nil(t, err)
	assert.Equal(t, "PENDING_REMOVAL", inst.StatusCode)
	assert.False(t, inst.RemovedAt.Valid)
}

func TestChangeStatusRejectsIllegalMove(t *testing.T) {
	inst := activeInstallation()

	err := ChangeStatus(inst, statusByCode(t, "INSTALLED"), statusByCode(t, "REMOVED"), "alex", time.Now())
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	// The record is untouched on a rejected move.
	assert.Equal(t, "INSTALLED", inst.StatusCode)
	assert.False(t, inst.RemovedAt.Valid)
}

func TestTerminalEntryStampsRemovalOnce(t *testing.T) {
	inst := activeInstallation()
	inst.StatusCode = "PENDING_REMOVAL"
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	err := ChangeStatus(inst, statusByCode(t, "PENDING_REMOVAL"), statusByCode(t, "REMOVED"), "alex", first)
	require.Nil(t, err)
	assert.Equal(t, "REMOVED", inst.StatusCode)
	assert.Equal(t, first, inst.RemovedAt.Time)
	assert.Equal(t, "alex", inst.RemovedBy.String)

	// Recommissioning and removing again keeps the original stamp.
	later := first.Add(48 * time.Hour)
	err = ChangeStatus(inst, statusByCode(t, "REMOVED"), statusByCode(t, "PLANNED"), "sam", later)
	require.Nil(t, err)
	err = ChangeStatus(inst, statusByCode(t, "PLANNED"), statusByCode(t, "FAILED"), "sam", later)
	require.Nil(t, err)
	assert.Equal(t, first, inst.RemovedAt.Time)
	assert.Equal(t, "alex", inst.RemovedBy.String)
}

func TestErrorStatusStampsRemoval(t *testing.T) {
	inst := activeInstallation()
	inst.StatusCode = "IN_PROGRESS"
	now := time.Now()

	err := ChangeStatus(inst, statusByCode(t, "IN_PROGRESS"), statusByCode(t, "FAILED"), "alex", now)
	require.Nil(t, err)
	assert.True(t, inst.RemovedAt.Valid)
	assert.Equal(t, "alex", inst.RemovedBy.String)
}

func testRack(t *testing.T, units int) *component.Rack {
	t.Helper()
	attrs, aerr := component.EncodeAttrs(component.Attrs{RackUnitsTotal: units})
	require.Nil(t, aerr)
	r, err := component.NewRack(component.View{
		Row: &models.Component{Kind: models.KindRack, Name: "rack-1", Attrs: attrs},
	})
	require.NoError(t, err)
	return r
}

func rackMounted(pos, height int32) *models.Installation {
	inst := activeInstallation()
	inst.RackPosition = sql.NullInt32{Int32: pos, Valid: true}
	inst.RackUnitHeight = sql.NullInt32{Int32: height, Valid: true}
	return inst
}

func TestValidateRackPlacement(t *testing.T) {
	rack := testRack(t, 42)
	occupied := component.OccupiedPositions([]models.RackSpan{{Position: 1, Height: 4}})

	assert.Nil(t, ValidateRackPlacement(rackMounted(5, 3), rack, occupied))
	assert.NotNil(t, ValidateRackPlacement(rackMounted(3, 2), rack, occupied))
	assert.NotNil(t, ValidateRackPlacement(rackMounted(41, 3), rack, occupied))
	assert.NotNil(t, ValidateRackPlacement(rackMounted(0, 1), rack, occupied))

	// Non rack-mounted installations pass.
	assert.Nil(t, ValidateRackPlacement(activeInstallation(), rack, occupied))

	// Position without height is malformed.
	half := activeInstallation()
	half.RackPosition = sql.NullInt32{Int32: 5, Valid: true}
	assert.NotNil(t, ValidateRackPlacement(half, rack, occupied))
}

func TestRackPlacementUpdateExcludesOnlyOwnSpan(t *testing.T) {
	rack := testRack(t, 42)
	moving := rackMounted(1, 3)
	other := rackMounted(10, 3)
	spans := []models.RackSpan{
		{InstallationID: moving.ID, Position: 1, Height: 3},
		{InstallationID: other.ID, Position: 10, Height: 3},
	}
	occupied := component.OccupiedPositionsExcluding(spans, moving.ID)

	// Moving onto another installation's span stays blocked.
	moving.RackPosition = sql.NullInt32{Int32: 10, Valid: true}
	assert.NotNil(t, ValidateRackPlacement(moving, rack, occupied))

	// Keeping or overlapping its own stored span is fine.
	moving.RackPosition = sql.NullInt32{Int32: 2, Valid: true}
	assert.Nil(t, ValidateRackPlacement(moving, rack, occupied))

	// A create sees every span.
	all := component.OccupiedPositionsExcluding(spans, uuid.Nil)
	assert.NotNil(t, ValidateRackPlacement(rackMounted(2, 1), rack, all))
	assert.NotNil(t, ValidateRackPlacement(rackMounted(11, 1), rack, all))
}

func TestValidateLocationPlacement(t *testing.T) {
	room := &catalog.LocationType{
		CodedEntry:        catalog.CodedEntry{Code: "ROOM", Active: true},
		CanHoldEquipment:  true,
		MaxEquipmentCount: 2,
	}
	corridor := &catalog.LocationType{
		CodedEntry: catalog.CodedEntry{Code: "CORRIDOR", Active: true},
	}
	loc := &models.Location{ID: uuid.New(), Name: "server-room", TypeCode: "ROOM"}

	assert.Nil(t, ValidateLocationPlacement(loc, room, 1))
	assert.NotNil(t, ValidateLocationPlacement(loc, room, 2))
	assert.NotNil(t, ValidateLocationPlacement(loc, corridor, 0))
	assert.NotNil(t, ValidateLocationPlacement(loc, nil, 0))

	// A location override narrows the type limit.
	loc.MaxEquipmentCount = sql.NullInt32{Int32: 1, Valid: true}
	assert.NotNil(t, ValidateLocationPlacement(loc, room, 1))
	assert.Nil(t, ValidateLocationPlacement(loc, room, 0))
}

func TestShouldAutoTransition(t *testing.T) {
	timed := &catalog.InstallationStatus{
		CodedEntry:            catalog.CodedEntry{Code: "PENDING_REMOVAL", Active: true},
		AutoTransitionMinutes: 30,
	}
	now := time.Now()

	inst := activeInstallation()
	inst.UpdatedAt = now.Add(-29 * time.Minute)
	assert.False(t, ShouldAutoTransition(inst, timed, now))

	inst.UpdatedAt = now.Add(-30 * time.Minute)
	assert.True(t, ShouldAutoTransition(inst, timed, now))

	// Removed installations never auto-transition.
	inst.RemovedAt = sql.NullTime{Time: now, Valid: true}
	assert.False(t, ShouldAutoTransition(inst, timed, now))

	inst.RemovedAt = sql.NullTime{}
	assert.False(t, ShouldAutoTransition(inst, &catalog.InstallationStatus{}, now))
}
