package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusByCode(t *testing.T, statuses []*ComponentStatus, code string) *ComponentStatus {
	t.Helper()
	for _, s := range statuses {
		if s.Code == code {
			return s
		}
	}
	t.Fatalf("status %s not in defaults", code)
	return nil
}

func TestComponentStatusOneHopClosure(t *testing.T) {
	statuses := DefaultComponentStatuses()

	tests := []struct {
		from string
		to   string
		want bool
	}{
		{"PLANNED", "ORDERED", true},
		{"PLANNED", "DECOMMISSIONED", true},
		{"PLANNED", "ACTIVE", false}, // reachable in two hops, not one
		{"PLANNED", "INSTALLING", false},
		{"ORDERED", "INSTALLING", true},
		{"ACTIVE", "MAINTENANCE", true},
		{"ACTIVE", "DISPOSED", false},
		{"DISPOSED", "PLANNED", false}, // terminal
		{"DECOMMISSIONED", "PLANNED", true},
	}
	for _, tt := range tests {
		from := statusByCode(t, statuses, tt.from)
		assert.Equal(t, tt.want, from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTransitionEqualsEdgeSetMembership(t *testing.T) {
	// canTransitionTo must equal exact membership in the outbound set for
	// every status/candidate pair, no implicit reachability.
	statuses := DefaultComponentStatuses()
	for _, from := range statuses {
		if from.Code == StatusUnknown {
			continue
		}
		for _, to := range statuses {
			want := containsCode(from.NextStatusCodes, to.Code)
			assert.Equal(t, want, from.CanTransitionTo(to.Code), "%s -> %s", from.Code, to.Code)
		}
	}
}

func TestUnknownStatusIsWildcard(t *testing.T) {
	statuses := DefaultComponentStatuses()
	unknown := statusByCode(t, statuses, StatusUnknown)
	require.Empty(t, unknown.NextStatusCodes)

	for _, to := range statuses {
		assert.True(t, unknown.CanTransitionTo(to.Code), "UNKNOWN -> %s", to.Code)
	}
}

func TestAddRemoveNextStatusCode(t *testing.T) {
	s := &ComponentStatus{CodedEntry: coded("ACTIVE", "Active", "", 0)}

	s.AddNextStatusCode("MAINTENANCE")
	s.AddNextStatusCode("MAINTENANCE") // duplicate ignored
	s.AddNextStatusCode("ACTIVE")      // self-edge ignored
	s.AddNextStatusCode("")
	assert.Equal(t, []string{"MAINTENANCE"}, s.NextStatusCodes)

	// dangling edge is permitted; it simply never resolves
	s.AddNextStatusCode("NO_SUCH_STATUS")
	assert.True(t, s.CanTransitionTo("NO_SUCH_STATUS"))

	s.RemoveNextStatusCode("MAINTENANCE")
	assert.False(t, s.CanTransitionTo("MAINTENANCE"))
}

func TestInstallationStatusDerivations(t *testing.T) {
	statuses := DefaultInstallationStatuses()
	byCode := map[string]*InstallationStatus{}
	for _, s := range statuses {
		byCode[s.Code] = s
	}

	installed := byCode["INSTALLED"]
	failed := byCode["FAILED"]
	removed := byCode["REMOVED"]
	inProgress := byCode["IN_PROGRESS"]

	assert.True(t, installed.CanTransitionTo("PENDING_REMOVAL"))
	assert.False(t, installed.CanTransitionTo("REMOVED"), "removal goes through pending or temporary states")

	assert.True(t, removed.IsTerminal())
	assert.False(t, removed.AllowsStatusChange())
	assert.False(t, failed.IsTerminal(), "error states with outbound edges are recoverable")

	assert.Equal(t, "OPERATIONAL", installed.StatusCategory())
	assert.Equal(t, "ERROR", failed.StatusCategory())

	assert.Equal(t, 10, failed.UrgencyLevel())
	assert.Equal(t, 7, inProgress.UrgencyLevel())
	assert.Equal(t, 3, installed.UrgencyLevel())
	assert.Equal(t, 5, byCode["PLANNED"].UrgencyLevel())

	inconsistent := &InstallationStatus{Operational: true}
	assert.Equal(t, 8, inconsistent.UrgencyLevel())
}

func TestInstallationStatusAutoTransition(t *testing.T) {
	s := &InstallationStatus{CodedEntry: coded("TESTING", "Testing", "", 0)}
	assert.False(t, s.HasAutoTransition())
	assert.False(t, s.ShouldAutoTransition(1000))

	s.AutoTransitionMinutes = 30
	assert.True(t, s.HasAutoTransition())
	assert.False(t, s.ShouldAutoTransition(29))
	assert.True(t, s.ShouldAutoTransition(30))
	assert.True(t, s.ShouldAutoTransition(31))
}

func TestLocationTypeChildGating(t *testing.T) {
	types := DefaultLocationTypes()
	byCode := map[string]*LocationType{}
	for _, lt := range types {
		byCode[lt.Code] = lt
	}

	building := byCode["BUILDING"]
	floor := byCode["FLOOR"]
	room := byCode["ROOM"]
	rack := byCode["RACK_LOCATION"]

	assert.True(t, building.CanHaveChildOfType(floor))
	assert.True(t, building.CanHaveChildOfType(room))
	assert.False(t, building.CanHaveChildOfType(rack))
	assert.True(t, room.CanHaveChildOfType(rack))
	assert.False(t, rack.CanHaveChildOfType(room), "leaf types have no children")

	assert.True(t, rack.CanBeChildOf(room))
	assert.False(t, rack.CanBeChildOf(building))

	// empty allow-list permits any child type
	open := &LocationType{CodedEntry: coded("CAMPUS", "Campus", "", 0), CanHaveChildren: true}
	assert.True(t, open.CanHaveChildOfType(building))
	assert.True(t, open.CanHaveChildOfType(rack))
	assert.False(t, open.CanHaveChildOfType(nil))

	assert.False(t, building.CanHoldEquipment)
	assert.True(t, rack.CanHoldEquipment)
}
