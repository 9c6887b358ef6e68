package catalog

// StatusUnknown is the escape-hatch status for unclassified legacy data. It
// may transition to any other status.
const StatusUnknown = "UNKNOWN"

// ComponentStatus is a lifecycle status for components. Each row carries its
// own outbound transition edges, so the transition graph as a whole is
// decentralized across the catalog.
type ComponentStatus struct {
	CodedEntry
	LifecyclePhase string `db:"lifecycle_phase" json:"lifecyclePhase,omitempty"`

	// State predicates
	Available              bool `db:"is_available" json:"available"`
	Operational            bool `db:"is_operational" json:"operational"`
	CanAcceptInstallations bool `db:"can_accept_installations" json:"canAcceptInstallations"`
	RequiresAttention      bool `db:"requires_attention" json:"requiresAttention"`
	PhysicallyPresent      bool `db:"is_physically_present" json:"physicallyPresent"`
	InInventory            bool `db:"is_in_inventory" json:"inInventory"`
	InTransition           bool `db:"is_in_transition" json:"inTransition"`
	CanBeReserved          bool `db:"can_be_reserved" json:"canBeReserved"`

	// Outbound edges of the transition graph, by status code.
	NextStatusCodes []string `db:"next_status_codes" json:"nextPossibleStatusCodes,omitempty"`
}

// CanTransitionTo reports whether a transition to the target status code is
// allowed: exact one-hop membership in the outbound edge set, nothing more.
// An UNKNOWN status may transition anywhere.
func (s *ComponentStatus) CanTransitionTo(code string) bool {
	if s.Code == StatusUnknown {
		return true
	}
	return containsCode(s.NextStatusCodes, code)
}

// AddNextStatusCode adds an outbound edge. The target code is not checked
// for existence; a dangling edge resolves as a lookup miss at traversal time.
func (s *ComponentStatus) AddNextStatusCode(code string) {
	if code == "" || code == s.Code || containsCode(s.NextStatusCodes, code) {
		return
	}
	s.NextStatusCodes = append(s.NextStatusCodes, code)
}

// RemoveNextStatusCode removes an outbound edge.
func (s *ComponentStatus) RemoveNextStatusCode(code string) {
	for i, c := range s.NextStatusCodes {
		if c == code {
			s.NextStatusCodes = append(s.NextStatusCodes[:i], s.NextStatusCodes[i+1:]...)
			return
		}
	}
}
