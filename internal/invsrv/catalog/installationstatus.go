package catalog

// InstallationStatusPlanned is the entry point of the installation status
// graph; new installations start here.
const InstallationStatusPlanned = "PLANNED"

// InstallationStatus is a lifecycle status for installations. Like
// ComponentStatus it carries its own outbound transition edges; it adds
// workflow characteristics used by the installation state machine.
type InstallationStatus struct {
	CodedEntry
	ColorCategory string `db:"color_category" json:"colorCategory,omitempty"`

	// Status characteristics
	PhysicallyPresent bool `db:"is_physically_present" json:"physicallyPresent"`
	Operational       bool `db:"is_operational" json:"operational"`
	RequiresAttention bool `db:"requires_attention" json:"requiresAttention"`
	FinalStatus       bool `db:"is_final_status" json:"finalStatus"`
	ErrorStatus       bool `db:"is_error_status" json:"errorStatus"`

	// Workflow
	StatusOrder           int `db:"status_order" json:"statusOrder"`
	AutoTransitionMinutes int `db:"auto_transition_minutes" json:"autoTransitionMinutes,omitempty"`

	// Business rules
	AllowsEquipmentOperation bool `db:"allows_equipment_operation" json:"allowsEquipmentOperation"`
	AllowsMaintenance        bool `db:"allows_maintenance" json:"allowsMaintenance"`
	RequiresDocumentation    bool `db:"requires_documentation" json:"requiresDocumentation"`
	NotifiesStakeholders     bool `db:"notifies_stakeholders" json:"notifiesStakeholders"`

	// Outbound edges of the transition graph, by status code.
	NextStatusCodes []string `db:"next_status_codes" json:"nextPossibleStatusCodes,omitempty"`
}

// CanTransitionTo reports whether a transition to the target status code is
// allowed: exact one-hop membership in the outbound edge set. An UNKNOWN
// status may transition anywhere.
func (s *InstallationStatus) CanTransitionTo(code string) bool {
	if s.Code == StatusUnknown {
		return true
	}
	return containsCode(s.NextStatusCodes, code)
}

// AddNextStatusCode adds an outbound edge. Self-edges are ignored.
func (s *InstallationStatus) AddNextStatusCode(code string) {
	if code == "" || code == s.Code || containsCode(s.NextStatusCodes, code) {
		return
	}
	s.NextStatusCodes = append(s.NextStatusCodes, code)
}

func (s *InstallationStatus) IsProgressStatus() bool {
	return !s.FinalStatus && !s.ErrorStatus
}

func (s *InstallationStatus) IsSuccessStatus() bool {
	return s.Operational && !s.RequiresAttention
}

func (s *InstallationStatus) IsWarningStatus() bool {
	return s.PhysicallyPresent && s.RequiresAttention && !s.ErrorStatus
}

// IsTerminal reports whether the status ends the installation lifecycle: it
// is flagged final, or it has no outbound edges and is not an error state.
func (s *InstallationStatus) IsTerminal() bool {
	return s.FinalStatus || (len(s.NextStatusCodes) == 0 && !s.ErrorStatus)
}

// AllowsStatusChange reports whether the installation may leave this status.
func (s *InstallationStatus) AllowsStatusChange() bool {
	return !s.FinalStatus
}

// StatusCategory buckets the status for display and reporting.
func (s *InstallationStatus) StatusCategory() string {
	switch {
	case s.ErrorStatus:
		return "ERROR"
	case s.Operational:
		return "OPERATIONAL"
	case s.PhysicallyPresent:
		return "PHYSICAL"
	case s.FinalStatus:
		return "FINAL"
	default:
		return "TRANSITIONAL"
	}
}

// HasAutoTransition reports whether the status is configured to advance on
// its own after a dwell time.
func (s *InstallationStatus) HasAutoTransition() bool {
	return s.AutoTransitionMinutes > 0
}

// ShouldAutoTransition reports whether the dwell time has elapsed. This is a
// pull-based check; callers poll it, nothing fires on a clock.
func (s *InstallationStatus) ShouldAutoTransition(minutesSinceUpdate int64) bool {
	return s.HasAutoTransition() && minutesSinceUpdate >= int64(s.AutoTransitionMinutes)
}

// UrgencyLevel ranks statuses for attention ordering. Error states rank
// highest. A status reported operational but not physically present is an
// inconsistent state; the attention flag is checked before the inconsistency
// check, so a status carrying both reports 7.
func (s *InstallationStatus) UrgencyLevel() int {
	if s.ErrorStatus {
		return 10
	}
	if s.RequiresAttention {
		return 7
	}
	if !s.PhysicallyPresent && s.Operational {
		return 8
	}
	if s.Operational {
		return 3
	}
	return 5
}
