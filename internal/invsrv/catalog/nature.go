package catalog

// ComponentNature is the orthogonal active/passive/support classification of
// a component. It carries a capability-flag shape overlapping ComponentType;
// when both catalogs carry the same flag, the type is authoritative and the
// nature is consulted only through its own accessors.
type ComponentNature struct {
	CodedEntry
	RequiresManagement      bool   `db:"requires_management" json:"requiresManagement"`
	CanHaveIPAddress        bool   `db:"can_have_ip_address" json:"canHaveIpAddress"`
	HasFirmware             bool   `db:"has_firmware" json:"hasFirmware"`
	ProcessesNetworkTraffic bool   `db:"processes_network_traffic" json:"processesNetworkTraffic"`
	SupportsSnmpMonitoring  bool   `db:"supports_snmp_monitoring" json:"supportsSnmpMonitoring"`
	PowerConsumption        string `db:"power_consumption_category" json:"powerConsumptionCategory,omitempty"`
}

// PowerConsumptionCategory returns the nature's declared power class, or
// "unknown" when unset.
func (n *ComponentNature) PowerConsumptionCategory() string {
	if n.PowerConsumption == "" {
		return "unknown"
	}
	return n.PowerConsumption
}
