package component

import (
	"fmt"

	"github.com/switchscope/switchscope/internal/invsrv/db/models"
)

// Signal presence and acceptable loss thresholds for fiber links, in dBm
// and dB respectively.
const (
	fiberSignalFloorDbm = -40.0
	fiberMaxLinkLossDb  = 15.0
)

// PortView wraps a port row with link evaluation helpers.
type PortView struct {
	Row *models.Port
}

// IsUp reports whether the port is administratively enabled and has link.
func (p *PortView) IsUp() bool {
	return p.Row.AdminEnabled && p.Row.LinkUp
}

// SupportsSpeed reports whether the port medium supports the given speed.
func (p *PortView) SupportsSpeed(speedMbps int) bool {
	switch p.Row.Kind {
	case models.PortEthernet:
		return speedMbps == 10 || speedMbps == 100 ||
			speedMbps == 1000 || speedMbps == 10000
	case models.PortFiber:
		return speedMbps == 1000 || speedMbps == 10000 ||
			speedMbps == 25000 || speedMbps == 40000 || speedMbps == 100000
	}
	return false
}

// IsCompatibleWith reports whether the connector type fits the port medium.
func (p *PortView) IsCompatibleWith(connectorType string) bool {
	switch p.Row.Kind {
	case models.PortEthernet:
		return connectorType == "RJ45" || connectorType == "RJ11"
	case models.PortFiber:
		switch connectorType {
		case "LC", "SC", "ST", "SFP", "SFP+", "QSFP", "QSFP+", "QSFP28":
			return true
		}
	}
	return false
}

// IsGigabitCapable reports whether an ethernet port supports at least 1 Gbps.
func (p *PortView) IsGigabitCapable() bool {
	return p.Row.Kind == models.PortEthernet &&
		p.Row.MaxSpeedMbps.Valid && p.Row.MaxSpeedMbps.Int32 >= 1000
}

// Is10GigabitCapable reports whether an ethernet port supports at least
// 10 Gbps.
func (p *PortView) Is10GigabitCapable() bool {
	return p.Row.Kind == models.PortEthernet &&
		p.Row.MaxSpeedMbps.Valid && p.Row.MaxSpeedMbps.Int32 >= 10000
}

// EthernetClass names the speed class of an ethernet port.
func (p *PortView) EthernetClass() string {
	if p.Row.Kind != models.PortEthernet || !p.Row.MaxSpeedMbps.Valid {
		return "Unknown"
	}
	max := p.Row.MaxSpeedMbps.Int32
	switch {
	case max >= 10000:
		return "10 Gigabit"
	case max >= 1000:
		return "Gigabit"
	case max >= 100:
		return "Fast Ethernet"
	case max >= 10:
		return "Ethernet"
	}
	return "Unknown"
}

// HasOpticalSignal reports whether a fiber port receives any usable light.
func (p *PortView) HasOpticalSignal() bool {
	return p.Row.Kind == models.PortFiber &&
		p.Row.RxPowerDbm.Valid && p.Row.RxPowerDbm.Float64 > fiberSignalFloorDbm
}

// IsOpticalLinkHealthy reports whether the tx-to-rx loss of a fiber port is
// within the acceptable budget. Both power readings must be present.
func (p *PortView) IsOpticalLinkHealthy() bool {
	if p.Row.Kind != models.PortFiber ||
		!p.Row.TxPowerDbm.Valid || !p.Row.RxPowerDbm.Valid {
		return false
	}
	signalLoss := p.Row.TxPowerDbm.Float64 - p.Row.RxPowerDbm.Float64
	return signalLoss <= fiberMaxLinkLossDb
}

// OpticalLinkQuality grades a fiber link. Signal presence and link health
// gate the grade; the measured optical loss refines it.
func (p *PortView) OpticalLinkQuality() string {
	if !p.HasOpticalSignal() {
		return "No Signal"
	}
	if !p.IsOpticalLinkHealthy() {
		return "Poor"
	}
	if p.Row.OpticalLossDb.Valid {
		loss := p.Row.OpticalLossDb.Float64
		switch {
		case loss <= 3.0:
			return "Excellent"
		case loss <= 6.0:
			return "Good"
		case loss <= 10.0:
			return "Fair"
		}
	}
	return "Unknown"
}

// IsValidConfiguration checks the structural invariants of a port row.
func (p *PortView) IsValidConfiguration() bool {
	if p.Row.PortNumber <= 0 || !p.Row.Kind.IsValid() {
		return false
	}
	if p.Row.SpeedMbps.Valid && p.Row.MaxSpeedMbps.Valid &&
		p.Row.SpeedMbps.Int32 > p.Row.MaxSpeedMbps.Int32 {
		return false
	}
	return true
}

// Specifications returns display key-value pairs describing the port.
func (p *PortView) Specifications() map[string]string {
	specs := map[string]string{}
	if p.Row.SpeedMbps.Valid {
		specs["Speed"] = fmt.Sprintf("%d Mbps", p.Row.SpeedMbps.Int32)
	}
	if p.Row.MaxSpeedMbps.Valid {
		specs["Max Speed"] = fmt.Sprintf("%d Mbps", p.Row.MaxSpeedMbps.Int32)
	}
	if p.Row.FullDuplex.Valid {
		if p.Row.FullDuplex.Bool {
			specs["Duplex"] = "FULL"
		} else {
			specs["Duplex"] = "HALF"
		}
	}
	if p.Row.ConnectorType != "" {
		specs["Connector"] = p.Row.ConnectorType
	}
	if p.Row.PoeEnabled.Valid && p.Row.PoeEnabled.Bool {
		specs["PoE"] = "Enabled"
	}
	switch p.Row.Kind {
	case models.PortEthernet:
		specs["Medium"] = "COPPER"
		if p.Row.CableLengthMeters.Valid {
			specs["Cable Length"] = fmt.Sprintf("%gm", p.Row.CableLengthMeters.Float64)
		}
	case models.PortFiber:
		specs["Medium"] = "FIBER"
		if p.Row.FiberType.Valid {
			specs["Fiber Type"] = p.Row.FiberType.String
		}
		if p.Row.WavelengthNm.Valid {
			specs["Wavelength"] = fmt.Sprintf("%dnm", p.Row.WavelengthNm.Int32)
		}
		if p.Row.TxPowerDbm.Valid {
			specs["TX Power"] = fmt.Sprintf("%gdBm", p.Row.TxPowerDbm.Float64)
		}
		if p.Row.RxPowerDbm.Valid {
			specs["RX Power"] = fmt.Sprintf("%gdBm", p.Row.RxPowerDbm.Float64)
		}
		if p.Row.OpticalLossDb.Valid {
			specs["Optical Loss"] = fmt.Sprintf("%gdB", p.Row.OpticalLossDb.Float64)
		}
	}
	return specs
}
