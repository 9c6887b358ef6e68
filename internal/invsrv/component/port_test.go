package component

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/switchscope/switchscope/internal/invsrv/db/models"
)

func fiberPort(tx, rx, loss sql.NullFloat64) *PortView {
	return &PortView{Row: &models.Port{
		Kind:          models.PortFiber,
		PortNumber:    1,
		TxPowerDbm:    tx,
		RxPowerDbm:    rx,
		OpticalLossDb: loss,
	}}
}

func f(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

func TestOpticalLinkQuality(t *testing.T) {
	tests := []struct {
		name string
		port *PortView
		want string
	}{
		{"no rx reading", fiberPort(f(-3), sql.NullFloat64{}, sql.NullFloat64{}), "No Signal"},
		{"rx below signal floor", fiberPort(f(-3), f(-45), sql.NullFloat64{}), "No Signal"},
		{"loss budget exceeded", fiberPort(f(0), f(-20), f(2)), "Poor"},
		{"low loss", fiberPort(f(-3), f(-7), f(2.5)), "Excellent"},
		{"moderate loss", fiberPort(f(-3), f(-8), f(5)), "Good"},
		{"high loss", fiberPort(f(-3), f(-10), f(9)), "Fair"},
		{"healthy but unmeasured loss", fiberPort(f(-3), f(-8), sql.NullFloat64{}), "Unknown"},
		{"loss above fair band", fiberPort(f(-3), f(-8), f(12)), "Unknown"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.port.OpticalLinkQuality())
		})
	}
}

func TestOpticalLinkHealthRequiresBothReadings(t *testing.T) {
	assert.False(t, fiberPort(f(0), sql.NullFloat64{}, sql.NullFloat64{}).IsOpticalLinkHealthy())
	assert.False(t, fiberPort(sql.NullFloat64{}, f(-10), sql.NullFloat64{}).IsOpticalLinkHealthy())
	assert.True(t, fiberPort(f(0), f(-15), sql.NullFloat64{}).IsOpticalLinkHealthy())
	assert.False(t, fiberPort(f(0), f(-15.1), sql.NullFloat64{}).IsOpticalLinkHealthy())
}

func ethernetPort(maxSpeed int32) *PortView {
	return &PortView{Row: &models.Port{
		Kind:         models.PortEthernet,
		PortNumber:   1,
		MaxSpeedMbps: sql.NullInt32{Int32: maxSpeed, Valid: true},
	}}
}

func TestEthernetClass(t *testing.T) {
	assert.Equal(t, "10 Gigabit", ethernetPort(10000).EthernetClass())
	assert.Equal(t, "Gigabit", ethernetPort(2500).EthernetClass())
	assert.Equal(t, "Fast Ethernet", ethernetPort(100).EthernetClass())
	assert.Equal(t, "Ethernet", ethernetPort(10).EthernetClass())
	assert.Equal(t, "Unknown", ethernetPort(1).EthernetClass())

	noSpeed := &PortView{Row: &models.Port{Kind: models.PortEthernet, PortNumber: 1}}
	assert.Equal(t, "Unknown", noSpeed.EthernetClass())

	assert.True(t, ethernetPort(1000).IsGigabitCapable())
	assert.False(t, ethernetPort(1000).Is10GigabitCapable())
	assert.True(t, ethernetPort(40000).Is10GigabitCapable())
}

func TestSupportedSpeedsByMedium(t *testing.T) {
	eth := ethernetPort(10000)
	assert.True(t, eth.SupportsSpeed(100))
	assert.True(t, eth.SupportsSpeed(10000))
	assert.False(t, eth.SupportsSpeed(25000))

	fib := fiberPort(f(0), f(-5), f(1))
	assert.True(t, fib.SupportsSpeed(25000))
	assert.True(t, fib.SupportsSpeed(100000))
	assert.False(t, fib.SupportsSpeed(100))
}

func TestConnectorCompatibility(t *testing.T) {
	eth := ethernetPort(1000)
	assert.True(t, eth.IsCompatibleWith("RJ45"))
	assert.False(t, eth.IsCompatibleWith("LC"))

	fib := fiberPort(f(0), f(-5), f(1))
	assert.True(t, fib.IsCompatibleWith("LC"))
	assert.True(t, fib.IsCompatibleWith("QSFP28"))
	assert.False(t, fib.IsCompatibleWith("RJ45"))
}

func TestPortConfigurationValidation(t *testing.T) {
	p := &PortView{Row: &models.Port{Kind: models.PortEthernet, PortNumber: 1}}
	assert.True(t, p.IsValidConfiguration())

	p.Row.PortNumber = 0
	assert.False(t, p.IsValidConfiguration())

	p.Row.PortNumber = 1
	p.Row.SpeedMbps = sql.NullInt32{Int32: 10000, Valid: true}
	p.Row.MaxSpeedMbps = sql.NullInt32{Int32: 1000, Valid: true}
	assert.False(t, p.IsValidConfiguration())

	p.Row.SpeedMbps = sql.NullInt32{Int32: 1000, Valid: true}
	assert.True(t, p.IsValidConfiguration())

	p.Row.Kind = "WIRELESS"
	assert.False(t, p.IsValidConfiguration())
}
