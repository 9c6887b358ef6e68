package models

import (
	"database/sql"
	"time"

	"github.com/switchscope/switchscope/internal/common/uuid"
)

// PortKind discriminates the two physical port media.
type PortKind string

const (
	PortEthernet PortKind = "ETHERNET"
	PortFiber    PortKind = "FIBER"
)

// IsValid reports whether the kind is a known port medium.
func (k PortKind) IsValid() bool {
	return k == PortEthernet || k == PortFiber
}

/*
   Column              | Type          | Nullable
-----------------------+---------------+----------
 id                    | uuid          | not null
 component_id          | uuid          | not null
 kind                  | varchar(16)   | not null
 port_number           | int           | not null  unique per component
 label                 | varchar(64)   |
 admin_enabled         | boolean       | not null
 link_up               | boolean       | not null
 speed_mbps            | int           |
 max_speed_mbps        | int           |
 full_duplex           | boolean       |
 auto_negotiation      | boolean       |
 poe_enabled           | boolean       |
 cable_length_meters   | numeric       |           copper only
 fiber_type            | varchar(32)   |           fiber only
 wavelength_nm         | int           |           fiber only
 tx_power_dbm          | numeric       |           fiber only
 rx_power_dbm          | numeric       |           fiber only
 optical_loss_db       | numeric       |           fiber only
 connector_type        | varchar(32)   |
 version               | bigint        | not null
 created_at            | timestamptz   | not null
 updated_at            | timestamptz   | not null
*/

// Port is a physical port on a device component. Ethernet and fiber ports
// share the table; medium-specific columns are nullable and only populated
// for the matching kind.
type Port struct {
	ID          uuid.UUID `db:"id"`
	ComponentID uuid.UUID `db:"component_id"`
	Kind        PortKind  `db:"kind"`
	PortNumber  int       `db:"port_number"`
	Label       string    `db:"label"`

	AdminEnabled bool `db:"admin_enabled"`
	LinkUp       bool `db:"link_up"`

	SpeedMbps       sql.NullInt32 `db:"speed_mbps"`
	MaxSpeedMbps    sql.NullInt32 `db:"max_speed_mbps"`
	FullDuplex      sql.NullBool  `db:"full_duplex"`
	AutoNegotiation sql.NullBool  `db:"auto_negotiation"`
	PoeEnabled      sql.NullBool  `db:"poe_enabled"`

	CableLengthMeters sql.NullFloat64 `db:"cable_length_meters"`

	FiberType     sql.NullString  `db:"fiber_type"`
	WavelengthNm  sql.NullInt32   `db:"wavelength_nm"`
	TxPowerDbm    sql.NullFloat64 `db:"tx_power_dbm"`
	RxPowerDbm    sql.NullFloat64 `db:"rx_power_dbm"`
	OpticalLossDb sql.NullFloat64 `db:"optical_loss_db"`

	ConnectorType string `db:"connector_type"`

	Version   int64     `db:"version"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
