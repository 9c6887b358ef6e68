// Package models defines the database row shapes for inventory entities.
// Catalog rows live in the catalog package; this package holds the component,
// port, installation, and location tables.
package models

import (
	"database/sql"
	"time"

	"github.com/jackc/pgtype"

	"github.com/switchscope/switchscope/internal/common/uuid"
)

// ComponentKind is the discriminator for the flat component table. The set
// is closed; kind-specific fields live in the Attrs JSONB document.
type ComponentKind string

const (
	KindRack        ComponentKind = "RACK"
	KindCableRun    ComponentKind = "CABLE_RUN"
	KindConnector   ComponentKind = "CONNECTOR"
	KindPatchPanel  ComponentKind = "PATCH_PANEL"
	KindSwitch      ComponentKind = "SWITCH"
	KindRouter      ComponentKind = "ROUTER"
	KindAccessPoint ComponentKind = "ACCESS_POINT"
)

// IsValid reports whether the kind is one of the closed set.
func (k ComponentKind) IsValid() bool {
	switch k {
	case KindRack, KindCableRun, KindConnector, KindPatchPanel,
		KindSwitch, KindRouter, KindAccessPoint:
		return true
	}
	return false
}

// IsDevice reports whether the kind is a managed device that carries ports.
func (k ComponentKind) IsDevice() bool {
	return k == KindSwitch || k == KindRouter || k == KindAccessPoint
}

/*
   Column           | Type          | Nullable | Default
--------------------+---------------+----------+---------
 id                 | uuid          | not null |
 kind               | varchar(32)   | not null |
 name               | varchar(128)  | not null |
 description        | varchar(1024) |          |
 manufacturer       | varchar(128)  |          |
 model              | varchar(128)  |          |
 serial_number      | varchar(128)  |          | unique with manufacturer
 part_number        | varchar(128)  |          |
 type_code          | varchar(64)   | not null |
 status_code        | varchar(64)   | not null |
 nature_code        | varchar(64)   |          |
 parent_id          | uuid          |          |
 location_id        | uuid          |          |
 attrs              | jsonb         |          |
 management_secret  | bytea         |          | sealed credential
 purchase_date      | timestamptz   |          |
 warranty_until     | timestamptz   |          |
 next_maintenance   | timestamptz   |          |
 version            | bigint        | not null | 1
 created_at         | timestamptz   | not null | now()
 updated_at         | timestamptz   | not null | now()
*/

// Component is a physical inventory item. Kind-specific data (rack geometry,
// management address, firmware, cable medium) is carried in Attrs.
type Component struct {
	ID           uuid.UUID     `db:"id"`
	Kind         ComponentKind `db:"kind"`
	Name         string        `db:"name"`
	Description  string        `db:"description"`
	Manufacturer string        `db:"manufacturer"`
	Model        string        `db:"model"`
	SerialNumber string        `db:"serial_number"`
	PartNumber   string        `db:"part_number"`

	TypeCode   string         `db:"type_code"`
	StatusCode string         `db:"status_code"`
	NatureCode sql.NullString `db:"nature_code"`

	ParentID   uuid.NullUUID `db:"parent_id"`
	LocationID uuid.NullUUID `db:"location_id"`

	Attrs pgtype.JSONB `db:"attrs"`

	// ManagementSecret is the sealed management credential blob for managed
	// devices. Never returned over the API.
	ManagementSecret []byte `db:"management_secret"`

	PurchaseDate    sql.NullTime `db:"purchase_date"`
	WarrantyUntil   sql.NullTime `db:"warranty_until"`
	NextMaintenance sql.NullTime `db:"next_maintenance"`

	Version   int64     `db:"version"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
