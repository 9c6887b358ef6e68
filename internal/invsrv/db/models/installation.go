package models

import (
	"database/sql"
	"time"

	"github.com/switchscope/switchscope/internal/common/uuid"
)

/*
   Column               | Type          | Nullable
------------------------+---------------+----------
 id                     | uuid          | not null
 component_id           | uuid          |           housing component, optional
 location_id            | uuid          | not null
 installed_item_type    | varchar(64)   | not null  installable type code
 installed_item_id      | uuid          | not null
 status_code            | varchar(64)   | not null
 rack_position          | int           |
 rack_unit_height       | int           |
 position_description   | varchar(256)  |
 installed_at           | timestamptz   |
 installed_by           | varchar(128)  |
 removed_at             | timestamptz   |
 removed_by             | varchar(128)  |
 notes                  | varchar(1024) |
 cable_management       | varchar(512)  |
 version                | bigint        | not null
 created_at             | timestamptz   | not null
 updated_at             | timestamptz   | not null
*/

// Installation records the placement of an inventory item into a location,
// optionally inside a housing component at a rack position. Removal stamps
// are written once, on the first transition into a terminal or error status,
// and never overwritten.
type Installation struct {
	ID          uuid.UUID     `db:"id"`
	ComponentID uuid.NullUUID `db:"component_id"`
	LocationID  uuid.UUID     `db:"location_id"`

	InstalledItemType string    `db:"installed_item_type"`
	InstalledItemID   uuid.UUID `db:"installed_item_id"`

	StatusCode string `db:"status_code"`

	RackPosition        sql.NullInt32 `db:"rack_position"`
	RackUnitHeight      sql.NullInt32 `db:"rack_unit_height"`
	PositionDescription string        `db:"position_description"`

	InstalledAt sql.NullTime   `db:"installed_at"`
	InstalledBy sql.NullString `db:"installed_by"`
	RemovedAt   sql.NullTime   `db:"removed_at"`
	RemovedBy   sql.NullString `db:"removed_by"`

	Notes           string `db:"notes"`
	CableManagement string `db:"cable_management"`

	Version   int64     `db:"version"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// RackSpan is an occupied rack position range, position first unit and height
// in rack units. InstallationID identifies the holder so an update can be
// checked against every span but its own.
type RackSpan struct {
	InstallationID uuid.UUID `db:"id"`
	Position       int       `db:"rack_position"`
	Height         int       `db:"rack_unit_height"`
}

// IsActive reports whether the installation has not been stamped removed.
func (i *Installation) IsActive() bool {
	return !i.RemovedAt.Valid
}

// OccupiesRackSpace reports whether the installation claims a rack position
// range. Both position and height must be present.
func (i *Installation) OccupiesRackSpace() bool {
	return i.RackPosition.Valid && i.RackUnitHeight.Valid
}
