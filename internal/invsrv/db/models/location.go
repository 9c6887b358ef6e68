package models

import (
	"database/sql"
	"time"

	"github.com/switchscope/switchscope/internal/common/uuid"
)

/*
   Column                 | Type          | Nullable
--------------------------+---------------+----------
 id                       | uuid          | not null
 name                     | varchar(128)  | not null
 description              | varchar(1024) |
 type_code                | varchar(64)   | not null
 parent_id                | uuid          |
 address                  | varchar(256)  |
 floor                    | varchar(32)   |
 room                     | varchar(64)   |
 latitude                 | numeric       |
 longitude                | numeric       |
 min_temperature_celsius  | numeric       |
 max_temperature_celsius  | numeric       |
 min_humidity_percent     | numeric       |
 max_humidity_percent     | numeric       |
 power_capacity_watts     | int           |
 available_rack_units     | int           |
 has_ups                  | boolean       | not null
 has_generator            | boolean       | not null
 max_children_count       | int           |           overrides type default
 max_equipment_count      | int           |           overrides type default
 version                  | bigint        | not null
 created_at               | timestamptz   | not null
 updated_at               | timestamptz   | not null
*/

// Location is a node in the site hierarchy (building, floor, room, rack
// location). Parent links form a tree; cycles are rejected at write time.
type Location struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`

	TypeCode string        `db:"type_code"`
	ParentID uuid.NullUUID `db:"parent_id"`

	Address string `db:"address"`
	Floor   string `db:"floor"`
	Room    string `db:"room"`

	Latitude  sql.NullFloat64 `db:"latitude"`
	Longitude sql.NullFloat64 `db:"longitude"`

	MinTemperatureCelsius sql.NullFloat64 `db:"min_temperature_celsius"`
	MaxTemperatureCelsius sql.NullFloat64 `db:"max_temperature_celsius"`
	MinHumidityPercent    sql.NullFloat64 `db:"min_humidity_percent"`
	MaxHumidityPercent    sql.NullFloat64 `db:"max_humidity_percent"`

	PowerCapacityWatts sql.NullInt32 `db:"power_capacity_watts"`
	AvailableRackUnits sql.NullInt32 `db:"available_rack_units"`
	HasUps             bool          `db:"has_ups"`
	HasGenerator       bool          `db:"has_generator"`

	MaxChildrenCount  sql.NullInt32 `db:"max_children_count"`
	MaxEquipmentCount sql.NullInt32 `db:"max_equipment_count"`

	Version   int64     `db:"version"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (l *Location) HasCoordinates() bool {
	return l.Latitude.Valid && l.Longitude.Valid
}
