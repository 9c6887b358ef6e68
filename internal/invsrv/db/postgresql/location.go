package postgresql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/switchscope/switchscope/internal/common/apperrors"
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/db/dberror"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
)

const locationColumns = `
	id, name, description, type_code, parent_id, address, floor, room,
	latitude, longitude,
	min_temperature_celsius, max_temperature_celsius,
	min_humidity_percent, max_humidity_percent,
	power_capacity_watts, available_rack_units, has_ups, has_generator,
	max_children_count, max_equipment_count,
	version, created_at, updated_at
`

// maxLocationDepth bounds ancestor walks in the location tree.
const maxLocationDepth = 32

func scanLocation(row rowScanner) (*models.Location, error) {
	l := &models.Location{}
	err := row.Scan(
		&l.ID, &l.Name, &l.Description, &l.TypeCode, &l.ParentID,
		&l.Address, &l.Floor, &l.Room,
		&l.Latitude, &l.Longitude,
		&l.MinTemperatureCelsius, &l.MaxTemperatureCelsius,
		&l.MinHumidityPercent, &l.MaxHumidityPercent,
		&l.PowerCapacityWatts, &l.AvailableRackUnits, &l.HasUps, &l.HasGenerator,
		&l.MaxChildrenCount, &l.MaxEquipmentCount,
		&l.Version, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// CreateLocation inserts a new location. A duplicate name under the same
// parent returns ErrAlreadyExists.
func (im *inventoryManager) CreateLocation(ctx context.Context, l *models.Location) apperrors.Error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	l.Version = 1

	query := `
		INSERT INTO locations (
			id, name, description, type_code, parent_id, address, floor, room,
			latitude, longitude,
			min_temperature_celsius, max_temperature_celsius,
			min_humidity_percent, max_humidity_percent,
			power_capacity_watts, available_rack_units, has_ups, has_generator,
			max_children_count, max_equipment_count, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING created_at, updated_at;
	`

	err := im.conn().QueryRowContext(ctx, query,
		l.ID, l.Name, l.Description, l.TypeCode, l.ParentID, l.Address, l.Floor, l.Room,
		l.Latitude, l.Longitude,
		l.MinTemperatureCelsius, l.MaxTemperatureCelsius,
		l.MinHumidityPercent, l.MaxHumidityPercent,
		l.PowerCapacityWatts, l.AvailableRackUnits, l.HasUps, l.HasGenerator,
		l.MaxChildrenCount, l.MaxEquipmentCount, l.Version,
	).Scan(&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrUniqueViolation:
				return dberror.ErrAlreadyExists.Msg("a location with this name already exists under the same parent")
			case pgErrForeignKeyViolation:
				return dberror.ErrInvalidInput.Msg("location references a missing parent or type code")
			}
		}
		log.Ctx(ctx).Error().Err(err).Str("name", l.Name).Msg("failed to insert location")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

func (im *inventoryManager) GetLocation(ctx context.Context, id uuid.UUID) (*models.Location, apperrors.Error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1;`

	l, err := scanLocation(im.conn().QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, dberrorFromScan(ctx, err, "location not found")
	}
	return l, nil
}

// LocationFilter narrows location listings. Zero-valued fields are ignored.
// RootsOnly selects locations without a parent.
type LocationFilter struct {
	TypeCode  string
	ParentID  uuid.NullUUID
	RootsOnly bool
}

// ListLocations returns locations matching the filter, ordered by name.
func (im *inventoryManager) ListLocations(ctx context.Context, filter LocationFilter) ([]*models.Location, apperrors.Error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE 1=1`
	args := []any{}
	n := 0
	arg := func(v any) string {
		n++
		args = append(args, v)
		return placeholder(n)
	}

	if filter.TypeCode != "" {
		query += " AND upper(type_code) = upper(" + arg(filter.TypeCode) + ")"
	}
	if filter.ParentID.Valid {
		query += " AND parent_id = " + arg(filter.ParentID.UUID)
	}
	if filter.RootsOnly {
		query += " AND parent_id IS NULL"
	}
	query += " ORDER BY name;"

	rows, err := im.conn().QueryContext(ctx, query, args...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list locations")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var out []*models.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan location")
			return nil, dberror.ErrDatabase.Err(err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return out, nil
}

// ListLocationAncestors returns the parent chain of a location from the
// immediate parent up to the root. The walk is depth-bounded.
func (im *inventoryManager) ListLocationAncestors(ctx context.Context, id uuid.UUID) ([]*models.Location, apperrors.Error) {
	query := `
		WITH RECURSIVE ancestors AS (
			SELECT l.*, 1 AS depth
			FROM locations l
			WHERE l.id = (SELECT parent_id FROM locations WHERE id = $1)
			UNION ALL
			SELECT l.*, a.depth + 1
			FROM locations l
			JOIN ancestors a ON l.id = a.parent_id
			WHERE a.depth < $2
		)
		SELECT ` + locationColumns + ` FROM ancestors ORDER BY depth;
	`

	rows, err := im.conn().QueryContext(ctx, query, id, maxLocationDepth)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("id", id.String()).Msg("failed to list location ancestors")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var out []*models.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan location ancestor")
			return nil, dberror.ErrDatabase.Err(err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return out, nil
}

// UpdateLocation rewrites the mutable columns of a location guarded by its
// version.
func (im *inventoryManager) UpdateLocation(ctx context.Context, l *models.Location) apperrors.Error {
	query := `
		UPDATE locations
		SET name = $3, description = $4, type_code = $5, parent_id = $6,
			address = $7, floor = $8, room = $9,
			latitude = $10, longitude = $11,
			min_temperature_celsius = $12, max_temperature_celsius = $13,
			min_humidity_percent = $14, max_humidity_percent = $15,
			power_capacity_watts = $16, available_rack_units = $17,
			has_ups = $18, has_generator = $19,
			max_children_count = $20, max_equipment_count = $21,
			version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2
		RETURNING version, updated_at;
	`

	err := im.conn().QueryRowContext(ctx, query,
		l.ID, l.Version,
		l.Name, l.Description, l.TypeCode, l.ParentID,
		l.Address, l.Floor, l.Room,
		l.Latitude, l.Longitude,
		l.MinTemperatureCelsius, l.MaxTemperatureCelsius,
		l.MinHumidityPercent, l.MaxHumidityPercent,
		l.PowerCapacityWatts, l.AvailableRackUnits,
		l.HasUps, l.HasGenerator,
		l.MaxChildrenCount, l.MaxEquipmentCount,
	).Scan(&l.Version, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return im.versionConflict(ctx, "locations", l.ID, "location")
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return dberror.ErrAlreadyExists.Msg("a location with this name already exists under the same parent")
		}
		log.Ctx(ctx).Error().Err(err).Str("id", l.ID.String()).Msg("failed to update location")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// DeleteLocation removes a location. Child locations, components, or
// installations referencing it surface as ErrConflict.
func (im *inventoryManager) DeleteLocation(ctx context.Context, id uuid.UUID) apperrors.Error {
	query := `DELETE FROM locations WHERE id = $1;`

	result, err := im.conn().ExecContext(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			return dberror.ErrConflict.Msg("location still has children, components, or installations")
		}
		log.Ctx(ctx).Error().Err(err).Str("id", id.String()).Msg("failed to delete location")
		return dberror.ErrDatabase.Err(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return dberror.ErrNotFound.Msg("location not found")
	}
	return nil
}

func (im *inventoryManager) CountChildLocations(ctx context.Context, parentID uuid.UUID) (int, apperrors.Error) {
	query := `SELECT count(*) FROM locations WHERE parent_id = $1;`

	var n int
	if err := im.conn().QueryRowContext(ctx, query, parentID).Scan(&n); err != nil {
		return 0, dberrorFromScan(ctx, err, "failed to count child locations")
	}
	return n, nil
}

// CountEquipmentAtLocation returns the number of active installations at a
// location. Used by the equipment capacity check.
func (im *inventoryManager) CountEquipmentAtLocation(ctx context.Context, locationID uuid.UUID) (int, apperrors.Error) {
	query := `SELECT count(*) FROM installations WHERE location_id = $1 AND removed_at IS NULL;`

	var n int
	if err := im.conn().QueryRowContext(ctx, query, locationID).Scan(&n); err != nil {
		return 0, dberrorFromScan(ctx, err, "failed to count equipment at location")
	}
	return n, nil
}

// CountLocationsOfType returns the number of locations referencing the type
// code. Used by the location type deletion guard.
func (im *inventoryManager) CountLocationsOfType(ctx context.Context, typeCode string) (int, apperrors.Error) {
	query := `SELECT count(*) FROM locations WHERE upper(type_code) = upper($1);`

	var n int
	if err := im.conn().QueryRowContext(ctx, query, typeCode).Scan(&n); err != nil {
		return 0, dberrorFromScan(ctx, err, "failed to count locations of type")
	}
	return n, nil
}
