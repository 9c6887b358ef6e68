package postgresql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/rs/zerolog/log"

	"github.com/switchscope/switchscope/internal/common/apperrors"
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/db/dberror"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
)

const componentColumns = `
	id, kind, name, description, manufacturer, model, serial_number, part_number,
	type_code, status_code, nature_code, parent_id, location_id, attrs,
	management_secret, purchase_date, warranty_until, next_maintenance,
	version, created_at, updated_at
`

// maxComponentDepth bounds ancestor walks so a corrupted parent chain cannot
// recurse without limit.
const maxComponentDepth = 32

func scanComponent(row rowScanner) (*models.Component, error) {
	c := &models.Component{}
	err := row.Scan(
		&c.ID, &c.Kind, &c.Name, &c.Description, &c.Manufacturer, &c.Model,
		&c.SerialNumber, &c.PartNumber,
		&c.TypeCode, &c.StatusCode, &c.NatureCode, &c.ParentID, &c.LocationID, &c.Attrs,
		&c.ManagementSecret, &c.PurchaseDate, &c.WarrantyUntil, &c.NextMaintenance,
		&c.Version, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// CreateComponent inserts a new component. A duplicate manufacturer and
// serial number pair returns ErrAlreadyExists; a reference to a missing
// catalog code, parent, or location returns ErrInvalidInput.
func (im *inventoryManager) CreateComponent(ctx context.Context, c *models.Component) apperrors.Error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Attrs.Status == pgtype.Undefined {
		c.Attrs = pgtype.JSONB{Status: pgtype.Null}
	}
	c.Version = 1

	query := `
		INSERT INTO components (
			id, kind, name, description, manufacturer, model, serial_number, part_number,
			type_code, status_code, nature_code, parent_id, location_id, attrs,
			management_secret, purchase_date, warranty_until, next_maintenance, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING created_at, updated_at;
	`

	err := im.conn().QueryRowContext(ctx, query,
		c.ID, c.Kind, c.Name, c.Description, c.Manufacturer, c.Model,
		c.SerialNumber, c.PartNumber,
		c.TypeCode, c.StatusCode, c.NatureCode, c.ParentID, c.LocationID, c.Attrs,
		c.ManagementSecret, c.PurchaseDate, c.WarrantyUntil, c.NextMaintenance, c.Version,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrUniqueViolation:
				log.Ctx(ctx).Info().Str("serial_number", c.SerialNumber).Msg("component already exists")
				return dberror.ErrAlreadyExists.Msg("a component with this manufacturer and serial number already exists")
			case pgErrForeignKeyViolation:
				return dberror.ErrInvalidInput.Msg("component references a missing catalog code, parent, or location")
			}
		}
		log.Ctx(ctx).Error().Err(err).Str("name", c.Name).Msg("failed to insert component")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

func (im *inventoryManager) GetComponent(ctx context.Context, id uuid.UUID) (*models.Component, apperrors.Error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE id = $1;`

	c, err := scanComponent(im.conn().QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, dberrorFromScan(ctx, err, "component not found")
	}
	return c, nil
}

func (im *inventoryManager) GetComponentBySerial(ctx context.Context, manufacturer, serialNumber string) (*models.Component, apperrors.Error) {
	query := `
		SELECT ` + componentColumns + `
		FROM components
		WHERE upper(manufacturer) = upper($1) AND upper(serial_number) = upper($2);
	`

	c, err := scanComponent(im.conn().QueryRowContext(ctx, query, manufacturer, serialNumber))
	if err != nil {
		return nil, dberrorFromScan(ctx, err, "component not found")
	}
	return c, nil
}

// ComponentFilter narrows component listings. Zero-valued fields are ignored.
type ComponentFilter struct {
	Kind       models.ComponentKind
	TypeCode   string
	StatusCode string
	LocationID uuid.NullUUID
	ParentID   uuid.NullUUID
}

// ListComponents returns components matching the filter, ordered by name.
func (im *inventoryManager) ListComponents(ctx context.Context, filter ComponentFilter) ([]*models.Component, apperrors.Error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE 1=1`
	args := []any{}
	n := 0
	arg := func(v any) string {
		n++
		args = append(args, v)
		return placeholder(n)
	}

	if filter.Kind != "" {
		query += " AND kind = " + arg(filter.Kind)
	}
	if filter.TypeCode != "" {
		query += " AND upper(type_code) = upper(" + arg(filter.TypeCode) + ")"
	}
	if filter.StatusCode != "" {
		query += " AND upper(status_code) = upper(" + arg(filter.StatusCode) + ")"
	}
	if filter.LocationID.Valid {
		query += " AND location_id = " + arg(filter.LocationID.UUID)
	}
	if filter.ParentID.Valid {
		query += " AND parent_id = " + arg(filter.ParentID.UUID)
	}
	query += " ORDER BY name;"

	rows, err := im.conn().QueryContext(ctx, query, args...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list components")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var out []*models.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan component")
			return nil, dberror.ErrDatabase.Err(err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return out, nil
}

// ListChildComponents returns the direct children of a component, ordered by
// name.
func (im *inventoryManager) ListChildComponents(ctx context.Context, parentID uuid.UUID) ([]*models.Component, apperrors.Error) {
	return im.ListComponents(ctx, ComponentFilter{ParentID: uuid.NullFrom(parentID)})
}

// ListComponentAncestors returns the parent chain of a component from the
// immediate parent up to the root. The walk is depth-bounded.
func (im *inventoryManager) ListComponentAncestors(ctx context.Context, id uuid.UUID) ([]*models.Component, apperrors.Error) {
	query := `
		WITH RECURSIVE ancestors AS (
			SELECT c.*, 1 AS depth
			FROM components c
			WHERE c.id = (SELECT parent_id FROM components WHERE id = $1)
			UNION ALL
			SELECT c.*, a.depth + 1
			FROM components c
			JOIN ancestors a ON c.id = a.parent_id
			WHERE a.depth < $2
		)
		SELECT ` + componentColumns + ` FROM ancestors ORDER BY depth;
	`

	rows, err := im.conn().QueryContext(ctx, query, id, maxComponentDepth)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("id", id.String()).Msg("failed to list component ancestors")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var out []*models.Component
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan component ancestor")
			return nil, dberror.ErrDatabase.Err(err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return out, nil
}

// UpdateComponent rewrites the mutable columns of a component guarded by its
// version. A concurrent modification returns ErrVersionMismatch.
func (im *inventoryManager) UpdateComponent(ctx context.Context, c *models.Component) apperrors.Error {
	if c.Attrs.Status == pgtype.Undefined {
		c.Attrs = pgtype.JSONB{Status: pgtype.Null}
	}

	query := `
		UPDATE components
		SET name = $3, description = $4, manufacturer = $5, model = $6,
			serial_number = $7, part_number = $8,
			type_code = $9, status_code = $10, nature_code = $11,
			parent_id = $12, location_id = $13, attrs = $14,
			purchase_date = $15, warranty_until = $16, next_maintenance = $17,
			version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2
		RETURNING version, updated_at;
	`

	err := im.conn().QueryRowContext(ctx, query,
		c.ID, c.Version,
		c.Name, c.Description, c.Manufacturer, c.Model, c.SerialNumber, c.PartNumber,
		c.TypeCode, c.StatusCode, c.NatureCode, c.ParentID, c.LocationID, c.Attrs,
		c.PurchaseDate, c.WarrantyUntil, c.NextMaintenance,
	).Scan(&c.Version, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return im.versionConflict(ctx, "components", c.ID, "component")
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return dberror.ErrAlreadyExists.Msg("a component with this manufacturer and serial number already exists")
		}
		log.Ctx(ctx).Error().Err(err).Str("id", c.ID.String()).Msg("failed to update component")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// SetComponentStatus sets the status code of a component without touching
// other columns. The version still advances.
func (im *inventoryManager) SetComponentStatus(ctx context.Context, id uuid.UUID, statusCode string) apperrors.Error {
	query := `
		UPDATE components
		SET status_code = $2, version = version + 1, updated_at = now()
		WHERE id = $1;
	`

	result, err := im.conn().ExecContext(ctx, query, id, statusCode)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			return dberror.ErrInvalidInput.Msg("unknown status code")
		}
		log.Ctx(ctx).Error().Err(err).Str("id", id.String()).Msg("failed to update component status")
		return dberror.ErrDatabase.Err(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return dberror.ErrNotFound.Msg("component not found")
	}
	return nil
}

// UpdateComponentSecret replaces the sealed management credential blob.
func (im *inventoryManager) UpdateComponentSecret(ctx context.Context, id uuid.UUID, sealed []byte) apperrors.Error {
	query := `
		UPDATE components
		SET management_secret = $2, version = version + 1, updated_at = now()
		WHERE id = $1;
	`

	result, err := im.conn().ExecContext(ctx, query, id, sealed)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("id", id.String()).Msg("failed to update component secret")
		return dberror.ErrDatabase.Err(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return dberror.ErrNotFound.Msg("component not found")
	}
	return nil
}

// DeleteComponent removes a component. Children and installations referencing
// it surface as ErrConflict through the foreign key violation.
func (im *inventoryManager) DeleteComponent(ctx context.Context, id uuid.UUID) apperrors.Error {
	query := `DELETE FROM components WHERE id = $1;`

	result, err := im.conn().ExecContext(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			return dberror.ErrConflict.Msg("component still has children, ports, or installations")
		}
		log.Ctx(ctx).Error().Err(err).Str("id", id.String()).Msg("failed to delete component")
		return dberror.ErrDatabase.Err(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return dberror.ErrNotFound.Msg("component not found")
	}
	return nil
}

func (im *inventoryManager) CountChildComponents(ctx context.Context, parentID uuid.UUID) (int, apperrors.Error) {
	query := `SELECT count(*) FROM components WHERE parent_id = $1;`

	var n int
	if err := im.conn().QueryRowContext(ctx, query, parentID).Scan(&n); err != nil {
		return 0, dberrorFromScan(ctx, err, "failed to count child components")
	}
	return n, nil
}

// CountComponentsOfType returns the number of components referencing the type
// code. Used by the type deletion guard.
func (im *inventoryManager) CountComponentsOfType(ctx context.Context, typeCode string) (int, apperrors.Error) {
	query := `SELECT count(*) FROM components WHERE upper(type_code) = upper($1);`

	var n int
	if err := im.conn().QueryRowContext(ctx, query, typeCode).Scan(&n); err != nil {
		return 0, dberrorFromScan(ctx, err, "failed to count components of type")
	}
	return n, nil
}

// versionConflict distinguishes a stale version from a missing row after a
// guarded update matched nothing.
func (im *inventoryManager) versionConflict(ctx context.Context, table string, id uuid.UUID, label string) apperrors.Error {
	var exists bool
	err := im.conn().QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM "+table+" WHERE id = $1);", id).Scan(&exists)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("id", id.String()).Msgf("failed to check %s existence", label)
		return dberror.ErrDatabase.Err(err)
	}
	if !exists {
		return dberror.ErrNotFound.Msg(label + " not found")
	}
	return dberror.ErrVersionMismatch
}
