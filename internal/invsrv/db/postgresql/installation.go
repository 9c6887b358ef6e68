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

const installationColumns = `
	id, component_id, location_id, installed_item_type, installed_item_id,
	status_code, rack_position, rack_unit_height, position_description,
	installed_at, installed_by, removed_at, removed_by, notes, cable_management,
	version, created_at, updated_at
`

func scanInstallation(row rowScanner) (*models.Installation, error) {
	i := &models.Installation{}
	err := row.Scan(
		&i.ID, &i.ComponentID, &i.LocationID, &i.InstalledItemType, &i.InstalledItemID,
		&i.StatusCode, &i.RackPosition, &i.RackUnitHeight, &i.PositionDescription,
		&i.InstalledAt, &i.InstalledBy, &i.RemovedAt, &i.RemovedBy, &i.Notes, &i.CableManagement,
		&i.Version, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

// CreateInstallation inserts a new installation record. References to a
// missing location, housing component, or status code return ErrInvalidInput.
func (im *inventoryManager) CreateInstallation(ctx context.Context, i *models.Installation) apperrors.Error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	i.Version = 1

	query := `
		INSERT INTO installations (
			id, component_id, location_id, installed_item_type, installed_item_id,
			status_code, rack_position, rack_unit_height, position_description,
			installed_at, installed_by, notes, cable_management, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at;
	`

	err := im.conn().QueryRowContext(ctx, query,
		i.ID, i.ComponentID, i.LocationID, i.InstalledItemType, i.InstalledItemID,
		i.StatusCode, i.RackPosition, i.RackUnitHeight, i.PositionDescription,
		i.InstalledAt, i.InstalledBy, i.Notes, i.CableManagement, i.Version,
	).Scan(&i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			return dberror.ErrInvalidInput.Msg("installation references a missing location, component, or catalog code")
		}
		log.Ctx(ctx).Error().Err(err).Str("item_id", i.InstalledItemID.String()).Msg("failed to insert installation")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

func (im *inventoryManager) GetInstallation(ctx context.Context, id uuid.UUID) (*models.Installation, apperrors.Error) {
	query := `SELECT ` + installationColumns + ` FROM installations WHERE id = $1;`

	i, err := scanInstallation(im.conn().QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, dberrorFromScan(ctx, err, "installation not found")
	}
	return i, nil
}

// InstallationFilter narrows installation listings. Zero-valued fields are
// ignored; ActiveOnly excludes removed installations.
type InstallationFilter struct {
	LocationID  uuid.NullUUID
	ComponentID uuid.NullUUID
	ItemID      uuid.NullUUID
	StatusCode  string
	ActiveOnly  bool
}

// ListInstallations returns installations matching the filter, newest first.
func (im *inventoryManager) ListInstallations(ctx context.Context, filter InstallationFilter) ([]*models.Installation, apperrors.Error) {
	query := `SELECT ` + installationColumns + ` FROM installations WHERE 1=1`
	args := []any{}
	n := 0
	arg := func(v any) string {
		n++
		args = append(args, v)
		return placeholder(n)
	}

	if filter.LocationID.Valid {
		query += " AND location_id = " + arg(filter.LocationID.UUID)
	}
	if filter.ComponentID.Valid {
		query += " AND component_id = " + arg(filter.ComponentID.UUID)
	}
	if filter.ItemID.Valid {
		query += " AND installed_item_id = " + arg(filter.ItemID.UUID)
	}
	if filter.StatusCode != "" {
		query += " AND upper(status_code) = upper(" + arg(filter.StatusCode) + ")"
	}
	if filter.ActiveOnly {
		query += " AND removed_at IS NULL"
	}
	query += " ORDER BY created_at DESC;"

	rows, err := im.conn().QueryContext(ctx, query, args...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list installations")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var out []*models.Installation
	for rows.Next() {
		i, err := scanInstallation(rows)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan installation")
			return nil, dberror.ErrDatabase.Err(err)
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return out, nil
}

// ListOccupiedRackSpans returns the rack position ranges claimed by active
// installations inside a housing component, ordered by position.
func (im *inventoryManager) ListOccupiedRackSpans(ctx context.Context, componentID uuid.UUID) ([]models.RackSpan, apperrors.Error) {
	query := `
		SELECT id, rack_position, rack_unit_height
		FROM installations
		WHERE component_id = $1
			AND removed_at IS NULL
			AND rack_position IS NOT NULL
			AND rack_unit_height IS NOT NULL
		ORDER BY rack_position;
	`

	rows, err := im.conn().QueryContext(ctx, query, componentID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component_id", componentID.String()).Msg("failed to list occupied rack spans")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var out []models.RackSpan
	for rows.Next() {
		var s models.RackSpan
		if err := rows.Scan(&s.InstallationID, &s.Position, &s.Height); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan rack span")
			return nil, dberror.ErrDatabase.Err(err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return out, nil
}

// UpdateInstallation rewrites the mutable columns of an installation guarded
// by its version. Removal stamps are written as given; the caller owns the
// write-once rule for them.
func (im *inventoryManager) UpdateInstallation(ctx context.Context, i *models.Installation) apperrors.Error {
	query := `
		UPDATE installations
		SET component_id = $3, location_id = $4, status_code = $5,
			rack_position = $6, rack_unit_height = $7, position_description = $8,
			installed_at = $9, installed_by = $10, removed_at = $11, removed_by = $12,
			notes = $13, cable_management = $14,
			version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2
		RETURNING version, updated_at;
	`

	err := im.conn().QueryRowContext(ctx, query,
		i.ID, i.Version,
		i.ComponentID, i.LocationID, i.StatusCode,
		i.RackPosition, i.RackUnitHeight, i.PositionDescription,
		i.InstalledAt, i.InstalledBy, i.RemovedAt, i.RemovedBy,
		i.Notes, i.CableManagement,
	).Scan(&i.Version, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return im.versionConflict(ctx, "installations", i.ID, "installation")
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			return dberror.ErrInvalidInput.Msg("installation references a missing location, component, or catalog code")
		}
		log.Ctx(ctx).Error().Err(err).Str("id", i.ID.String()).Msg("failed to update installation")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

func (im *inventoryManager) DeleteInstallation(ctx context.Context, id uuid.UUID) apperrors.Error {
	query := `DELETE FROM installations WHERE id = $1;`

	result, err := im.conn().ExecContext(ctx, query, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("id", id.String()).Msg("failed to delete installation")
		return dberror.ErrDatabase.Err(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return dberror.ErrNotFound.Msg("installation not found")
	}
	return nil
}

// ListAutoTransitionCandidates returns active installations whose status has
// an auto-transition timer that has already elapsed.
func (im *inventoryManager) ListAutoTransitionCandidates(ctx context.Context) ([]*models.Installation, apperrors.Error) {
	query := `
		SELECT ` + installationColumns + `
		FROM installations i
		WHERE i.removed_at IS NULL
			AND EXISTS (
				SELECT 1 FROM installation_statuses s
				WHERE upper(s.code) = upper(i.status_code)
					AND s.auto_transition_minutes > 0
					AND i.updated_at < now() - make_interval(mins => s.auto_transition_minutes)
			)
		ORDER BY i.updated_at;
	`

	rows, err := im.conn().QueryContext(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list auto-transition candidates")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var out []*models.Installation
	for rows.Next() {
		i, err := scanInstallation(rows)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan installation")
			return nil, dberror.ErrDatabase.Err(err)
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return out, nil
}
