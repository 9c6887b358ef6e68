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

const portColumns = `
	id, component_id, kind, port_number, label, admin_enabled, link_up,
	speed_mbps, max_speed_mbps, full_duplex, auto_negotiation, poe_enabled,
	cable_length_meters, fiber_type, wavelength_nm, tx_power_dbm, rx_power_dbm,
	optical_loss_db, connector_type, version, created_at, updated_at
`

func scanPort(row rowScanner) (*models.Port, error) {
	p := &models.Port{}
	err := row.Scan(
		&p.ID, &p.ComponentID, &p.Kind, &p.PortNumber, &p.Label,
		&p.AdminEnabled, &p.LinkUp,
		&p.SpeedMbps, &p.MaxSpeedMbps, &p.FullDuplex, &p.AutoNegotiation, &p.PoeEnabled,
		&p.CableLengthMeters, &p.FiberType, &p.WavelengthNm, &p.TxPowerDbm, &p.RxPowerDbm,
		&p.OpticalLossDb, &p.ConnectorType, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// CreatePort inserts a new port. A duplicate port number on the same
// component returns ErrAlreadyExists; a missing component returns
// ErrInvalidInput.
func (im *inventoryManager) CreatePort(ctx context.Context, p *models.Port) apperrors.Error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.Version = 1

	query := `
		INSERT INTO ports (
			id, component_id, kind, port_number, label, admin_enabled, link_up,
			speed_mbps, max_speed_mbps, full_duplex, auto_negotiation, poe_enabled,
			cable_length_meters, fiber_type, wavelength_nm, tx_power_dbm, rx_power_dbm,
			optical_loss_db, connector_type, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING created_at, updated_at;
	`

	err := im.conn().QueryRowContext(ctx, query,
		p.ID, p.ComponentID, p.Kind, p.PortNumber, p.Label, p.AdminEnabled, p.LinkUp,
		p.SpeedMbps, p.MaxSpeedMbps, p.FullDuplex, p.AutoNegotiation, p.PoeEnabled,
		p.CableLengthMeters, p.FiberType, p.WavelengthNm, p.TxPowerDbm, p.RxPowerDbm,
		p.OpticalLossDb, p.ConnectorType, p.Version,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrUniqueViolation:
				return dberror.ErrAlreadyExists.Msg("port number already in use on this component")
			case pgErrForeignKeyViolation:
				return dberror.ErrInvalidInput.Msg("port references a missing component")
			}
		}
		log.Ctx(ctx).Error().Err(err).Int("port_number", p.PortNumber).Msg("failed to insert port")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

func (im *inventoryManager) GetPort(ctx context.Context, id uuid.UUID) (*models.Port, apperrors.Error) {
	query := `SELECT ` + portColumns + ` FROM ports WHERE id = $1;`

	p, err := scanPort(im.conn().QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, dberrorFromScan(ctx, err, "port not found")
	}
	return p, nil
}

// ListPortsByComponent returns the ports of a component ordered by port
// number.
func (im *inventoryManager) ListPortsByComponent(ctx context.Context, componentID uuid.UUID) ([]*models.Port, apperrors.Error) {
	query := `
		SELECT ` + portColumns + `
		FROM ports
		WHERE component_id = $1
		ORDER BY port_number;
	`

	rows, err := im.conn().QueryContext(ctx, query, componentID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component_id", componentID.String()).Msg("failed to list ports")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var out []*models.Port
	for rows.Next() {
		p, err := scanPort(rows)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan port")
			return nil, dberror.ErrDatabase.Err(err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return out, nil
}

// UpdatePort rewrites the mutable columns of a port guarded by its version.
func (im *inventoryManager) UpdatePort(ctx context.Context, p *models.Port) apperrors.Error {
	query := `
		UPDATE ports
		SET label = $3, admin_enabled = $4, link_up = $5,
			speed_mbps = $6, max_speed_mbps = $7, full_duplex = $8,
			auto_negotiation = $9, poe_enabled = $10,
			cable_length_meters = $11, fiber_type = $12, wavelength_nm = $13,
			tx_power_dbm = $14, rx_power_dbm = $15, optical_loss_db = $16,
			connector_type = $17,
			version = version + 1, updated_at = now()
		WHERE id = $1 AND version = $2
		RETURNING version, updated_at;
	`

	err := im.conn().QueryRowContext(ctx, query,
		p.ID, p.Version,
		p.Label, p.AdminEnabled, p.LinkUp,
		p.SpeedMbps, p.MaxSpeedMbps, p.FullDuplex, p.AutoNegotiation, p.PoeEnabled,
		p.CableLengthMeters, p.FiberType, p.WavelengthNm,
		p.TxPowerDbm, p.RxPowerDbm, p.OpticalLossDb,
		p.ConnectorType,
	).Scan(&p.Version, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return im.versionConflict(ctx, "ports", p.ID, "port")
		}
		log.Ctx(ctx).Error().Err(err).Str("id", p.ID.String()).Msg("failed to update port")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

func (im *inventoryManager) DeletePort(ctx context.Context, id uuid.UUID) apperrors.Error {
	query := `DELETE FROM ports WHERE id = $1;`

	result, err := im.conn().ExecContext(ctx, query, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("id", id.String()).Msg("failed to delete port")
		return dberror.ErrDatabase.Err(err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return dberror.ErrNotFound.Msg("port not found")
	}
	return nil
}
