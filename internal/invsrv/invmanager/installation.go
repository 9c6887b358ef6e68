package invmanager

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/switchscope/switchscope/internal/common/apperrors"
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/catalog"
	"github.com/switchscope/switchscope/internal/invsrv/component"
	"github.com/switchscope/switchscope/internal/invsrv/db"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
	"github.com/switchscope/switchscope/internal/invsrv/db/postgresql"
	"github.com/switchscope/switchscope/internal/invsrv/installation"
	"github.com/switchscope/switchscope/internal/invsrv/invcommon"
	"github.com/switchscope/switchscope/internal/invsrv/policy"
)

// installationRequest is the JSON schema for installation create and update.
// Status and removal stamps are owned by the service and travel through the
// status change operation instead.
type installationRequest struct {
	ComponentID         *uuid.UUID `json:"componentId"`
	LocationID          *uuid.UUID `json:"locationId" validate:"required"`
	InstalledItemType   string     `json:"installedItemType" validate:"required"`
	InstalledItemID     *uuid.UUID `json:"installedItemId" validate:"required"`
	RackPosition        *int       `json:"rackPosition"`
	RackUnitHeight      *int       `json:"rackUnitHeight"`
	PositionDescription string     `json:"positionDescription"`
	InstalledAt         *time.Time `json:"installedAt"`
	InstalledBy         string     `json:"installedBy"`
	Notes               string     `json:"notes"`
	CableManagement     string     `json:"cableManagement"`
}

type installationRsp struct {
	ID                  uuid.UUID  `json:"id"`
	ComponentID         *uuid.UUID `json:"componentId,omitempty"`
	LocationID          uuid.UUID  `json:"locationId"`
	InstalledItemType   string     `json:"installedItemType"`
	InstalledItemID     uuid.UUID  `json:"installedItemId"`
	StatusCode          string     `json:"statusCode"`
	RackPosition        *int       `json:"rackPosition,omitempty"`
	RackUnitHeight      *int       `json:"rackUnitHeight,omitempty"`
	PositionDescription string     `json:"positionDescription,omitempty"`
	InstalledAt         *time.Time `json:"installedAt,omitempty"`
	InstalledBy         string     `json:"installedBy,omitempty"`
	RemovedAt           *time.Time `json:"removedAt,omitempty"`
	RemovedBy           string     `json:"removedBy,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	CableManagement     string     `json:"cableManagement,omitempty"`
	Active              bool       `json:"active"`
	Version             int64      `json:"version"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func installationToRsp(i *models.Installation) *installationRsp {
	rsp := &installationRsp{
		ID:                  i.ID,
		LocationID:          i.LocationID,
		InstalledItemType:   i.InstalledItemType,
		InstalledItemID:     i.InstalledItemID,
		StatusCode:          i.StatusCode,
		PositionDescription: i.PositionDescription,
		Notes:               i.Notes,
		CableManagement:     i.CableManagement,
		Active:              i.IsActive(),
		Version:             i.Version,
		CreatedAt:           i.CreatedAt,
		UpdatedAt:           i.UpdatedAt,
	}
	if i.ComponentID.Valid {
		id := i.ComponentID.UUID
		rsp.ComponentID = &id
	}
	if i.RackPosition.Valid {
		p := int(i.RackPosition.Int32)
		rsp.RackPosition = &p
	}
	if i.RackUnitHeight.Valid {
		h := int(i.RackUnitHeight.Int32)
		rsp.RackUnitHeight = &h
	}
	if i.InstalledAt.Valid {
		t := i.InstalledAt.Time
		rsp.InstalledAt = &t
	}
	if i.InstalledBy.Valid {
		rsp.InstalledBy = i.InstalledBy.String
	}
	if i.RemovedAt.Valid {
		t := i.RemovedAt.Time
		rsp.RemovedAt = &t
	}
	if i.RemovedBy.Valid {
		rsp.RemovedBy = i.RemovedBy.String
	}
	return rsp
}

func installationsToRsp(is []*models.Installation) []*installationRsp {
	out := make([]*installationRsp, 0, len(is))
	for _, i := range is {
		out = append(out, installationToRsp(i))
	}
	return out
}

// checkInstallationPlacement runs the location, item, and rack checks shared
// by create and update.
func checkInstallationPlacement(ctx context.Context, inst *models.Installation, itemType *catalog.InstallableType) apperrors.Error {
	m := db.DB(ctx)

	loc, err := m.GetLocation(ctx, inst.LocationID)
	if err != nil {
		return ErrInvalidInstallation.Msg("location not found").Err(err)
	}
	locType, err := m.GetLocationTypeByCode(ctx, loc.TypeCode)
	if err != nil {
		return err
	}
	count, err := m.CountEquipmentAtLocation(ctx, inst.LocationID)
	if err != nil {
		return err
	}
	if err := installation.ValidateLocationPlacement(loc, locType, count); err != nil {
		return err
	}

	item, err := m.GetComponent(ctx, inst.InstalledItemID)
	if err != nil {
		return ErrInvalidInstallation.Msg("installed item not found").Err(err)
	}
	itemView, err := loadComponentView(ctx, item)
	if err != nil {
		return err
	}
	if !itemView.IsInstallable() {
		return ErrInvalidInstallation.Msg("component type " + item.TypeCode + " is not installable")
	}

	if itemType.RequiresRackPosition && !inst.OccupiesRackSpace() {
		return ErrInvalidInstallation.Msg(itemType.Code + " requires a rack position")
	}

	if !inst.ComponentID.Valid {
		if inst.OccupiesRackSpace() {
			return ErrInvalidInstallation.Msg("a rack position needs a housing rack")
		}
		return nil
	}

	housing, err := m.GetComponent(ctx, inst.ComponentID.UUID)
	if err != nil {
		return ErrInvalidInstallation.Msg("housing component not found").Err(err)
	}
	housingView, err := loadComponentView(ctx, housing)
	if err != nil {
		return err
	}
	if !housingView.CanAcceptInstallations() {
		return ErrInvalidInstallation.Msg("housing component does not accept installations")
	}

	if !inst.OccupiesRackSpace() {
		return nil
	}
	if housing.Kind != models.KindRack {
		return ErrInvalidInstallation.Msg("rack positions need a rack housing")
	}
	rack, rackErr := component.NewRack(housingView)
	if rackErr != nil {
		return ErrInvalidInstallation.Err(rackErr)
	}
	spans, err := m.ListOccupiedRackSpans(ctx, housing.ID)
	if err != nil {
		return err
	}
	// On update, the installation's own stored span must not block itself.
	// Spans held by other installations always count.
	occupied := component.OccupiedPositionsExcluding(spans, inst.ID)
	return installation.ValidateRackPlacement(inst, rack, occupied)
}

// CreateInstallation records a new installation. New installations start in
// the planning status unless the request names another valid entry point.
func CreateInstallation(ctx context.Context, body []byte) ([]byte, apperrors.Error) {
	req := &installationRequest{}
	if err := parseRequest(body, req); err != nil {
		return nil, err
	}

	m := db.DB(ctx)
	itemType, err := m.GetInstallableTypeByCode(ctx, req.InstalledItemType)
	if err != nil {
		return nil, ErrUnknownCatalogEntry.Msg("unknown installable type " + req.InstalledItemType)
	}

	statusCode := catalog.InstallationStatusPlanned
	if v := gjson.GetBytes(body, "statusCode"); v.Exists() && v.Type == gjson.String {
		statusCode = v.String()
	}
	if _, err := m.GetInstallationStatusByCode(ctx, statusCode); err != nil {
		return nil, ErrUnknownCatalogEntry.Msg("unknown installation status " + statusCode)
	}

	inst := &models.Installation{
		LocationID:          *req.LocationID,
		InstalledItemType:   itemType.Code,
		InstalledItemID:     *req.InstalledItemID,
		StatusCode:          statusCode,
		PositionDescription: req.PositionDescription,
		Notes:               req.Notes,
		CableManagement:     req.CableManagement,
	}
	if req.ComponentID != nil {
		inst.ComponentID = uuid.NullFrom(*req.ComponentID)
	}
	if req.RackPosition != nil {
		inst.RackPosition = sql.NullInt32{Int32: int32(*req.RackPosition), Valid: true}
	}
	if req.RackUnitHeight != nil {
		inst.RackUnitHeight = sql.NullInt32{Int32: int32(*req.RackUnitHeight), Valid: true}
	} else if req.RackPosition != nil {
		inst.RackUnitHeight = sql.NullInt32{Int32: int32(itemType.RackUnitsOrDefault()), Valid: true}
	}
	if req.InstalledAt != nil {
		inst.InstalledAt = sql.NullTime{Time: *req.InstalledAt, Valid: true}
	}
	if req.InstalledBy != "" {
		inst.InstalledBy = sql.NullString{String: req.InstalledBy, Valid: true}
	}

	if err := checkInstallationPlacement(ctx, inst, itemType); err != nil {
		return nil, err
	}

	if err := m.CreateInstallation(ctx, inst); err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().Str("installation", inst.ID.String()).Str("status", inst.StatusCode).Msg("created installation")
	return marshalRsp(installationToRsp(inst))
}

// GetInstallation returns an installation by ID.
func GetInstallation(ctx context.Context, id uuid.UUID) ([]byte, apperrors.Error) {
	i, err := db.DB(ctx).GetInstallation(ctx, id)
	if err != nil {
		return nil, err
	}
	return marshalRsp(installationToRsp(i))
}

// ListInstallations returns installations matching the filter.
func ListInstallations(ctx context.Context, filter postgresql.InstallationFilter) ([]byte, apperrors.Error) {
	is, err := db.DB(ctx).ListInstallations(ctx, filter)
	if err != nil {
		return nil, err
	}
	return marshalRsp(installationsToRsp(is))
}

// UpdateInstallation applies a partial update to an installation. Status and
// removal stamps in the body are ignored; ChangeInstallationStatus owns them.
func UpdateInstallation(ctx context.Context, id uuid.UUID, body []byte) ([]byte, apperrors.Error) {
	if err := policy.ValidateUpdate(policy.InstallationFields, body, invcommon.IsAdmin(ctx)); err != nil {
		return nil, err
	}

	m := db.DB(ctx)
	inst, err := m.GetInstallation(ctx, id)
	if err != nil {
		return nil, err
	}

	req := &installationRequest{}
	if jsonErr := gjsonUnmarshal(body, req); jsonErr != nil {
		return nil, jsonErr
	}

	if v := gjson.GetBytes(body, "locationId"); v.Exists() && req.LocationID != nil {
		inst.LocationID = *req.LocationID
	}
	if v := gjson.GetBytes(body, "componentId"); v.Exists() {
		if v.Type == gjson.Null {
			inst.ComponentID = uuid.NullUUID{}
		} else if req.ComponentID != nil {
			inst.ComponentID = uuid.NullFrom(*req.ComponentID)
		}
	}
	if v := gjson.GetBytes(body, "rackPosition"); v.Exists() {
		if v.Type == gjson.Null {
			inst.RackPosition = sql.NullInt32{}
		} else if req.RackPosition != nil {
			inst.RackPosition = sql.NullInt32{Int32: int32(*req.RackPosition), Valid: true}
		}
	}
	if v := gjson.GetBytes(body, "rackUnitHeight"); v.Exists() {
		if v.Type == gjson.Null {
			inst.RackUnitHeight = sql.NullInt32{}
		} else if req.RackUnitHeight != nil {
			inst.RackUnitHeight = sql.NullInt32{Int32: int32(*req.RackUnitHeight), Valid: true}
		}
	}
	if gjson.GetBytes(body, "positionDescription").Exists() {
		inst.PositionDescription = req.PositionDescription
	}
	if v := gjson.GetBytes(body, "installedAt"); v.Exists() {
		inst.InstalledAt = nullTimeFrom(req.InstalledAt, v)
	}
	if v := gjson.GetBytes(body, "installedBy"); v.Exists() {
		if v.Type == gjson.Null || req.InstalledBy == "" {
			inst.InstalledBy = sql.NullString{}
		} else {
			inst.InstalledBy = sql.NullString{String: req.InstalledBy, Valid: true}
		}
	}
	if gjson.GetBytes(body, "notes").Exists() {
		inst.Notes = req.Notes
	}
	if gjson.GetBytes(body, "cableManagement").Exists() {
		inst.CableManagement = req.CableManagement
	}

	itemType, err := m.GetInstallableTypeByCode(ctx, inst.InstalledItemType)
	if err != nil {
		return nil, err
	}
	if err := checkInstallationPlacement(ctx, inst, itemType); err != nil {
		return nil, err
	}

	if v := gjson.GetBytes(body, "version"); v.Exists() && v.Type == gjson.Number {
		inst.Version = v.Int()
	}
	if err := m.UpdateInstallation(ctx, inst); err != nil {
		return nil, err
	}
	return marshalRsp(installationToRsp(inst))
}

// ChangeInstallationStatus moves an installation along its status graph.
// Entering a terminal or error status stamps the removal fields once.
func ChangeInstallationStatus(ctx context.Context, id uuid.UUID, body []byte) ([]byte, apperrors.Error) {
	req := &struct {
		StatusCode string `json:"statusCode" validate:"required"`
	}{}
	if err := parseRequest(body, req); err != nil {
		return nil, err
	}

	m := db.DB(ctx)
	inst, err := m.GetInstallation(ctx, id)
	if err != nil {
		return nil, err
	}

	cur, err := m.GetInstallationStatusByCode(ctx, inst.StatusCode)
	if err != nil {
		return nil, err
	}
	next, err := m.GetInstallationStatusByCode(ctx, req.StatusCode)
	if err != nil {
		return nil, ErrUnknownCatalogEntry.Msg("unknown installation status " + req.StatusCode)
	}

	who := ""
	if u := invcommon.GetUserContext(ctx); u != nil {
		who = u.UserID
	}
	if err := installation.ChangeStatus(inst, cur, next, who, time.Now()); err != nil {
		return nil, err
	}

	if err := m.UpdateInstallation(ctx, inst); err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().Str("installation", inst.ID.String()).Str("status", inst.StatusCode).Msg("installation status changed")
	return marshalRsp(installationToRsp(inst))
}

// DeleteInstallation removes an installation record entirely. Ordinary
// removals should move it to a terminal status instead.
func DeleteInstallation(ctx context.Context, id uuid.UUID) apperrors.Error {
	return db.DB(ctx).DeleteInstallation(ctx, id)
}

// RunAutoTransitionSweep advances overdue installations whose status carries
// an auto-transition deadline. The target is the first non-error successor
// in the status graph. Returns the number of installations moved.
func RunAutoTransitionSweep(ctx context.Context) (int, apperrors.Error) {
	m := db.DB(ctx)
	candidates, err := m.ListAutoTransitionCandidates(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	moved := 0
	for _, inst := range candidates {
		cur, err := m.GetInstallationStatusByCode(ctx, inst.StatusCode)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("status", inst.StatusCode).Msg("skipping auto transition candidate")
			continue
		}
		if !installation.ShouldAutoTransition(inst, cur, now) {
			continue
		}

		var next *catalog.InstallationStatus
		for _, code := range cur.NextStatusCodes {
			s, err := m.GetInstallationStatusByCode(ctx, code)
			if err != nil || s.ErrorStatus {
				continue
			}
			next = s
			break
		}
		if next == nil {
			continue
		}

		if err := installation.ChangeStatus(inst, cur, next, "auto-transition", now); err != nil {
			continue
		}
		if err := m.UpdateInstallation(ctx, inst); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("installation", inst.ID.String()).Msg("auto transition update failed")
			continue
		}
		moved++
	}
	if moved > 0 {
		log.Ctx(ctx).Info().Int("moved", moved).Msg("auto transition sweep complete")
	}
	return moved, nil
}

func gjsonUnmarshal(body []byte, v any) apperrors.Error {
	if !gjson.ValidBytes(body) {
		return ErrInvalidSchema.Msg("request body is not valid JSON")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return ErrInvalidSchema.Err(err)
	}
	return nil
}
