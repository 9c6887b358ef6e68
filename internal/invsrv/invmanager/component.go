package invmanager

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgtype"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/switchscope/switchscope/internal/common/apperrors"
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/component"
	"github.com/switchscope/switchscope/internal/invsrv/config"
	"github.com/switchscope/switchscope/internal/invsrv/db"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
	"github.com/switchscope/switchscope/internal/invsrv/db/postgresql"
	"github.com/switchscope/switchscope/internal/invsrv/invcommon"
	"github.com/switchscope/switchscope/internal/invsrv/policy"
)

// componentRequest is the JSON schema for component create and update.
type componentRequest struct {
	Kind                 string          `json:"kind" validate:"required"`
	Name                 string          `json:"name" validate:"required"`
	Description          string          `json:"description"`
	Manufacturer         string          `json:"manufacturer"`
	Model                string          `json:"model"`
	SerialNumber         string          `json:"serialNumber"`
	PartNumber           string          `json:"partNumber"`
	TypeCode             string          `json:"typeCode" validate:"required"`
	StatusCode           string          `json:"statusCode" validate:"required"`
	NatureCode           string          `json:"natureCode"`
	ParentID             *uuid.UUID      `json:"parentId"`
	LocationID           *uuid.UUID      `json:"locationId"`
	Attrs                json.RawMessage `json:"attrs"`
	ManagementCredential string          `json:"managementCredential"`
	PurchaseDate         *time.Time      `json:"purchaseDate"`
	WarrantyUntil        *time.Time      `json:"warrantyUntil"`
	NextMaintenance      *time.Time      `json:"nextMaintenance"`
}

// componentRsp is the JSON shape of a component over the API. The sealed
// management credential never leaves the service.
type componentRsp struct {
	ID              uuid.UUID       `json:"id"`
	Kind            string          `json:"kind"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Manufacturer    string          `json:"manufacturer,omitempty"`
	Model           string          `json:"model,omitempty"`
	SerialNumber    string          `json:"serialNumber,omitempty"`
	PartNumber      string          `json:"partNumber,omitempty"`
	TypeCode        string          `json:"typeCode"`
	StatusCode      string          `json:"statusCode"`
	NatureCode      string          `json:"natureCode,omitempty"`
	ParentID        *uuid.UUID      `json:"parentId,omitempty"`
	LocationID      *uuid.UUID      `json:"locationId,omitempty"`
	Attrs           json.RawMessage `json:"attrs,omitempty"`
	HasCredential   bool            `json:"hasCredential"`
	PurchaseDate    *time.Time      `json:"purchaseDate,omitempty"`
	WarrantyUntil   *time.Time      `json:"warrantyUntil,omitempty"`
	NextMaintenance *time.Time      `json:"nextMaintenance,omitempty"`
	Version         int64           `json:"version"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func componentToRsp(c *models.Component) *componentRsp {
	rsp := &componentRsp{
		ID:            c.ID,
		Kind:          string(c.Kind),
		Name:          c.Name,
		Description:   c.Description,
		Manufacturer:  c.Manufacturer,
		Model:         c.Model,
		SerialNumber:  c.SerialNumber,
		PartNumber:    c.PartNumber,
		TypeCode:      c.TypeCode,
		StatusCode:    c.StatusCode,
		HasCredential: len(c.ManagementSecret) > 0,
		Version:       c.Version,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.NatureCode.Valid {
		rsp.NatureCode = c.NatureCode.String
	}
	if c.ParentID.Valid {
		id := c.ParentID.UUID
		rsp.ParentID = &id
	}
	if c.LocationID.Valid {
		id := c.LocationID.UUID
		rsp.LocationID = &id
	}
	if c.Attrs.Status == pgtype.Present {
		rsp.Attrs = json.RawMessage(c.Attrs.Bytes)
	}
	if c.PurchaseDate.Valid {
		t := c.PurchaseDate.Time
		rsp.PurchaseDate = &t
	}
	if c.WarrantyUntil.Valid {
		t := c.WarrantyUntil.Time
		rsp.WarrantyUntil = &t
	}
	if c.NextMaintenance.Valid {
		t := c.NextMaintenance.Time
		rsp.NextMaintenance = &t
	}
	return rsp
}

func componentsToRsp(cs []*models.Component) []*componentRsp {
	out := make([]*componentRsp, 0, len(cs))
	for _, c := range cs {
		out = append(out, componentToRsp(c))
	}
	return out
}

// loadComponentView resolves the catalog rows a component references.
func loadComponentView(ctx context.Context, c *models.Component) (component.View, apperrors.Error) {
	m := db.DB(ctx)
	v := component.View{Row: c}

	t, err := m.GetComponentTypeByCode(ctx, c.TypeCode)
	if err != nil {
		return v, ErrUnknownCatalogEntry.Msg("unknown component type " + c.TypeCode)
	}
	if cat, err := m.GetComponentCategoryByCode(ctx, t.CategoryCode); err == nil {
		t.Category = cat
	}
	v.Type = t

	s, err := m.GetComponentStatusByCode(ctx, c.StatusCode)
	if err != nil {
		return v, ErrUnknownCatalogEntry.Msg("unknown component status " + c.StatusCode)
	}
	v.Status = s

	if c.NatureCode.Valid {
		n, err := m.GetComponentNatureByCode(ctx, c.NatureCode.String)
		if err != nil {
			return v, ErrUnknownCatalogEntry.Msg("unknown component nature " + c.NatureCode.String)
		}
		v.Nature = n
	}
	return v, nil
}

// checkParentPlacement verifies that the parent can contain the child and
// that the new edge keeps the containment tree acyclic and within depth.
func checkParentPlacement(ctx context.Context, childID uuid.UUID, child component.View, parentID uuid.UUID) apperrors.Error {
	m := db.DB(ctx)

	parent, err := m.GetComponent(ctx, parentID)
	if err != nil {
		return ErrInvalidComponent.Msg("parent component not found").Err(err)
	}
	parentView, err := loadComponentView(ctx, parent)
	if err != nil {
		return err
	}
	if !parentView.CanContain(&child) {
		return ErrContainmentNotAllowed.Msg(parent.TypeCode + " cannot contain " + child.Row.TypeCode)
	}

	ancestors, err := m.ListComponentAncestors(ctx, parentID)
	if err != nil {
		return err
	}
	if component.WouldCreateCycle(childID, parentID, ancestors) {
		return ErrHierarchyCycle
	}
	if component.ExceedsDepth(ancestors) {
		return ErrHierarchyTooDeep
	}
	return nil
}

func componentFromRequest(req *componentRequest) (*models.Component, apperrors.Error) {
	kind := models.ComponentKind(req.Kind)
	if !kind.IsValid() {
		return nil, ErrInvalidComponent.Msg("unknown component kind " + req.Kind)
	}

	c := &models.Component{
		Kind:         kind,
		Name:         req.Name,
		Description:  req.Description,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		PartNumber:   req.PartNumber,
		TypeCode:     req.TypeCode,
		StatusCode:   req.StatusCode,
	}
	if req.NatureCode != "" {
		c.NatureCode = sql.NullString{String: req.NatureCode, Valid: true}
	}
	if req.ParentID != nil {
		c.ParentID = uuid.NullFrom(*req.ParentID)
	}
	if req.LocationID != nil {
		c.LocationID = uuid.NullFrom(*req.LocationID)
	}
	if req.PurchaseDate != nil {
		c.PurchaseDate = sql.NullTime{Time: *req.PurchaseDate, Valid: true}
	}
	if req.WarrantyUntil != nil {
		c.WarrantyUntil = sql.NullTime{Time: *req.WarrantyUntil, Valid: true}
	}
	if req.NextMaintenance != nil {
		c.NextMaintenance = sql.NullTime{Time: *req.NextMaintenance, Valid: true}
	}

	if len(req.Attrs) > 0 {
		attrs := pgtype.JSONB{Bytes: req.Attrs, Status: pgtype.Present}
		if _, err := component.DecodeAttrs(attrs); err != nil {
			return nil, err
		}
		c.Attrs = attrs
	}
	return c, nil
}

// CreateComponent creates a component from a JSON request and returns the
// created row as JSON.
func CreateComponent(ctx context.Context, body []byte) ([]byte, apperrors.Error) {
	req := &componentRequest{}
	if err := parseRequest(body, req); err != nil {
		return nil, err
	}
	return createComponent(ctx, req)
}

// CreateChildComponent creates a component nested under the given parent.
// A parent in the body must match the path.
func CreateChildComponent(ctx context.Context, parentID uuid.UUID, body []byte) ([]byte, apperrors.Error) {
	req := &componentRequest{}
	if err := parseRequest(body, req); err != nil {
		return nil, err
	}
	if req.ParentID != nil && *req.ParentID != parentID {
		return nil, ErrInvalidComponent.Msg("parent in body does not match the URL")
	}
	req.ParentID = &parentID
	return createComponent(ctx, req)
}

func createComponent(ctx context.Context, req *componentRequest) ([]byte, apperrors.Error) {
	m := db.DB(ctx)

	c, err := componentFromRequest(req)
	if err != nil {
		return nil, err
	}

	view, err := loadComponentView(ctx, c)
	if err != nil {
		return nil, err
	}
	if !view.Type.Active {
		return nil, ErrUnknownCatalogEntry.Msg("component type " + c.TypeCode + " is inactive")
	}

	if c.ParentID.Valid {
		if err := checkParentPlacement(ctx, uuid.Nil, view, c.ParentID.UUID); err != nil {
			return nil, err
		}
	}
	if c.LocationID.Valid {
		if _, err := m.GetLocation(ctx, c.LocationID.UUID); err != nil {
			return nil, ErrInvalidComponent.Msg("location not found").Err(err)
		}
	}

	if req.ManagementCredential != "" {
		sealed, sealErr := invcommon.SealCredential([]byte(req.ManagementCredential), config.Config().Device.CredentialEncryptionKey)
		if sealErr != nil {
			return nil, ErrInventoryError.Msg("failed to seal management credential").Err(sealErr)
		}
		c.ManagementSecret = sealed
	}

	if err := m.CreateComponent(ctx, c); err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().Str("component", c.Name).Str("kind", string(c.Kind)).Msg("created component")
	return marshalRsp(componentToRsp(c))
}

// GetComponent returns a component by ID.
func GetComponent(ctx context.Context, id uuid.UUID) ([]byte, apperrors.Error) {
	c, err := db.DB(ctx).GetComponent(ctx, id)
	if err != nil {
		return nil, err
	}
	return marshalRsp(componentToRsp(c))
}

// ListComponents returns components matching the filter.
func ListComponents(ctx context.Context, filter postgresql.ComponentFilter) ([]byte, apperrors.Error) {
	cs, err := db.DB(ctx).ListComponents(ctx, filter)
	if err != nil {
		return nil, err
	}
	return marshalRsp(componentsToRsp(cs))
}

// ListChildComponents returns the direct children of a component.
func ListChildComponents(ctx context.Context, id uuid.UUID) ([]byte, apperrors.Error) {
	if _, err := db.DB(ctx).GetComponent(ctx, id); err != nil {
		return nil, err
	}
	cs, err := db.DB(ctx).ListChildComponents(ctx, id)
	if err != nil {
		return nil, err
	}
	return marshalRsp(componentsToRsp(cs))
}

// ComponentPath returns the slash-joined containment path of a component
// from its root to itself.
func ComponentPath(ctx context.Context, id uuid.UUID) ([]byte, apperrors.Error) {
	m := db.DB(ctx)
	c, err := m.GetComponent(ctx, id)
	if err != nil {
		return nil, err
	}
	ancestors, err := m.ListComponentAncestors(ctx, id)
	if err != nil {
		return nil, err
	}
	return marshalRsp(map[string]any{
		"id":    c.ID,
		"path":  component.Path(c, ancestors),
		"level": component.Level(ancestors),
	})
}

// UpdateComponent applies a partial update to a component. Read-only fields
// in the body are ignored; a version in the body is used as the concurrency
// guard.
func UpdateComponent(ctx context.Context, id uuid.UUID, body []byte) ([]byte, apperrors.Error) {
	if err := policy.ValidateUpdate(policy.ComponentFields, body, invcommon.IsAdmin(ctx)); err != nil {
		return nil, err
	}

	m := db.DB(ctx)
	c, err := m.GetComponent(ctx, id)
	if err != nil {
		return nil, err
	}
	priorStatus := c.StatusCode

	if err := applyComponentUpdate(c, body); err != nil {
		return nil, err
	}

	view, err := loadComponentView(ctx, c)
	if err != nil {
		return nil, err
	}

	if c.StatusCode != priorStatus {
		cur, err := db.DB(ctx).GetComponentStatusByCode(ctx, priorStatus)
		if err != nil {
			return nil, err
		}
		if !cur.CanTransitionTo(c.StatusCode) {
			return nil, ErrStatusChangeNotAllowed.Msg(priorStatus + " cannot move to " + c.StatusCode)
		}
	}

	if c.ParentID.Valid {
		if err := checkParentPlacement(ctx, c.ID, view, c.ParentID.UUID); err != nil {
			return nil, err
		}
	}
	if c.LocationID.Valid {
		if _, err := m.GetLocation(ctx, c.LocationID.UUID); err != nil {
			return nil, ErrInvalidComponent.Msg("location not found").Err(err)
		}
	}

	if v := gjson.GetBytes(body, "version"); v.Exists() && v.Type == gjson.Number {
		c.Version = v.Int()
	}

	if err := m.UpdateComponent(ctx, c); err != nil {
		return nil, err
	}
	return marshalRsp(componentToRsp(c))
}

// applyComponentUpdate merges the writable fields present in the body into
// the stored row. Explicit nulls clear the nullable references.
func applyComponentUpdate(c *models.Component, body []byte) apperrors.Error {
	req := &componentRequest{}
	if err := json.Unmarshal(body, req); err != nil {
		return ErrInvalidSchema.Err(err)
	}

	set := func(field string, apply func(gjson.Result) apperrors.Error) apperrors.Error {
		v := gjson.GetBytes(body, field)
		if !v.Exists() {
			return nil
		}
		return apply(v)
	}

	fields := []struct {
		name  string
		apply func(gjson.Result) apperrors.Error
	}{
		{"name", func(gjson.Result) apperrors.Error { c.Name = req.Name; return nil }},
		{"description", func(gjson.Result) apperrors.Error { c.Description = req.Description; return nil }},
		{"manufacturer", func(gjson.Result) apperrors.Error { c.Manufacturer = req.Manufacturer; return nil }},
		{"model", func(gjson.Result) apperrors.Error { c.Model = req.Model; return nil }},
		{"partNumber", func(gjson.Result) apperrors.Error { c.PartNumber = req.PartNumber; return nil }},
		{"typeCode", func(gjson.Result) apperrors.Error { c.TypeCode = req.TypeCode; return nil }},
		{"statusCode", func(gjson.Result) apperrors.Error { c.StatusCode = req.StatusCode; return nil }},
		{"serialNumber", func(v gjson.Result) apperrors.Error {
			c.SerialNumber = req.SerialNumber
			return nil
		}},
		{"natureCode", func(v gjson.Result) apperrors.Error {
			if v.Type == gjson.Null {
				c.NatureCode = sql.NullString{}
			} else {
				c.NatureCode = sql.NullString{String: req.NatureCode, Valid: true}
			}
			return nil
		}},
		{"parentId", func(v gjson.Result) apperrors.Error {
			if v.Type == gjson.Null {
				c.ParentID = uuid.NullUUID{}
			} else if req.ParentID != nil {
				c.ParentID = uuid.NullFrom(*req.ParentID)
			}
			return nil
		}},
		{"locationId", func(v gjson.Result) apperrors.Error {
			if v.Type == gjson.Null {
				c.LocationID = uuid.NullUUID{}
			} else if req.LocationID != nil {
				c.LocationID = uuid.NullFrom(*req.LocationID)
			}
			return nil
		}},
		{"attrs", func(v gjson.Result) apperrors.Error {
			if v.Type == gjson.Null {
				c.Attrs = pgtype.JSONB{Status: pgtype.Null}
				return nil
			}
			attrs := pgtype.JSONB{Bytes: req.Attrs, Status: pgtype.Present}
			if _, err := component.DecodeAttrs(attrs); err != nil {
				return err
			}
			c.Attrs = attrs
			return nil
		}},
		{"purchaseDate", func(v gjson.Result) apperrors.Error {
			c.PurchaseDate = nullTimeFrom(req.PurchaseDate, v)
			return nil
		}},
		{"warrantyUntil", func(v gjson.Result) apperrors.Error {
			c.WarrantyUntil = nullTimeFrom(req.WarrantyUntil, v)
			return nil
		}},
		{"nextMaintenance", func(v gjson.Result) apperrors.Error {
			c.NextMaintenance = nullTimeFrom(req.NextMaintenance, v)
			return nil
		}},
	}

	for _, f := range fields {
		if err := set(f.name, f.apply); err != nil {
			return err
		}
	}
	if c.Name == "" || c.TypeCode == "" || c.StatusCode == "" {
		return ErrInvalidSchema.Msg("name, typeCode, and statusCode are required")
	}
	return nil
}

func nullTimeFrom(t *time.Time, v gjson.Result) sql.NullTime {
	if v.Type == gjson.Null || t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// ChangeComponentStatus moves a component along its status transition graph.
func ChangeComponentStatus(ctx context.Context, id uuid.UUID, body []byte) ([]byte, apperrors.Error) {
	req := &struct {
		StatusCode string `json:"statusCode" validate:"required"`
	}{}
	if err := parseRequest(body, req); err != nil {
		return nil, err
	}

	m := db.DB(ctx)
	c, err := m.GetComponent(ctx, id)
	if err != nil {
		return nil, err
	}

	cur, err := m.GetComponentStatusByCode(ctx, c.StatusCode)
	if err != nil {
		return nil, err
	}
	next, err := m.GetComponentStatusByCode(ctx, req.StatusCode)
	if err != nil {
		return nil, ErrUnknownCatalogEntry.Msg("unknown component status " + req.StatusCode)
	}
	if !cur.CanTransitionTo(next.Code) {
		return nil, ErrStatusChangeNotAllowed.Msg(cur.Code + " cannot move to " + next.Code)
	}

	if err := m.SetComponentStatus(ctx, id, next.Code); err != nil {
		return nil, err
	}
	c.StatusCode = next.Code
	log.Ctx(ctx).Info().Str("component", c.Name).Str("status", next.Code).Msg("component status changed")
	return marshalRsp(componentToRsp(c))
}

// SetComponentCredential seals and stores the management credential for a
// component. The credential is write-only over the API.
func SetComponentCredential(ctx context.Context, id uuid.UUID, body []byte) apperrors.Error {
	req := &struct {
		Credential string `json:"credential" validate:"required"`
	}{}
	if err := parseRequest(body, req); err != nil {
		return err
	}

	m := db.DB(ctx)
	c, err := m.GetComponent(ctx, id)
	if err != nil {
		return err
	}

	view, err := loadComponentView(ctx, c)
	if err != nil {
		return err
	}
	if !view.RequiresManagement() && !view.SupportsSnmp() {
		return ErrInvalidComponent.Msg("component type is not managed")
	}

	sealed, sealErr := invcommon.SealCredential([]byte(req.Credential), config.Config().Device.CredentialEncryptionKey)
	if sealErr != nil {
		return ErrInventoryError.Msg("failed to seal management credential").Err(sealErr)
	}
	return m.UpdateComponentSecret(ctx, id, sealed)
}

// DeleteComponent removes a component. Components with children, ports, or
// active installations are rejected by the storage layer.
func DeleteComponent(ctx context.Context, id uuid.UUID) apperrors.Error {
	return db.DB(ctx).DeleteComponent(ctx, id)
}

// FirstAvailableRackPosition finds the lowest contiguous free span of the
// given height in a rack.
func FirstAvailableRackPosition(ctx context.Context, id uuid.UUID, height int) ([]byte, apperrors.Error) {
	if height < 1 {
		return nil, ErrInvalidSchema.Msg("height must be at least 1")
	}

	m := db.DB(ctx)
	c, err := m.GetComponent(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Kind != models.KindRack {
		return nil, ErrInvalidComponent.Msg("component is not a rack")
	}

	view, err := loadComponentView(ctx, c)
	if err != nil {
		return nil, err
	}
	rack, rackErr := component.NewRack(view)
	if rackErr != nil {
		var appErr apperrors.Error
		if errors.As(rackErr, &appErr) {
			return nil, appErr
		}
		return nil, ErrInvalidComponent.Err(rackErr)
	}

	spans, err := m.ListOccupiedRackSpans(ctx, id)
	if err != nil {
		return nil, err
	}
	occupied := component.OccupiedPositions(spans)

	pos, ok := rack.FirstAvailablePosition(occupied, height)
	if !ok {
		return nil, ErrNoRackCapacity
	}
	return marshalRsp(map[string]any{
		"rackId":             c.ID,
		"height":             height,
		"position":           pos,
		"unitsTotal":         rack.UnitsTotal,
		"utilizationPercent": rack.UtilizationPercent(spans),
	})
}
