package invmanager

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/switchscope/switchscope/internal/common/apperrors"
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/db"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
	"github.com/switchscope/switchscope/internal/invsrv/db/postgresql"
	"github.com/switchscope/switchscope/internal/invsrv/invcommon"
	"github.com/switchscope/switchscope/internal/invsrv/location"
	"github.com/switchscope/switchscope/internal/invsrv/policy"
)

// locationRequest is the JSON schema for location create and update.
type locationRequest struct {
	Name                  string     `json:"name" validate:"required"`
	Description           string     `json:"description"`
	TypeCode              string     `json:"typeCode" validate:"required"`
	ParentID              *uuid.UUID `json:"parentId"`
	Address               string     `json:"address"`
	Floor                 string     `json:"floor"`
	Room                  string     `json:"room"`
	Latitude              *float64   `json:"latitude"`
	Longitude             *float64   `json:"longitude"`
	MinTemperatureCelsius *float64   `json:"minTemperatureCelsius"`
	MaxTemperatureCelsius *float64   `json:"maxTemperatureCelsius"`
	MinHumidityPercent    *float64   `json:"minHumidityPercent"`
	MaxHumidityPercent    *float64   `json:"maxHumidityPercent"`
	PowerCapacityWatts    *int       `json:"powerCapacityWatts"`
	AvailableRackUnits    *int       `json:"availableRackUnits"`
	MaxChildrenCount      *int       `json:"maxChildrenCount"`
	MaxEquipmentCount     *int       `json:"maxEquipmentCount"`
	HasUps                *bool      `json:"hasUps"`
	HasGenerator          *bool      `json:"hasGenerator"`
}

type locationRsp struct {
	ID                    uuid.UUID  `json:"id"`
	Name                  string     `json:"name"`
	Description           string     `json:"description,omitempty"`
	TypeCode              string     `json:"typeCode"`
	ParentID              *uuid.UUID `json:"parentId,omitempty"`
	Address               string     `json:"address,omitempty"`
	Floor                 string     `json:"floor,omitempty"`
	Room                  string     `json:"room,omitempty"`
	Latitude              *float64   `json:"latitude,omitempty"`
	Longitude             *float64   `json:"longitude,omitempty"`
	MinTemperatureCelsius *float64   `json:"minTemperatureCelsius,omitempty"`
	MaxTemperatureCelsius *float64   `json:"maxTemperatureCelsius,omitempty"`
	MinHumidityPercent    *float64   `json:"minHumidityPercent,omitempty"`
	MaxHumidityPercent    *float64   `json:"maxHumidityPercent,omitempty"`
	PowerCapacityWatts    *int       `json:"powerCapacityWatts,omitempty"`
	AvailableRackUnits    *int       `json:"availableRackUnits,omitempty"`
	MaxChildrenCount      *int       `json:"maxChildrenCount,omitempty"`
	MaxEquipmentCount     *int       `json:"maxEquipmentCount,omitempty"`
	HasUps                bool       `json:"hasUps"`
	HasGenerator          bool       `json:"hasGenerator"`
	Version               int64      `json:"version"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

func nullFloatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullIntPtr(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int32)
	return &n
}

func locationToRsp(l *models.Location) *locationRsp {
	rsp := &locationRsp{
		ID:                    l.ID,
		Name:                  l.Name,
		Description:           l.Description,
		TypeCode:              l.TypeCode,
		Address:               l.Address,
		Floor:                 l.Floor,
		Room:                  l.Room,
		Latitude:              nullFloatPtr(l.Latitude),
		Longitude:             nullFloatPtr(l.Longitude),
		MinTemperatureCelsius: nullFloatPtr(l.MinTemperatureCelsius),
		MaxTemperatureCelsius: nullFloatPtr(l.MaxTemperatureCelsius),
		MinHumidityPercent:    nullFloatPtr(l.MinHumidityPercent),
		MaxHumidityPercent:    nullFloatPtr(l.MaxHumidityPercent),
		PowerCapacityWatts:    nullIntPtr(l.PowerCapacityWatts),
		AvailableRackUnits:    nullIntPtr(l.AvailableRackUnits),
		MaxChildrenCount:      nullIntPtr(l.MaxChildrenCount),
		MaxEquipmentCount:     nullIntPtr(l.MaxEquipmentCount),
		HasUps:                l.HasUps,
		HasGenerator:          l.HasGenerator,
		Version:               l.Version,
		CreatedAt:             l.CreatedAt,
		UpdatedAt:             l.UpdatedAt,
	}
	if l.ParentID.Valid {
		id := l.ParentID.UUID
		rsp.ParentID = &id
	}
	return rsp
}

func locationsToRsp(ls []*models.Location) []*locationRsp {
	out := make([]*locationRsp, 0, len(ls))
	for _, l := range ls {
		out = append(out, locationToRsp(l))
	}
	return out
}

// checkLocationPlacement runs the type, parent, and environment checks
// shared by create and update.
func checkLocationPlacement(ctx context.Context, l *models.Location) apperrors.Error {
	m := db.DB(ctx)

	locType, err := m.GetLocationTypeByCode(ctx, l.TypeCode)
	if err != nil {
		return ErrUnknownCatalogEntry.Msg("unknown location type " + l.TypeCode)
	}
	if !locType.Active {
		return ErrUnknownCatalogEntry.Msg("location type " + l.TypeCode + " is inactive")
	}

	if location.RequiresAddress(l, locType) && l.Address == "" {
		return ErrInvalidLocation.Msg("location type " + locType.Code + " requires an address")
	}
	if err := location.ValidateEnvironment(l); err != nil {
		return err
	}

	if !l.ParentID.Valid {
		return nil
	}

	parent, err := m.GetLocation(ctx, l.ParentID.UUID)
	if err != nil {
		return ErrInvalidLocation.Msg("parent location not found").Err(err)
	}
	parentType, err := m.GetLocationTypeByCode(ctx, parent.TypeCode)
	if err != nil {
		return err
	}
	childCount, err := m.CountChildLocations(ctx, parent.ID)
	if err != nil {
		return err
	}
	if !location.CanAcceptChild(parent, parentType, locType, childCount) {
		return ErrInvalidLocation.Msg(parent.TypeCode + " cannot accept a " + l.TypeCode + " child")
	}

	ancestors, err := m.ListLocationAncestors(ctx, parent.ID)
	if err != nil {
		return err
	}
	if location.WouldCreateCycle(l.ID, parent.ID, ancestors) {
		return ErrHierarchyCycle
	}
	if location.ExceedsDepth(ancestors) {
		return ErrHierarchyTooDeep
	}
	return nil
}

func locationFromRequest(req *locationRequest) *models.Location {
	l := &models.Location{
		Name:        req.Name,
		Description: req.Description,
		TypeCode:    req.TypeCode,
		Address:     req.Address,
		Floor:       req.Floor,
		Room:        req.Room,
	}
	if req.ParentID != nil {
		l.ParentID = uuid.NullFrom(*req.ParentID)
	}
	setNullFloat := func(dst *sql.NullFloat64, src *float64) {
		if src != nil {
			*dst = sql.NullFloat64{Float64: *src, Valid: true}
		}
	}
	setNullInt := func(dst *sql.NullInt32, src *int) {
		if src != nil {
			*dst = sql.NullInt32{Int32: int32(*src), Valid: true}
		}
	}
	setNullFloat(&l.Latitude, req.Latitude)
	setNullFloat(&l.Longitude, req.Longitude)
	setNullFloat(&l.MinTemperatureCelsius, req.MinTemperatureCelsius)
	setNullFloat(&l.MaxTemperatureCelsius, req.MaxTemperatureCelsius)
	setNullFloat(&l.MinHumidityPercent, req.MinHumidityPercent)
	setNullFloat(&l.MaxHumidityPercent, req.MaxHumidityPercent)
	setNullInt(&l.PowerCapacityWatts, req.PowerCapacityWatts)
	setNullInt(&l.AvailableRackUnits, req.AvailableRackUnits)
	setNullInt(&l.MaxChildrenCount, req.MaxChildrenCount)
	setNullInt(&l.MaxEquipmentCount, req.MaxEquipmentCount)
	if req.HasUps != nil {
		l.HasUps = *req.HasUps
	}
	if req.HasGenerator != nil {
		l.HasGenerator = *req.HasGenerator
	}
	return l
}

// CreateLocation creates a location from a JSON request and returns the
// created row as JSON.
func CreateLocation(ctx context.Context, body []byte) ([]byte, apperrors.Error) {
	req := &locationRequest{}
	if err := parseRequest(body, req); err != nil {
		return nil, err
	}

	l := locationFromRequest(req)
	if err := checkLocationPlacement(ctx, l); err != nil {
		return nil, err
	}

	if err := db.DB(ctx).CreateLocation(ctx, l); err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().Str("location", l.Name).Str("type", l.TypeCode).Msg("created location")
	return marshalRsp(locationToRsp(l))
}

// GetLocation returns a location by ID.
func GetLocation(ctx context.Context, id uuid.UUID) ([]byte, apperrors.Error) {
	l, err := db.DB(ctx).GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	return marshalRsp(locationToRsp(l))
}

// ListLocations returns locations matching the filter.
func ListLocations(ctx context.Context, filter postgresql.LocationFilter) ([]byte, apperrors.Error) {
	ls, err := db.DB(ctx).ListLocations(ctx, filter)
	if err != nil {
		return nil, err
	}
	return marshalRsp(locationsToRsp(ls))
}

// LocationPath returns the slash-joined path of a location from its root to
// itself.
func LocationPath(ctx context.Context, id uuid.UUID) ([]byte, apperrors.Error) {
	m := db.DB(ctx)
	l, err := m.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	ancestors, err := m.ListLocationAncestors(ctx, id)
	if err != nil {
		return nil, err
	}
	return marshalRsp(map[string]any{
		"id":    l.ID,
		"path":  location.Path(l, ancestors),
		"level": location.Level(ancestors),
	})
}

// UpdateLocation applies a partial update to a location. Read-only fields in
// the body are ignored; a version in the body is used as the concurrency
// guard.
func UpdateLocation(ctx context.Context, id uuid.UUID, body []byte) ([]byte, apperrors.Error) {
	if err := policy.ValidateUpdate(policy.LocationFields, body, invcommon.IsAdmin(ctx)); err != nil {
		return nil, err
	}

	m := db.DB(ctx)
	l, err := m.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}

	req := &locationRequest{}
	if jsonErr := gjsonUnmarshal(body, req); jsonErr != nil {
		return nil, jsonErr
	}

	if gjson.GetBytes(body, "name").Exists() {
		l.Name = req.Name
	}
	if gjson.GetBytes(body, "description").Exists() {
		l.Description = req.Description
	}
	if gjson.GetBytes(body, "typeCode").Exists() {
		l.TypeCode = req.TypeCode
	}
	if v := gjson.GetBytes(body, "parentId"); v.Exists() {
		if v.Type == gjson.Null {
			l.ParentID = uuid.NullUUID{}
		} else if req.ParentID != nil {
			l.ParentID = uuid.NullFrom(*req.ParentID)
		}
	}
	if gjson.GetBytes(body, "address").Exists() {
		l.Address = req.Address
	}
	if gjson.GetBytes(body, "floor").Exists() {
		l.Floor = req.Floor
	}
	if gjson.GetBytes(body, "room").Exists() {
		l.Room = req.Room
	}

	applyNullFloat := func(field string, dst *sql.NullFloat64, src *float64) {
		v := gjson.GetBytes(body, field)
		if !v.Exists() {
			return
		}
		if v.Type == gjson.Null || src == nil {
			*dst = sql.NullFloat64{}
		} else {
			*dst = sql.NullFloat64{Float64: *src, Valid: true}
		}
	}
	applyNullInt := func(field string, dst *sql.NullInt32, src *int) {
		v := gjson.GetBytes(body, field)
		if !v.Exists() {
			return
		}
		if v.Type == gjson.Null || src == nil {
			*dst = sql.NullInt32{}
		} else {
			*dst = sql.NullInt32{Int32: int32(*src), Valid: true}
		}
	}
	applyNullFloat("latitude", &l.Latitude, req.Latitude)
	applyNullFloat("longitude", &l.Longitude, req.Longitude)
	applyNullFloat("minTemperatureCelsius", &l.MinTemperatureCelsius, req.MinTemperatureCelsius)
	applyNullFloat("maxTemperatureCelsius", &l.MaxTemperatureCelsius, req.MaxTemperatureCelsius)
	applyNullFloat("minHumidityPercent", &l.MinHumidityPercent, req.MinHumidityPercent)
	applyNullFloat("maxHumidityPercent", &l.MaxHumidityPercent, req.MaxHumidityPercent)
	applyNullInt("powerCapacityWatts", &l.PowerCapacityWatts, req.PowerCapacityWatts)
	applyNullInt("availableRackUnits", &l.AvailableRackUnits, req.AvailableRackUnits)
	applyNullInt("maxChildrenCount", &l.MaxChildrenCount, req.MaxChildrenCount)
	applyNullInt("maxEquipmentCount", &l.MaxEquipmentCount, req.MaxEquipmentCount)
	if req.HasUps != nil && gjson.GetBytes(body, "hasUps").Exists() {
		l.HasUps = *req.HasUps
	}
	if req.HasGenerator != nil && gjson.GetBytes(body, "hasGenerator").Exists() {
		l.HasGenerator = *req.HasGenerator
	}

	if l.Name == "" || l.TypeCode == "" {
		return nil, ErrInvalidSchema.Msg("name and typeCode are required")
	}
	if err := checkLocationPlacement(ctx, l); err != nil {
		return nil, err
	}

	if v := gjson.GetBytes(body, "version"); v.Exists() && v.Type == gjson.Number {
		l.Version = v.Int()
	}
	if err := m.UpdateLocation(ctx, l); err != nil {
		return nil, err
	}
	return marshalRsp(locationToRsp(l))
}

// DeleteLocation removes a location. Locations with children, components, or
// installations are rejected by the storage layer.
func DeleteLocation(ctx context.Context, id uuid.UUID) apperrors.Error {
	return db.DB(ctx).DeleteLocation(ctx, id)
}
