package invmanager

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/switchscope/switchscope/internal/common/apperrors"
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/component"
	"github.com/switchscope/switchscope/internal/invsrv/db"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
	"github.com/switchscope/switchscope/internal/invsrv/invcommon"
	"github.com/switchscope/switchscope/internal/invsrv/policy"
	"github.com/switchscope/switchscope/pkg/types"
)

// portRequest is the JSON schema for port create and update.
type portRequest struct {
	Kind              string   `json:"kind" validate:"required"`
	PortNumber        *int     `json:"portNumber" validate:"required"`
	Label             string   `json:"label"`
	AdminEnabled      *bool    `json:"adminEnabled"`
	LinkUp            *bool    `json:"linkUp"`
	SpeedMbps         *int     `json:"speedMbps"`
	MaxSpeedMbps      *int     `json:"maxSpeedMbps"`
	FullDuplex        *bool    `json:"fullDuplex"`
	AutoNegotiation   *bool    `json:"autoNegotiation"`
	PoeEnabled        *bool    `json:"poeEnabled"`
	CableLengthMeters *float64 `json:"cableLengthMeters"`
	FiberType         string   `json:"fiberType"`
	WavelengthNm      *int     `json:"wavelengthNm"`
	TxPowerDbm        *float64 `json:"txPowerDbm"`
	RxPowerDbm        *float64 `json:"rxPowerDbm"`
	OpticalLossDb     *float64 `json:"opticalLossDb"`
	ConnectorType     string   `json:"connectorType" validate:"required"`
}

type portRsp struct {
	ID                uuid.UUID `json:"id"`
	ComponentID       uuid.UUID `json:"componentId"`
	Kind              string    `json:"kind"`
	PortNumber        int       `json:"portNumber"`
	Label             string    `json:"label,omitempty"`
	AdminEnabled      bool      `json:"adminEnabled"`
	LinkUp            bool      `json:"linkUp"`
	SpeedMbps         *int      `json:"speedMbps,omitempty"`
	MaxSpeedMbps      *int      `json:"maxSpeedMbps,omitempty"`
	FullDuplex        *bool     `json:"fullDuplex,omitempty"`
	AutoNegotiation   *bool     `json:"autoNegotiation,omitempty"`
	PoeEnabled        *bool     `json:"poeEnabled,omitempty"`
	CableLengthMeters *float64  `json:"cableLengthMeters,omitempty"`
	FiberType         string    `json:"fiberType,omitempty"`
	WavelengthNm      *int      `json:"wavelengthNm,omitempty"`
	TxPowerDbm        *float64  `json:"txPowerDbm,omitempty"`
	RxPowerDbm        *float64  `json:"rxPowerDbm,omitempty"`
	OpticalLossDb     *float64  `json:"opticalLossDb,omitempty"`
	ConnectorType     string    `json:"connectorType"`
	LinkQuality       string    `json:"linkQuality,omitempty"`
	Version           int64     `json:"version"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func nullBoolPtr(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Bool
	return &b
}

func portToRsp(p *models.Port) *portRsp {
	rsp := &portRsp{
		ID:                p.ID,
		ComponentID:       p.ComponentID,
		Kind:              string(p.Kind),
		PortNumber:        p.PortNumber,
		Label:             p.Label,
		AdminEnabled:      p.AdminEnabled,
		LinkUp:            p.LinkUp,
		SpeedMbps:         nullIntPtr(p.SpeedMbps),
		MaxSpeedMbps:      nullIntPtr(p.MaxSpeedMbps),
		FullDuplex:        nullBoolPtr(p.FullDuplex),
		AutoNegotiation:   nullBoolPtr(p.AutoNegotiation),
		PoeEnabled:        nullBoolPtr(p.PoeEnabled),
		CableLengthMeters: nullFloatPtr(p.CableLengthMeters),
		WavelengthNm:      nullIntPtr(p.WavelengthNm),
		TxPowerDbm:        nullFloatPtr(p.TxPowerDbm),
		RxPowerDbm:        nullFloatPtr(p.RxPowerDbm),
		OpticalLossDb:     nullFloatPtr(p.OpticalLossDb),
		ConnectorType:     p.ConnectorType,
		Version:           p.Version,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.FiberType.Valid {
		rsp.FiberType = p.FiberType.String
	}
	if p.Kind == models.PortFiber {
		view := component.PortView{Row: p}
		rsp.LinkQuality = view.OpticalLinkQuality()
	}
	return rsp
}

func portsToRsp(ps []*models.Port) []*portRsp {
	out := make([]*portRsp, 0, len(ps))
	for _, p := range ps {
		out = append(out, portToRsp(p))
	}
	return out
}

// validatePort checks the physical configuration of a port row.
func validatePort(p *models.Port) apperrors.Error {
	view := component.PortView{Row: p}
	if !view.IsValidConfiguration() {
		return ErrInvalidPort.Msg("invalid port configuration")
	}
	if !view.IsCompatibleWith(p.ConnectorType) {
		return ErrInvalidPort.Msg("connector " + p.ConnectorType + " is not valid for " + string(p.Kind) + " ports")
	}
	if p.SpeedMbps.Valid && !view.SupportsSpeed(int(p.SpeedMbps.Int32)) {
		return ErrInvalidPort.Msg("unsupported speed for " + string(p.Kind) + " ports")
	}
	return nil
}

// CreatePort adds a port to a component. Only devices that process network
// traffic or patch panels carry ports.
func CreatePort(ctx context.Context, componentID uuid.UUID, body []byte) ([]byte, apperrors.Error) {
	req := &portRequest{}
	if err := parseRequest(body, req); err != nil {
		return nil, err
	}

	kind := models.PortKind(req.Kind)
	if !kind.IsValid() {
		return nil, ErrInvalidPort.Msg("unknown port kind " + req.Kind)
	}

	m := db.DB(ctx)
	c, err := m.GetComponent(ctx, componentID)
	if err != nil {
		return nil, err
	}
	view, err := loadComponentView(ctx, c)
	if err != nil {
		return nil, err
	}
	if !view.ProcessesNetworkTraffic() && c.Kind != models.KindPatchPanel {
		return nil, ErrInvalidPort.Msg("component type " + c.TypeCode + " does not carry ports")
	}

	p := &models.Port{
		ComponentID:   componentID,
		Kind:          kind,
		PortNumber:    *req.PortNumber,
		Label:         req.Label,
		ConnectorType: req.ConnectorType,
	}
	if req.AdminEnabled != nil {
		p.AdminEnabled = *req.AdminEnabled
	}
	if req.LinkUp != nil {
		p.LinkUp = *req.LinkUp
	}
	applyPortOptionals(p, req)

	if err := validatePort(p); err != nil {
		return nil, err
	}

	if err := m.CreatePort(ctx, p); err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().Str("component", c.Name).Int("port", p.PortNumber).Msg("created port")
	return marshalRsp(portToRsp(p))
}

func applyPortOptionals(p *models.Port, req *portRequest) {
	if req.SpeedMbps != nil {
		p.SpeedMbps = sql.NullInt32{Int32: int32(*req.SpeedMbps), Valid: true}
	}
	if req.MaxSpeedMbps != nil {
		p.MaxSpeedMbps = sql.NullInt32{Int32: int32(*req.MaxSpeedMbps), Valid: true}
	}
	if req.FullDuplex != nil {
		p.FullDuplex = sql.NullBool{Bool: *req.FullDuplex, Valid: true}
	}
	if req.AutoNegotiation != nil {
		p.AutoNegotiation = sql.NullBool{Bool: *req.AutoNegotiation, Valid: true}
	}
	if req.PoeEnabled != nil {
		p.PoeEnabled = sql.NullBool{Bool: *req.PoeEnabled, Valid: true}
	}
	if req.CableLengthMeters != nil {
		p.CableLengthMeters = sql.NullFloat64{Float64: *req.CableLengthMeters, Valid: true}
	}
	if req.FiberType != "" {
		p.FiberType = sql.NullString{String: req.FiberType, Valid: true}
	}
	if req.WavelengthNm != nil {
		p.WavelengthNm = sql.NullInt32{Int32: int32(*req.WavelengthNm), Valid: true}
	}
	if req.TxPowerDbm != nil {
		p.TxPowerDbm = sql.NullFloat64{Float64: *req.TxPowerDbm, Valid: true}
	}
	if req.RxPowerDbm != nil {
		p.RxPowerDbm = sql.NullFloat64{Float64: *req.RxPowerDbm, Valid: true}
	}
	if req.OpticalLossDb != nil {
		p.OpticalLossDb = sql.NullFloat64{Float64: *req.OpticalLossDb, Valid: true}
	}
}

// GetPort returns a port by ID.
func GetPort(ctx context.Context, id uuid.UUID) ([]byte, apperrors.Error) {
	p, err := db.DB(ctx).GetPort(ctx, id)
	if err != nil {
		return nil, err
	}
	return marshalRsp(portToRsp(p))
}

// ListPorts returns the ports of a component ordered by port number.
func ListPorts(ctx context.Context, componentID uuid.UUID) ([]byte, apperrors.Error) {
	if _, err := db.DB(ctx).GetComponent(ctx, componentID); err != nil {
		return nil, err
	}
	ps, err := db.DB(ctx).ListPortsByComponent(ctx, componentID)
	if err != nil {
		return nil, err
	}
	return marshalRsp(portsToRsp(ps))
}

// portPatch is the partial-update schema for a port. The nullable types keep
// absent, explicit-null, and set fields apart, so a caller can clear an
// optional column without touching the rest.
type portPatch struct {
	Label             *string              `json:"label"`
	AdminEnabled      *bool                `json:"adminEnabled"`
	LinkUp            *bool                `json:"linkUp"`
	ConnectorType     *string              `json:"connectorType"`
	SpeedMbps         types.NullableInt    `json:"speedMbps"`
	MaxSpeedMbps      types.NullableInt    `json:"maxSpeedMbps"`
	FullDuplex        types.NullableBool   `json:"fullDuplex"`
	AutoNegotiation   types.NullableBool   `json:"autoNegotiation"`
	PoeEnabled        types.NullableBool   `json:"poeEnabled"`
	CableLengthMeters types.NullableFloat  `json:"cableLengthMeters"`
	FiberType         types.NullableString `json:"fiberType"`
	WavelengthNm      types.NullableInt    `json:"wavelengthNm"`
	TxPowerDbm        types.NullableFloat  `json:"txPowerDbm"`
	RxPowerDbm        types.NullableFloat  `json:"rxPowerDbm"`
	OpticalLossDb     types.NullableFloat  `json:"opticalLossDb"`
	Version           *int64               `json:"version"`
}

func patchNullInt(dst *sql.NullInt32, src types.NullableInt) {
	if !src.Present {
		return
	}
	if src.Valid {
		*dst = sql.NullInt32{Int32: int32(src.Value), Valid: true}
	} else {
		*dst = sql.NullInt32{}
	}
}

func patchNullFloat(dst *sql.NullFloat64, src types.NullableFloat) {
	if !src.Present {
		return
	}
	if src.Valid {
		*dst = sql.NullFloat64{Float64: src.Value, Valid: true}
	} else {
		*dst = sql.NullFloat64{}
	}
}

func patchNullBool(dst *sql.NullBool, src types.NullableBool) {
	if !src.Present {
		return
	}
	if src.Valid {
		*dst = sql.NullBool{Bool: src.Value, Valid: true}
	} else {
		*dst = sql.NullBool{}
	}
}

// applyPortPatch merges a decoded patch into an existing port row. The
// component, kind, and port number are immutable and never touched.
func applyPortPatch(p *models.Port, patch *portPatch) {
	if patch.Label != nil {
		p.Label = *patch.Label
	}
	if patch.AdminEnabled != nil {
		p.AdminEnabled = *patch.AdminEnabled
	}
	if patch.LinkUp != nil {
		p.LinkUp = *patch.LinkUp
	}
	if patch.ConnectorType != nil && *patch.ConnectorType != "" {
		p.ConnectorType = *patch.ConnectorType
	}
	patchNullInt(&p.SpeedMbps, patch.SpeedMbps)
	patchNullInt(&p.MaxSpeedMbps, patch.MaxSpeedMbps)
	patchNullBool(&p.FullDuplex, patch.FullDuplex)
	patchNullBool(&p.AutoNegotiation, patch.AutoNegotiation)
	patchNullBool(&p.PoeEnabled, patch.PoeEnabled)
	patchNullFloat(&p.CableLengthMeters, patch.CableLengthMeters)
	patchNullInt(&p.WavelengthNm, patch.WavelengthNm)
	patchNullFloat(&p.TxPowerDbm, patch.TxPowerDbm)
	patchNullFloat(&p.RxPowerDbm, patch.RxPowerDbm)
	patchNullFloat(&p.OpticalLossDb, patch.OpticalLossDb)
	if patch.FiberType.Present {
		if patch.FiberType.Valid && patch.FiberType.Value != "" {
			p.FiberType = sql.NullString{String: patch.FiberType.Value, Valid: true}
		} else {
			p.FiberType = sql.NullString{}
		}
	}
	if patch.Version != nil {
		p.Version = *patch.Version
	}
}

// UpdatePort applies a partial update to a port. The component, kind, and
// port number are immutable.
func UpdatePort(ctx context.Context, id uuid.UUID, body []byte) ([]byte, apperrors.Error) {
	if err := policy.ValidateUpdate(policy.PortFields, body, invcommon.IsAdmin(ctx)); err != nil {
		return nil, err
	}

	m := db.DB(ctx)
	p, err := m.GetPort(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := &portPatch{}
	if jsonErr := gjsonUnmarshal(body, patch); jsonErr != nil {
		return nil, jsonErr
	}
	applyPortPatch(p, patch)

	if err := validatePort(p); err != nil {
		return nil, err
	}

	if err := m.UpdatePort(ctx, p); err != nil {
		return nil, err
	}
	return marshalRsp(portToRsp(p))
}

// DeletePort removes a port.
func DeletePort(ctx context.Context, id uuid.UUID) apperrors.Error {
	return db.DB(ctx).DeletePort(ctx, id)
}
