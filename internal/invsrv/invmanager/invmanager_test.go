package invmanager

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/config"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
)

func TestMain(m *testing.M) {
	config.TestInit()
	m.Run()
}

func TestCatalogResourceForKind(t *testing.T) {
	for _, kind := range CatalogKinds() {
		r, err := CatalogResourceForKind(kind)
		require.Nil(t, err, kind)
		assert.Equal(t, kind, r.Kind())
	}

	_, err := CatalogResourceForKind("paint-colors")
	assert.NotNil(t, err)
	assert.ErrorIs(t, err, ErrUnknownCatalogKind)
}

func TestParseRequestRejectsMissingFields(t *testing.T) {
	req := &componentRequest{}
	err := parseRequest([]byte(`{"name":"sw-01"}`), req)
	assert.NotNil(t, err)

	err = parseRequest([]byte(`{`), req)
	assert.NotNil(t, err)

	err = parseRequest(nil, req)
	assert.NotNil(t, err)

	err = parseRequest([]byte(`{"kind":"SWITCH","name":"sw-01","typeCode":"NETWORK_SWITCH","statusCode":"ACTIVE"}`), req)
	assert.Nil(t, err)
}

func TestComponentFromRequest(t *testing.T) {
	parent := uuid.New()
	req := &componentRequest{
		Kind:       "SWITCH",
		Name:       "core-sw-01",
		TypeCode:   "NETWORK_SWITCH",
		StatusCode: "ACTIVE",
		NatureCode: "ACTIVE_ELECTRONIC",
		ParentID:   &parent,
		Attrs:      json.RawMessage(`{"managementIp":"10.0.0.2","portCount":48}`),
	}

	c, err := componentFromRequest(req)
	require.Nil(t, err)
	assert.Equal(t, models.KindSwitch, c.Kind)
	assert.True(t, c.NatureCode.Valid)
	assert.True(t, c.ParentID.Valid)
	assert.Equal(t, parent, c.ParentID.UUID)
	assert.False(t, c.LocationID.Valid)
}

func TestComponentFromRequestRejectsBadKind(t *testing.T) {
	req := &componentRequest{
		Kind:       "TOASTER",
		Name:       "t-01",
		TypeCode:   "NETWORK_SWITCH",
		StatusCode: "ACTIVE",
	}
	_, err := componentFromRequest(req)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidComponent)
}

func TestComponentFromRequestRejectsBadAttrs(t *testing.T) {
	req := &componentRequest{
		Kind:       "SWITCH",
		Name:       "sw-01",
		TypeCode:   "NETWORK_SWITCH",
		StatusCode: "ACTIVE",
		Attrs:      json.RawMessage(`{"portCount":"forty-eight"}`),
	}
	_, err := componentFromRequest(req)
	assert.NotNil(t, err)
}

func TestApplyComponentUpdateMergesAndClears(t *testing.T) {
	c, err := componentFromRequest(&componentRequest{
		Kind:       "SWITCH",
		Name:       "sw-01",
		TypeCode:   "NETWORK_SWITCH",
		StatusCode: "ACTIVE",
		NatureCode: "ACTIVE_ELECTRONIC",
	})
	require.Nil(t, err)

	body := []byte(`{"name":"sw-01-renamed","natureCode":null}`)
	require.Nil(t, applyComponentUpdate(c, body))
	assert.Equal(t, "sw-01-renamed", c.Name)
	assert.False(t, c.NatureCode.Valid)
	assert.Equal(t, "ACTIVE", c.StatusCode)
}

func TestApplyComponentUpdateKeepsUntouchedFields(t *testing.T) {
	c, err := componentFromRequest(&componentRequest{
		Kind:         "ROUTER",
		Name:         "rt-01",
		Manufacturer: "Juniper",
		TypeCode:     "NETWORK_ROUTER",
		StatusCode:   "ACTIVE",
	})
	require.Nil(t, err)

	require.Nil(t, applyComponentUpdate(c, []byte(`{"description":"edge router"}`)))
	assert.Equal(t, "rt-01", c.Name)
	assert.Equal(t, "Juniper", c.Manufacturer)
	assert.Equal(t, "edge router", c.Description)
}

func TestApplyComponentUpdateRejectsEmptyName(t *testing.T) {
	c, err := componentFromRequest(&componentRequest{
		Kind:       "SWITCH",
		Name:       "sw-01",
		TypeCode:   "NETWORK_SWITCH",
		StatusCode: "ACTIVE",
	})
	require.Nil(t, err)

	assert.NotNil(t, applyComponentUpdate(c, []byte(`{"name":""}`)))
}

func TestPortRequestValidation(t *testing.T) {
	req := &portRequest{}
	err := parseRequest([]byte(`{"kind":"ETHERNET","label":"uplink"}`), req)
	assert.NotNil(t, err)

	err = parseRequest([]byte(`{"kind":"ETHERNET","portNumber":1,"connectorType":"RJ45"}`), req)
	assert.Nil(t, err)
}

func TestApplyPortPatchTriState(t *testing.T) {
	p := &models.Port{
		Kind:          models.PortEthernet,
		PortNumber:    1,
		Label:         "uplink",
		ConnectorType: "RJ45",
		SpeedMbps:     sql.NullInt32{Int32: 1000, Valid: true},
		MaxSpeedMbps:  sql.NullInt32{Int32: 10000, Valid: true},
		PoeEnabled:    sql.NullBool{Bool: true, Valid: true},
	}

	patch := &portPatch{}
	body := []byte(`{"label":"core-uplink","speedMbps":10000,"poeEnabled":null}`)
	require.Nil(t, gjsonUnmarshal(body, patch))
	applyPortPatch(p, patch)

	assert.Equal(t, "core-uplink", p.Label)
	// Set fields take the new value.
	assert.True(t, p.SpeedMbps.Valid)
	assert.Equal(t, int32(10000), p.SpeedMbps.Int32)
	// Explicit null clears the column.
	assert.False(t, p.PoeEnabled.Valid)
	// Absent fields stay untouched.
	assert.True(t, p.MaxSpeedMbps.Valid)
	assert.Equal(t, "RJ45", p.ConnectorType)
}

func TestApplyPortPatchClearsFiberReadings(t *testing.T) {
	p := &models.Port{
		Kind:          models.PortFiber,
		PortNumber:    3,
		ConnectorType: "LC",
		FiberType:     sql.NullString{String: "single-mode", Valid: true},
		TxPowerDbm:    sql.NullFloat64{Float64: -2.5, Valid: true},
		RxPowerDbm:    sql.NullFloat64{Float64: -4.1, Valid: true},
	}

	patch := &portPatch{}
	body := []byte(`{"txPowerDbm":null,"rxPowerDbm":-5.0,"fiberType":null,"version":7}`)
	require.Nil(t, gjsonUnmarshal(body, patch))
	applyPortPatch(p, patch)

	assert.False(t, p.TxPowerDbm.Valid)
	assert.True(t, p.RxPowerDbm.Valid)
	assert.Equal(t, -5.0, p.RxPowerDbm.Float64)
	assert.False(t, p.FiberType.Valid)
	assert.Equal(t, int64(7), p.Version)
}
