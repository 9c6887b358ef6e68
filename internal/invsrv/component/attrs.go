package component

import (
	"encoding/json"
	"net/http"

	"github.com/jackc/pgtype"

	"github.com/switchscope/switchscope/internal/common/apperrors"
)

var (
	// ErrInvalidAttrs indicates the attrs document could not be decoded.
	ErrInvalidAttrs apperrors.Error = apperrors.New("invalid component attributes").SetStatusCode(http.StatusBadRequest)
)

// Attrs is the kind-specific attribute document carried in a component's
// attrs column. Only the fields relevant to the component's kind are set.
type Attrs struct {
	// Rack geometry
	RackUnitsTotal int    `json:"rackUnitsTotal,omitempty"`
	RackStandard   string `json:"rackStandard,omitempty"`

	// Managed devices
	ManagementIP    string `json:"managementIp,omitempty"`
	MacAddress      string `json:"macAddress,omitempty"`
	FirmwareVersion string `json:"firmwareVersion,omitempty"`
	Hostname        string `json:"hostname,omitempty"`

	// Cable runs
	CableMedium  string  `json:"cableMedium,omitempty"`
	CableType    string  `json:"cableType,omitempty"`
	LengthMeters float64 `json:"lengthMeters,omitempty"`

	// Connectors and patch panels
	ConnectorStandard string `json:"connectorStandard,omitempty"`
	PortCount         int    `json:"portCount,omitempty"`
}

// DecodeAttrs unpacks a component attrs column. A null or unset column
// decodes to the zero value.
func DecodeAttrs(col pgtype.JSONB) (Attrs, apperrors.Error) {
	var a Attrs
	if col.Status != pgtype.Present || len(col.Bytes) == 0 {
		return a, nil
	}
	if err := json.Unmarshal(col.Bytes, &a); err != nil {
		return Attrs{}, ErrInvalidAttrs.Err(err)
	}
	return a, nil
}

// EncodeAttrs packs an attrs document for storage. The zero value encodes to
// a null column.
func EncodeAttrs(a Attrs) (pgtype.JSONB, apperrors.Error) {
	if a == (Attrs{}) {
		return pgtype.JSONB{Status: pgtype.Null}, nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return pgtype.JSONB{Status: pgtype.Null}, ErrInvalidAttrs.Err(err)
	}
	return pgtype.JSONB{Bytes: b, Status: pgtype.Present}, nil
}
