package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullableStringTriState(t *testing.T) {
	type payload struct {
		Name  NullableString `json:"name"`
		Notes NullableString `json:"notes"`
	}

	var p payload
	err := json.Unmarshal([]byte(`{"name": null}`), &p)
	assert.NoError(t, err)

	assert.True(t, p.Name.Present)
	assert.True(t, p.Name.IsNil())
	assert.False(t, p.Notes.Present, "absent field must not be marked present")
	assert.False(t, p.Notes.IsNil())
}

func TestNullableStringValue(t *testing.T) {
	var ns NullableString
	err := json.Unmarshal([]byte(`"core-switch-01"`), &ns)
	assert.NoError(t, err)
	assert.True(t, ns.Present)
	assert.True(t, ns.Valid)
	assert.Equal(t, "core-switch-01", ns.String())
	assert.False(t, ns.IsNil())
}

func TestNullableStringMarshal(t *testing.T) {
	b, err := json.Marshal(NullableStringFrom("rack-a"))
	assert.NoError(t, err)
	assert.Equal(t, `"rack-a"`, string(b))

	b, err = json.Marshal(NullString())
	assert.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestNullableIntTriState(t *testing.T) {
	type payload struct {
		RackUnits NullableInt `json:"rackUnits"`
		Watts     NullableInt `json:"watts"`
	}

	var p payload
	err := json.Unmarshal([]byte(`{"rackUnits": 42, "watts": null}`), &p)
	assert.NoError(t, err)

	assert.Equal(t, 42, p.RackUnits.Int())
	assert.False(t, p.RackUnits.IsNil())
	assert.True(t, p.Watts.IsNil())
}

func TestNullableFloatTriState(t *testing.T) {
	type payload struct {
		TxPower NullableFloat `json:"txPower"`
		RxPower NullableFloat `json:"rxPower"`
	}

	var p payload
	err := json.Unmarshal([]byte(`{"txPower": -2.5, "rxPower": null}`), &p)
	assert.NoError(t, err)

	assert.Equal(t, -2.5, p.TxPower.Float())
	assert.False(t, p.TxPower.IsNil())
	assert.True(t, p.RxPower.IsNil())
	assert.True(t, p.RxPower.Present, "explicit null is still present")
}

func TestNullableBoolTriState(t *testing.T) {
	var nb NullableBool
	err := json.Unmarshal([]byte(`true`), &nb)
	assert.NoError(t, err)
	assert.True(t, nb.Bool())

	var nilBool NullableBool
	err = json.Unmarshal([]byte(`null`), &nilBool)
	assert.NoError(t, err)
	assert.True(t, nilBool.IsNil())
	assert.False(t, nilBool.Bool())
}
