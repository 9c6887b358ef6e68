package policy

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredFieldRejectsExplicitNull(t *testing.T) {
	err := ValidateUpdate(ComponentFields, []byte(`{"name": null}`), true)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrPolicyViolation)

	// A value is fine.
	assert.Nil(t, ValidateUpdate(ComponentFields, []byte(`{"name": "sw-01"}`), false))
	// An absent field is untouched, not cleared.
	assert.Nil(t, ValidateUpdate(ComponentFields, []byte(`{"description": "x"}`), false))
}

func TestAdminNullableByRole(t *testing.T) {
	body := []byte(`{"parentId": null}`)

	err := ValidateUpdate(ComponentFields, body, false)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrPolicyViolation)

	assert.Nil(t, ValidateUpdate(ComponentFields, body, true))

	// Setting a value needs no admin role.
	assert.Nil(t, ValidateUpdate(ComponentFields, []byte(`{"parentId": "b9f6"}`), false))
}

func TestCatalogStylingFieldsAdminNullable(t *testing.T) {
	for _, body := range [][]byte{
		[]byte(`{"colorClass": null}`),
		[]byte(`{"iconClass": null}`),
	} {
		err := ValidateUpdate(CatalogEntryFields, body, false)
		require.NotNil(t, err)
		assert.ErrorIs(t, err, ErrPolicyViolation)

		assert.Nil(t, ValidateUpdate(CatalogEntryFields, body, true))
	}
}

func TestUserWritableAllowsNull(t *testing.T) {
	assert.Nil(t, ValidateUpdate(InstallationFields, []byte(`{"notes": null}`), false))
	assert.Nil(t, ValidateUpdate(ComponentFields, []byte(`{"description": null}`), false))
}

func TestReadOnlyFieldsAreIgnoredNotRejected(t *testing.T) {
	// Clients echo full documents back; server-owned fields pass validation
	// but are dropped from the applied patch.
	body := []byte(`{"id": null, "version": 7, "name": "sw-01", "unknownField": 1}`)
	assert.Nil(t, ValidateUpdate(ComponentFields, body, false))

	fields := WritableFields(ComponentFields, body)
	assert.Equal(t, []string{"name"}, fields)
}

func TestRemovalStampsAreServerOwned(t *testing.T) {
	body := []byte(`{"removedAt": null, "removedBy": "mallory"}`)
	assert.Nil(t, ValidateUpdate(InstallationFields, body, false))
	assert.Empty(t, WritableFields(InstallationFields, body))
}

func TestMalformedBodyRejected(t *testing.T) {
	err := ValidateUpdate(ComponentFields, []byte(`{"name": `), false)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode())
}

func TestValidationStopsAtFirstViolation(t *testing.T) {
	body := []byte(`{"typeCode": null, "statusCode": null}`)
	err := ValidateUpdate(ComponentFields, body, true)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "typeCode")
}
