package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorDerivation(t *testing.T) {
	base := New("inventory error").SetStatusCode(http.StatusInternalServerError)
	notFound := base.New("not found").SetStatusCode(http.StatusNotFound)

	assert.Equal(t, "not found", notFound.Error())
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode())
	assert.True(t, errors.Is(notFound, base))
	assert.False(t, errors.Is(base, notFound))
}

func TestErrorMsgWraps(t *testing.T) {
	base := New("db error").SetStatusCode(http.StatusInternalServerError)
	wrapped := base.Msg("failed to load component")

	assert.Equal(t, "failed to load component", wrapped.Error())
	assert.Equal(t, http.StatusInternalServerError, wrapped.StatusCode())
	assert.True(t, errors.Is(wrapped, base))
}

func TestErrorAttachesCauses(t *testing.T) {
	sentinel := New("conflict").SetStatusCode(http.StatusConflict)
	cause := errors.New("duplicate code")
	err := sentinel.Err(cause)

	assert.True(t, errors.Is(err, sentinel))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.UnwrapAll(), cause)
}

func TestErrorAllExpansion(t *testing.T) {
	sentinel := New("validation failed")
	cause := errors.New("code is required")

	collapsed := sentinel.Err(cause)
	assert.Equal(t, "validation failed", collapsed.ErrorAll())

	expanded := collapsed.SetExpandError(true)
	assert.Contains(t, expanded.ErrorAll(), "code is required")
}

func TestMsgErr(t *testing.T) {
	sentinel := New("bad input").SetStatusCode(http.StatusBadRequest)
	cause := errors.New("rack units out of range")
	err := sentinel.MsgErr("invalid rack geometry", cause)

	assert.Equal(t, "invalid rack geometry", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode())
	assert.True(t, errors.Is(err, sentinel))
	assert.True(t, errors.Is(err, cause))
}
