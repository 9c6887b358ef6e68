package dberror

import (
	"net/http"

	"github.com/switchscope/switchscope/internal/common/apperrors"
)

var (
	ErrDatabase        apperrors.Error = apperrors.New("db error").SetStatusCode(http.StatusInternalServerError)
	ErrAlreadyExists   apperrors.Error = ErrDatabase.New("already exists").SetStatusCode(http.StatusConflict)
	ErrNotFound        apperrors.Error = ErrDatabase.New("not found").SetStatusCode(http.StatusNotFound)
	ErrConflict        apperrors.Error = ErrDatabase.New("conflict").SetStatusCode(http.StatusConflict)
	ErrInvalidInput    apperrors.Error = ErrDatabase.New("invalid input").SetStatusCode(http.StatusBadRequest)
	ErrVersionMismatch apperrors.Error = ErrConflict.New("row was modified concurrently").SetStatusCode(http.StatusConflict)
)
