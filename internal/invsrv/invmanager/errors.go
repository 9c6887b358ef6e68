package invmanager

import (
	"net/http"

	"github.com/switchscope/switchscope/internal/common/apperrors"
)

// Base inventory error
var (
	ErrInventoryError apperrors.Error = apperrors.New("inventory processing failed").SetStatusCode(http.StatusInternalServerError)
)

// Validation errors
var (
	ErrInvalidSchema       apperrors.Error = ErrInventoryError.New("invalid request schema").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrInvalidUUID         apperrors.Error = ErrInventoryError.New("invalid UUID").SetStatusCode(http.StatusBadRequest)
	ErrUnknownCatalogKind  apperrors.Error = ErrInventoryError.New("unknown catalog kind").SetStatusCode(http.StatusNotFound)
	ErrUnknownCatalogEntry apperrors.Error = ErrInventoryError.New("unknown catalog entry").SetStatusCode(http.StatusBadRequest)
	ErrInvalidComponent    apperrors.Error = ErrInventoryError.New("invalid component").SetStatusCode(http.StatusBadRequest)
	ErrInvalidPort         apperrors.Error = ErrInventoryError.New("invalid port").SetStatusCode(http.StatusBadRequest)
	ErrInvalidInstallation apperrors.Error = ErrInventoryError.New("invalid installation").SetStatusCode(http.StatusBadRequest)
	ErrInvalidLocation     apperrors.Error = ErrInventoryError.New("invalid location").SetStatusCode(http.StatusBadRequest)
)

// Hierarchy errors
var (
	ErrContainmentNotAllowed apperrors.Error = ErrInventoryError.New("parent cannot contain this component").SetStatusCode(http.StatusBadRequest)
	ErrHierarchyCycle        apperrors.Error = ErrInventoryError.New("operation would create a cycle").SetStatusCode(http.StatusBadRequest)
	ErrHierarchyTooDeep      apperrors.Error = ErrInventoryError.New("hierarchy exceeds the maximum nesting depth").SetStatusCode(http.StatusBadRequest)
)

// Conflict errors
var (
	ErrStatusChangeNotAllowed apperrors.Error = ErrInventoryError.New("status transition not allowed").SetStatusCode(http.StatusConflict)
	ErrCatalogEntryInUse      apperrors.Error = ErrInventoryError.New("catalog entry is still in use").SetStatusCode(http.StatusConflict)
	ErrNoRackCapacity         apperrors.Error = ErrInventoryError.New("no contiguous rack space available").SetStatusCode(http.StatusConflict)
)
