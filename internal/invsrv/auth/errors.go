package auth

import (
	"net/http"

	"github.com/switchscope/switchscope/internal/common/apperrors"
)

// Base auth error
var (
	ErrAuth apperrors.Error = apperrors.New("auth error").SetStatusCode(http.StatusInternalServerError)
)

// Authorization errors
var (
	ErrUnauthorized       apperrors.Error = ErrAuth.New("unauthorized access").SetStatusCode(http.StatusUnauthorized)
	ErrInvalidToken       apperrors.Error = ErrAuth.New("invalid token").SetStatusCode(http.StatusUnauthorized)
	ErrTokenExpired       apperrors.Error = ErrAuth.New("token expired").SetStatusCode(http.StatusUnauthorized)
	ErrUnableToParseToken apperrors.Error = ErrAuth.New("unable to parse token").SetStatusCode(http.StatusForbidden)
	ErrAdminRequired      apperrors.Error = ErrAuth.New("administrator role required").SetStatusCode(http.StatusForbidden)
)
