// Package auth issues and validates the HMAC-signed access tokens of the
// inventory service and provides the request middleware that resolves them
// into a user context.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/switchscope/switchscope/internal/common/apperrors"
	"github.com/switchscope/switchscope/internal/invsrv/config"
	"github.com/switchscope/switchscope/internal/invsrv/invcommon"
)

const tokenIssuer = "switchscope/invsrv"

// CreateToken issues a signed token for the user with the given role. The
// validity defaults to the configured token validity when zero.
func CreateToken(userID string, role invcommon.Role, validity time.Duration) (string, apperrors.Error) {
	if userID == "" || !role.IsValid() {
		return "", ErrInvalidToken.Msg("user and role are required")
	}
	if validity <= 0 {
		validity = config.Config().Auth.GetDefaultTokenValidityOrDefault()
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":  tokenIssuer,
		"sub":  userID,
		"role": string(role),
		"exp":  jwt.NewNumericDate(now.Add(validity)),
		"iat":  jwt.NewNumericDate(now),
		"nbf":  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.Config().Auth.SigningSecret))
	if err != nil {
		return "", ErrAuth.Msg("failed to sign token").Err(err)
	}
	return signed, nil
}

// ValidateToken parses and validates a token string and attaches the
// resolved user context to the returned context.
func ValidateToken(ctx context.Context, tokenString string) (context.Context, apperrors.Error) {
	skew := config.Config().Auth.GetClockSkewOrDefault()

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.Config().Auth.SigningSecret), nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithLeeway(skew),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ctx, ErrTokenExpired
		}
		return ctx, ErrUnableToParseToken.Err(err)
	}
	if !token.Valid {
		return ctx, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx, ErrInvalidToken.Msg("invalid token claims")
	}

	userID, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	role := invcommon.Role(roleStr)
	if userID == "" || !role.IsValid() {
		return ctx, ErrInvalidToken.Msg("token carries no usable identity")
	}

	return invcommon.WithUserContext(ctx, &invcommon.UserContext{
		UserID: userID,
		Role:   role,
	}), nil
}
