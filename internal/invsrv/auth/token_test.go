package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/switchscope/switchscope/internal/invsrv/config"
	"github.com/switchscope/switchscope/internal/invsrv/invcommon"
)

func TestMain(m *testing.M) {
	config.TestInit()
	m.Run()
}

func TestCreateAndValidateToken(t *testing.T) {
	token, err := CreateToken("alex", invcommon.RoleOperator, 0)
	require.Nil(t, err)
	require.NotEmpty(t, token)

	ctx, err := ValidateToken(context.Background(), token)
	require.Nil(t, err)

	user := invcommon.GetUserContext(ctx)
	require.NotNil(t, user)
	assert.Equal(t, "alex", user.UserID)
	assert.Equal(t, invcommon.RoleOperator, user.Role)
	assert.False(t, invcommon.IsAdmin(ctx))
}

func TestAdminTokenGrantsWrite(t *testing.T) {
	token, err := CreateToken("sam", invcommon.RoleAdmin, time.Hour)
	require.Nil(t, err)

	ctx, err := ValidateToken(context.Background(), token)
	require.Nil(t, err)
	assert.True(t, invcommon.IsAdmin(ctx))
}

func TestCreateTokenRejectsBadInput(t *testing.T) {
	_, err := CreateToken("", invcommon.RoleAdmin, time.Hour)
	assert.NotNil(t, err)

	_, err = CreateToken("alex", invcommon.Role("superuser"), time.Hour)
	assert.NotNil(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken(context.Background(), "not-a-token")
	assert.NotNil(t, err)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	claims := jwt.MapClaims{
		"iss":  tokenIssuer,
		"sub":  "alex",
		"role": "admin",
		"exp":  jwt.NewNumericDate(time.Now().Add(time.Hour)),
		"iat":  jwt.NewNumericDate(time.Now()),
	}
	forged, signErr := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-secret"))
	require.NoError(t, signErr)

	_, err := ValidateToken(context.Background(), forged)
	assert.NotNil(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	skew := config.Config().Auth.GetClockSkewOrDefault()
	claims := jwt.MapClaims{
		"iss":  tokenIssuer,
		"sub":  "alex",
		"role": "admin",
		"exp":  jwt.NewNumericDate(time.Now().Add(-skew - time.Minute)),
		"iat":  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
	}
	expired, signErr := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.Config().Auth.SigningSecret))
	require.NoError(t, signErr)

	_, err := ValidateToken(context.Background(), expired)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestExpiryWithinSkewAccepted(t *testing.T) {
	skew := config.Config().Auth.GetClockSkewOrDefault()
	claims := jwt.MapClaims{
		"iss":  tokenIssuer,
		"sub":  "alex",
		"role": "operator",
		"exp":  jwt.NewNumericDate(time.Now().Add(-skew / 2)),
		"iat":  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	nearExpiry, signErr := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.Config().Auth.SigningSecret))
	require.NoError(t, signErr)

	_, err := ValidateToken(context.Background(), nearExpiry)
	assert.Nil(t, err)
}

func TestValidateTokenRejectsMissingRole(t *testing.T) {
	claims := jwt.MapClaims{
		"iss": tokenIssuer,
		"sub": "alex",
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
		"iat": jwt.NewNumericDate(time.Now()),
	}
	token, signErr := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.Config().Auth.SigningSecret))
	require.NoError(t, signErr)

	_, err := ValidateToken(context.Background(), token)
	assert.NotNil(t, err)
}
