package service

import (
	"testing"
	"time"

	apperrors "gym-maintenance/pkg/errors"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, 24*time.Hour, zap.NewNop())

	access, refresh, err := svc.GenerateTokens("2")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "2", claims.UserID)
	assert.False(t, claims.IsRefreshToken)

	claims, err = svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, claims.IsRefreshToken)

	assert.Equal(t, time.Hour, svc.GetAccessTokenTTL())
	assert.Equal(t, 24*time.Hour, svc.GetRefreshTokenTTL())
}

func TestValidateRejects(t *testing.T) {
	svc := NewJWTService("secret", time.Hour, time.Hour, zap.NewNop())

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService("other", time.Hour, time.Hour, zap.NewNop())
		token, _, err := other.GenerateTokens("1")
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTService("secret", -time.Minute, time.Hour, zap.NewNop())
		token, _, err := expired.GenerateTokens("1")
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("non hmac signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &JwtCustomClaim{UserID: "1"})
		raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.ValidateToken(raw)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
