package auth

import (
	"testing"
	"time"

	"aeon/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.True(t, svc.Enabled())

	token, err := svc.GenerateAccessToken(42, "admin", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTService_Disabled(t *testing.T) {
	svc := NewJWTService(newTestConfig(""))
	assert.False(t, svc.Enabled())

	_, err := svc.GenerateAccessToken(1, "user", "customer")
	assert.ErrorIs(t, err, ErrTokenDisabled)

	_, err = svc.ValidateToken("anything")
	assert.ErrorIs(t, err, ErrTokenDisabled)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := NewJWTService(newTestConfig("secret-one"))

	_, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)

	other := NewJWTService(newTestConfig("secret-two"))
	token, err := other.GenerateAccessToken(1, "user", "customer")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService(newTestConfig("secret")).(*jwtService)
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateAccessToken(7, "user", "customer")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
