package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.GenerateToken(userID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("issuer_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testConfig("another_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New(), entity.RoleCustomer)
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	validator, err := NewJWTService(testConfig(secret))
	require.NoError(t, err)

	// Issue a token that expired a minute ago.
	issuer := &jwtService{secret: secret, accessTTL: -time.Minute}
	token, err := issuer.GenerateToken(uuid.New(), entity.RoleCustomer)
	require.NoError(t, err)

	claims, err := validator.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ConfiguredTTL(t *testing.T) {
	cfg := testConfig("test_access_secret_key_very_long_for_testing")
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.GenerateToken(uuid.New(), entity.RoleCustomer)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.NoError(t, err)
}
