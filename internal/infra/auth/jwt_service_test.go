package auth

import (
	"testing"
	"time"

	"vitrine/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	accountID := uuid.New()

	token, err := jwtService.GenerateToken(accountID, "ana@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, accountID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	first, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	other := &config.Config{}
	other.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	second, err := NewJWTService(other)
	assert.NoError(t, err)

	token, err := first.GenerateToken(uuid.New(), "ana@example.com")
	assert.NoError(t, err)

	claims, err := second.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenDuration: -time.Minute}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New(), "ana@example.com")
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
