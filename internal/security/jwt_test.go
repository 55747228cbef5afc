package security_test

import (
	"testing"
	"time"

	"quillist/config"
	"quillist/internal/apperrors"
	"quillist/internal/model"
	"quillist/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *security.JWTService {
	t.Helper()
	service, err := security.NewJWTService(
		&config.JWTConfig{
			SecretKey:       "test-secret",
			Algorithm:       "HS256",
			AccessTokenTTL:  "1h",
			RefreshTokenTTL: "48h",
		},
		&config.OpaqueTokenConfig{
			Salt:   "email-configuration",
			MaxAge: "1h",
		},
	)
	require.NoError(t, err)
	return service
}

var testTokenUser = model.TokenUser{
	Email:   "reader@example.com",
	UserUID: "9b5f0d4e-1111-2222-3333-444455556666",
	Role:    model.RoleUser,
}

func TestNewJWTService_UnsupportedAlgorithm(t *testing.T) {
	_, err := security.NewJWTService(
		&config.JWTConfig{
			SecretKey:       "test-secret",
			Algorithm:       "RS256",
			AccessTokenTTL:  "1h",
			RefreshTokenTTL: "48h",
		},
		&config.OpaqueTokenConfig{Salt: "email-configuration", MaxAge: "1h"},
	)
	assert.Error(t, err)
}

func TestCreateToken_RoundTrip(t *testing.T) {
	service := newTestJWTService(t)

	tokenStr, err := service.CreateToken(testTokenUser, time.Hour, false)
	require.NoError(t, err)

	claims, err := service.ParseToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, testTokenUser, claims.User)
	assert.False(t, claims.Refresh)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseToken_Expired(t *testing.T) {
	service := newTestJWTService(t)

	tokenStr, err := service.CreateToken(testTokenUser, -time.Minute, false)
	require.NoError(t, err)

	_, err = service.ParseToken(tokenStr)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParseToken_Tampered(t *testing.T) {
	service := newTestJWTService(t)

	tokenStr, err := service.CreateToken(testTokenUser, time.Hour, false)
	require.NoError(t, err)

	_, err = service.ParseToken(tokenStr + "x")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	service := newTestJWTService(t)
	other, err := security.NewJWTService(
		&config.JWTConfig{
			SecretKey:       "another-secret",
			AccessTokenTTL:  "1h",
			RefreshTokenTTL: "48h",
		},
		&config.OpaqueTokenConfig{Salt: "email-configuration", MaxAge: "1h"},
	)
	require.NoError(t, err)

	tokenStr, err := other.CreateToken(testTokenUser, time.Hour, false)
	require.NoError(t, err)

	_, err = service.ParseToken(tokenStr)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestCreateTokensPair(t *testing.T) {
	service := newTestJWTService(t)

	pair, err := service.CreateTokensPair(testTokenUser)
	require.NoError(t, err)

	accessClaims, err := service.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	refreshClaims, err := service.ParseToken(pair.RefreshToken)
	require.NoError(t, err)

	assert.False(t, accessClaims.Refresh)
	assert.True(t, refreshClaims.Refresh)
	assert.Equal(t, accessClaims.User, refreshClaims.User)
	assert.NotEqual(t, accessClaims.ID, refreshClaims.ID)
	assert.True(t, refreshClaims.ExpiresAt.After(accessClaims.ExpiresAt.Time))
}

func TestURLSafeToken_RoundTrip(t *testing.T) {
	service := newTestJWTService(t)

	tokenStr, err := service.CreateURLSafeToken("reader@example.com")
	require.NoError(t, err)

	email, err := service.ParseURLSafeToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", email)
}

func TestURLSafeToken_MaxAgeExceeded(t *testing.T) {
	service, err := security.NewJWTService(
		&config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  "1h",
			RefreshTokenTTL: "48h",
		},
		&config.OpaqueTokenConfig{Salt: "email-configuration", MaxAge: "1ns"},
	)
	require.NoError(t, err)

	tokenStr, err := service.CreateURLSafeToken("reader@example.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = service.ParseURLSafeToken(tokenStr)
	assert.ErrorIs(t, err, apperrors.ErrInvalidVerificationToken)
}

func TestURLSafeToken_Tampered(t *testing.T) {
	service := newTestJWTService(t)

	tokenStr, err := service.CreateURLSafeToken("reader@example.com")
	require.NoError(t, err)

	_, err = service.ParseURLSafeToken(tokenStr + "x")
	assert.ErrorIs(t, err, apperrors.ErrInvalidVerificationToken)
}

// Access токен и opaque токен подписаны разными ключами, поэтому
// ни один из них не проходит проверку в декодере другого вида
func TestTokens_NotInterchangeable(t *testing.T) {
	service := newTestJWTService(t)

	accessToken, err := service.CreateToken(testTokenUser, time.Hour, false)
	require.NoError(t, err)
	opaqueToken, err := service.CreateURLSafeToken("reader@example.com")
	require.NoError(t, err)

	_, err = service.ParseURLSafeToken(accessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidVerificationToken)

	_, err = service.ParseToken(opaqueToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestURLSafeToken_DifferentSalt(t *testing.T) {
	service := newTestJWTService(t)
	other, err := security.NewJWTService(
		&config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  "1h",
			RefreshTokenTTL: "48h",
		},
		&config.OpaqueTokenConfig{Salt: "password-reset", MaxAge: "1h"},
	)
	require.NoError(t, err)

	tokenStr, err := other.CreateURLSafeToken("reader@example.com")
	require.NoError(t, err)

	_, err = service.ParseURLSafeToken(tokenStr)
	assert.ErrorIs(t, err, apperrors.ErrInvalidVerificationToken)
}
