package security_test

import (
	"testing"

	"quillist/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := security.HashPassword("super-secret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "super-secret", hash)

	assert.True(t, security.CheckPassword("super-secret", hash))
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := security.HashPassword("super-secret")
	require.NoError(t, err)

	assert.False(t, security.CheckPassword("not-the-password", hash))
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	assert.False(t, security.CheckPassword("super-secret", "не bcrypt хэш"))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := security.HashPassword("super-secret")
	require.NoError(t, err)
	second, err := security.HashPassword("super-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
