package auth

import (
	"testing"

	"swiftauth/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordHasher(t *testing.T) {
	cfg := &config.Config{}

	hasher, err := NewPasswordHasher(cfg)
	require.NoError(t, err)
	assert.IsType(t, &bcryptHasher{}, hasher)

	cfg.Auth.Hasher = "bcrypt"
	cfg.Auth.BcryptCost = 5
	hasher, err = NewPasswordHasher(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, hasher.(*bcryptHasher).cost)

	cfg.Auth.Hasher = "argon2"
	hasher, err = NewPasswordHasher(cfg)
	require.NoError(t, err)
	assert.IsType(t, &argon2Hasher{}, hasher)

	cfg.Auth.Hasher = "md5"
	_, err = NewPasswordHasher(cfg)
	assert.Error(t, err)
}
