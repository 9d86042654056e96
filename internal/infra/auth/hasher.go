package auth

import (
	"swiftauth/config"
	"swiftauth/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	hasherBcrypt = "bcrypt"
	hasherArgon2 = "argon2"
)

// NewPasswordHasher selects the hashing algorithm from auth.hasher.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	switch cfg.Auth.Hasher {
	case "", hasherBcrypt:
		if cfg.Auth.BcryptCost == 0 {
			return NewBcryptHasher(), nil
		}

		return NewBcryptHasherWithCost(cfg.Auth.BcryptCost), nil
	case hasherArgon2:
		return NewArgon2Hasher(DefaultArgon2Params), nil
	default:
		return nil, errors.Errorf("unsupported password hasher %q", cfg.Auth.Hasher)
	}
}
