// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"encoding/base64"

	"swiftauth/internal/domain/service"
)

const (
	// 192 bits for single-use secrets that travel in email links.
	secretKeyBytes = 24
	// 256 bits for refresh tokens.
	opaqueTokenBytes = 32
)

type randomSecretGenerator struct{}

// NewSecretGenerator returns a generator backed by crypto/rand.
func NewSecretGenerator() service.SecretGenerator {
	return randomSecretGenerator{}
}

func (randomSecretGenerator) ActivationKey() string {
	return randomURLSafeString(secretKeyBytes)
}

func (randomSecretGenerator) ResetKey() string {
	return randomURLSafeString(secretKeyBytes)
}

func (randomSecretGenerator) OpaqueToken() string {
	return randomURLSafeString(opaqueTokenBytes)
}

// randomURLSafeString panics if the system RNG fails; nothing sensible can continue without it.
func randomURLSafeString(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}

	return base64.RawURLEncoding.EncodeToString(b)
}
