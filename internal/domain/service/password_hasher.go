// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	// A malformed hash never matches.
	Check(password, hash string) bool
}

// PasswordPolicy rejects passwords that do not meet the configured strength rules.
type PasswordPolicy interface {
	Validate(password string) error
}

// SecretGenerator produces unguessable URL-safe strings.
type SecretGenerator interface {
	// ActivationKey returns a single-use account activation secret.
	ActivationKey() string
	// ResetKey returns a single-use password-reset secret.
	ResetKey() string
	// OpaqueToken returns a refresh token value.
	OpaqueToken() string
}
