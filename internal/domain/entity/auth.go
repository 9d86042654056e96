// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies a third-party identity provider.
type ProviderType string

const (
	ProviderGoogle   ProviderType = "google"
	ProviderFacebook ProviderType = "facebook"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// ParseProviderType normalizes a provider name coming from a URL or request body.
func ParseProviderType(s string) (ProviderType, bool) {
	switch ProviderType(s) {
	case ProviderGoogle, ProviderFacebook:
		return ProviderType(s), true
	default:
		return "", false
	}
}

// ExternalIdentity links an account to the subject id a provider knows it by.
type ExternalIdentity struct {
	ID                uuid.UUID    // The unique ID for this link.
	Provider          ProviderType // The identity provider, e.g. "google".
	ProviderSubjectID string       // The account's id at the provider (Google's 'sub', Facebook's 'id').
	AccountID         uuid.UUID    // The linked account.
	CreatedAt         time.Time    // Timestamp of when the provider was linked.
}

// RefreshToken represents a long-lived, authorized session.
// It is used to obtain a new access token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	AccountID uuid.UUID // Links this session to the Account it belongs to.
	TokenHash string    // SHA-256 hash of the opaque token; the plaintext is never stored.
	Value     string    // Plaintext opaque token. Only set on the instance returned at creation.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	Revoked   bool      // Set when the token is rotated or the session is logged out.
	CreatedAt time.Time // Timestamp of when this session was created.
}

// IsExpired reports whether the token expired at or before now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// IsUsable reports whether the token can still be exchanged.
func (t *RefreshToken) IsUsable(now time.Time) bool {
	return !t.Revoked && !t.IsExpired(now)
}

// AccountCreatedEvent is published after a new account is committed.
type AccountCreatedEvent struct {
	AccountID uuid.UUID `json:"accountId"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}
