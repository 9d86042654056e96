// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered identity on the chat platform.
type Account struct {
	ID            uuid.UUID  // The Global Unique Identifier (GUID) for the account.
	Email         string     // Login identifier, unique and compared case-sensitively.
	PasswordHash  *string    // Nil for accounts that can only sign in through a provider.
	Activated     bool       // False until the activation secret is redeemed.
	ActivationKey *string    // Pending activation secret, cleared once used.
	ResetKey      *string    // Pending password-reset secret, cleared once used.
	Roles         Roles      // Names of the roles held by the account.
	CreatedAt     time.Time  // Timestamp of when this account was created.
	LastLoginAt   *time.Time // Last successful authentication, nil if never signed in.
}

// HasPassword reports whether the account can authenticate with a password.
func (a *Account) HasPassword() bool {
	return a.PasswordHash != nil && *a.PasswordHash != ""
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	AccountID uuid.UUID
	Email     string
	Roles     Roles
}

// IsAdmin reports whether the principal holds the administrator role.
func (p *Principal) IsAdmin() bool {
	return p.Roles.Contains(RoleAdmin)
}

// CanActOn reports whether the principal may act on the given account: itself, or any account for an admin.
func (p *Principal) CanActOn(accountID uuid.UUID) bool {
	return p.AccountID == accountID || p.IsAdmin()
}
