// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"swiftauth/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountEmailTaken is returned when the email unique constraint is violated.
	ErrAccountEmailTaken = errors.New("account email already taken")
)

// AccountRepository defines the standard operations for account persistence.
// Lookups return ErrAccountNotFound on a miss.
type AccountRepository interface {
	// Create persists a new account. Roles on the entity are ignored; use RoleRepository.Assign.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account with its roles.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves an account with its roles by exact email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	FindByActivationKey(ctx context.Context, key string) (*entity.Account, error)
	FindByResetKey(ctx context.Context, key string) (*entity.Account, error)

	// List returns a page of accounts ordered by creation time.
	List(ctx context.Context, offset, limit int) ([]*entity.Account, error)

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error

	// UpdateLastLogin records a successful authentication.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// SetResetKey stores a pending reset secret for the account with the given email.
	SetResetKey(ctx context.Context, email, key string) (*entity.Account, error)

	// Activate atomically marks the account holding key as activated and clears the key.
	// Concurrent callers with the same key see exactly one success.
	Activate(ctx context.Context, key string) (*entity.Account, error)

	// ConsumeResetKey atomically replaces the password of the account holding key and clears the key.
	ConsumeResetKey(ctx context.Context, key, passwordHash string) (*entity.Account, error)

	// Delete removes the account. Tokens, identities and role assignments cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
