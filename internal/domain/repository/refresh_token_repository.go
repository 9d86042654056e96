// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"swiftauth/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the interface for refresh token and session management operations.
// This supports multi-device login and remote logout functionality.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a refresh token record by its securely stored hash.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// Delete removes a refresh token by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Revoke flags the token as revoked if it is not already.
	// It reports whether this call performed the transition.
	Revoke(ctx context.Context, id uuid.UUID) (bool, error)

	// RevokeAllByAccountID revokes every unrevoked token of the account in one statement.
	RevokeAllByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error)

	// DeleteExpired removes every token that expired before now, revoked or not.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)

	// CountActive returns the number of unrevoked, unexpired tokens of the account.
	CountActive(ctx context.Context, accountID uuid.UUID, now time.Time) (int64, error)
}
