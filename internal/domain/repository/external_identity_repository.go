package repository

import (
	"context"
	"errors"

	"swiftauth/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrExternalIdentityNotFound is returned when no link exists for (provider, subject).
	ErrExternalIdentityNotFound = errors.New("external identity not found")
	// ErrExternalIdentityExists is returned when (provider, subject) is already linked.
	ErrExternalIdentityExists = errors.New("external identity already linked")
)

// ExternalIdentityRepository persists links between accounts and identity providers.
type ExternalIdentityRepository interface {
	Create(ctx context.Context, identity *entity.ExternalIdentity) error
	Find(ctx context.Context, provider entity.ProviderType, subjectID string) (*entity.ExternalIdentity, error)
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.ExternalIdentity, error)
}
