package usecase

import (
	"context"

	"swiftauth/internal/domain/entity"

	"github.com/google/uuid"
)

// ListAccountsInput pages through the account directory.
type ListAccountsInput struct {
	Offset int
	Limit  int
}

// AccountUsecase defines administrative operations on accounts.
// Authorization (self or admin) is enforced by the caller.
type AccountUsecase interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	ListAccounts(ctx context.Context, input *ListAccountsInput) ([]*entity.Account, error)

	// ChangePassword replaces the password and revokes every session of the account.
	ChangePassword(ctx context.Context, id uuid.UUID, newPassword string) error

	DeleteAccount(ctx context.Context, id uuid.UUID) error

	// AddRole is a no-op when the role is already held.
	AddRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// RemoveRole is a no-op when the role is not held.
	RemoveRole(ctx context.Context, id uuid.UUID, role entity.Role) error
}
