package repository

import (
	"context"
	"errors"

	"swiftauth/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrRoleNotFound is returned when a role name is not bootstrapped.
	ErrRoleNotFound = errors.New("role not found")
	// ErrRoleAlreadyAssigned is returned when the (account, role) pair already exists.
	ErrRoleAlreadyAssigned = errors.New("role already assigned")
)

// RoleRepository manages the role catalogue and account-role assignments.
type RoleRepository interface {
	// EnsureRoles creates any of the named roles that do not exist yet.
	EnsureRoles(ctx context.Context, names ...entity.Role) error

	FindByName(ctx context.Context, name entity.Role) (*entity.RoleRecord, error)

	// Assign grants a role. It returns ErrRoleAlreadyAssigned without poisoning an enclosing transaction.
	Assign(ctx context.Context, accountID uuid.UUID, name entity.Role) error

	// Remove revokes a role. Removing a role that is not held is not an error.
	Remove(ctx context.Context, accountID uuid.UUID, name entity.Role) error

	HasRole(ctx context.Context, accountID uuid.UUID, name entity.Role) (bool, error)

	ListByAccount(ctx context.Context, accountID uuid.UUID) (entity.Roles, error)
}
