package postgres

import (
	"context"

	"swiftauth/internal/domain/entity"
	domainerrors "swiftauth/internal/domain/errors"
	"swiftauth/internal/domain/repository"
	"swiftauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// EnsureRoles inserts missing roles and leaves existing ones untouched.
func (repo *roleRepository) EnsureRoles(ctx context.Context, names ...entity.Role) error {
	for _, name := range names {
		err := repo.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.RoleModel{Name: name.String()}).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create role "+name.String())
		}
	}

	return nil
}

func (repo *roleRepository) FindByName(ctx context.Context, name entity.Role) (*entity.RoleRecord, error) {
	var roleM model.RoleModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name.String()).First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role")
	}

	return &entity.RoleRecord{ID: roleM.ID, Name: entity.Role(roleM.Name)}, nil
}

// Assign inserts the (account, role) pair inside a savepoint.
func (repo *roleRepository) Assign(ctx context.Context, accountID uuid.UUID, name entity.Role) error {
	role, err := repo.FindByName(ctx, name)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&model.AccountRoleModel{AccountID: accountID, RoleID: role.ID}).Error
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRoleAlreadyAssigned
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to assign role")
	}

	return nil
}

func (repo *roleRepository) Remove(ctx context.Context, accountID uuid.UUID, name entity.Role) error {
	role, err := repo.FindByName(ctx, name)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Where("account_id = ? AND role_id = ?", accountID, role.ID).
		Delete(&model.AccountRoleModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove role")
	}

	return nil
}

func (repo *roleRepository) HasRole(ctx context.Context, accountID uuid.UUID, name entity.Role) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AccountRoleModel{}).
		Joins("JOIN roles ON roles.id = account_roles.role_id").
		Where("account_roles.account_id = ? AND roles.name = ?", accountID, name.String()).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check role")
	}

	return count > 0, nil
}

func (repo *roleRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) (entity.Roles, error) {
	var names []string
	err := repo.db.WithContext(ctx).
		Model(&model.RoleModel{}).
		Joins("JOIN account_roles ON account_roles.role_id = roles.id").
		Where("account_roles.account_id = ?", accountID).
		Order("roles.name").
		Pluck("roles.name", &names).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list account roles")
	}

	return entity.RolesFromStrings(names), nil
}
