package postgres

import (
	"context"
	"time"

	"swiftauth/internal/domain/entity"
	domainerrors "swiftauth/internal/domain/errors"
	"swiftauth/internal/domain/repository"
	"swiftauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const rolesAssociation = "Roles"

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create persists a new account inside a savepoint so a duplicate email leaves the enclosing transaction usable.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate account id")
		}
		account.ID = id
	}

	accountM := fromAccountDomain(account)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(accountM).Error
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAccountEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt

	return nil
}

// FindByID retrieves a single account by its unique ID, preloading its roles.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a single account by its email address, preloading its roles.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *accountRepository) FindByActivationKey(ctx context.Context, key string) (*entity.Account, error) {
	return repo.findOne(ctx, "activation_key = ?", key)
}

func (repo *accountRepository) FindByResetKey(ctx context.Context, key string) (*entity.Account, error) {
	return repo.findOne(ctx, "reset_key = ?", key)
}

func (repo *accountRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload(rolesAssociation).
		Where(query, args...).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

// List returns a page of accounts ordered by creation time.
func (repo *accountRepository) List(ctx context.Context, offset, limit int) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload(rolesAssociation).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&accountModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

func (repo *accountRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return repo.updateByID(ctx, id, map[string]any{"password_hash": hash})
}

func (repo *accountRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return repo.updateByID(ctx, id, map[string]any{"last_login_at": at})
}

func (repo *accountRepository) updateByID(ctx context.Context, id uuid.UUID, values map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// SetResetKey stores a pending reset secret, replacing any earlier one.
func (repo *accountRepository) SetResetKey(ctx context.Context, email, key string) (*entity.Account, error) {
	return repo.conditionalUpdate(ctx, "email = ?", email, map[string]any{"reset_key": key})
}

// Activate clears the activation key in the same statement that matches it,
// so only one of several concurrent callers gets a row back.
func (repo *accountRepository) Activate(ctx context.Context, key string) (*entity.Account, error) {
	return repo.conditionalUpdate(ctx, "activation_key = ?", key, map[string]any{
		"activated":      true,
		"activation_key": nil,
	})
}

// ConsumeResetKey sets the new password and clears the reset key in one statement.
func (repo *accountRepository) ConsumeResetKey(ctx context.Context, key, passwordHash string) (*entity.Account, error) {
	return repo.conditionalUpdate(ctx, "reset_key = ?", key, map[string]any{
		"password_hash": passwordHash,
		"reset_key":     nil,
	})
}

func (repo *accountRepository) conditionalUpdate(ctx context.Context, query string, arg any, values map[string]any) (*entity.Account, error) {
	var updated []model.AccountModel
	result := repo.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where(query, arg).
		Updates(values)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "secret collision")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 || len(updated) == 0 {
		return nil, repository.ErrAccountNotFound
	}

	roles, err := NewRoleRepository(repo.db).ListByAccount(ctx, updated[0].ID)
	if err != nil {
		return nil, err
	}

	account := toAccountDomain(&updated[0])
	account.Roles = roles

	return account, nil
}

// Delete removes the account; foreign keys cascade to tokens, identities and role assignments.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AccountModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	roles := make(entity.Roles, 0, len(data.Roles))
	for _, roleM := range data.Roles {
		roles = append(roles, entity.Role(roleM.Name))
	}

	return &entity.Account{
		ID:            data.ID,
		Email:         data.Email,
		PasswordHash:  data.PasswordHash,
		Activated:     data.Activated,
		ActivationKey: data.ActivationKey,
		ResetKey:      data.ResetKey,
		Roles:         roles,
		CreatedAt:     data.CreatedAt,
		LastLoginAt:   data.LastLoginAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel. Roles are not mapped.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:            data.ID,
		Email:         data.Email,
		PasswordHash:  data.PasswordHash,
		Activated:     data.Activated,
		ActivationKey: data.ActivationKey,
		ResetKey:      data.ResetKey,
		CreatedAt:     data.CreatedAt,
		LastLoginAt:   data.LastLoginAt,
	}
}
