package postgres

import (
	"context"

	"swiftauth/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type transactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is provided to Fx as the repository.TransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute runs fn in one transaction. An error or panic from fn rolls it back and the error is
// returned unwrapped so callers can match domain errors.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}

	return errors.Wrap(err, "transaction")
}

// txRepositories hands out repositories bound to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewAccountRepository() repository.AccountRepository {
	return NewAccountRepository(r.tx)
}

func (r txRepositories) NewRoleRepository() repository.RoleRepository {
	return NewRoleRepository(r.tx)
}

func (r txRepositories) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(r.tx)
}

func (r txRepositories) NewExternalIdentityRepository() repository.ExternalIdentityRepository {
	return NewExternalIdentityRepository(r.tx)
}
