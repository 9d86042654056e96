package impl

import (
	"context"
	"log/slog"

	deliverycontext "swiftauth/internal/delivery/context"
	"swiftauth/internal/domain/entity"
	domainerrors "swiftauth/internal/domain/errors"
	"swiftauth/internal/domain/repository"
	"swiftauth/internal/domain/service"
	"swiftauth/internal/errors"
	"swiftauth/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	deps      *componentDeps
	txManager repository.TransactionManager
	cache     service.AccountCache
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In
	ComponentParams

	TxManager repository.TransactionManager
	Cache     service.AccountCache
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		deps:      newComponentDeps(params.ComponentParams),
		txManager: params.TxManager,
		cache:     params.Cache,
		logger:    params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return loadAccount(ctx, srv.txManager, srv.deps, srv.cache, id)
}

func (srv *accountService) ListAccounts(ctx context.Context, input *usecase.ListAccountsInput) ([]*entity.Account, error) {
	offset := max(input.Offset, 0)
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)

	var accounts []*entity.Account
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		accounts, err = srv.deps.bind(factory).directory.List(ctx, offset, limit)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// ChangePassword replaces the password and revokes every session, like a completed reset.
func (srv *accountService) ChangePassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		c := srv.deps.bind(factory)

		if err := c.directory.UpdatePassword(ctx, id, newPassword); err != nil {
			return err
		}

		_, err := c.tokens.RevokeAll(ctx, id)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to change password")
	}

	srv.log(ctx).Info("Password changed", slog.String("accountID", id.String()))

	return nil
}

func (srv *accountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return srv.deps.bind(factory).directory.Delete(ctx, id)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	srv.invalidate(ctx, id)
	srv.log(ctx).Info("Account deleted", slog.String("accountID", id.String()))

	return nil
}

func (srv *accountService) AddRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return srv.deps.bind(factory).directory.AddRole(ctx, id, role)
	})
	if err != nil {
		return errors.Wrap(err, "failed to add role")
	}

	srv.invalidate(ctx, id)

	return nil
}

func (srv *accountService) RemoveRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return srv.deps.bind(factory).directory.RemoveRole(ctx, id, role)
	})
	if err != nil {
		return errors.Wrap(err, "failed to remove role")
	}

	srv.invalidate(ctx, id)

	return nil
}

func (srv *accountService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := srv.cache.Invalidate(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to invalidate cached account", slog.String("accountID", id.String()), slog.Any("error", err))
	}
}

// loadAccount reads through the account cache. Cache failures only cost a database read.
func loadAccount(ctx context.Context, txManager repository.TransactionManager, deps *componentDeps, cache service.AccountCache, id uuid.UUID) (*entity.Account, error) {
	logger := deliverycontext.LoggerOr(ctx, deps.logger)

	cached, generation, err := cache.Get(ctx, id)
	fill := err == nil
	if err != nil {
		logger.Warn("Account cache read failed", slog.String("accountID", id.String()), slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	var account *entity.Account
	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		account, err = deps.bind(factory).directory.FindByID(ctx, id)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}
	if account == nil {
		return nil, domainerrors.ErrAccountNotFound
	}

	// Without a generation from Get the fill could not be fenced against Invalidate.
	if !fill {
		return account, nil
	}
	if err := cache.Set(ctx, account, generation); err != nil {
		logger.Warn("Account cache write failed", slog.String("accountID", id.String()), slog.Any("error", err))
	}

	return account, nil
}
