package impl

import (
	"context"
	"log/slog"

	deliverycontext "swiftauth/internal/delivery/context"
	"swiftauth/internal/domain/repository"
	"swiftauth/internal/errors"
	"swiftauth/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	deps      *componentDeps
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In
	ComponentParams

	TxManager repository.TransactionManager
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		deps:      newComponentDeps(params.ComponentParams),
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *sessionService) CountActiveSessions(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		count, err = srv.deps.bind(factory).tokens.CountActive(ctx, accountID)

		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active sessions")
	}

	return count, nil
}

// SweepExpiredTokens is called by the scheduler and never fails.
func (srv *sessionService) SweepExpiredTokens(ctx context.Context) int64 {
	logger := deliverycontext.LoggerOr(ctx, srv.logger)

	var deleted int64
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		deleted = srv.deps.bind(factory).tokens.SweepExpired(ctx)

		return nil
	})
	if err != nil {
		logger.Error("Expired token sweep transaction failed", slog.Any("error", err))

		return 0
	}

	logger.Info("Expired refresh tokens swept", slog.Int64("deleted", deleted))

	return deleted
}
