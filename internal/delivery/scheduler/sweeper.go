// Package scheduler runs periodic maintenance jobs as a delivery.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"swiftauth/config"
	"swiftauth/internal/delivery"
	deliverycontext "swiftauth/internal/delivery/context"
	"swiftauth/internal/usecase"

	"go.uber.org/fx"
)

const defaultSweepInterval = time.Hour

// SweeperParams holds dependencies for the token sweeper, injected by Fx.
type SweeperParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Sessions usecase.SessionUsecase
}

// tokenSweeper deletes expired refresh tokens on a fixed interval.
type tokenSweeper struct {
	enabled  bool
	interval time.Duration
	sessions usecase.SessionUsecase
	logger   *slog.Logger
	stop     chan struct{}
	done     chan struct{}
}

// NewTokenSweeper returns the sweeper delivery. It sweeps every sweeper.interval until the
// application stops.
func NewTokenSweeper(params SweeperParams) delivery.Delivery {
	interval := params.Config.Sweeper.Interval
	if interval <= 0 {
		interval = defaultSweepInterval
	}

	s := &tokenSweeper{
		enabled:  params.Config.Sweeper.Enabled,
		interval: interval,
		sessions: params.Sessions,
		logger:   params.Logger.With(slog.String("job", "token-sweeper")),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: s.shutdown,
	})

	return s
}

func (s *tokenSweeper) Serve(ctx context.Context) error {
	defer close(s.done)

	if !s.enabled {
		s.logger.Info("Token sweeper disabled")

		return nil
	}

	s.logger.Info("Starting token sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *tokenSweeper) sweep(ctx context.Context) {
	s.sessions.SweepExpiredTokens(deliverycontext.WithLogger(ctx, s.logger))
}

// shutdown signals Serve to return and waits for an in-flight sweep.
func (s *tokenSweeper) shutdown(ctx context.Context) error {
	close(s.stop)

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
