// Package async runs best-effort side effects (emails, events) after the request that caused them.
package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "swiftauth/internal/delivery/context"
	"swiftauth/internal/domain/lifecycle"
	"swiftauth/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the dispatcher, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Logger *slog.Logger
}

type dispatcher struct {
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	timeout time.Duration
	logger  *slog.Logger
}

// NewDispatcher creates a TaskDispatcher whose in-flight tasks are drained on shutdown.
func NewDispatcher(params Params) service.TaskDispatcher {
	d := newDispatcher(lifecycle.DefaultTimeout, params.Logger)

	params.Append(fx.Hook{
		OnStop: d.Drain,
	})

	return d
}

func newDispatcher(timeout time.Duration, logger *slog.Logger) *dispatcher {
	return &dispatcher{timeout: timeout, logger: logger}
}

// Dispatch runs fn on its own goroutine. The task keeps the request's values (request id, logger)
// but not its cancellation, and is bounded by the dispatcher timeout.
func (d *dispatcher) Dispatch(ctx context.Context, name string, fn func(ctx context.Context) error) {
	logger := deliverycontext.LoggerOr(ctx, d.logger)

	d.mu.RLock()
	if d.closed {
		d.mu.RUnlock()
		logger.Warn("Dispatcher is shutting down, dropping task", slog.String("task", name))

		return
	}
	d.wg.Add(1)
	d.mu.RUnlock()

	taskCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)

	go func() {
		defer d.wg.Done()
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Background task panicked", slog.String("task", name), slog.Any("panic", r))
			}
		}()

		if err := fn(taskCtx); err != nil {
			logger.Warn("Background task failed", slog.String("task", name), slog.Any("error", err))

			return
		}
		logger.Debug("Background task completed", slog.String("task", name))
	}()
}

// Drain rejects new tasks and waits for in-flight ones until ctx is done.
func (d *dispatcher) Drain(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "background tasks did not finish before shutdown")
	}
}
