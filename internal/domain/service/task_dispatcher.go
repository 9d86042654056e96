package service

import "context"

// TaskDispatcher runs best-effort work outside the request that triggered it.
// Dispatch returns immediately; failures of fn are logged, never returned.
type TaskDispatcher interface {
	Dispatch(ctx context.Context, name string, fn func(ctx context.Context) error)
}
