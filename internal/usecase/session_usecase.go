package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SessionUsecase reports on and maintains refresh-token sessions.
type SessionUsecase interface {
	// CountActiveSessions returns the number of usable refresh tokens of the account.
	CountActiveSessions(ctx context.Context, accountID uuid.UUID) (int64, error)

	// SweepExpiredTokens deletes expired tokens. Failures are logged, never returned.
	SweepExpiredTokens(ctx context.Context) int64
}
