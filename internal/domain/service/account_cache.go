package service

import (
	"context"

	"swiftauth/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountCache is a read-through cache of account lookups by id.
// Misses are reported as a nil account; cache failures must never fail the caller.
//
// Get also returns the fill generation of the id. Set only stores the account while that generation
// is current, so a fill that raced with Invalidate cannot put a stale account back.
type AccountCache interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Account, int64, error)
	Set(ctx context.Context, account *entity.Account, generation int64) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}
