package impl

import (
	"context"
	"log/slog"

	deliverycontext "swiftauth/internal/delivery/context"
	"swiftauth/internal/domain/entity"
	domainerrors "swiftauth/internal/domain/errors"
	"swiftauth/internal/domain/repository"
	"swiftauth/internal/errors"

	"github.com/google/uuid"
)

// refreshTokenStore issues, verifies, rotates and revokes opaque refresh tokens.
// Only the SHA-256 digest of a token value is persisted.
type refreshTokenStore struct {
	repo repository.RefreshTokenRepository
	deps *componentDeps
}

func (s *refreshTokenStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, s.deps.logger)
}

// Create issues a new token for the account. The plaintext is only available on the returned value.
func (s *refreshTokenStore) Create(ctx context.Context, accountID uuid.UUID) (*entity.RefreshToken, error) {
	now := s.deps.now()
	value := s.deps.secrets.OpaqueToken()

	token := &entity.RefreshToken{
		AccountID: accountID,
		TokenHash: hashToken(value),
		Value:     value,
		ExpiresAt: now.Add(s.deps.refreshTTL),
		CreatedAt: now,
	}

	if err := s.repo.Create(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return token, nil
}

// FindByValue returns (nil, nil) when no token matches.
func (s *refreshTokenStore) FindByValue(ctx context.Context, value string) (*entity.RefreshToken, error) {
	if value == "" {
		return nil, nil
	}

	token, err := s.repo.FindByHash(ctx, hashToken(value))
	if errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	return token, nil
}

// VerifyUsable rejects expired tokens, deleting them, and revoked tokens, keeping them so
// reuse after revocation stays distinguishable from a token that never existed.
func (s *refreshTokenStore) VerifyUsable(ctx context.Context, token *entity.RefreshToken) error {
	if token.IsExpired(s.deps.now()) {
		if err := s.repo.Delete(ctx, token.ID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
			s.log(ctx).Warn("Failed to delete expired refresh token", slog.String("tokenID", token.ID.String()), slog.Any("error", err))
		}

		return domainerrors.ErrRefreshTokenExpired
	}
	if token.Revoked {
		return domainerrors.ErrRefreshTokenRevoked
	}

	return nil
}

// Revoke marks the token revoked. Revoking an already revoked token succeeds.
func (s *refreshTokenStore) Revoke(ctx context.Context, value string) error {
	token, err := s.FindByValue(ctx, value)
	if err != nil {
		return err
	}
	if token == nil {
		return domainerrors.ErrRefreshTokenNotFound
	}

	if _, err := s.repo.Revoke(ctx, token.ID); err != nil {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// RevokeAll revokes every token of the account in a single bulk update.
func (s *refreshTokenStore) RevokeAll(ctx context.Context, accountID uuid.UUID) (int64, error) {
	revoked, err := s.repo.RevokeAllByAccountID(ctx, accountID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to revoke refresh tokens")
	}

	return revoked, nil
}

// SweepExpired deletes every expired token, revoked or not. It never fails; errors are logged
// and the next run tries again.
func (s *refreshTokenStore) SweepExpired(ctx context.Context) int64 {
	deleted, err := s.repo.DeleteExpired(ctx, s.deps.now())
	if err != nil {
		s.log(ctx).Error("Failed to sweep expired refresh tokens", slog.Any("error", err))

		return 0
	}

	return deleted
}

func (s *refreshTokenStore) CountActive(ctx context.Context, accountID uuid.UUID) (int64, error) {
	count, err := s.repo.CountActive(ctx, accountID, s.deps.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active refresh tokens")
	}

	return count, nil
}

// Rotate exchanges a usable token for a new one of the same account.
// The revoke is conditional, so of several concurrent rotations of one value only one succeeds;
// the others get ErrRefreshTokenRevoked.
func (s *refreshTokenStore) Rotate(ctx context.Context, value string) (*entity.RefreshToken, error) {
	token, err := s.FindByValue(ctx, value)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, domainerrors.ErrRefreshTokenNotFound
	}

	if err := s.VerifyUsable(ctx, token); err != nil {
		return nil, err
	}

	won, err := s.repo.Revoke(ctx, token.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to revoke rotated refresh token")
	}
	if !won {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenRevoked, "refresh token rotated concurrently")
	}

	return s.Create(ctx, token.AccountID)
}
