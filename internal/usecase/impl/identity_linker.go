package impl

import (
	"context"
	"log/slog"

	deliverycontext "swiftauth/internal/delivery/context"
	"swiftauth/internal/domain/entity"
	domainerrors "swiftauth/internal/domain/errors"
	"swiftauth/internal/domain/repository"
	"swiftauth/internal/errors"
)

// identityLinker maps a provider identity to a local account, creating the link and
// the account on first sign-in.
type identityLinker struct {
	identities repository.ExternalIdentityRepository
	directory  *accountDirectory
	deps       *componentDeps
}

// externalProfile is the provider-independent view of a signed-in provider user.
type externalProfile struct {
	Subject string
	Email   string
	Name    string
}

// Resolve returns the linked account and whether it was created by this call.
// A lost insert race on the identity or the email is reconciled by resolving once more.
func (l *identityLinker) Resolve(ctx context.Context, provider entity.ProviderType, profile externalProfile) (*entity.Account, bool, error) {
	if profile.Subject == "" || profile.Email == "" {
		return nil, false, domainerrors.ErrInvalidExternalIdentity.WithDetails("provider subject and email are required")
	}

	account, created, err := l.resolveOnce(ctx, provider, profile)
	if errors.IsAny(err, repository.ErrExternalIdentityExists, domainerrors.ErrDuplicateAccount) {
		deliverycontext.LoggerOr(ctx, l.deps.logger).Info("Lost identity link race, resolving again",
			slog.String("provider", provider.String()),
		)

		return l.resolveOnce(ctx, provider, profile)
	}

	return account, created, err
}

func (l *identityLinker) resolveOnce(ctx context.Context, provider entity.ProviderType, profile externalProfile) (*entity.Account, bool, error) {
	identity, err := l.identities.Find(ctx, provider, profile.Subject)
	switch {
	case err == nil:
		account, err := l.directory.FindByID(ctx, identity.AccountID)
		if err != nil {
			return nil, false, err
		}
		if account == nil {
			return nil, false, errors.Wrap(domainerrors.ErrAccountNotFound, "linked account missing")
		}

		return account, false, nil
	case !errors.Is(err, repository.ErrExternalIdentityNotFound):
		return nil, false, errors.Wrap(err, "failed to find external identity")
	}

	account, err := l.directory.FindByEmail(ctx, profile.Email)
	if err != nil {
		return nil, false, err
	}

	created := false
	if account == nil {
		account, err = l.directory.CreateProvisioned(ctx, profile.Email)
		if err != nil {
			return nil, false, err
		}
		created = true
	}

	link := &entity.ExternalIdentity{
		Provider:          provider,
		ProviderSubjectID: profile.Subject,
		AccountID:         account.ID,
		CreatedAt:         l.deps.now(),
	}
	if err := l.identities.Create(ctx, link); err != nil {
		if errors.Is(err, repository.ErrExternalIdentityExists) {
			return nil, false, err
		}

		return nil, false, errors.Wrap(err, "failed to link external identity")
	}

	return account, created, nil
}
