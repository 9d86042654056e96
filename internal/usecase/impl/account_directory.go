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

// accountDirectory is CRUD over accounts plus role assignment.
// Finders return (nil, nil) on a miss; mutators report domain errors.
type accountDirectory struct {
	accounts repository.AccountRepository
	roles    repository.RoleRepository
	deps     *componentDeps
}

func (d *accountDirectory) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, d.deps.logger)
}

// Create registers an unactivated password account holding the default role.
func (d *accountDirectory) Create(ctx context.Context, email, password string) (*entity.Account, error) {
	if err := d.deps.policy.Validate(password); err != nil {
		return nil, err
	}

	hash, err := d.deps.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	activationKey := d.deps.secrets.ActivationKey()
	account := &entity.Account{
		Email:         email,
		PasswordHash:  &hash,
		Activated:     false,
		ActivationKey: &activationKey,
		CreatedAt:     d.deps.now(),
	}

	return d.insert(ctx, account)
}

// CreateProvisioned registers an activated account for a provider-verified email.
// The random password is never disclosed, so the account can only sign in through the provider
// until a password reset.
func (d *accountDirectory) CreateProvisioned(ctx context.Context, email string) (*entity.Account, error) {
	hash, err := d.deps.hasher.Hash(d.deps.secrets.OpaqueToken())
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash provisioned password")
	}

	account := &entity.Account{
		Email:        email,
		PasswordHash: &hash,
		Activated:    true,
		CreatedAt:    d.deps.now(),
	}

	return d.insert(ctx, account)
}

func (d *accountDirectory) insert(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	existing, err := d.FindByEmail(ctx, account.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Wrap(domainerrors.ErrDuplicateAccount, "email already registered")
	}

	if err := d.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountEmailTaken) {
			return nil, errors.Wrap(domainerrors.ErrDuplicateAccount, "email registered concurrently")
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	account.Roles = d.assignDefaultRole(ctx, account.ID)

	return account, nil
}

// assignDefaultRole never fails account creation; a roleless account is logged for repair.
func (d *accountDirectory) assignDefaultRole(ctx context.Context, accountID uuid.UUID) entity.Roles {
	role := d.deps.defaultRole
	err := d.roles.Assign(ctx, accountID, role)
	if err == nil || errors.Is(err, repository.ErrRoleAlreadyAssigned) {
		return entity.Roles{role}
	}

	d.log(ctx).Error("Failed to assign default role, account left without roles",
		slog.String("accountID", accountID.String()),
		slog.String("role", role.String()),
		slog.Any("error", err),
	)

	return entity.Roles{}
}

func (d *accountDirectory) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return optionalAccount(d.accounts.FindByID(ctx, id))
}

func (d *accountDirectory) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return optionalAccount(d.accounts.FindByEmail(ctx, email))
}

func (d *accountDirectory) FindByActivationSecret(ctx context.Context, secret string) (*entity.Account, error) {
	return optionalAccount(d.accounts.FindByActivationKey(ctx, secret))
}

func (d *accountDirectory) FindByResetSecret(ctx context.Context, secret string) (*entity.Account, error) {
	return optionalAccount(d.accounts.FindByResetKey(ctx, secret))
}

func optionalAccount(account *entity.Account, err error) (*entity.Account, error) {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}

// List returns a page of accounts.
func (d *accountDirectory) List(ctx context.Context, offset, limit int) ([]*entity.Account, error) {
	accounts, err := d.accounts.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

func (d *accountDirectory) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	if err := d.deps.policy.Validate(password); err != nil {
		return err
	}

	hash, err := d.deps.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	if err := d.accounts.UpdatePasswordHash(ctx, id, hash); err != nil {
		return accountMutationError(err, "failed to update password")
	}

	return nil
}

func (d *accountDirectory) Delete(ctx context.Context, id uuid.UUID) error {
	if err := d.accounts.Delete(ctx, id); err != nil {
		return accountMutationError(err, "failed to delete account")
	}

	return nil
}

func (d *accountDirectory) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	if err := d.accounts.UpdateLastLogin(ctx, id, d.deps.now()); err != nil {
		return accountMutationError(err, "failed to record last login")
	}

	return nil
}

// Activate redeems an activation secret. A second call with the same secret fails because
// the first one cleared it.
func (d *accountDirectory) Activate(ctx context.Context, secret string) (*entity.Account, error) {
	if secret == "" {
		return nil, domainerrors.ErrActivationKeyNotFound
	}

	account, err := d.accounts.Activate(ctx, secret)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(domainerrors.ErrActivationKeyNotFound, "activation key not held by any account")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to activate account")
	}

	return account, nil
}

// BeginPasswordReset stores a fresh reset secret, replacing any pending one, and returns it
// so the caller can deliver it.
func (d *accountDirectory) BeginPasswordReset(ctx context.Context, email string) (*entity.Account, string, error) {
	secret := d.deps.secrets.ResetKey()

	account, err := d.accounts.SetResetKey(ctx, email, secret)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, "", errors.Wrap(domainerrors.ErrAccountNotFound, "no account for reset email")
	}
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to store reset key")
	}

	return account, secret, nil
}

// CompletePasswordReset redeems a reset secret and sets the new password in one step.
func (d *accountDirectory) CompletePasswordReset(ctx context.Context, secret, password string) (*entity.Account, error) {
	if secret == "" {
		return nil, domainerrors.ErrResetKeyInvalid
	}
	if err := d.deps.policy.Validate(password); err != nil {
		return nil, err
	}

	hash, err := d.deps.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	account, err := d.accounts.ConsumeResetKey(ctx, secret, hash)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(domainerrors.ErrResetKeyInvalid, "reset key not held by any account")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to complete password reset")
	}

	return account, nil
}

// AddRole grants a role; granting a held role is a no-op.
func (d *accountDirectory) AddRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	if err := d.requireAccountAndRole(ctx, id, role); err != nil {
		return err
	}

	held, err := d.HasRole(ctx, id, role)
	if err != nil {
		return err
	}
	if held {
		return nil
	}

	err = d.roles.Assign(ctx, id, role)
	switch {
	case err == nil, errors.Is(err, repository.ErrRoleAlreadyAssigned):
		return nil
	case errors.Is(err, repository.ErrAccountNotFound):
		return errors.Wrap(domainerrors.ErrAccountNotFound, "account deleted while assigning role")
	default:
		return errors.Wrap(err, "failed to assign role")
	}
}

// RemoveRole revokes a role; revoking a role that is not held is a no-op.
func (d *accountDirectory) RemoveRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	if err := d.requireAccountAndRole(ctx, id, role); err != nil {
		return err
	}

	if err := d.roles.Remove(ctx, id, role); err != nil {
		return errors.Wrap(err, "failed to remove role")
	}

	return nil
}

func (d *accountDirectory) HasRole(ctx context.Context, id uuid.UUID, role entity.Role) (bool, error) {
	held, err := d.roles.HasRole(ctx, id, role)
	if err != nil {
		return false, errors.Wrap(err, "failed to check role")
	}

	return held, nil
}

func (d *accountDirectory) requireAccountAndRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	account, err := d.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if account == nil {
		return domainerrors.ErrAccountNotFound
	}

	if _, err := d.roles.FindByName(ctx, role); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return domainerrors.ErrRoleNotFound.WithDetails(role.String())
		}

		return errors.Wrap(err, "failed to find role")
	}

	return nil
}

func accountMutationError(err error, message string) error {
	if errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(domainerrors.ErrAccountNotFound, message)
	}

	return errors.Wrap(err, message)
}
