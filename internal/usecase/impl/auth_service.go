package impl

import (
	"context"
	"log/slog"
	"time"

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

// timingPassword is hashed once so logins for unknown emails cost one hash check too.
const timingPassword = "swiftauth-timing-equalizer"

// authService implements the AuthUsecase interface.
type authService struct {
	deps         *componentDeps
	txManager    repository.TransactionManager
	tokenService service.TokenService
	notifier     service.Notifier
	publisher    service.EventPublisher
	dispatcher   service.TaskDispatcher
	idTokens     service.OAuthAuthService
	providers    service.OAuthProviders
	stateStore   service.OAuthStateStore
	stateTTL     time.Duration
	cache        service.AccountCache
	timingHash   string
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In
	ComponentParams

	TxManager  repository.TransactionManager
	Notifier   service.Notifier
	Publisher  service.EventPublisher
	Dispatcher service.TaskDispatcher
	IDTokens   service.OAuthAuthService
	Providers  service.OAuthProviders
	StateStore service.OAuthStateStore
	Cache      service.AccountCache
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	deps := newComponentDeps(params.ComponentParams)

	timingHash, err := deps.hasher.Hash(timingPassword)
	if err != nil {
		params.Logger.Warn("Failed to prepare timing hash", slog.Any("error", err))
	}

	return &authService{
		deps:         deps,
		txManager:    params.TxManager,
		tokenService: params.TokenService,
		notifier:     params.Notifier,
		publisher:    params.Publisher,
		dispatcher:   params.Dispatcher,
		idTokens:     params.IDTokens,
		providers:    params.Providers,
		stateStore:   params.StateStore,
		stateTTL:     params.Config.OAuth2.StateTTL,
		cache:        params.Cache,
		timingHash:   timingHash,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// Register creates the account and its first session in one transaction, then sends the
// activation email and the account-created event in the background.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var output *usecase.AuthOutput
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		c := srv.deps.bind(factory)

		account, err := c.directory.Create(ctx, input.Email, input.Password)
		if err != nil {
			return err
		}

		output, err = srv.issueTokens(ctx, c, account)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register account")
	}

	account := output.Account
	if account.ActivationKey != nil {
		srv.notify(ctx, service.Notification{
			Recipient: account.Email,
			Secret:    *account.ActivationKey,
			Kind:      service.NotificationActivation,
		})
	}
	srv.publishAccountCreated(ctx, account)

	srv.log(ctx).Info("Account registered", slog.String("accountID", account.ID.String()))

	return output, nil
}

// Login verifies the password before the activation state, so a wrong password never reveals
// whether the account is activated.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.findByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if account == nil || !account.HasPassword() {
		// Keep the response time of unknown emails close to that of wrong passwords.
		srv.deps.hasher.Check(input.Password, srv.timingHash)
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "unknown account"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !srv.deps.hasher.Check(input.Password, *account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !account.Activated {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "not activated"))

		return nil, errors.Wrap(domainerrors.ErrAccountNotActivated, "login failed")
	}

	var output *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		c := srv.deps.bind(factory)

		if err := c.directory.TouchLastLogin(ctx, account.ID); err != nil {
			return err
		}

		output, err = srv.issueTokens(ctx, c, account)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	srv.invalidateCache(ctx, account.ID)
	srv.log(ctx).Debug("Account logged in", slog.String("accountID", account.ID.String()))

	return output, nil
}

func (srv *authService) findByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		account, err = srv.deps.bind(factory).directory.FindByEmail(ctx, email)

		return err
	})

	return account, err
}

// Refresh runs the rotation protocol. Every rejection is reported as ErrInvalidToken.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh tokens")

	var output *usecase.AuthOutput
	var rejected error

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		c := srv.deps.bind(factory)

		rotated, err := c.tokens.Rotate(ctx, refreshToken)
		if errors.Is(err, domainerrors.ErrRefreshTokenExpired) {
			// Commit so the expired record deletion sticks.
			rejected = err

			return nil
		}
		if err != nil {
			return err
		}

		account, err := c.directory.FindByID(ctx, rotated.AccountID)
		if err != nil {
			return err
		}
		if account == nil {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "refresh token owner missing")
		}

		accessToken, err := srv.tokenService.IssueAccessToken(account.ID, account.Email, account.Roles.ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to issue access token")
		}

		output = &usecase.AuthOutput{
			AccessToken:  accessToken,
			RefreshToken: rotated.Value,
			Account:      account,
		}

		return nil
	})
	if err == nil {
		err = rejected
	}
	if err != nil {
		srv.log(ctx).Warn("Refresh rejected", slog.Any("error", err))

		if errors.IsAny(err,
			domainerrors.ErrRefreshTokenNotFound,
			domainerrors.ErrRefreshTokenExpired,
			domainerrors.ErrRefreshTokenRevoked,
			domainerrors.ErrAccountNotFound,
		) {
			return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
		}

		return nil, errors.Wrap(err, "failed to execute refresh transaction")
	}

	return output, nil
}

// Logout revokes the presented refresh token.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return srv.deps.bind(factory).tokens.Revoke(ctx, refreshToken)
	})
	if err != nil {
		srv.log(ctx).Warn("Logout failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to log out")
	}

	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// LogoutAllDevices revokes every session of the account.
func (srv *authService) LogoutAllDevices(ctx context.Context, accountID uuid.UUID) error {
	srv.log(ctx).Info("Attempting to log out from all devices", slog.String("accountID", accountID.String()))

	var revoked int64
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		c := srv.deps.bind(factory)

		account, err := c.directory.FindByID(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil {
			return domainerrors.ErrAccountNotFound
		}

		revoked, err = c.tokens.RevokeAll(ctx, accountID)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to log out from all devices")
	}

	srv.log(ctx).Info("Successfully logged out from all devices",
		slog.String("accountID", accountID.String()),
		slog.Int64("revoked", revoked),
	)

	return nil
}

// AuthenticateWithOAuth2 extracts the provider-specific fields and signs the linked account in.
func (srv *authService) AuthenticateWithOAuth2(ctx context.Context, provider entity.ProviderType, attributes map[string]any) (*usecase.AuthOutput, error) {
	extract, ok := attributeExtractors[provider]
	if !ok {
		return nil, domainerrors.ErrUnsupportedProvider.WithDetails(provider.String())
	}

	return srv.signInExternal(ctx, provider, extract(attributes))
}

// AuthenticateWithIDToken verifies a Google ID token and signs the linked account in.
func (srv *authService) AuthenticateWithIDToken(ctx context.Context, idToken string) (*usecase.AuthOutput, error) {
	if srv.idTokens == nil {
		return nil, domainerrors.ErrUnsupportedProvider.WithDetails("id token sign-in is not configured")
	}

	oauthUser, err := srv.idTokens.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	return srv.signInExternal(ctx, srv.idTokens.GetProvider(), profileFromOAuthUser(oauthUser))
}

// BeginOAuth2 stores a fresh state value and returns the consent URL carrying it.
func (srv *authService) BeginOAuth2(ctx context.Context, provider entity.ProviderType) (string, error) {
	client, ok := srv.providers[provider]
	if !ok {
		return "", domainerrors.ErrUnsupportedProvider.WithDetails(provider.String())
	}

	state := srv.deps.secrets.OpaqueToken()
	if err := srv.stateStore.Save(ctx, provider, state, srv.stateTTL); err != nil {
		return "", errors.Wrap(err, "failed to store oauth state")
	}

	return client.BuildAuthorizationURL(state), nil
}

// CompleteOAuth2 consumes the state, exchanges the code for the provider profile and signs in.
func (srv *authService) CompleteOAuth2(ctx context.Context, provider entity.ProviderType, code, state string) (*usecase.AuthOutput, error) {
	client, ok := srv.providers[provider]
	if !ok {
		return nil, domainerrors.ErrUnsupportedProvider.WithDetails(provider.String())
	}

	valid, err := srv.stateStore.Consume(ctx, provider, state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check oauth state")
	}
	if !valid {
		return nil, domainerrors.ErrOAuthStateInvalid
	}

	attributes, err := client.Exchange(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("OAuth code exchange failed", slog.String("provider", provider.String()), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	return srv.AuthenticateWithOAuth2(ctx, provider, attributes)
}

func (srv *authService) signInExternal(ctx context.Context, provider entity.ProviderType, profile externalProfile) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Handling external sign-in", slog.String("provider", provider.String()))

	var output *usecase.AuthOutput
	var created bool

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		c := srv.deps.bind(factory)

		account, isNew, err := c.linker.Resolve(ctx, provider, profile)
		if err != nil {
			return err
		}
		created = isNew

		if err := c.directory.TouchLastLogin(ctx, account.ID); err != nil {
			return err
		}

		output, err = srv.issueTokens(ctx, c, account)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("External sign-in failed", slog.String("provider", provider.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign in with provider")
	}

	if created {
		srv.publishAccountCreated(ctx, output.Account)
	} else {
		srv.invalidateCache(ctx, output.Account.ID)
	}

	return output, nil
}

// VerifyEmail redeems an activation key.
func (srv *authService) VerifyEmail(ctx context.Context, activationKey string) error {
	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		account, err = srv.deps.bind(factory).directory.Activate(ctx, activationKey)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to verify email")
	}

	srv.invalidateCache(ctx, account.ID)
	srv.log(ctx).Info("Account activated", slog.String("accountID", account.ID.String()))

	return nil
}

// RequestPasswordReset hides whether the email exists: an unknown email succeeds silently.
func (srv *authService) RequestPasswordReset(ctx context.Context, email string) error {
	var account *entity.Account
	var secret string

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var err error
		account, secret, err = srv.deps.bind(factory).directory.BeginPasswordReset(ctx, email)

		return err
	})
	if errors.Is(err, domainerrors.ErrAccountNotFound) {
		srv.log(ctx).Info("Password reset requested for unknown email", slog.String("email", email))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to request password reset")
	}

	srv.notify(ctx, service.Notification{
		Recipient: account.Email,
		Secret:    secret,
		Kind:      service.NotificationPasswordReset,
	})

	return nil
}

// CompletePasswordReset sets the new password and ends every existing session.
func (srv *authService) CompletePasswordReset(ctx context.Context, input *usecase.CompletePasswordResetInput) error {
	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		c := srv.deps.bind(factory)

		var err error
		account, err = c.directory.CompletePasswordReset(ctx, input.ResetKey, input.NewPassword)
		if err != nil {
			return err
		}

		_, err = c.tokens.RevokeAll(ctx, account.ID)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to complete password reset")
	}

	srv.log(ctx).Info("Password reset completed", slog.String("accountID", account.ID.String()))

	return nil
}

// CurrentAccount resolves the principal attached to ctx by the auth middleware.
func (srv *authService) CurrentAccount(ctx context.Context) (*entity.Account, error) {
	principal := deliverycontext.PrincipalFrom(ctx)
	if principal == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	account, err := loadAccount(ctx, srv.txManager, srv.deps, srv.cache, principal.AccountID)
	if errors.Is(err, domainerrors.ErrAccountNotFound) {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, "authenticated account no longer exists")
	}

	return account, err
}

func (srv *authService) issueTokens(ctx context.Context, c *components, account *entity.Account) (*usecase.AuthOutput, error) {
	refresh, err := c.tokens.Create(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	accessToken, err := srv.tokenService.IssueAccessToken(account.ID, account.Email, account.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refresh.Value,
		Account:      account,
	}, nil
}

func (srv *authService) notify(ctx context.Context, notification service.Notification) {
	srv.dispatcher.Dispatch(ctx, "notify:"+string(notification.Kind), func(taskCtx context.Context) error {
		return srv.notifier.Notify(taskCtx, notification)
	})
}

func (srv *authService) publishAccountCreated(ctx context.Context, account *entity.Account) {
	event := &entity.AccountCreatedEvent{
		AccountID: account.ID,
		Email:     account.Email,
		Timestamp: account.CreatedAt,
	}

	srv.dispatcher.Dispatch(ctx, "publish:account.created", func(taskCtx context.Context) error {
		return srv.publisher.PublishAccountCreated(taskCtx, event)
	})
}

func (srv *authService) invalidateCache(ctx context.Context, id uuid.UUID) {
	if err := srv.cache.Invalidate(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to invalidate cached account", slog.String("accountID", id.String()), slog.Any("error", err))
	}
}
