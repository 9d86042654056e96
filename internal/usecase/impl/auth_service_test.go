package impl

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"testing"
	"time"

	deliverycontext "swiftauth/internal/delivery/context"
	"swiftauth/internal/domain/entity"
	domainerrors "swiftauth/internal/domain/errors"
	"swiftauth/internal/domain/repository"
	"swiftauth/internal/domain/service"
	"swiftauth/internal/errors"
	"swiftauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct-horse-battery"

// registerActivated registers an account and redeems its activation key.
func registerActivated(t *testing.T, env *testEnv, email string) *usecase.AuthOutput {
	t.Helper()

	ctx := context.Background()
	output, err := env.auth.Register(ctx, &usecase.RegisterInput{Email: email, Password: testPassword})
	require.NoError(t, err)

	notification, ok := env.notifier.last(service.NotificationActivation)
	require.True(t, ok)
	require.NoError(t, env.auth.VerifyEmail(ctx, notification.Secret))

	return output
}

func TestAuthService_Register(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	output, err := env.auth.Register(ctx, &usecase.RegisterInput{Email: "ada@example.com", Password: testPassword})
	require.NoError(t, err)

	account := output.Account
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.False(t, account.Activated)
	assert.Equal(t, entity.Roles{entity.RoleUser}, account.Roles)
	require.NotNil(t, account.ActivationKey)
	assert.NotEmpty(t, output.RefreshToken)

	claims, err := env.tokens.Verify(output.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, []string{"ROLE_USER"}, claims.Roles)

	notification, ok := env.notifier.last(service.NotificationActivation)
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", notification.Recipient)
	assert.Equal(t, *account.ActivationKey, notification.Secret)

	require.Equal(t, 1, env.publisher.count())
	assert.Equal(t, account.ID, env.publisher.events[0].AccountID)
	assert.Equal(t, account.CreatedAt, env.publisher.events[0].Timestamp)
	assert.Equal(t, []string{"notify:activation", "publish:account.created"}, env.dispatcher.names)
}

func TestAuthService_RegisterRejections(t *testing.T) {
	t.Run("duplicate email", func(t *testing.T) {
		env := newTestEnv()
		ctx := context.Background()

		_, err := env.auth.Register(ctx, &usecase.RegisterInput{Email: "dup@example.com", Password: testPassword})
		require.NoError(t, err)

		_, err = env.auth.Register(ctx, &usecase.RegisterInput{Email: "dup@example.com", Password: testPassword})
		require.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)
		assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
		assert.Equal(t, 1, env.publisher.count())
	})

	t.Run("weak password", func(t *testing.T) {
		env := newTestEnv()

		_, err := env.auth.Register(context.Background(), &usecase.RegisterInput{Email: "weak@example.com", Password: "short"})
		require.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
		assert.Empty(t, env.store.accounts)
		assert.Empty(t, env.notifier.sent)
	})

	t.Run("side effect failures do not fail registration", func(t *testing.T) {
		env := newTestEnv()
		env.notifier.err = errors.New("smtp down")
		env.publisher.err = errors.New("broker down")

		_, err := env.auth.Register(context.Background(), &usecase.RegisterInput{Email: "ok@example.com", Password: testPassword})
		require.NoError(t, err)
		assert.Len(t, env.dispatcher.errs, 2)
		assert.Len(t, env.store.accounts, 1)
	})

	t.Run("default role failure keeps the account", func(t *testing.T) {
		env := newTestEnv()
		env.store.assignErr = errors.New("role table locked")

		output, err := env.auth.Register(context.Background(), &usecase.RegisterInput{Email: "norole@example.com", Password: testPassword})
		require.NoError(t, err)
		assert.Empty(t, output.Account.Roles)
	})
}

func TestAuthService_ConcurrentRegisterSameEmail(t *testing.T) {
	env := newTestEnv()

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.auth.Register(context.Background(), &usecase.RegisterInput{Email: "race@example.com", Password: testPassword})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++

			continue
		}
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, env.store.accounts, 1)
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.auth.Register(ctx, &usecase.RegisterInput{Email: "grace@example.com", Password: testPassword})
	require.NoError(t, err)

	// Password is checked before activation so a wrong guess reveals nothing.
	_, err = env.auth.Login(ctx, &usecase.LoginInput{Email: "grace@example.com", Password: "wrong-password"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = env.auth.Login(ctx, &usecase.LoginInput{Email: "grace@example.com", Password: testPassword})
	require.ErrorIs(t, err, domainerrors.ErrAccountNotActivated)
	assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))

	_, err = env.auth.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: testPassword})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	notification, ok := env.notifier.last(service.NotificationActivation)
	require.True(t, ok)
	require.NoError(t, env.auth.VerifyEmail(ctx, notification.Secret))

	env.clock.Advance(time.Hour)
	output, err := env.auth.Login(ctx, &usecase.LoginInput{Email: "grace@example.com", Password: testPassword})
	require.NoError(t, err)
	assert.True(t, output.Account.Activated)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)

	stored, err := env.store.NewAccountRepository().FindByID(ctx, output.Account.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLoginAt)
	assert.Equal(t, env.clock.Now(), *stored.LastLoginAt)
}

func TestAuthService_VerifyEmailIsSingleUse(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.auth.Register(ctx, &usecase.RegisterInput{Email: "once@example.com", Password: testPassword})
	require.NoError(t, err)
	notification, _ := env.notifier.last(service.NotificationActivation)

	require.NoError(t, env.auth.VerifyEmail(ctx, notification.Secret))

	err = env.auth.VerifyEmail(ctx, notification.Secret)
	require.ErrorIs(t, err, domainerrors.ErrActivationKeyNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))

	require.ErrorIs(t, env.auth.VerifyEmail(ctx, ""), domainerrors.ErrActivationKeyNotFound)
}

func TestAuthService_RefreshRotates(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	first := registerActivated(t, env, "rotate@example.com")

	second, err := env.auth.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Equal(t, first.Account.ID, second.Account.ID)
	assert.True(t, second.Account.Activated)

	// The presented token is single-use.
	_, err = env.auth.Refresh(ctx, first.RefreshToken)
	require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.Equal(t, domainerrors.KindInvalidCredential, domainerrors.KindOf(err))

	_, err = env.auth.Refresh(ctx, second.RefreshToken)
	require.NoError(t, err)

	_, err = env.auth.Refresh(ctx, "never-issued")
	require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_ConcurrentRefreshSingleWinner(t *testing.T) {
	env := newTestEnv()
	issued := registerActivated(t, env, "concurrent@example.com")

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.auth.Refresh(context.Background(), issued.RefreshToken)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++

			continue
		}
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	}
	assert.Equal(t, 1, succeeded)
}

func TestAuthService_RefreshExpiredDeletesToken(t *testing.T) {
	env := newTestEnv()
	issued := registerActivated(t, env, "expired@example.com")
	require.NotNil(t, env.store.storedToken(issued.RefreshToken))

	env.clock.Advance(env.cfg.Token.RefreshTTL)

	_, err := env.auth.Refresh(context.Background(), issued.RefreshToken)
	require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.Nil(t, env.store.storedToken(issued.RefreshToken))
}

func TestAuthService_Logout(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	issued := registerActivated(t, env, "logout@example.com")

	require.NoError(t, env.auth.Logout(ctx, issued.RefreshToken))
	assert.True(t, env.store.storedToken(issued.RefreshToken).Revoked)

	// Revoking twice is fine; an unknown token is not.
	require.NoError(t, env.auth.Logout(ctx, issued.RefreshToken))
	require.ErrorIs(t, env.auth.Logout(ctx, "unknown"), domainerrors.ErrRefreshTokenNotFound)

	_, err := env.auth.Refresh(ctx, issued.RefreshToken)
	require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_LogoutAllDevices(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	alice := registerActivated(t, env, "alice@example.com")
	bob := registerActivated(t, env, "bob@example.com")
	for range 2 {
		_, err := env.auth.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: testPassword})
		require.NoError(t, err)
	}
	require.Equal(t, 3, env.store.tokenCount(alice.Account.ID, env.clock.Now()))

	require.NoError(t, env.auth.LogoutAllDevices(ctx, alice.Account.ID))

	assert.Equal(t, 0, env.store.tokenCount(alice.Account.ID, env.clock.Now()))
	assert.Equal(t, 1, env.store.tokenCount(bob.Account.ID, env.clock.Now()))

	_, err := env.auth.Refresh(ctx, bob.RefreshToken)
	require.NoError(t, err)

	require.ErrorIs(t, env.auth.LogoutAllDevices(ctx, uuid.New()), domainerrors.ErrAccountNotFound)
}

func TestAuthService_AuthenticateWithOAuth2(t *testing.T) {
	t.Run("first sign-in provisions an activated account", func(t *testing.T) {
		env := newTestEnv()
		ctx := context.Background()
		attributes := map[string]any{"id": float64(1234567890), "email": "fb@example.com", "name": "FB User"}

		first, err := env.auth.AuthenticateWithOAuth2(ctx, entity.ProviderFacebook, attributes)
		require.NoError(t, err)
		assert.True(t, first.Account.Activated)
		assert.Equal(t, entity.Roles{entity.RoleUser}, first.Account.Roles)
		assert.Equal(t, 1, env.publisher.count())

		identity, err := env.store.NewExternalIdentityRepository().Find(ctx, entity.ProviderFacebook, "1234567890")
		require.NoError(t, err)
		assert.Equal(t, first.Account.ID, identity.AccountID)

		second, err := env.auth.AuthenticateWithOAuth2(ctx, entity.ProviderFacebook, attributes)
		require.NoError(t, err)
		assert.Equal(t, first.Account.ID, second.Account.ID)
		assert.Equal(t, 1, env.publisher.count(), "returning users are not announced again")
	})

	t.Run("links to an existing account with the same email", func(t *testing.T) {
		env := newTestEnv()
		ctx := context.Background()
		existing := registerActivated(t, env, "linked@example.com")

		output, err := env.auth.AuthenticateWithOAuth2(ctx, entity.ProviderGoogle, map[string]any{"sub": "g-1", "email": "linked@example.com"})
		require.NoError(t, err)
		assert.Equal(t, existing.Account.ID, output.Account.ID)
		assert.Len(t, env.store.accounts, 1)

		_, err = env.auth.Login(ctx, &usecase.LoginInput{Email: "linked@example.com", Password: testPassword})
		require.NoError(t, err, "the password keeps working after linking")
	})

	t.Run("rejects incomplete profiles", func(t *testing.T) {
		env := newTestEnv()

		_, err := env.auth.AuthenticateWithOAuth2(context.Background(), entity.ProviderGoogle, map[string]any{"sub": "g-2"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidExternalIdentity)
		assert.Empty(t, env.store.accounts)
	})

	t.Run("rejects unknown providers", func(t *testing.T) {
		env := newTestEnv()

		_, err := env.auth.AuthenticateWithOAuth2(context.Background(), entity.ProviderType("github"), map[string]any{})
		require.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)
	})
}

func TestAuthService_AuthenticateWithIDToken(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.idTokens.user = &service.OAuthUser{ID: "google-sub", Email: "idtoken@example.com", Provider: entity.ProviderGoogle}
	output, err := env.auth.AuthenticateWithIDToken(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, "idtoken@example.com", output.Account.Email)

	env.idTokens.err = errors.New("bad audience")
	_, err = env.auth.AuthenticateWithIDToken(ctx, "id-token")
	require.ErrorIs(t, err, domainerrors.ErrOAuthFailed)

	env.auth.idTokens = nil
	_, err = env.auth.AuthenticateWithIDToken(ctx, "id-token")
	require.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)
}

func TestAuthService_AuthorizationCodeFlow(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.provider.attributes = map[string]any{"id": "fb-42", "email": "flow@example.com"}

	consentURL, err := env.auth.BeginOAuth2(ctx, entity.ProviderFacebook)
	require.NoError(t, err)
	parsed, err := url.Parse(consentURL)
	require.NoError(t, err)
	state := parsed.Query().Get("state")
	require.NotEmpty(t, state)

	output, err := env.auth.CompleteOAuth2(ctx, entity.ProviderFacebook, "code", state)
	require.NoError(t, err)
	assert.Equal(t, "flow@example.com", output.Account.Email)

	_, err = env.auth.CompleteOAuth2(ctx, entity.ProviderFacebook, "code", state)
	require.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid, "state is single-use")

	_, err = env.auth.BeginOAuth2(ctx, entity.ProviderGoogle)
	require.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)

	consentURL, err = env.auth.BeginOAuth2(ctx, entity.ProviderFacebook)
	require.NoError(t, err)
	parsed, _ = url.Parse(consentURL)
	env.provider.err = errors.New("code expired")
	_, err = env.auth.CompleteOAuth2(ctx, entity.ProviderFacebook, "code", parsed.Query().Get("state"))
	require.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}

func TestAuthService_ExpiredOAuthState(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	consentURL, err := env.auth.BeginOAuth2(ctx, entity.ProviderFacebook)
	require.NoError(t, err)
	parsed, _ := url.Parse(consentURL)

	env.clock.Advance(env.cfg.OAuth2.StateTTL + time.Second)

	_, err = env.auth.CompleteOAuth2(ctx, entity.ProviderFacebook, "code", parsed.Query().Get("state"))
	require.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
}

func TestAuthService_PasswordReset(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	issued := registerActivated(t, env, "reset@example.com")

	require.NoError(t, env.auth.RequestPasswordReset(ctx, "unknown@example.com"))
	_, sent := env.notifier.last(service.NotificationPasswordReset)
	assert.False(t, sent, "unknown emails get no message")

	require.NoError(t, env.auth.RequestPasswordReset(ctx, "reset@example.com"))
	notification, sent := env.notifier.last(service.NotificationPasswordReset)
	require.True(t, sent)
	assert.Equal(t, "reset@example.com", notification.Recipient)

	err := env.auth.CompletePasswordReset(ctx, &usecase.CompletePasswordResetInput{ResetKey: notification.Secret, NewPassword: "short"})
	require.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

	const newPassword = "a-brand-new-secret"
	err = env.auth.CompletePasswordReset(ctx, &usecase.CompletePasswordResetInput{ResetKey: notification.Secret, NewPassword: newPassword})
	require.NoError(t, err)

	err = env.auth.CompletePasswordReset(ctx, &usecase.CompletePasswordResetInput{ResetKey: notification.Secret, NewPassword: newPassword})
	require.ErrorIs(t, err, domainerrors.ErrResetKeyInvalid)

	_, err = env.auth.Refresh(ctx, issued.RefreshToken)
	require.ErrorIs(t, err, domainerrors.ErrInvalidToken, "a reset ends existing sessions")

	_, err = env.auth.Login(ctx, &usecase.LoginInput{Email: "reset@example.com", Password: testPassword})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = env.auth.Login(ctx, &usecase.LoginInput{Email: "reset@example.com", Password: newPassword})
	require.NoError(t, err)
}

func TestAuthService_RequestPasswordResetReplacesPendingKey(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	registerActivated(t, env, "twice@example.com")

	require.NoError(t, env.auth.RequestPasswordReset(ctx, "twice@example.com"))
	first, _ := env.notifier.last(service.NotificationPasswordReset)
	require.NoError(t, env.auth.RequestPasswordReset(ctx, "twice@example.com"))
	second, _ := env.notifier.last(service.NotificationPasswordReset)
	require.NotEqual(t, first.Secret, second.Secret)

	err := env.auth.CompletePasswordReset(ctx, &usecase.CompletePasswordResetInput{ResetKey: first.Secret, NewPassword: "another-long-secret"})
	require.ErrorIs(t, err, domainerrors.ErrResetKeyInvalid)
}

func TestAuthService_CurrentAccount(t *testing.T) {
	env := newTestEnv()
	issued := registerActivated(t, env, "me@example.com")

	_, err := env.auth.CurrentAccount(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)

	ctx := deliverycontext.WithPrincipal(context.Background(), &entity.Principal{
		AccountID: issued.Account.ID,
		Email:     issued.Account.Email,
		Roles:     issued.Account.Roles,
	})
	account, err := env.auth.CurrentAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, issued.Account.ID, account.ID)
	assert.True(t, account.Activated)

	require.NoError(t, env.accounts.DeleteAccount(context.Background(), issued.Account.ID))
	_, err = env.auth.CurrentAccount(ctx)
	require.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestAuthService_ManyAccountsKeepSeparateSessions(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	outputs := make([]*usecase.AuthOutput, 3)
	for i := range outputs {
		outputs[i] = registerActivated(t, env, fmt.Sprintf("user%d@example.com", i))
	}

	require.NoError(t, env.auth.LogoutAllDevices(ctx, outputs[1].Account.ID))

	for i, output := range outputs {
		_, err := env.auth.Refresh(ctx, output.RefreshToken)
		if i == 1 {
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

			continue
		}
		assert.NoError(t, err)
	}
}

func TestAuthService_RegisterRollsBackWhenSessionFails(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.store.tokenCreateErr = errors.New("disk full")

	_, err := env.auth.Register(ctx, &usecase.RegisterInput{Email: "atomic@example.com", Password: testPassword})
	require.Error(t, err)

	_, err = env.store.NewAccountRepository().FindByEmail(ctx, "atomic@example.com")
	require.ErrorIs(t, err, repository.ErrAccountNotFound, "the account insert is rolled back")
	assert.Empty(t, env.store.accountRoles)
	assert.Zero(t, env.publisher.count())
	_, sent := env.notifier.last(service.NotificationActivation)
	assert.False(t, sent, "no activation mail for a rolled back account")

	env.store.tokenCreateErr = nil
	_, err = env.auth.Register(ctx, &usecase.RegisterInput{Email: "atomic@example.com", Password: testPassword})
	require.NoError(t, err, "the email is still free")
}

func TestAuthService_RefreshRollsBackRevocation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	issued := registerActivated(t, env, "rotate-fail@example.com")

	env.store.tokenCreateErr = errors.New("disk full")
	_, err := env.auth.Refresh(ctx, issued.RefreshToken)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidToken)

	stored := env.store.storedToken(issued.RefreshToken)
	require.NotNil(t, stored)
	assert.False(t, stored.Revoked, "a failed rotation leaves the presented token usable")

	env.store.tokenCreateErr = nil
	rotated, err := env.auth.Refresh(ctx, issued.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, issued.RefreshToken, rotated.RefreshToken)
}

func TestAuthService_CompletePasswordResetRollsBack(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	issued := registerActivated(t, env, "reset-fail@example.com")

	require.NoError(t, env.auth.RequestPasswordReset(ctx, "reset-fail@example.com"))
	notification, sent := env.notifier.last(service.NotificationPasswordReset)
	require.True(t, sent)

	const newPassword = "a-brand-new-secret"
	input := &usecase.CompletePasswordResetInput{ResetKey: notification.Secret, NewPassword: newPassword}

	env.store.revokeAllErr = errors.New("lock timeout")
	require.Error(t, env.auth.CompletePasswordReset(ctx, input))
	env.store.revokeAllErr = nil

	stored := env.store.storedToken(issued.RefreshToken)
	require.NotNil(t, stored)
	assert.False(t, stored.Revoked)

	_, err := env.auth.Login(ctx, &usecase.LoginInput{Email: "reset-fail@example.com", Password: newPassword})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials, "the new password was rolled back")

	// The reset key was restored with the password, so the user can retry.
	require.NoError(t, env.auth.CompletePasswordReset(ctx, input))
	_, err = env.auth.Login(ctx, &usecase.LoginInput{Email: "reset-fail@example.com", Password: newPassword})
	require.NoError(t, err)
}
