// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"swiftauth/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// CompletePasswordResetInput carries the reset secret and the replacement password.
type CompletePasswordResetInput struct {
	ResetKey    string
	NewPassword string
}

// --- Output DTOs ---

// AuthOutput is returned by every operation that signs an account in.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// AuthUsecase defines the authentication flows exposed to the delivery layer.
type AuthUsecase interface {
	// Register creates an unactivated account and signs it in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login checks credentials, then activation, and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Refresh rotates a refresh token: the presented value becomes unusable and a new pair is issued.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// Logout revokes a single refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// LogoutAllDevices revokes every refresh token of the account.
	LogoutAllDevices(ctx context.Context, accountID uuid.UUID) error

	// AuthenticateWithOAuth2 signs in with an attribute map already obtained from a provider.
	AuthenticateWithOAuth2(ctx context.Context, provider entity.ProviderType, attributes map[string]any) (*AuthOutput, error)

	// AuthenticateWithIDToken signs in with a Google ID token.
	AuthenticateWithIDToken(ctx context.Context, idToken string) (*AuthOutput, error)

	// BeginOAuth2 returns the provider consent URL for the authorization-code flow.
	BeginOAuth2(ctx context.Context, provider entity.ProviderType) (string, error)

	// CompleteOAuth2 validates state, exchanges the code and signs in.
	CompleteOAuth2(ctx context.Context, provider entity.ProviderType, code, state string) (*AuthOutput, error)

	VerifyEmail(ctx context.Context, activationKey string) error

	// RequestPasswordReset succeeds whether or not the email belongs to an account.
	RequestPasswordReset(ctx context.Context, email string) error

	CompletePasswordReset(ctx context.Context, input *CompletePasswordResetInput) error

	// CurrentAccount returns the account of the authenticated caller carried by ctx.
	CurrentAccount(ctx context.Context) (*entity.Account, error)
}
