package service

import (
	"context"
	"time"

	"swiftauth/internal/domain/entity"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string              // User's email address
	Name          string              // User's display name
	Provider      entity.ProviderType // The OAuth provider (google, facebook)
	AvatarURL     string              // URL to user's profile picture
	EmailVerified bool                // Whether the email is verified by the provider
}

// OAuthAuthService defines the interface for OAuth authentication operations
// This is specifically for ID token verification (like Google ID tokens)
type OAuthAuthService interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information
	// This is primarily used for Google Sign-In where the client sends an ID token directly
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type
	GetProvider() entity.ProviderType
}

// OAuthProvider drives the authorization-code flow of one provider.
type OAuthProvider interface {
	GetProvider() entity.ProviderType

	// BuildAuthorizationURL returns the consent page URL carrying state.
	BuildAuthorizationURL(state string) string

	// Exchange trades an authorization code for the provider's raw profile attributes.
	Exchange(ctx context.Context, code string) (map[string]any, error)
}

// OAuthProviders indexes the configured authorization-code providers.
type OAuthProviders map[entity.ProviderType]OAuthProvider

// OAuthStateStore keeps the CSRF state values of in-flight authorization-code flows.
type OAuthStateStore interface {
	// Save remembers state for provider until ttl elapses.
	Save(ctx context.Context, provider entity.ProviderType, state string, ttl time.Duration) error

	// Consume removes state and reports whether it was present and unexpired for provider.
	Consume(ctx context.Context, provider entity.ProviderType, state string) (bool, error)
}
