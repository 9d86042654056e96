// Package google integrates Google Sign-In.
package google

import (
	"context"
	"log/slog"

	"swiftauth/config"
	"swiftauth/internal/domain/entity"
	"swiftauth/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// tokenValidator matches idtoken.Validate so tests can avoid fetching Google's keys.
type tokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google ID tokens
type AuthServiceImpl struct {
	clientID string
	validate tokenValidator
	logger   *slog.Logger
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.OAuth2.Google != nil {
		clientID = cfg.OAuth2.Google.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken checks the token signature against Google's published keys, its audience and expiry,
// and requires a verified email.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	oauthUser := payloadToUser(payload)
	if !oauthUser.EmailVerified {
		return nil, errors.New("email not verified")
	}

	s.logger.Debug("Google ID token verified",
		slog.String("subject", oauthUser.ID),
		slog.String("email", oauthUser.Email))

	return oauthUser, nil
}

// GetProvider returns the OAuth provider type
func (s *AuthServiceImpl) GetProvider() entity.ProviderType {
	return entity.ProviderGoogle
}

func payloadToUser(payload *idtoken.Payload) *service.OAuthUser {
	user := &service.OAuthUser{
		ID:       payload.Subject,
		Provider: entity.ProviderGoogle,
	}
	if email, ok := payload.Claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		user.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		user.AvatarURL = picture
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}

	return user
}
