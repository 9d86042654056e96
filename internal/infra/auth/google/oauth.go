package google

import (
	"swiftauth/config"
	"swiftauth/internal/domain/entity"
	"swiftauth/internal/domain/service"
	"swiftauth/internal/infra/auth/oauthclient"

	googleendpoint "golang.org/x/oauth2/google"
)

// The OpenID Connect userinfo document carries the stable 'sub' identifier.
const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

const defaultGoogleScopes = "openid email profile"

// NewOAuthService creates the Google authorization-code provider
func NewOAuthService(cfg *config.OAuthClientConfig) service.OAuthProvider {
	clientCfg := *cfg
	if clientCfg.Scopes == "" {
		clientCfg.Scopes = defaultGoogleScopes
	}

	return oauthclient.New(entity.ProviderGoogle, &clientCfg, googleendpoint.Endpoint, googleUserInfoURL)
}
