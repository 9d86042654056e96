// Package facebook wires the Facebook Login authorization-code flow.
package facebook

import (
	"swiftauth/config"
	"swiftauth/internal/domain/entity"
	"swiftauth/internal/domain/service"
	"swiftauth/internal/infra/auth/oauthclient"

	facebookendpoint "golang.org/x/oauth2/facebook"
)

// Graph API profile with the fields the attribute extractor reads ('id', 'email', 'name').
const graphProfileURL = "https://graph.facebook.com/me?fields=id,name,email"

const defaultFacebookScopes = "email public_profile"

// NewOAuthService creates the Facebook authorization-code provider
func NewOAuthService(cfg *config.OAuthClientConfig) service.OAuthProvider {
	clientCfg := *cfg
	if clientCfg.Scopes == "" {
		clientCfg.Scopes = defaultFacebookScopes
	}

	return oauthclient.New(entity.ProviderFacebook, &clientCfg, facebookendpoint.Endpoint, graphProfileURL)
}
