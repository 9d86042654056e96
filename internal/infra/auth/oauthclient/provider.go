// Package oauthclient implements the authorization-code flow shared by the OAuth2 identity providers.
package oauthclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"swiftauth/config"
	"swiftauth/internal/domain/entity"
	"swiftauth/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// maxProfileBytes caps the profile document read from a provider.
const maxProfileBytes = 1 << 20

// Provider exchanges authorization codes and reads the profile document of one provider.
type Provider struct {
	provider   entity.ProviderType
	conf       *oauth2.Config
	profileURL string
}

// New builds a provider from client credentials and the provider's endpoints.
func New(provider entity.ProviderType, cfg *config.OAuthClientConfig, endpoint oauth2.Endpoint, profileURL string) *Provider {
	return &Provider{
		provider: provider,
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       ParseScopes(cfg.Scopes),
			Endpoint:     endpoint,
		},
		profileURL: profileURL,
	}
}

var _ service.OAuthProvider = (*Provider)(nil)

// GetProvider returns the OAuth provider type
func (p *Provider) GetProvider() entity.ProviderType {
	return p.provider
}

// BuildAuthorizationURL constructs the consent URL with the state parameter for CSRF protection
func (p *Provider) BuildAuthorizationURL(state string) string {
	return p.conf.AuthCodeURL(state)
}

// Exchange trades the code for an access token and returns the provider's raw profile attributes.
func (p *Provider) Exchange(ctx context.Context, code string) (map[string]any, error) {
	token, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange code for token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.profileURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile request")
	}

	resp, err := p.conf.Client(ctx, token).Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch profile")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read profile response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("profile request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var attributes map[string]any
	if err := json.Unmarshal(body, &attributes); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile response")
	}

	return attributes, nil
}

// ParseScopes accepts space or comma separated scope lists.
func ParseScopes(scopes string) []string {
	return strings.Fields(strings.ReplaceAll(scopes, ",", " "))
}
