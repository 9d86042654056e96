package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"swiftauth/config"
	"swiftauth/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestAuthService(validate tokenValidator) *AuthServiceImpl {
	cfg := &config.Config{}
	cfg.OAuth2.Google = &config.OAuthClientConfig{ClientID: "test_client_id"}

	svc := NewAuthService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*AuthServiceImpl)
	svc.validate = validate

	return svc
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	var gotAudience string
	svc := newTestAuthService(func(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{
			Subject: "test_user_123",
			Claims: map[string]any{
				"email":          "test@example.com",
				"name":           "Test User",
				"email_verified": true,
			},
		}, nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "test_client_id", gotAudience)
	assert.Equal(t, "test_user_123", user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, entity.ProviderGoogle, user.Provider)
}

func TestAuthService_RejectsUnverifiedEmail(t *testing.T) {
	svc := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Subject: "s", Claims: map[string]any{"email": "a@x.com", "email_verified": false}}, nil
	})

	_, err := svc.VerifyIDToken(context.Background(), "id-token")
	assert.Error(t, err)
}

func TestAuthService_InvalidToken(t *testing.T) {
	svc := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: invalid token")
	})

	user, err := svc.VerifyIDToken(context.Background(), "invalid_token_format")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "token verification failed")
}

func TestAuthService_RequiresClientID(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.Default())

	_, err := svc.VerifyIDToken(context.Background(), "id-token")
	assert.Error(t, err)
	assert.Equal(t, entity.ProviderGoogle, svc.GetProvider())
}
