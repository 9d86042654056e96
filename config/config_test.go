package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"token": map[string]any{
			"accessTTL":  "15m",
			"refreshTTL": "168h",
		},
		"events": map[string]any{
			"rabbitmqUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"oauth2": map[string]any{
			"google": map[string]any{
				"clientId": "",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "TOKEN_ACCESSTTL", want: "token.accessTTL"},
		{envKey: "EVENTS_RABBITMQURL", want: "events.rabbitmqUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "OAUTH2_GOOGLE_CLIENTID", want: "oauth2.google.clientId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{Events: &EventsConfig{Provider: "local"}}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 15*time.Minute, cfg.Token.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Token.RefreshTTL)
	assert.Equal(t, "ROLE_USER", cfg.Auth.DefaultRole)
	assert.Equal(t, defaultSideEffectTimeout, cfg.Notifier.Timeout)
	assert.Equal(t, defaultSideEffectTimeout, cfg.Events.Timeout)
	assert.Equal(t, defaultOAuthStateTTL, cfg.OAuth2.StateTTL)
	assert.Equal(t, defaultAccountCacheTTL, cfg.Cache.AccountTTL)
	assert.Equal(t, defaultRateLimitPrefix, cfg.RateLimit.Prefix)
	assert.Equal(t, defaultRateLimitCapacity, cfg.RateLimit.Capacity)
	assert.Equal(t, 1, cfg.RateLimit.RefillTokens)
	assert.Equal(t, time.Minute, cfg.RateLimit.TTL)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.validate())

	cfg.SecretKey.Access = "secret"
	require.Error(t, cfg.validate(), "postgres is required")

	cfg.Postgres = &postgres.DBConn{}
	require.NoError(t, cfg.validate())

	cfg.Cache.Enabled = true
	assert.Error(t, cfg.validate(), "cache without redis must be rejected")

	cfg.Redis = &RedisConfig{Addr: "localhost:6379"}
	assert.NoError(t, cfg.validate())

	// A small capacity with a fast refill keeps the derived TTL under a second.
	cfg.RateLimit = RateLimitConfig{Enabled: true, Capacity: 2, RefillInterval: 100 * time.Millisecond}
	cfg.RateLimit.applyDefaults()
	require.Equal(t, 200*time.Millisecond, cfg.RateLimit.TTL)
	assert.ErrorContains(t, cfg.validate(), "rateLimit.ttl")

	cfg.RateLimit.TTL = time.Second
	assert.NoError(t, cfg.validate())
}

type loadTarget struct {
	Token struct {
		AccessTTL time.Duration `yaml:"accessTTL"`
	} `yaml:"token"`
	Auth struct {
		BootstrapRoles []string `yaml:"bootstrapRoles"`
	} `yaml:"auth"`
}

func TestLoad_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	yaml := "token:\n  accessTTL: 15m\nauth:\n  bootstrapRoles: []\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "svc.yaml"), []byte(yaml), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("TOKEN_ACCESSTTL", "30m")
	t.Setenv("AUTH_BOOTSTRAPROLES", "ROLE_SUPPORT,ROLE_AUDITOR")

	cfg, err := Load[loadTarget]("svc", rel)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.Token.AccessTTL)
	assert.Equal(t, []string{"ROLE_SUPPORT", "ROLE_AUDITOR"}, cfg.Auth.BootstrapRoles)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load[loadTarget]("does-not-exist", "nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}

func TestReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")

	replicas := replicasFromEnv()
	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}
