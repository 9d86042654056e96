package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultAccessTTL          = 15 * time.Minute
	defaultRefreshTTL         = 7 * 24 * time.Hour
	defaultSweepInterval      = 24 * time.Hour
	defaultSideEffectTimeout  = 5 * time.Second
	defaultOAuthStateTTL      = 10 * time.Minute
	defaultAccountCacheTTL    = 10 * time.Minute
	defaultRateLimitPrefix    = "rl"
	defaultRateLimitCapacity  = 10
	defaultRefillInterval     = 6 * time.Second
	defaultRole               = "ROLE_USER"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// TrustedProxies lists the IPs or CIDRs whose X-Forwarded-For is believed. Empty means the
		// TCP peer is the client.
		TrustedProxies     []string `json:"trustedProxies" yaml:"trustedProxies"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Token TokenConfig `json:"token" yaml:"token"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	OAuth2 OAuth2Config `json:"oauth2" yaml:"oauth2"`

	// Notifier delivers activation and password-reset messages
	Notifier NotifierConfig `json:"notifier" yaml:"notifier"`

	// Events configures where account lifecycle events are published
	Events *EventsConfig `json:"events" yaml:"events"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Cache CacheConfig `json:"cache" yaml:"cache"`

	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Sweeper SweeperConfig `json:"sweeper" yaml:"sweeper"`
}

// DatabaseConfig holds settings that go-lib's connection config does not cover.
type DatabaseConfig struct {
	AutoMigrate   bool          `json:"autoMigrate" yaml:"autoMigrate"`
	SlowThreshold time.Duration `json:"slowThreshold" yaml:"slowThreshold"`
}

// TokenConfig defines token lifetimes.
type TokenConfig struct {
	AccessTTL  time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// Hasher selects the password hashing algorithm: "bcrypt" (default) or "argon2"
	Hasher         string   `json:"hasher" yaml:"hasher"`
	BcryptCost     int      `json:"bcryptCost" yaml:"bcryptCost"`
	DefaultRole    string   `json:"defaultRole" yaml:"defaultRole"`
	BootstrapRoles []string `json:"bootstrapRoles" yaml:"bootstrapRoles"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

// OAuth2Config groups the third-party identity provider settings.
type OAuth2Config struct {
	// AllowAttributeLogin enables POST /api/auth/oauth2/:provider with a raw attribute map.
	// Only enable it behind a gateway that has already verified the provider response.
	AllowAttributeLogin bool          `json:"allowAttributeLogin" yaml:"allowAttributeLogin"`
	StateTTL            time.Duration `json:"stateTTL" yaml:"stateTTL"`

	Google   *OAuthClientConfig `json:"google" yaml:"google"`
	Facebook *OAuthClientConfig `json:"facebook" yaml:"facebook"`
}

type OAuthClientConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string `json:"redirectUri" yaml:"redirectUri"`
	Scopes       string `json:"scopes" yaml:"scopes"`
}

// NotifierConfig defines how activation and reset messages are delivered
type NotifierConfig struct {
	// Provider type: "ses" for AWS SES, "log" (default) writes messages to the logger
	Provider    string        `json:"provider" yaml:"provider"`
	Region      string        `json:"region" yaml:"region"`
	FromAddress string        `json:"fromAddress" yaml:"fromAddress"`
	FrontendURL string        `json:"frontendUrl" yaml:"frontendUrl"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
}

// EventsConfig defines the event bus used for account lifecycle events
type EventsConfig struct {
	// Provider type: "local", "google", "rabbitmq", empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project and topic (google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// RabbitMQ connection URL and queue (rabbitmq provider)
	RabbitMQURL string `json:"rabbitmqUrl" yaml:"rabbitmqUrl"`
	Queue       string `json:"queue" yaml:"queue"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// CacheConfig controls the read-through account cache. It needs Redis.
type CacheConfig struct {
	Enabled    bool          `json:"enabled" yaml:"enabled"`
	AccountTTL time.Duration `json:"accountTTL" yaml:"accountTTL"`
}

// RateLimitConfig configures the token bucket applied to credential endpoints. It needs Redis.
type RateLimitConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	Prefix         string        `json:"prefix" yaml:"prefix"`
	Capacity       int           `json:"capacity" yaml:"capacity"`
	RefillTokens   int           `json:"refillTokens" yaml:"refillTokens"`
	RefillInterval time.Duration `json:"refillInterval" yaml:"refillInterval"`
	TTL            time.Duration `json:"ttl" yaml:"ttl"`
}

type SweeperConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Interval time.Duration `json:"interval" yaml:"interval"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// New loads config.yaml, overlays .env and the process environment, then fills defaults.
func New() (*Config, error) {
	cfg, err := Load[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Token.AccessTTL <= 0 {
		cfg.Token.AccessTTL = defaultAccessTTL
	}
	if cfg.Token.RefreshTTL <= 0 {
		cfg.Token.RefreshTTL = defaultRefreshTTL
	}
	if cfg.Auth.DefaultRole == "" {
		cfg.Auth.DefaultRole = defaultRole
	}
	if cfg.Sweeper.Interval <= 0 {
		cfg.Sweeper.Interval = defaultSweepInterval
	}
	if cfg.Notifier.Timeout <= 0 {
		cfg.Notifier.Timeout = defaultSideEffectTimeout
	}
	if cfg.Events != nil && cfg.Events.Timeout <= 0 {
		cfg.Events.Timeout = defaultSideEffectTimeout
	}
	if cfg.OAuth2.StateTTL <= 0 {
		cfg.OAuth2.StateTTL = defaultOAuthStateTTL
	}
	if cfg.Cache.AccountTTL <= 0 {
		cfg.Cache.AccountTTL = defaultAccountCacheTTL
	}
	cfg.RateLimit.applyDefaults()
}

func (rl *RateLimitConfig) applyDefaults() {
	if rl.Prefix == "" {
		rl.Prefix = defaultRateLimitPrefix
	}
	if rl.Capacity <= 0 {
		rl.Capacity = defaultRateLimitCapacity
	}
	if rl.RefillTokens <= 0 {
		rl.RefillTokens = 1
	}
	if rl.RefillInterval <= 0 {
		rl.RefillInterval = defaultRefillInterval
	}
	// An expired bucket restarts full, so keys live at least as long as a full refill.
	refills := (rl.Capacity + rl.RefillTokens - 1) / rl.RefillTokens
	if minTTL := time.Duration(refills) * rl.RefillInterval; rl.TTL < minTTL {
		rl.TTL = minTTL
	}
}

func (cfg *Config) validate() error {
	if cfg.SecretKey.Access == "" {
		return errors.New("secretKey.access must be provided")
	}
	if cfg.Postgres == nil {
		return errors.New("postgres configuration is required")
	}
	if (cfg.Cache.Enabled || cfg.RateLimit.Enabled) && cfg.Redis == nil {
		return errors.New("redis configuration is required when cache or rate limiting is enabled")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.TTL < time.Second {
		return errors.Errorf("rateLimit.ttl must be at least 1s, got %s", cfg.RateLimit.TTL)
	}

	return nil
}
