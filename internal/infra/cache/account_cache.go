package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"swiftauth/config"
	"swiftauth/internal/domain/entity"
	"swiftauth/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	accountKeyPrefix    = "account:"
	generationKeyPrefix = "account-gen:"
	defaultAccountTTL   = 10 * time.Minute
)

// setIfGeneration writes KEYS[1] only while KEYS[2] still holds the generation seen by the reader.
// A missing generation counter reads as 0.
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
  return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// cachedAccount is the JSON shape stored in Redis. Password hashes and pending secrets are never cached,
// so accounts read from the cache must not be used for credential checks.
type cachedAccount struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Activated   bool       `json:"activated"`
	Roles       []string   `json:"roles"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

type redisAccountCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAccountCache returns a Redis-backed cache when cache.enabled is set and a client exists, otherwise a no-op.
func NewAccountCache(cfg *config.Config, client *redis.Client, logger *slog.Logger) service.AccountCache {
	if !cfg.Cache.Enabled || client == nil {
		return noopAccountCache{}
	}

	ttl := cfg.Cache.AccountTTL
	if ttl <= 0 {
		ttl = defaultAccountTTL
	}
	logger.Info("Account cache enabled", slog.Duration("ttl", ttl))

	return &redisAccountCache{client: client, ttl: ttl}
}

func accountKey(id uuid.UUID) string {
	return accountKeyPrefix + id.String()
}

func generationKey(id uuid.UUID) string {
	return generationKeyPrefix + id.String()
}

func (c *redisAccountCache) Get(ctx context.Context, id uuid.UUID) (*entity.Account, int64, error) {
	values, err := c.client.MGet(ctx, accountKey(id), generationKey(id)).Result()
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to read cached account")
	}

	var generation int64
	if raw, ok := values[1].(string); ok {
		generation, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, 0, errors.Wrap(err, "failed to decode cache generation")
		}
	}

	raw, ok := values[0].(string)
	if !ok {
		return nil, generation, nil
	}

	var cached cachedAccount
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil, generation, errors.Wrap(err, "failed to decode cached account")
	}

	account := &entity.Account{
		ID:          cached.ID,
		Email:       cached.Email,
		Activated:   cached.Activated,
		Roles:       entity.RolesFromStrings(cached.Roles),
		CreatedAt:   cached.CreatedAt,
		LastLoginAt: cached.LastLoginAt,
	}

	return account, generation, nil
}

func (c *redisAccountCache) Set(ctx context.Context, account *entity.Account, generation int64) error {
	raw, err := json.Marshal(cachedAccount{
		ID:          account.ID,
		Email:       account.Email,
		Activated:   account.Activated,
		Roles:       account.Roles.ToStrings(),
		CreatedAt:   account.CreatedAt,
		LastLoginAt: account.LastLoginAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode account")
	}

	keys := []string{accountKey(account.ID), generationKey(account.ID)}
	err = setIfGeneration.Run(ctx, c.client, keys, strconv.FormatInt(generation, 10), raw, c.ttl.Milliseconds()).Err()

	return errors.Wrap(err, "failed to cache account")
}

// Invalidate drops the entry and bumps the generation so fills started before this call are discarded.
// The counter lives as long as an entry would; a fill slower than that is not fenced.
func (c *redisAccountCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(id))
		pipe.PExpire(ctx, generationKey(id), c.ttl)
		pipe.Del(ctx, accountKey(id))

		return nil
	})

	return errors.Wrap(err, "failed to invalidate cached account")
}

type noopAccountCache struct{}

func (noopAccountCache) Get(context.Context, uuid.UUID) (*entity.Account, int64, error) { return nil, 0, nil }
func (noopAccountCache) Set(context.Context, *entity.Account, int64) error              { return nil }
func (noopAccountCache) Invalidate(context.Context, uuid.UUID) error                    { return nil }
