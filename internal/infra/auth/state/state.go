// Package state stores the CSRF state of in-flight OAuth2 authorization-code flows.
package state

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"swiftauth/internal/domain/entity"
	"swiftauth/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "oauth_state:"

// NewStore uses Redis when a client is available so every instance behind a load balancer
// sees the same states; otherwise states live in process memory.
func NewStore(client *redis.Client, logger *slog.Logger) service.OAuthStateStore {
	if client == nil {
		logger.Warn("OAuth state kept in memory; callbacks must reach the instance that issued the state")

		return NewMemoryStore(time.Now)
	}

	return &redisStore{client: client}
}

type memoryEntry struct {
	provider  entity.ProviderType
	expiresAt time.Time
}

// memoryStore keeps states in a map guarded by a mutex.
type memoryStore struct {
	mu     sync.Mutex
	states map[string]memoryEntry
	now    func() time.Time
}

// NewMemoryStore creates an in-process state store.
func NewMemoryStore(now func() time.Time) service.OAuthStateStore {
	return &memoryStore{
		states: make(map[string]memoryEntry),
		now:    now,
	}
}

func (s *memoryStore) Save(_ context.Context, provider entity.ProviderType, state string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.states {
		if !now.Before(entry.expiresAt) {
			delete(s.states, key)
		}
	}
	s.states[state] = memoryEntry{provider: provider, expiresAt: now.Add(ttl)}

	return nil
}

// Consume deletes the state whether or not it matches, so a state can never be replayed.
func (s *memoryStore) Consume(_ context.Context, provider entity.ProviderType, state string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.states[state]
	if !ok {
		return false, nil
	}
	delete(s.states, state)

	return entry.provider == provider && s.now().Before(entry.expiresAt), nil
}

type redisStore struct {
	client *redis.Client
}

func (s *redisStore) Save(ctx context.Context, provider entity.ProviderType, state string, ttl time.Duration) error {
	ok, err := s.client.SetNX(ctx, redisKeyPrefix+state, provider.String(), ttl).Result()
	if err != nil {
		return errors.Wrap(err, "failed to store oauth state")
	}
	if !ok {
		return errors.New("oauth state collision")
	}

	return nil
}

func (s *redisStore) Consume(ctx context.Context, provider entity.ProviderType, state string) (bool, error) {
	stored, err := s.client.GetDel(ctx, redisKeyPrefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to consume oauth state")
	}

	return stored == provider.String(), nil
}
