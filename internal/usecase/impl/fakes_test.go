package impl

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"swiftauth/config"
	"swiftauth/internal/domain/entity"
	"swiftauth/internal/domain/repository"
	"swiftauth/internal/domain/service"
	"swiftauth/internal/errors"
	"swiftauth/internal/infra/auth"
	"swiftauth/internal/infra/auth/state"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-signing-key"
	cfg.Token.AccessTTL = 15 * time.Minute
	cfg.Token.RefreshTTL = 24 * time.Hour
	cfg.Auth.DefaultRole = string(entity.RoleUser)
	cfg.OAuth2.StateTTL = 10 * time.Minute

	return cfg
}

// testClock is a settable clock shared by the services under test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// plainHasher keeps tests fast; the real hashers have their own tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// memoryStore is an in-memory database. It is its own transaction manager and repository factory.
// Transactions run one at a time and a failed one is rolled back to the state it started from.
type memoryStore struct {
	txMu sync.Mutex

	mu           sync.Mutex
	accounts     map[uuid.UUID]*entity.Account
	roles        map[entity.Role]int64
	accountRoles map[uuid.UUID]map[entity.Role]bool
	tokens       map[uuid.UUID]*entity.RefreshToken
	identities   map[string]*entity.ExternalIdentity

	// Injected failures, returned by the matching repository call when set.
	assignErr      error
	tokenCreateErr error
	revokeAllErr   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts:     map[uuid.UUID]*entity.Account{},
		roles:        map[entity.Role]int64{entity.RoleUser: 1, entity.RoleAdmin: 2},
		accountRoles: map[uuid.UUID]map[entity.Role]bool{},
		tokens:       map[uuid.UUID]*entity.RefreshToken{},
		identities:   map[string]*entity.ExternalIdentity{},
	}
}

func (s *memoryStore) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snapshot := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snapshot)

		return err
	}

	return nil
}

type memorySnapshot struct {
	accounts     map[uuid.UUID]*entity.Account
	roles        map[entity.Role]int64
	accountRoles map[uuid.UUID]map[entity.Role]bool
	tokens       map[uuid.UUID]*entity.RefreshToken
	identities   map[string]*entity.ExternalIdentity
}

func cloneValues[K comparable, V any](m map[K]*V) map[K]*V {
	out := make(map[K]*V, len(m))
	for k, v := range m {
		clone := *v
		out[k] = &clone
	}

	return out
}

func (s *memoryStore) snapshot() memorySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	accountRoles := make(map[uuid.UUID]map[entity.Role]bool, len(s.accountRoles))
	for id, roles := range s.accountRoles {
		accountRoles[id] = maps.Clone(roles)
	}

	return memorySnapshot{
		accounts:     cloneValues(s.accounts),
		roles:        maps.Clone(s.roles),
		accountRoles: accountRoles,
		tokens:       cloneValues(s.tokens),
		identities:   cloneValues(s.identities),
	}
}

func (s *memoryStore) restore(snapshot memorySnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = snapshot.accounts
	s.roles = snapshot.roles
	s.accountRoles = snapshot.accountRoles
	s.tokens = snapshot.tokens
	s.identities = snapshot.identities
}

func (s *memoryStore) NewAccountRepository() repository.AccountRepository {
	return &memoryAccountRepo{s}
}

func (s *memoryStore) NewRoleRepository() repository.RoleRepository {
	return &memoryRoleRepo{s}
}

func (s *memoryStore) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return &memoryTokenRepo{s}
}

func (s *memoryStore) NewExternalIdentityRepository() repository.ExternalIdentityRepository {
	return &memoryIdentityRepo{s}
}

// account returns a copy with roles filled in. Callers hold s.mu.
func (s *memoryStore) account(id uuid.UUID) *entity.Account {
	stored, ok := s.accounts[id]
	if !ok {
		return nil
	}

	clone := *stored
	clone.Roles = entity.Roles{}
	for role := range s.accountRoles[id] {
		clone.Roles = append(clone.Roles, role)
	}
	slices.Sort(clone.Roles)

	return &clone
}

func (s *memoryStore) findAccount(match func(*entity.Account) bool) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, a := range s.accounts {
		if match(a) {
			return s.account(id), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (s *memoryStore) tokenCount(accountID uuid.UUID, usableAt time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, t := range s.tokens {
		if t.AccountID == accountID && t.IsUsable(usableAt) {
			count++
		}
	}

	return count
}

func (s *memoryStore) storedToken(value string) *entity.RefreshToken {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash := hashToken(value)
	for _, t := range s.tokens {
		if t.TokenHash == hash {
			clone := *t

			return &clone
		}
	}

	return nil
}

type memoryAccountRepo struct{ s *memoryStore }

func (r *memoryAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.accounts {
		if a.Email == account.Email {
			return repository.ErrAccountEmailTaken
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	clone := *account
	clone.Roles = nil
	r.s.accounts[account.ID] = &clone

	return nil
}

func (r *memoryAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if a := r.s.account(id); a != nil {
		return a, nil
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memoryAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	return r.s.findAccount(func(a *entity.Account) bool { return a.Email == email })
}

func (r *memoryAccountRepo) FindByActivationKey(_ context.Context, key string) (*entity.Account, error) {
	return r.s.findAccount(func(a *entity.Account) bool { return a.ActivationKey != nil && *a.ActivationKey == key })
}

func (r *memoryAccountRepo) FindByResetKey(_ context.Context, key string) (*entity.Account, error) {
	return r.s.findAccount(func(a *entity.Account) bool { return a.ResetKey != nil && *a.ResetKey == key })
}

func (r *memoryAccountRepo) List(_ context.Context, offset, limit int) ([]*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := make([]*entity.Account, 0, len(r.s.accounts))
	for id := range r.s.accounts {
		all = append(all, r.s.account(id))
	}
	slices.SortFunc(all, func(a, b *entity.Account) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.Email, b.Email)
	})

	if offset >= len(all) {
		return []*entity.Account{}, nil
	}

	return all[offset:min(offset+limit, len(all))], nil
}

func (r *memoryAccountRepo) update(id uuid.UUID, fn func(*entity.Account)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.accounts[id]
	if !ok {
		return repository.ErrAccountNotFound
	}
	fn(a)

	return nil
}

func (r *memoryAccountRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	return r.update(id, func(a *entity.Account) { a.PasswordHash = &hash })
}

func (r *memoryAccountRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	return r.update(id, func(a *entity.Account) { a.LastLoginAt = &at })
}

// swap applies fn to the first account matching and returns the updated copy, as one atomic step.
func (r *memoryAccountRepo) swap(match func(*entity.Account) bool, fn func(*entity.Account)) (*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, a := range r.s.accounts {
		if match(a) {
			fn(a)

			return r.s.account(id), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memoryAccountRepo) SetResetKey(_ context.Context, email, key string) (*entity.Account, error) {
	return r.swap(
		func(a *entity.Account) bool { return a.Email == email },
		func(a *entity.Account) { a.ResetKey = &key },
	)
}

func (r *memoryAccountRepo) Activate(_ context.Context, key string) (*entity.Account, error) {
	return r.swap(
		func(a *entity.Account) bool { return a.ActivationKey != nil && *a.ActivationKey == key },
		func(a *entity.Account) {
			a.Activated = true
			a.ActivationKey = nil
		},
	)
}

func (r *memoryAccountRepo) ConsumeResetKey(_ context.Context, key, passwordHash string) (*entity.Account, error) {
	return r.swap(
		func(a *entity.Account) bool { return a.ResetKey != nil && *a.ResetKey == key },
		func(a *entity.Account) {
			a.PasswordHash = &passwordHash
			a.ResetKey = nil
		},
	)
}

func (r *memoryAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.accounts[id]; !ok {
		return repository.ErrAccountNotFound
	}
	delete(r.s.accounts, id)
	delete(r.s.accountRoles, id)
	for tokenID, t := range r.s.tokens {
		if t.AccountID == id {
			delete(r.s.tokens, tokenID)
		}
	}
	for key, identity := range r.s.identities {
		if identity.AccountID == id {
			delete(r.s.identities, key)
		}
	}

	return nil
}

type memoryRoleRepo struct{ s *memoryStore }

func (r *memoryRoleRepo) EnsureRoles(_ context.Context, names ...entity.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, name := range names {
		if _, ok := r.s.roles[name]; !ok {
			r.s.roles[name] = int64(len(r.s.roles) + 1)
		}
	}

	return nil
}

func (r *memoryRoleRepo) FindByName(_ context.Context, name entity.Role) (*entity.RoleRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.roles[name]
	if !ok {
		return nil, repository.ErrRoleNotFound
	}

	return &entity.RoleRecord{ID: id, Name: name}, nil
}

func (r *memoryRoleRepo) Assign(_ context.Context, accountID uuid.UUID, name entity.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.assignErr != nil {
		return r.s.assignErr
	}
	if _, ok := r.s.roles[name]; !ok {
		return repository.ErrRoleNotFound
	}
	if _, ok := r.s.accounts[accountID]; !ok {
		return repository.ErrAccountNotFound
	}
	if r.s.accountRoles[accountID][name] {
		return repository.ErrRoleAlreadyAssigned
	}
	if r.s.accountRoles[accountID] == nil {
		r.s.accountRoles[accountID] = map[entity.Role]bool{}
	}
	r.s.accountRoles[accountID][name] = true

	return nil
}

func (r *memoryRoleRepo) Remove(_ context.Context, accountID uuid.UUID, name entity.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.accountRoles[accountID], name)

	return nil
}

func (r *memoryRoleRepo) HasRole(_ context.Context, accountID uuid.UUID, name entity.Role) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.s.accountRoles[accountID][name], nil
}

func (r *memoryRoleRepo) ListByAccount(_ context.Context, accountID uuid.UUID) (entity.Roles, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if a := r.s.account(accountID); a != nil {
		return a.Roles, nil
	}

	return entity.Roles{}, nil
}

type memoryTokenRepo struct{ s *memoryStore }

func (r *memoryTokenRepo) Create(_ context.Context, token *entity.RefreshToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.tokenCreateErr != nil {
		return r.s.tokenCreateErr
	}
	for _, t := range r.s.tokens {
		if t.TokenHash == token.TokenHash {
			return errors.New("duplicate token hash")
		}
	}
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}

	clone := *token
	clone.Value = ""
	r.s.tokens[token.ID] = &clone

	return nil
}

func (r *memoryTokenRepo) FindByHash(_ context.Context, tokenHash string) (*entity.RefreshToken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.tokens {
		if t.TokenHash == tokenHash {
			clone := *t

			return &clone, nil
		}
	}

	return nil, repository.ErrRefreshTokenNotFound
}

func (r *memoryTokenRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tokens[id]; !ok {
		return repository.ErrRefreshTokenNotFound
	}
	delete(r.s.tokens, id)

	return nil
}

func (r *memoryTokenRepo) Revoke(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tokens[id]
	if !ok || t.Revoked {
		return false, nil
	}
	t.Revoked = true

	return true, nil
}

func (r *memoryTokenRepo) RevokeAllByAccountID(_ context.Context, accountID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.revokeAllErr != nil {
		return 0, r.s.revokeAllErr
	}
	var revoked int64
	for _, t := range r.s.tokens {
		if t.AccountID == accountID && !t.Revoked {
			t.Revoked = true
			revoked++
		}
	}

	return revoked, nil
}

func (r *memoryTokenRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var deleted int64
	for id, t := range r.s.tokens {
		if t.IsExpired(now) {
			delete(r.s.tokens, id)
			deleted++
		}
	}

	return deleted, nil
}

func (r *memoryTokenRepo) CountActive(_ context.Context, accountID uuid.UUID, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var count int64
	for _, t := range r.s.tokens {
		if t.AccountID == accountID && t.IsUsable(now) {
			count++
		}
	}

	return count, nil
}

type memoryIdentityRepo struct{ s *memoryStore }

func identityKey(provider entity.ProviderType, subject string) string {
	return provider.String() + "|" + subject
}

func (r *memoryIdentityRepo) Create(_ context.Context, identity *entity.ExternalIdentity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := identityKey(identity.Provider, identity.ProviderSubjectID)
	if _, ok := r.s.identities[key]; ok {
		return repository.ErrExternalIdentityExists
	}
	if identity.ID == uuid.Nil {
		identity.ID = uuid.New()
	}

	clone := *identity
	r.s.identities[key] = &clone

	return nil
}

func (r *memoryIdentityRepo) Find(_ context.Context, provider entity.ProviderType, subjectID string) (*entity.ExternalIdentity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	identity, ok := r.s.identities[identityKey(provider, subjectID)]
	if !ok {
		return nil, repository.ErrExternalIdentityNotFound
	}
	clone := *identity

	return &clone, nil
}

func (r *memoryIdentityRepo) ListByAccountID(_ context.Context, accountID uuid.UUID) ([]*entity.ExternalIdentity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*entity.ExternalIdentity
	for _, identity := range r.s.identities {
		if identity.AccountID == accountID {
			clone := *identity
			result = append(result, &clone)
		}
	}

	return result, nil
}

// syncDispatcher runs tasks inline so their effects are visible when the usecase returns.
type syncDispatcher struct {
	mu    sync.Mutex
	names []string
	errs  []error
}

func (d *syncDispatcher) Dispatch(ctx context.Context, name string, fn func(ctx context.Context) error) {
	err := fn(context.WithoutCancel(ctx))

	d.mu.Lock()
	defer d.mu.Unlock()
	d.names = append(d.names, name)
	d.errs = append(d.errs, err)
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []service.Notification
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, notification service.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.sent = append(n.sent, notification)

	return n.err
}

func (n *recordingNotifier) last(kind service.NotificationKind) (service.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i := len(n.sent) - 1; i >= 0; i-- {
		if n.sent[i].Kind == kind {
			return n.sent[i], true
		}
	}

	return service.Notification{}, false
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []*entity.AccountCreatedEvent
	err    error
}

func (p *recordingPublisher) PublishAccountCreated(_ context.Context, event *entity.AccountCreatedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.events)
}

// mapCache is an AccountCache that can be told to fail. It fences fills by generation like the Redis cache.
type mapCache struct {
	mu          sync.Mutex
	accounts    map[uuid.UUID]*entity.Account
	generations map[uuid.UUID]int64
	err         error

	// beforeSet runs at the start of Set without the lock held.
	beforeSet func()
}

func newMapCache() *mapCache {
	return &mapCache{
		accounts:    map[uuid.UUID]*entity.Account{},
		generations: map[uuid.UUID]int64{},
	}
}

func (c *mapCache) Get(_ context.Context, id uuid.UUID) (*entity.Account, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return nil, 0, c.err
	}

	return c.accounts[id], c.generations[id], nil
}

func (c *mapCache) Set(_ context.Context, account *entity.Account, generation int64) error {
	if c.beforeSet != nil {
		c.beforeSet()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return c.err
	}
	if c.generations[account.ID] != generation {
		return nil
	}
	c.accounts[account.ID] = account

	return nil
}

func (c *mapCache) Invalidate(_ context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generations[id]++
	delete(c.accounts, id)

	return c.err
}

type fakeIDTokenVerifier struct {
	user *service.OAuthUser
	err  error
}

func (v *fakeIDTokenVerifier) VerifyIDToken(context.Context, string) (*service.OAuthUser, error) {
	return v.user, v.err
}

func (v *fakeIDTokenVerifier) GetProvider() entity.ProviderType {
	return entity.ProviderGoogle
}

type fakeOAuthProvider struct {
	provider   entity.ProviderType
	attributes map[string]any
	err        error
}

func (p *fakeOAuthProvider) GetProvider() entity.ProviderType {
	return p.provider
}

func (p *fakeOAuthProvider) BuildAuthorizationURL(state string) string {
	return "https://provider.test/consent?state=" + state
}

func (p *fakeOAuthProvider) Exchange(context.Context, string) (map[string]any, error) {
	return p.attributes, p.err
}

// testEnv wires every usecase to one memory store and one clock.
type testEnv struct {
	store      *memoryStore
	clock      *testClock
	cfg        *config.Config
	tokens     service.TokenService
	notifier   *recordingNotifier
	publisher  *recordingPublisher
	dispatcher *syncDispatcher
	cache      *mapCache
	idTokens   *fakeIDTokenVerifier
	provider   *fakeOAuthProvider
	states     service.OAuthStateStore

	auth     *authService
	accounts *accountService
	sessions *sessionService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		store:      newMemoryStore(),
		clock:      newTestClock(),
		cfg:        newTestConfig(),
		notifier:   &recordingNotifier{},
		publisher:  &recordingPublisher{},
		dispatcher: &syncDispatcher{},
		cache:      newMapCache(),
		idTokens:   &fakeIDTokenVerifier{},
		provider:   &fakeOAuthProvider{provider: entity.ProviderFacebook},
	}
	env.states = state.NewMemoryStore(env.clock.Now)

	tokens, err := auth.NewJWTService(env.cfg)
	if err != nil {
		panic(err)
	}
	env.tokens = tokens

	components := ComponentParams{
		Hasher:       plainHasher{},
		Policy:       auth.NewPasswordPolicy(env.cfg),
		Secrets:      auth.NewSecretGenerator(),
		TokenService: tokens,
		Config:       env.cfg,
		Logger:       newDiscardLogger(),
	}

	env.auth = NewAuthService(AuthServiceParams{
		ComponentParams: components,
		TxManager:       env.store,
		Notifier:        env.notifier,
		Publisher:       env.publisher,
		Dispatcher:      env.dispatcher,
		IDTokens:        env.idTokens,
		Providers:       service.OAuthProviders{entity.ProviderFacebook: env.provider},
		StateStore:      env.states,
		Cache:           env.cache,
	}).(*authService)
	env.auth.deps.now = env.clock.Now

	env.accounts = NewAccountService(AccountServiceParams{
		ComponentParams: components,
		TxManager:       env.store,
		Cache:           env.cache,
	}).(*accountService)
	env.accounts.deps.now = env.clock.Now

	env.sessions = NewSessionService(SessionServiceParams{
		ComponentParams: components,
		TxManager:       env.store,
	}).(*sessionService)
	env.sessions.deps.now = env.clock.Now

	return env
}

// components binds directory, token store and linker to the memory store with the env clock.
func (env *testEnv) components() *components {
	return env.auth.deps.bind(env.store)
}
