// Package impl contains the implementation of the application's business logic.
package impl

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"swiftauth/config"
	"swiftauth/internal/domain/entity"
	"swiftauth/internal/domain/repository"
	"swiftauth/internal/domain/service"

	"go.uber.org/fx"
)

// ComponentParams holds the stateless collaborators shared by every usecase, injected by Fx.
type ComponentParams struct {
	fx.In

	Hasher       service.PasswordHasher
	Policy       service.PasswordPolicy
	Secrets      service.SecretGenerator
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// componentDeps is what the directory, token store and linker need besides repositories.
type componentDeps struct {
	hasher      service.PasswordHasher
	policy      service.PasswordPolicy
	secrets     service.SecretGenerator
	refreshTTL  time.Duration
	defaultRole entity.Role
	now         func() time.Time
	logger      *slog.Logger
}

func newComponentDeps(params ComponentParams) *componentDeps {
	return &componentDeps{
		hasher:      params.Hasher,
		policy:      params.Policy,
		secrets:     params.Secrets,
		refreshTTL:  params.TokenService.RefreshTokenTTL(),
		defaultRole: entity.Role(params.Config.Auth.DefaultRole),
		now:         time.Now,
		logger:      params.Logger,
	}
}

// components are the account directory, refresh token store and identity linker bound to one
// repository factory, so an orchestrator can compose them inside a single transaction.
type components struct {
	directory *accountDirectory
	tokens    *refreshTokenStore
	linker    *identityLinker
}

func (d *componentDeps) bind(factory repository.RepositoryFactory) *components {
	directory := &accountDirectory{
		accounts: factory.NewAccountRepository(),
		roles:    factory.NewRoleRepository(),
		deps:     d,
	}

	return &components{
		directory: directory,
		tokens: &refreshTokenStore{
			repo: factory.NewRefreshTokenRepository(),
			deps: d,
		},
		linker: &identityLinker{
			identities: factory.NewExternalIdentityRepository(),
			directory:  directory,
			deps:       d,
		},
	}
}

// hashToken returns the SHA-256 hex digest under which refresh tokens are stored.
func hashToken(value string) string {
	sum := sha256.Sum256([]byte(value))

	return hex.EncodeToString(sum[:])
}
