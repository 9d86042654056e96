package repository

import "context"

// TransactionManager runs a unit of work atomically: fn's error rolls everything back, nil commits.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the transaction Execute opened. Repositories
// obtained elsewhere do not take part in it.
type RepositoryFactory interface {
	NewAccountRepository() AccountRepository
	NewRoleRepository() RoleRepository
	NewRefreshTokenRepository() RefreshTokenRepository
	NewExternalIdentityRepository() ExternalIdentityRepository
}
