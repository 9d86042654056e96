package postgres

import (
	"context"
	"testing"
	"time"

	"swiftauth/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the production schema. One connection
// keeps every query on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	ctx := context.Background()
	require.NoError(t, autoMigrate(ctx, db))
	require.NoError(t, NewRoleRepository(db).EnsureRoles(ctx, entity.RoleUser, entity.RoleAdmin))

	return db
}

func strPtr(s string) *string { return &s }

func createTestAccount(t *testing.T, db *gorm.DB, email string, mutate ...func(*entity.Account)) *entity.Account {
	t.Helper()

	account := &entity.Account{Email: email, PasswordHash: strPtr("hash")}
	for _, m := range mutate {
		m(account)
	}
	require.NoError(t, NewAccountRepository(db).Create(context.Background(), account))

	return account
}

func createTestToken(t *testing.T, db *gorm.DB, accountID uuid.UUID, hash string, expiresAt time.Time) *entity.RefreshToken {
	t.Helper()

	token := &entity.RefreshToken{AccountID: accountID, TokenHash: hash, ExpiresAt: expiresAt}
	require.NoError(t, NewRefreshTokenRepository(db).Create(context.Background(), token))

	return token
}
