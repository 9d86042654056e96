// Package postgres implements the repositories on GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"swiftauth/config"
	"swiftauth/internal/domain/entity"
	"swiftauth/internal/domain/lifecycle"
	"swiftauth/internal/errors"
	"swiftauth/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval     = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the connection pool. It is pinged on start and closed on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Surface unique and foreign key violations as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go watchPool(monitorCtx, params.Logger, sqlDB, poolWatchInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate registers a start hook that creates the schema (when enabled) and bootstraps the role catalogue.
// It must be invoked after New so the ping hook runs first.
func Migrate(lc fx.Lifecycle, db *gorm.DB, cfg *config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if cfg.Database.AutoMigrate {
				if err := autoMigrate(ctx, db); err != nil {
					return err
				}
				logger.Info("Database schema migrated")
			}

			roles := bootstrapRoles(cfg)
			if err := NewRoleRepository(db).EnsureRoles(ctx, roles...); err != nil {
				return errors.Wrap(err, "failed to bootstrap roles")
			}
			logger.Info("Roles bootstrapped", slog.Any("roles", roles))

			return nil
		},
	})
}

func autoMigrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	if err := tx.SetupJoinTable(&model.AccountModel{}, "Roles", &model.AccountRoleModel{}); err != nil {
		return errors.Wrap(err, "failed to set up account_roles join table")
	}
	if err := tx.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

func bootstrapRoles(cfg *config.Config) []entity.Role {
	roles := entity.Roles{entity.RoleUser, entity.RoleAdmin}
	if cfg.Auth.DefaultRole != "" && !roles.Contains(entity.Role(cfg.Auth.DefaultRole)) {
		roles = append(roles, entity.Role(cfg.Auth.DefaultRole))
	}
	for _, name := range entity.RolesFromStrings(cfg.Auth.BootstrapRoles) {
		if !roles.Contains(name) {
			roles = append(roles, name)
		}
	}

	return roles
}

// watchPool reports connection pool contention: callers that had to wait for a connection since the
// previous tick.
func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		stats := sqlDB.Stats()
		waits := stats.WaitCount - last.WaitCount
		waited := stats.WaitDuration - last.WaitDuration
		last = stats
		if waits <= 0 {
			continue
		}

		level := slog.LevelDebug
		if waited >= poolWaitWarnThreshold {
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "Postgres pool contention",
			slog.Int64("waits", waits),
			slog.Duration("avgWait", waited/time.Duration(waits)),
			slog.Int("inUse", stats.InUse),
			slog.Int("idle", stats.Idle),
			slog.Int("maxOpen", stats.MaxOpenConnections),
		)
	}
}
