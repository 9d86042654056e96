package main

import (
	"context"
	"log/slog"
	"os"

	"swiftauth/config"
	"swiftauth/internal/delivery"
	"swiftauth/internal/delivery/http"
	"swiftauth/internal/delivery/http/middleware"
	"swiftauth/internal/delivery/http/router/handler"
	"swiftauth/internal/delivery/scheduler"
	"swiftauth/internal/domain/entity"
	"swiftauth/internal/domain/service"
	"swiftauth/internal/infra/async"
	"swiftauth/internal/infra/auth"
	"swiftauth/internal/infra/auth/facebook"
	"swiftauth/internal/infra/auth/google"
	"swiftauth/internal/infra/auth/state"
	"swiftauth/internal/infra/cache"
	logs "swiftauth/internal/infra/log"
	"swiftauth/internal/infra/notification"
	"swiftauth/internal/infra/persistence/postgres"
	"swiftauth/internal/infra/pubsub"
	"swiftauth/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			postgres.Migrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			cache.NewRedisClient,
		),
		notification.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPasswordHasher,
			auth.NewPasswordPolicy,
			auth.NewSecretGenerator,
			auth.NewJWTService,
			google.NewAuthService,
			newOAuthProviders,
			state.NewStore,
			cache.NewAccountCache,
			async.NewDispatcher,
		),
	)
}

// newOAuthProviders registers the authorization-code providers that have a client id configured.
func newOAuthProviders(cfg *config.Config, logger *slog.Logger) service.OAuthProviders {
	providers := service.OAuthProviders{}

	if gcfg := cfg.OAuth2.Google; gcfg != nil && gcfg.ClientID != "" {
		providers[entity.ProviderGoogle] = google.NewOAuthService(gcfg)
	}
	if fb := cfg.OAuth2.Facebook; fb != nil && fb.ClientID != "" {
		providers[entity.ProviderFacebook] = facebook.NewOAuthService(fb)
	}

	for provider := range providers {
		logger.Info("OAuth provider enabled", slog.String("provider", string(provider)))
	}

	return providers
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAccountService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccountHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewTokenSweeper,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
