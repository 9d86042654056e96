// Package notification delivers activation and password-reset emails.
package notification

import (
	"context"
	"log/slog"

	"swiftauth/config"
	"swiftauth/internal/domain/service"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	ProviderLog = "log"
	ProviderSES = "ses"
)

// Params holds dependencies for the Notifier, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier creates a Notifier based on configuration
func NewNotifier(params Params) (service.Notifier, error) {
	cfg := params.Config.Notifier
	logger := params.Logger

	switch cfg.Provider {
	case "", ProviderLog:
		logger.Info("Notifier provider is log, emails will only be logged")

		return &logNotifier{frontendURL: cfg.FrontendURL, logger: logger}, nil

	case ProviderSES:
		if cfg.FromAddress == "" {
			return nil, errors.New("notifier.fromAddress is required for ses provider")
		}

		opts := []func(*awsconfig.LoadOptions) error{}
		if cfg.Region != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(params.Ctx, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load AWS config")
		}

		logger.Info("Using AWS SES notifier",
			slog.String("region", awsCfg.Region),
			slog.String("from", cfg.FromAddress),
		)

		return newSESNotifier(ses.NewFromConfig(awsCfg), cfg.FromAddress, cfg.FrontendURL, cfg.Timeout, logger), nil

	default:
		return nil, errors.Errorf("unknown notifier provider: %s", cfg.Provider)
	}
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
