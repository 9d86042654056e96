package notification

import (
	"context"
	"log/slog"

	"swiftauth/internal/domain/service"
)

// logNotifier writes messages to the logger instead of sending them. Intended for local development.
type logNotifier struct {
	frontendURL string
	logger      *slog.Logger
}

func (n *logNotifier) Notify(_ context.Context, notification service.Notification) error {
	msg, err := renderMessage(n.frontendURL, notification)
	if err != nil {
		return err
	}

	n.logger.Info("[LogNotifier] Email not sent, logging instead",
		slog.String("kind", string(notification.Kind)),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("link", msg.Link),
	)

	return nil
}
