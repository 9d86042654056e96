package notification

import (
	"context"
	"log/slog"
	"time"

	"swiftauth/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/pkg/errors"
)

const charsetUTF8 = "UTF-8"

// sesAPI is the subset of *ses.Client used by the notifier.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesNotifier struct {
	client      sesAPI
	fromAddress string
	frontendURL string
	timeout     time.Duration
	logger      *slog.Logger
}

func newSESNotifier(client sesAPI, fromAddress, frontendURL string, timeout time.Duration, logger *slog.Logger) *sesNotifier {
	return &sesNotifier{
		client:      client,
		fromAddress: fromAddress,
		frontendURL: frontendURL,
		timeout:     timeout,
		logger:      logger,
	}
}

// Notify sends the activation or reset email through SES.
func (n *sesNotifier) Notify(ctx context.Context, notification service.Notification) error {
	msg, err := renderMessage(n.frontendURL, notification)
	if err != nil {
		return err
	}

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	out, err := n.client.SendEmail(ctx, n.sendEmailInput(msg))
	if err != nil {
		return errors.Wrapf(err, "failed to send %s email", notification.Kind)
	}

	n.logger.Info("[SES] Email sent",
		slog.String("kind", string(notification.Kind)),
		slog.String("messageID", aws.ToString(out.MessageId)),
	)

	return nil
}

func (n *sesNotifier) sendEmailInput(msg *message) *ses.SendEmailInput {
	return &ses.SendEmailInput{
		Source: aws.String(n.fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(msg.Subject),
				Charset: aws.String(charsetUTF8),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(msg.TextBody),
					Charset: aws.String(charsetUTF8),
				},
				Html: &types.Content{
					Data:    aws.String(msg.HTMLBody),
					Charset: aws.String(charsetUTF8),
				},
			},
		},
	}
}
