package pubsub

import (
	"context"
	"log/slog"
	"time"

	"swiftauth/internal/domain/entity"
	"swiftauth/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	timeout   time.Duration
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, timeout time.Duration, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s", topic)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		timeout:   timeout,
		logger:    logger.With(slog.String("topic", topic)),
	}, nil
}

// PublishAccountCreated blocks until the server acknowledges the message.
func (p *googlePubSubPublisher) PublishAccountCreated(ctx context.Context, event *entity.AccountCreatedEvent) error {
	out, err := encodeAccountCreated(event)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{Data: out.Data, Attributes: out.Attributes}).Get(ctx)
	if err != nil {
		return errors.Wrap(err, "publish to pubsub")
	}

	p.logger.Debug("Event published", slog.String("messageID", out.ID), slog.String("serverID", serverID))

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
