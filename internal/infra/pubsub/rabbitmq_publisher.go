package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"swiftauth/internal/domain/entity"
	"swiftauth/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher publishes events to a durable queue through the default exchange.
// The connection lives as long as the process; the channel is shared under a mutex.
type rabbitMQPublisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewRabbitMQPublisher dials the broker and declares the queue.
func NewRabbitMQPublisher(url, queue string, timeout time.Duration, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial rabbitmq")
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "failed to open rabbitmq channel")
	}

	// Durable so messages survive broker restarts
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = channel.Close()
		_ = conn.Close()

		return nil, errors.Wrapf(err, "failed to declare queue %s", queue)
	}

	return &rabbitMQPublisher{
		conn:    conn,
		channel: channel,
		queue:   queue,
		timeout: timeout,
		logger:  logger,
	}, nil
}

func (p *rabbitMQPublisher) PublishAccountCreated(ctx context.Context, event *entity.AccountCreatedEvent) error {
	out, err := encodeAccountCreated(event)
	if err != nil {
		return err
	}

	headers := amqp.Table{}
	for k, v := range out.Attributes {
		headers[k] = v
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         out.Type,
		MessageId:    out.ID,
		Headers:      headers,
		Body:         out.Data,
	}

	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return errors.Wrap(err, "failed to publish to rabbitmq")
	}

	p.logger.Debug("Event published", slog.String("queue", p.queue), slog.String("messageID", out.ID))

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.channel != nil {
		errs = append(errs, p.channel.Close())
	}
	if p.conn != nil && !p.conn.IsClosed() {
		errs = append(errs, p.conn.Close())
	}

	for _, err := range errs {
		if err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
