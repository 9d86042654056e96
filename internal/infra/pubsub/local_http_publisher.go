package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"swiftauth/internal/domain/entity"
	"swiftauth/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultLocalTimeout = 30 * time.Second
	localSubscription   = "projects/local/subscriptions/account-created-sub"
)

// PushMessage is the body Google Pub/Sub POSTs to push subscribers. Data is base64 on the wire.
type PushMessage struct {
	Message struct {
		Data        []byte            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime time.Time         `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher stands in for a push subscription during development by POSTing each event
// straight to the consumer.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, timeout time.Duration, logger *slog.Logger) service.EventPublisher {
	if timeout <= 0 {
		timeout = defaultLocalTimeout
	}

	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

func (p *localHTTPPublisher) PublishAccountCreated(ctx context.Context, event *entity.AccountCreatedEvent) error {
	out, err := encodeAccountCreated(event)
	if err != nil {
		return err
	}

	var push PushMessage
	push.Subscription = localSubscription
	push.Message.Data = out.Data
	push.Message.Attributes = out.Attributes
	push.Message.MessageID = out.ID
	push.Message.PublishTime = time.Now().UTC().Truncate(time.Second)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "push to local endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push endpoint answered %d", resp.StatusCode)
	}

	p.logger.Debug("Event pushed", slog.String("endpoint", p.endpoint), slog.String("messageID", out.ID))

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
