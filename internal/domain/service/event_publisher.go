package service

import (
	"context"

	"swiftauth/internal/domain/entity"
)

// EventPublisher announces account lifecycle events to downstream services. Publishing happens
// after commit and a failure never undoes the account.
type EventPublisher interface {
	PublishAccountCreated(ctx context.Context, event *entity.AccountCreatedEvent) error
	Close() error
}
