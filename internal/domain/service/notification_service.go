package service

import (
	"context"
)

// NotificationKind selects the message template.
type NotificationKind string

const (
	NotificationActivation    NotificationKind = "activation"
	NotificationPasswordReset NotificationKind = "password_reset"
)

// Notification carries a single-use secret to the account owner.
type Notification struct {
	Recipient string
	Secret    string
	Kind      NotificationKind
}

// Notifier delivers activation and password-reset messages
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}
