package pubsub

import (
	"encoding/json"

	"swiftauth/internal/domain/entity"

	"github.com/pkg/errors"
)

const eventTypeAccountCreated = "account.created"

// outgoing is a broker-neutral encoding of one event. Attributes let subscribers filter without
// decoding Data.
type outgoing struct {
	ID         string
	Type       string
	Data       []byte
	Attributes map[string]string
}

func encodeAccountCreated(event *entity.AccountCreatedEvent) (*outgoing, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode account.created")
	}

	id := event.AccountID.String()

	return &outgoing{
		ID:   id,
		Type: eventTypeAccountCreated,
		Data: data,
		Attributes: map[string]string{
			"eventType": eventTypeAccountCreated,
			"accountId": id,
		},
	}, nil
}
