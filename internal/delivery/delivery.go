// Package delivery defines the contract shared by every inbound adapter.
package delivery

import "context"

// Delivery is a long-running inbound adapter started by main after the fx graph is built.
type Delivery interface {
	// Serve blocks until the adapter stops. Shutdown is driven by fx OnStop hooks.
	Serve(ctx context.Context) error
}
