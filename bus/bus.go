// Package bus carries cart-change notifications between components.
//
// An Event says only whose cart changed; it carries no cart data.
// Subscribers are expected to re-read the store and recompute whatever
// they derive from it, so handling the same event twice is harmless.
package bus

import "context"

// Event marks a user's cart as changed.
type Event struct {
	UserID string `json:"user_id"`
}

// Handler reacts to a cart change.
type Handler func(ctx context.Context, ev Event)

// Bus fans cart-change events out to subscribers. Two transports exist:
// LocalBus reaches subscribers in this process, RedisBus reaches every
// instance of the service, including the publisher itself.
type Bus interface {
	Publish(ctx context.Context, ev Event) error

	// Subscribe registers a handler and returns its unsubscribe
	// function. Callers must unsubscribe when their component goes
	// away, or the handler keeps firing.
	Subscribe(h Handler) (unsubscribe func())
}
