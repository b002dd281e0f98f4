package database

import (
	"context"

	"storefront-service/models"
)

// CartStore is the durable slot holding a user's full cart snapshot.
// There is no partial-update API: mutations operate on the in-memory
// cart and write the whole snapshot back. Concurrent writers are
// last-writer-wins; the store offers no merge.
type CartStore interface {
	// Get returns the stored cart, or nil when nothing is stored.
	// An unparseable stored value also yields nil — corruption
	// degrades to an empty cart and never reaches the caller.
	Get(ctx context.Context, userID string) (*models.Cart, error)

	// Save overwrites the snapshot and stamps UpdatedAt.
	Save(ctx context.Context, cart *models.Cart) error

	// Delete removes the snapshot entirely.
	Delete(ctx context.Context, userID string) error
}
