// Package cart owns the cart mutation rules. Every mutation is a
// synchronous read-modify-write of the whole snapshot, persisted and
// then broadcast on the bus so anything deriving from the cart can
// recompute. Invalid product ids are no-ops, not errors.
package cart

import (
	"context"

	"storefront-service/bus"
	"storefront-service/database"
	"storefront-service/models"

	"go.uber.org/zap"
)

type Service struct {
	store  database.CartStore
	events bus.Bus
	logger *zap.Logger
}

func NewService(store database.CartStore, events bus.Bus, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		events: events,
		logger: logger,
	}
}

// Get returns the user's cart, empty when nothing is stored.
func (s *Service) Get(ctx context.Context, userID string) (*models.Cart, error) {
	c, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = models.EmptyCart(userID)
	}
	return c, nil
}

// AddItem appends a line, or increments quantity when the product is
// already in the cart. A non-positive quantity on the request means 1.
func (s *Service) AddItem(ctx context.Context, userID string, item models.CartItem) (*models.Cart, error) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	c, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i, existing := range c.Items {
		if existing.ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			found = true
			break
		}
	}
	if !found {
		c.Items = append(c.Items, item)
	}

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	s.notify(ctx, userID)
	return c, nil
}

// SetQuantity overwrites a line's quantity. Zero or below removes the
// line entirely; a line never survives with a non-positive quantity.
func (s *Service) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, productID)
	}

	c, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items[i].Quantity = quantity
			break
		}
	}

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	s.notify(ctx, userID)
	return c, nil
}

// RemoveItem filters out the line with the matching product id.
func (s *Service) RemoveItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	c, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := make([]models.CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	s.notify(ctx, userID)
	return c, nil
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if err := s.store.Delete(ctx, userID); err != nil {
		return err
	}
	s.notify(ctx, userID)
	return nil
}

// notify broadcasts unconditionally after a persisted mutation. A
// failed broadcast doesn't undo the write; subscribers catch up on the
// next event.
func (s *Service) notify(ctx context.Context, userID string) {
	if err := s.events.Publish(ctx, bus.Event{UserID: userID}); err != nil {
		s.logger.Warn("cart change notification failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}
