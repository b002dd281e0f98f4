package database

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"storefront-service/models"
)

// MemoryCartStore holds serialized snapshots in a map. Used in tests and
// local development. Values are kept as JSON bytes so reads go through
// the same parse-or-degrade path as the durable backends.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string][]byte)}
}

func (s *MemoryCartStore) Get(_ context.Context, userID string) (*models.Cart, error) {
	s.mu.RLock()
	data, ok := s.carts[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, nil
	}
	return &cart, nil
}

func (s *MemoryCartStore) Save(_ context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.carts[cart.UserID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryCartStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	delete(s.carts, userID)
	s.mu.Unlock()
	return nil
}
