package cart

import (
	"context"
	"sync"

	"storefront-service/bus"
	"storefront-service/database"

	"go.uber.org/zap"
)

// Summary is the pair of derived values the storefront shows
// everywhere: the header badge count and the checkout total.
type Summary struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// SummaryCache keeps per-user summaries warm. It never trusts its own
// previous value: on every bus event it re-reads the snapshot and
// recomputes, so a stale or doubled event can't make it drift.
type SummaryCache struct {
	store  database.CartStore
	logger *zap.Logger

	mu        sync.RWMutex
	summaries map[string]Summary

	unsubscribe func()
}

func NewSummaryCache(store database.CartStore, events bus.Bus, logger *zap.Logger) *SummaryCache {
	c := &SummaryCache{
		store:     store,
		logger:    logger,
		summaries: make(map[string]Summary),
	}
	c.unsubscribe = events.Subscribe(c.onCartChanged)
	return c
}

func (c *SummaryCache) onCartChanged(ctx context.Context, ev bus.Event) {
	if _, err := c.recompute(ctx, ev.UserID); err != nil {
		c.logger.Warn("summary recompute failed",
			zap.String("user_id", ev.UserID),
			zap.Error(err),
		)
	}
}

// Get returns the cached summary, computing it on first sight of the
// user (the freshly-mounted-component path).
func (c *SummaryCache) Get(ctx context.Context, userID string) (Summary, error) {
	c.mu.RLock()
	s, ok := c.summaries[userID]
	c.mu.RUnlock()
	if ok {
		return s, nil
	}
	return c.recompute(ctx, userID)
}

func (c *SummaryCache) recompute(ctx context.Context, userID string) (Summary, error) {
	cart, err := c.store.Get(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		Count: ItemCount(cart),
		Total: TotalPrice(cart),
	}

	c.mu.Lock()
	c.summaries[userID] = s
	c.mu.Unlock()
	return s, nil
}

// Close detaches the cache from the bus.
func (c *SummaryCache) Close() {
	c.unsubscribe()
}
