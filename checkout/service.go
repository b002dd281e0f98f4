// Package checkout turns a cart into an order against the external
// order service. A submission moves Idle -> Submitting -> Succeeded or
// Failed; failure leaves the cart intact so the user can retry.
package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"storefront-service/bus"
	"storefront-service/database"
	"storefront-service/models"

	"go.uber.org/zap"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Validation failures keep the submission in Idle: nothing was sent,
// nothing changed.
var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNoAddress = errors.New("no shipping address selected")
	ErrInFlight  = errors.New("a checkout is already in progress")
)

// Result is the terminal outcome of one submission.
type Result struct {
	State   State  `json:"state"`
	OrderID string `json:"order_id,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}

// OrderCreator submits an order to the external order service.
type OrderCreator interface {
	Create(ctx context.Context, req models.OrderRequest) (*models.OrderResponse, error)
}

// EventSender publishes the checkout event once an order is accepted.
type EventSender interface {
	SendCheckoutEvent(event models.CheckoutEvent) error
}

type Service struct {
	store  database.CartStore
	events bus.Bus
	orders OrderCreator
	sender EventSender
	logger *zap.Logger

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewService(store database.CartStore, events bus.Bus, orders OrderCreator, sender EventSender, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		events:   events,
		orders:   orders,
		sender:   sender,
		logger:   logger,
		inFlight: make(map[string]bool),
	}
}

// Submit places the order for the user's current cart.
//
// Preconditions: non-empty cart and a selected address; otherwise a
// validation error is returned and the cart is untouched. While one
// submission is in flight for a user, further ones are rejected with
// ErrInFlight. On success the cart is cleared and the change broadcast;
// on upstream failure the Result carries the service's message and the
// cart stays as it was.
func (s *Service) Submit(ctx context.Context, userID string, req models.CheckoutRequest) (*Result, error) {
	if req.AddressID == "" {
		return nil, ErrNoAddress
	}

	c, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c == nil || len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}

	if !s.begin(userID) {
		return nil, ErrInFlight
	}
	defer s.end(userID)

	items := make([]models.OrderItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order := models.OrderRequest{
		Items:     items,
		AddressID: req.AddressID,
		Notes:     req.Notes,
	}

	resp, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Warn("order submission failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return &Result{
			State:   StateFailed,
			Message: upstreamMessage(err),
		}, nil
	}

	// Order accepted: clear the cart and tell everyone. The order
	// already exists upstream, so a failed clear gets one retry before
	// we give up and log it.
	if err := s.store.Delete(ctx, userID); err != nil {
		s.logger.Warn("failed to clear cart after checkout, retrying",
			zap.String("user_id", userID),
			zap.String("order_id", resp.OrderID),
			zap.Error(err),
		)
		if err := s.store.Delete(ctx, userID); err != nil {
			s.logger.Error("failed to clear cart after checkout",
				zap.String("user_id", userID),
				zap.String("order_id", resp.OrderID),
				zap.Error(err),
			)
		}
	}
	if err := s.events.Publish(ctx, bus.Event{UserID: userID}); err != nil {
		s.logger.Warn("cart change notification failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}

	event := models.CheckoutEvent{
		Event:     "checkout.completed",
		UserID:    userID,
		OrderID:   resp.OrderID,
		Items:     items,
		Timestamp: time.Now(),
	}
	if err := s.sender.SendCheckoutEvent(event); err != nil {
		s.logger.Warn("checkout event publish failed",
			zap.String("order_id", resp.OrderID),
			zap.Error(err),
		)
	}

	return &Result{
		State:   StateSucceeded,
		OrderID: resp.OrderID,
		Status:  resp.Status,
		Message: "Order placed successfully!",
	}, nil
}

func (s *Service) begin(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[userID] {
		return false
	}
	s.inFlight[userID] = true
	return true
}

func (s *Service) end(userID string) {
	s.mu.Lock()
	delete(s.inFlight, userID)
	s.mu.Unlock()
}

// upstreamMessage prefers the order service's own message and falls
// back to generic text when there isn't one.
func upstreamMessage(err error) string {
	var svcErr *OrderServiceError
	if errors.As(err, &svcErr) && svcErr.Message != "" {
		return svcErr.Message
	}
	return "Unknown error"
}
