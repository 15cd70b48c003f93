// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/your-org/urbanwear-backend/internal/domain/cart"
	"github.com/your-org/urbanwear-backend/internal/domain/pricing"
)

// ErrEmptyCart is returned when checkout is attempted with no items.
var ErrEmptyCart = errors.New("cart is empty")

// Service handles the checkout call site. It reads the same persisted
// cart state the cart page writes and prices it through the same
// engine, so the two views cannot diverge for identical input.
type Service struct {
	carts     *cart.Service
	snapshots SnapshotStore
}

// NewService creates a new order service.
func NewService(carts *cart.Service, snapshots SnapshotStore) *Service {
	return &Service{
		carts:     carts,
		snapshots: snapshots,
	}
}

// Summary returns the checkout summary for the session: the persisted
// cart, normalized and priced with the persisted coupon.
func (s *Service) Summary(ctx context.Context, sessionID string) (*cart.Response, error) {
	return s.carts.Get(ctx, sessionID)
}

// PlaceOrder snapshots the priced cart as the session's last order and
// clears the cart. Empty carts are rejected.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, req *PlaceOrderRequest) (*Order, error) {
	summary, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(summary.Items) == 0 {
		return nil, ErrEmptyCart
	}

	payment := req.Payment
	if payment == "" {
		payment = "cod"
	}

	items := make([]pricing.CartRow, len(summary.Items))
	for i, item := range summary.Items {
		items[i] = pricing.CartRow{
			ProductID: item.ProductID,
			Size:      item.Size,
			Qty:       item.Qty,
		}
	}

	now := time.Now().UTC()
	placed := &Order{
		ID:       fmt.Sprintf("UW-%d", now.UnixMilli()),
		PlacedAt: now,
		Billing:  req.Billing,
		Shipping: req.Shipping,
		Payment:  payment,
		Items:    items,
		Totals:   summary.Totals,
	}

	if err := s.snapshots.SaveLast(ctx, sessionID, placed); err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return nil, err
	}

	return placed, nil
}

// LastOrder returns the session's last placed order.
func (s *Service) LastOrder(ctx context.Context, sessionID string) (*Order, error) {
	return s.snapshots.LoadLast(ctx, sessionID)
}
