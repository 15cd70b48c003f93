// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"

	"github.com/your-org/urbanwear-backend/internal/domain/catalog"
	"github.com/your-org/urbanwear-backend/internal/domain/pricing"
)

// ErrInvalidCoupon is returned when a coupon code resolves to no
// discount on the current cart.
var ErrInvalidCoupon = errors.New("invalid coupon code")

// ErrItemNotFound is returned when a (product, size) row is not in the
// cart.
var ErrItemNotFound = errors.New("item not found in cart")

// ErrUnknownProduct is returned when an add targets a product id that
// is not in the catalog.
var ErrUnknownProduct = errors.New("product not found")

// Service handles cart session state around the pricing engine. The
// engine stays pure: Service loads snapshots, runs them through
// normalization and pricing, and writes results back.
type Service struct {
	store   Store
	catalog *catalog.Catalog
	engine  *pricing.Engine
}

// NewService creates a new cart service.
func NewService(store Store, cat *catalog.Catalog, engine *pricing.Engine) *Service {
	return &Service{
		store:   store,
		catalog: cat,
		engine:  engine,
	}
}

// Get retrieves the session's cart, normalized and priced. When
// normalization changed the persisted rows (stale product ids, merged
// duplicates) the repaired state is written back.
func (s *Service) Get(ctx context.Context, sessionID string) (*Response, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	normalized := pricing.NormalizeCart(state.Rows, s.catalog)
	if !rowsEqual(state.Rows, normalized) {
		state.Rows = normalized
		if err := s.store.Save(ctx, sessionID, state); err != nil {
			return nil, err
		}
	}

	return s.respond(state), nil
}

// Add puts an item in the cart, merging with an existing row for the
// same (product, size) pair. Quantities below 1 count as 1.
func (s *Service) Add(ctx context.Context, sessionID string, req *AddItemRequest) (*Response, error) {
	product := s.catalog.ByID(req.ProductID)
	if product == nil {
		return nil, ErrUnknownProduct
	}

	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	qty := req.Qty
	if qty < 1 {
		qty = 1
	}
	state.Rows = append(state.Rows, pricing.CartRow{
		ProductID: req.ProductID,
		Size:      req.Size,
		Qty:       qty,
	})

	if err := s.saveNormalized(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return s.respond(state), nil
}

// UpdateQuantity sets the quantity of one cart row, clamped to at
// least 1. Removal is a separate operation.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, req *UpdateItemRequest) (*Response, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Rows = pricing.NormalizeCart(state.Rows, s.catalog)

	qty := req.Qty
	if qty < 1 {
		qty = 1
	}

	found := false
	for i := range state.Rows {
		if state.Rows[i].ProductID == req.ProductID && state.Rows[i].Size == req.Size {
			state.Rows[i].Qty = qty
			found = true
			break
		}
	}
	if !found {
		return nil, ErrItemNotFound
	}

	if err := s.saveNormalized(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return s.respond(state), nil
}

// Remove deletes one (product, size) row from the cart.
func (s *Service) Remove(ctx context.Context, sessionID string, productID uint, size string) (*Response, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	kept := state.Rows[:0]
	for _, row := range state.Rows {
		if row.ProductID == productID && row.Size == size {
			continue
		}
		kept = append(kept, row)
	}
	state.Rows = kept

	if err := s.saveNormalized(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return s.respond(state), nil
}

// Clear removes all items and the applied coupon.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}

// ApplyCoupon validates a coupon code against the current cart and
// persists it when it yields a discount. A code that resolves to
// nothing clears any previously applied coupon and returns
// ErrInvalidCoupon along with the unchanged-cart view.
func (s *Service) ApplyCoupon(ctx context.Context, sessionID, code string) (*Response, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Rows = pricing.NormalizeCart(state.Rows, s.catalog)

	preview := s.engine.ComputeTotals(state.Rows, code, s.catalog)
	if !preview.Discount.Applied() {
		state.CouponCode = ""
		if err := s.store.Save(ctx, sessionID, state); err != nil {
			return nil, err
		}
		return s.respond(state), ErrInvalidCoupon
	}

	state.CouponCode = preview.Discount.Code
	if err := s.store.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return s.respond(state), nil
}

// RemoveCoupon drops the applied coupon, keeping the items.
func (s *Service) RemoveCoupon(ctx context.Context, sessionID string) (*Response, error) {
	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.CouponCode = ""
	if err := s.saveNormalized(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return s.respond(state), nil
}

// saveNormalized is the write gate: no state reaches the store without
// passing through NormalizeCart first.
func (s *Service) saveNormalized(ctx context.Context, sessionID string, state *State) error {
	state.Rows = pricing.NormalizeCart(state.Rows, s.catalog)
	return s.store.Save(ctx, sessionID, state)
}

func (s *Service) respond(state *State) *Response {
	items := make([]ItemResponse, 0, len(state.Rows))
	totalQty := 0
	for _, row := range state.Rows {
		product := s.catalog.ByID(row.ProductID)
		if product == nil {
			continue
		}
		items = append(items, ItemResponse{
			ProductID: row.ProductID,
			Size:      row.Size,
			Qty:       row.Qty,
			Product:   product,
			LineTotal: product.Price * int64(row.Qty),
		})
		totalQty += row.Qty
	}

	return &Response{
		Items:      items,
		CouponCode: state.CouponCode,
		Totals:     s.engine.ComputeTotals(state.Rows, state.CouponCode, s.catalog),
		ItemCount:  len(items),
		TotalQty:   totalQty,
		UpdatedAt:  state.UpdatedAt,
	}
}

func rowsEqual(a, b []pricing.CartRow) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
