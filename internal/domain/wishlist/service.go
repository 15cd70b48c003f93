// internal/domain/wishlist/service.go
package wishlist

import (
	"context"
	"errors"

	"github.com/your-org/urbanwear-backend/internal/domain/cart"
	"github.com/your-org/urbanwear-backend/internal/domain/catalog"
)

// ErrUnknownProduct is returned when an operation targets a product id
// that is not in the catalog.
var ErrUnknownProduct = errors.New("product not found")

// Service handles wishlist session state: a plain list of product ids
// kept per session.
type Service struct {
	store       Store
	catalog     *catalog.Catalog
	cartService *cart.Service
}

// NewService creates a new wishlist service.
func NewService(store Store, cat *catalog.Catalog, cartService *cart.Service) *Service {
	return &Service{
		store:       store,
		catalog:     cat,
		cartService: cartService,
	}
}

// Response represents a wishlist with resolved products.
type Response struct {
	Items []catalog.Product `json:"items"`
	Count int               `json:"count"`
}

// ToggleRequest represents a wishlist toggle request.
type ToggleRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// MoveToCartRequest carries the optional size for a wishlist move;
// when absent the product's first size is used.
type MoveToCartRequest struct {
	Size string `json:"size"`
}

// Get retrieves the session's wishlist. Ids that no longer resolve in
// the catalog are dropped silently.
func (s *Service) Get(ctx context.Context, sessionID string) (*Response, error) {
	ids, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p := s.catalog.ByID(id); p != nil {
			items = append(items, *p)
		}
	}

	return &Response{Items: items, Count: len(items)}, nil
}

// Toggle adds the product to the wishlist, or removes it when already
// present. It reports whether the product ended up in the list.
func (s *Service) Toggle(ctx context.Context, sessionID string, productID uint) (bool, error) {
	if s.catalog.ByID(productID) == nil {
		return false, ErrUnknownProduct
	}

	ids, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return false, err
	}

	for i, id := range ids {
		if id == productID {
			ids = append(ids[:i], ids[i+1:]...)
			return false, s.store.Save(ctx, sessionID, ids)
		}
	}

	ids = append(ids, productID)
	return true, s.store.Save(ctx, sessionID, ids)
}

// Remove deletes the product from the wishlist if present.
func (s *Service) Remove(ctx context.Context, sessionID string, productID uint) error {
	ids, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	kept := ids[:0]
	for _, id := range ids {
		if id != productID {
			kept = append(kept, id)
		}
	}
	return s.store.Save(ctx, sessionID, kept)
}

// Clear empties the session's wishlist.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}

// MoveToCart adds one unit of the product to the cart (defaulting to
// its first size) and removes it from the wishlist.
func (s *Service) MoveToCart(ctx context.Context, sessionID string, productID uint, size string) (*cart.Response, error) {
	product := s.catalog.ByID(productID)
	if product == nil {
		return nil, ErrUnknownProduct
	}

	if size == "" && len(product.Sizes) > 0 {
		size = product.Sizes[0]
	}

	cartResponse, err := s.cartService.Add(ctx, sessionID, &cart.AddItemRequest{
		ProductID: productID,
		Size:      size,
		Qty:       1,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Remove(ctx, sessionID, productID); err != nil {
		return nil, err
	}

	return cartResponse, nil
}
