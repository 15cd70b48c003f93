// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/urbanwear-backend/internal/domain/catalog"
	"github.com/your-org/urbanwear-backend/internal/domain/pricing"
)

// State is one session's persisted cart: the raw rows plus the coupon
// code last applied on the cart page. Checkout prices the same State,
// which is how both pages stay in agreement.
type State struct {
	Rows       []pricing.CartRow `json:"rows"`
	CouponCode string            `json:"coupon_code,omitempty"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// ItemResponse is a cart row joined with its product for rendering.
type ItemResponse struct {
	ProductID uint             `json:"product_id"`
	Size      string           `json:"size"`
	Qty       int              `json:"qty"`
	Product   *catalog.Product `json:"product,omitempty"`
	LineTotal int64            `json:"line_total"`
}

// Response represents a shopping cart with items and totals.
type Response struct {
	Items      []ItemResponse `json:"items"`
	CouponCode string         `json:"coupon_code,omitempty"`
	Totals     pricing.Totals `json:"totals"`
	ItemCount  int            `json:"item_count"`     // Number of unique items
	TotalQty   int            `json:"total_quantity"` // Sum of all quantities
	UpdatedAt  time.Time      `json:"updated_at"`
}

// AddItemRequest represents an add to cart request.
type AddItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Qty       int    `json:"qty"`
}

// UpdateItemRequest represents a quantity change for one cart row.
type UpdateItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Qty       int    `json:"qty" binding:"required"`
}

// ApplyCouponRequest represents a coupon application request.
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}
