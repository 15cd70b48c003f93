// internal/domain/pricing/entity.go
package pricing

import (
	"github.com/your-org/urbanwear-backend/internal/domain/coupon"
)

// CartRow is one (product, size, quantity) line of a session cart.
// Rows are persisted as-is; NormalizeCart is the gate that repairs
// them before any write or pricing pass.
type CartRow struct {
	ProductID uint   `json:"product_id"`
	Size      string `json:"size"`
	Qty       int    `json:"qty"`
}

// Totals is the full price breakdown for a cart. It is recomputed
// fresh on every call and never persisted on its own.
type Totals struct {
	Subtotal int64             `json:"subtotal"`
	Discount coupon.Descriptor `json:"discount"`
	Tax      int64             `json:"tax"`
	Shipping int64             `json:"shipping"`
	Total    int64             `json:"total"`
}
