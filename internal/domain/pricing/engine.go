// internal/domain/pricing/engine.go
package pricing

import (
	"math"

	"github.com/your-org/urbanwear-backend/internal/domain/catalog"
	"github.com/your-org/urbanwear-backend/internal/domain/coupon"
)

// Rules hold the pricing constants. They are fixed per process; the
// engine itself keeps no other state, so identical inputs always yield
// identical totals no matter which page asks.
type Rules struct {
	TaxRate         float64
	FreeShippingMin int64
	FlatShippingFee int64
}

// DefaultRules returns the storefront's standard pricing rules: 5% tax,
// flat 149 shipping waived from 2999 up.
func DefaultRules() Rules {
	return Rules{
		TaxRate:         0.05,
		FreeShippingMin: 2999,
		FlatShippingFee: 149,
	}
}

// Engine computes order totals from cart snapshots.
type Engine struct {
	rules Rules
}

// NewEngine creates a pricing engine with the given rules.
func NewEngine(rules Rules) *Engine {
	return &Engine{rules: rules}
}

type rowKey struct {
	productID uint
	size      string
}

// NormalizeCart repairs a raw cart snapshot: rows whose product id does
// not resolve in the catalog or whose size is empty are dropped, rows
// sharing a (product, size) pair are merged by summing quantities, and
// every quantity is clamped to at least 1. The result is stable in
// first-occurrence order and normalizing twice equals normalizing once.
// Every cart write goes through here so externally corrupted state
// heals on the next load.
func NormalizeCart(rows []CartRow, cat *catalog.Catalog) []CartRow {
	out := make([]CartRow, 0, len(rows))
	index := make(map[rowKey]int, len(rows))

	for _, row := range rows {
		if row.Size == "" || cat.ByID(row.ProductID) == nil {
			continue
		}
		qty := row.Qty
		if qty < 1 {
			qty = 1
		}

		key := rowKey{row.ProductID, row.Size}
		if i, ok := index[key]; ok {
			out[i].Qty += qty
			continue
		}
		index[key] = len(out)
		out = append(out, CartRow{ProductID: row.ProductID, Size: row.Size, Qty: qty})
	}

	return out
}

// ComputeTotals prices a cart snapshot with an optional coupon code.
// Rows with unresolvable product ids contribute nothing; they should
// already be gone after NormalizeCart, but the engine does not rely on
// that. The same function serves the cart page and checkout, which is
// what keeps the two views in agreement.
func (e *Engine) ComputeTotals(rows []CartRow, couponCode string, cat *catalog.Catalog) Totals {
	var subtotal int64
	for _, row := range rows {
		p := cat.ByID(row.ProductID)
		if p == nil {
			continue
		}
		qty := row.Qty
		if qty < 1 {
			qty = 1
		}
		subtotal += p.Price * int64(qty)
	}

	discount := coupon.Resolve(couponCode, subtotal)

	discounted := subtotal - discount.Amount
	if discounted < 0 {
		discounted = 0
	}

	tax := roundRupees(float64(discounted) * e.rules.TaxRate)
	shipping := e.shipping(discounted)

	total := discounted + tax + shipping
	if total < 0 {
		total = 0
	}

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Shipping: shipping,
		Total:    total,
	}
}

// shipping is free for empty carts and above the free-shipping
// threshold, otherwise the flat fee applies.
func (e *Engine) shipping(discountedSubtotal int64) int64 {
	if discountedSubtotal <= 0 {
		return 0
	}
	if discountedSubtotal >= e.rules.FreeShippingMin {
		return 0
	}
	return e.rules.FlatShippingFee
}

// roundRupees rounds half away from zero. Cart and checkout both price
// through this one helper so their tax lines can never drift apart.
func roundRupees(v float64) int64 {
	return int64(math.Round(v))
}
