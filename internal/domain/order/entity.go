// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/urbanwear-backend/internal/domain/pricing"
)

// BillingDetails is the billing block of an order.
type BillingDetails struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
}

// ShippingDetails is the shipping block of an order.
type ShippingDetails struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
}

// PlaceOrderRequest represents a checkout submission.
type PlaceOrderRequest struct {
	Billing  BillingDetails  `json:"billing" binding:"required"`
	Shipping ShippingDetails `json:"shipping"`
	Payment  string          `json:"payment"` // cod, card, upi; defaults to cod
}

// Order is the snapshot persisted when checkout completes. It is the
// only order artifact the storefront keeps.
type Order struct {
	ID       string            `json:"id"`
	PlacedAt time.Time         `json:"placed_at"`
	Billing  BillingDetails    `json:"billing"`
	Shipping ShippingDetails   `json:"shipping"`
	Payment  string            `json:"payment"`
	Items    []pricing.CartRow `json:"items"`
	Totals   pricing.Totals    `json:"totals"`
}
