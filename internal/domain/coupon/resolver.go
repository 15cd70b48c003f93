// internal/domain/coupon/resolver.go
package coupon

import (
	"math"
	"strings"
)

// Known coupon codes. Adding a code means adding a case to Resolve;
// callers never need to change.
const (
	CodeUrban10    = "URBAN10"
	CodeWelcome100 = "WELCOME100"
)

// LabelInvalid marks a code that is not in the coupon table.
const LabelInvalid = "Invalid"

// Descriptor is the resolved effect of a coupon code: the discount
// amount and a display label. A zero Descriptor means "no coupon".
type Descriptor struct {
	Code   string `json:"code"`
	Amount int64  `json:"amount"`
	Label  string `json:"label"`
}

// Applied reports whether the coupon actually reduces the subtotal.
func (d Descriptor) Applied() bool {
	return d.Amount > 0
}

// Invalid reports whether the code was present but unrecognized.
func (d Descriptor) Invalid() bool {
	return d.Label == LabelInvalid
}

// Resolve looks up a coupon code against the subtotal. The code is
// trimmed and upper-cased before lookup and returned in that normalized
// form. Resolve never fails: an empty code is "no coupon" and an
// unknown one comes back zero-amount with the Invalid label, for the
// caller to surface or ignore. The amount never exceeds the subtotal.
func Resolve(code string, subtotal int64) Descriptor {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return Descriptor{}
	}

	switch normalized {
	case CodeUrban10:
		amount := int64(math.Round(float64(subtotal) * 0.10))
		return Descriptor{Code: normalized, Amount: clampAmount(amount, subtotal), Label: "10% OFF"}
	case CodeWelcome100:
		return Descriptor{Code: normalized, Amount: clampAmount(100, subtotal), Label: "₹100 OFF"}
	}

	return Descriptor{Code: normalized, Label: LabelInvalid}
}

func clampAmount(amount, subtotal int64) int64 {
	if amount < 0 {
		return 0
	}
	if amount > subtotal {
		return subtotal
	}
	return amount
}
