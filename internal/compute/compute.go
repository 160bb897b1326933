// Package compute holds the pure financial math for a backfilled invoice.
// Every function here is deterministic and side-effect-free, so the handlers
// can recompute on every edit without caching anything.
package compute

import (
	"github.com/shopspring/decimal"

	"github.com/Shrijana18/StockPilot-v1-sub002/internal/models"
)

// Totals is the aggregate result for one draft.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"taxAmount"`
	Total     float64 `json:"total"`
}

// LineSubtotal computes price * quantity * (1 - discount/100) for one line
// item. Unparseable numeric fields coerce to 0 via FlexNumber, negative price
// or quantity is treated as 0, and the discount is clamped to [0,100].
func LineSubtotal(item models.DraftLineItem) float64 {
	price := item.Price.Float()
	qty := item.Quantity.Float()
	if price < 0 {
		price = 0
	}
	if qty < 0 {
		qty = 0
	}
	discount := item.DiscountPercent.Float()
	if discount < 0 {
		discount = 0
	} else if discount > 100 {
		discount = 100
	}
	return price * qty * (1 - discount/100)
}

// Aggregate sums line subtotals and applies the flat tax percentage. All
// arithmetic stays at full float precision; rounding to currency precision
// happens only at the persistence boundary so rounding error never
// accumulates across line items.
func Aggregate(items []models.DraftLineItem, taxPercent models.FlexNumber) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += LineSubtotal(item)
	}
	taxAmount := subtotal * taxPercent.Float() / 100
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal + taxAmount,
	}
}

// RoundCurrency rounds to 2 decimal places, half away from zero. Only the
// finalize step calls this.
func RoundCurrency(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
