// Package domain models customer orders flowing through the processing
// pipeline: their line items, consolidation of repeated submissions, and
// the outcomes a run produces.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is one customer order submission. The price fields start at zero
// and are written by the price calculator after validation; they
// accumulate, so pricing must run exactly once per order lifetime.
type Order struct {
	ID              string
	Lines           []*OrderLine
	DeliverAt       time.Time
	CreatedAt       time.Time
	CustomerAddress string
	GrossPrice      decimal.Decimal
	VATAmount       decimal.Decimal
	TotalPrice      decimal.Decimal
}

// OrderLine is one product-and-quantity entry within an order.
// TotalPrice is defined only after the parent order has been priced.
type OrderLine struct {
	ProductID  string
	Quantity   int64
	TotalPrice decimal.Decimal
}

// Line returns the line for the given product id, or nil if the order
// has none.
func (o *Order) Line(productID string) *OrderLine {
	for _, line := range o.Lines {
		if line.ProductID == productID {
			return line
		}
	}
	return nil
}

// ValidationResult is the outcome of validating a single order. Reason
// is set only when the order is invalid.
type ValidationResult struct {
	Valid  bool
	Reason string
}

// RejectedOrder pairs a rejected order with the reason it failed
// validation.
type RejectedOrder struct {
	Order  *Order
	Reason string
}
