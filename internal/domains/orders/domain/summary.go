package domain

import (
	"github.com/shopspring/decimal"

	catalogdomain "github.com/zngreg/pizzeria-orders/internal/domains/catalog/domain"
)

// RunSummary is the result of one pipeline run over one batch of orders.
type RunSummary struct {
	RunID          string
	ValidOrders    []*Order
	RejectedOrders []RejectedOrder
	GrossPrice     decimal.Decimal
	VATAmount      decimal.Decimal
	TotalPrice     decimal.Decimal
	Ingredients    map[string]catalogdomain.IngredientItem
}
