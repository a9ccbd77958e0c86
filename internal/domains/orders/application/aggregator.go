package application

import (
	"github.com/shopspring/decimal"

	catalogdomain "github.com/zngreg/pizzeria-orders/internal/domains/catalog/domain"
	"github.com/zngreg/pizzeria-orders/internal/domains/orders/domain"
)

// IngredientAggregator sums the raw-ingredient quantities needed to
// fulfil a set of valid orders.
type IngredientAggregator struct {
	catalog *catalogdomain.Catalog
}

// NewIngredientAggregator creates an aggregator over the given catalog.
func NewIngredientAggregator(catalog *catalogdomain.Catalog) *IngredientAggregator {
	return &IngredientAggregator{catalog: catalog}
}

// Aggregate returns the total ingredient demand keyed by ingredient
// name. For each line with a positive quantity the recipe quantity is
// multiplied by the line quantity and added to the running total; lines
// without a recipe, non-positive quantities, and orders without lines
// contribute nothing. Units are carried from the recipe as-is; no unit
// conversion or conflict detection happens here.
func (a *IngredientAggregator) Aggregate(orders []*domain.Order) map[string]catalogdomain.IngredientItem {
	totals := make(map[string]catalogdomain.IngredientItem)

	for _, order := range orders {
		if order == nil || len(order.Lines) == 0 {
			continue
		}
		for _, line := range order.Lines {
			if line.Quantity <= 0 {
				continue
			}
			recipe, ok := a.catalog.Recipe(line.ProductID)
			if !ok {
				continue
			}
			for name, item := range recipe.Ingredients {
				needed := item.Quantity.Mul(decimal.NewFromInt(line.Quantity))
				if existing, ok := totals[name]; ok {
					existing.Quantity = existing.Quantity.Add(needed)
					totals[name] = existing
				} else {
					totals[name] = catalogdomain.IngredientItem{
						Quantity: needed,
						Unit:     item.Unit,
						Type:     item.Type,
					}
				}
			}
		}
	}

	return totals
}
