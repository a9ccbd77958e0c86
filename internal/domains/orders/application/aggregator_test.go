package application

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/zngreg/pizzeria-orders/internal/domains/catalog/domain"
	"github.com/zngreg/pizzeria-orders/internal/domains/orders/domain"
)

func TestAggregateSumsIngredientsAcrossOrders(t *testing.T) {
	aggregator := NewIngredientAggregator(testCatalog())
	orders := []*domain.Order{
		{ID: "ORD-1", Lines: []*domain.OrderLine{{ProductID: "P1", Quantity: 2}}},
		{ID: "ORD-2", Lines: []*domain.OrderLine{{ProductID: "P2", Quantity: 1}}},
	}

	totals := aggregator.Aggregate(orders)

	require.Len(t, totals, 3)
	requireDecimalEqual(t, 0.02, totals["Cheese"].Quantity)
	requireDecimalEqual(t, 0.10, totals["Tomato"].Quantity)
	requireDecimalEqual(t, 0.10, totals["Dough"].Quantity)
	require.Equal(t, catalogdomain.UnitKilograms, totals["Cheese"].Unit)
	require.Equal(t, catalogdomain.IngredientDairy, totals["Cheese"].Type)
}

func TestAggregateAccumulatesSameIngredientAcrossProducts(t *testing.T) {
	catalog := catalogdomain.New(
		[]catalogdomain.Product{{ID: "P1"}, {ID: "P2"}},
		[]catalogdomain.Recipe{
			{ProductID: "P1", Ingredients: map[string]catalogdomain.IngredientItem{
				"Cheese": {Quantity: decimal.NewFromFloat(0.01), Unit: catalogdomain.UnitKilograms},
			}},
			{ProductID: "P2", Ingredients: map[string]catalogdomain.IngredientItem{
				"Cheese": {Quantity: decimal.NewFromFloat(0.03), Unit: catalogdomain.UnitKilograms},
			}},
		},
	)
	aggregator := NewIngredientAggregator(catalog)

	totals := aggregator.Aggregate([]*domain.Order{
		{ID: "ORD-1", Lines: []*domain.OrderLine{
			{ProductID: "P1", Quantity: 2},
			{ProductID: "P2", Quantity: 1},
		}},
	})

	require.Len(t, totals, 1)
	requireDecimalEqual(t, 0.05, totals["Cheese"].Quantity)
}

func TestAggregateSkipsNonPositiveQuantitiesAndUnknownRecipes(t *testing.T) {
	aggregator := NewIngredientAggregator(testCatalog())

	totals := aggregator.Aggregate([]*domain.Order{
		{ID: "ORD-1", Lines: []*domain.OrderLine{
			{ProductID: "P1", Quantity: 0},
			{ProductID: "P404", Quantity: 5},
		}},
		{ID: "ORD-2"},
		nil,
	})

	require.Empty(t, totals)
}

func TestAggregateDoesNotMutateCatalogRecipes(t *testing.T) {
	catalog := testCatalog()
	aggregator := NewIngredientAggregator(catalog)

	aggregator.Aggregate([]*domain.Order{
		{ID: "ORD-1", Lines: []*domain.OrderLine{{ProductID: "P1", Quantity: 10}}},
	})

	recipe, ok := catalog.Recipe("P1")
	require.True(t, ok)
	requireDecimalEqual(t, 0.01, recipe.Ingredients["Cheese"].Quantity)
}
