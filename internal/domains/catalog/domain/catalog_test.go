package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookups(t *testing.T) {
	catalog := New(
		[]Product{
			{ID: "P1", Name: "Margherita", Price: decimal.NewFromFloat(10.0), VATRate: decimal.NewFromInt(15)},
			{ID: "P2", Name: "Pepperoni", Price: decimal.NewFromFloat(12.0), VATRate: decimal.NewFromInt(15)},
		},
		[]Recipe{
			{ProductID: "P1", Ingredients: map[string]IngredientItem{
				"Cheese": {Quantity: decimal.NewFromFloat(0.01), Unit: UnitKilograms, Type: IngredientDairy},
			}},
		},
	)

	p, ok := catalog.Product("P1")
	require.True(t, ok)
	require.Equal(t, "Margherita", p.Name)
	require.True(t, catalog.HasProduct("P2"))
	require.False(t, catalog.HasProduct("P3"))

	r, ok := catalog.Recipe("P1")
	require.True(t, ok)
	require.True(t, r.Ingredients["Cheese"].Quantity.Equal(decimal.NewFromFloat(0.01)))
	_, ok = catalog.Recipe("P2")
	require.False(t, ok)

	require.Equal(t, 2, catalog.Products())
	require.Equal(t, 1, catalog.Recipes())
}

func TestCatalogFirstEntryWinsOnDuplicateID(t *testing.T) {
	catalog := New(
		[]Product{
			{ID: "P1", Name: "Margherita", Price: decimal.NewFromFloat(10.0)},
			{ID: "P1", Name: "Impostor", Price: decimal.NewFromFloat(99.0)},
		},
		nil,
	)

	p, ok := catalog.Product("P1")
	require.True(t, ok)
	require.Equal(t, "Margherita", p.Name)
	require.Equal(t, 1, catalog.Products())
}
