// Package domain holds the reference catalogs the order pipeline reads:
// products with their prices and the ingredient recipes behind them.
package domain

import "github.com/shopspring/decimal"

// Unit enumerates the units of measure a recipe can express.
type Unit string

const (
	UnitKilograms Unit = "kg"
	UnitLiters    Unit = "l"
	UnitPieces    Unit = "pcs"
)

// IngredientType classifies a raw ingredient. Informational only; the
// pipeline never branches on it.
type IngredientType string

const (
	IngredientDairy     IngredientType = "dairy"
	IngredientMeat      IngredientType = "meat"
	IngredientVegetable IngredientType = "vegetable"
	IngredientGrain     IngredientType = "grain"
	IngredientOther     IngredientType = "other"
)

// Product is a sellable catalog entry. VATRate is a percentage of the
// unit price.
type Product struct {
	ID      string
	Name    string
	Price   decimal.Decimal
	VATRate decimal.Decimal
}

// IngredientItem is a quantity of one raw ingredient, in the recipe's
// unit of measure.
type IngredientItem struct {
	Quantity decimal.Decimal
	Unit     Unit
	Type     IngredientType
}

// Recipe maps a product to the raw ingredients needed to produce one
// unit of it, keyed by ingredient name.
type Recipe struct {
	ProductID   string
	Ingredients map[string]IngredientItem
}

// Catalog is the immutable lookup over products and recipes built once
// per run from the external loaders. Later entries with a repeated
// product id are ignored; the first one wins.
type Catalog struct {
	products map[string]Product
	recipes  map[string]Recipe
}

// New builds a catalog from loader output.
func New(products []Product, recipes []Recipe) *Catalog {
	c := &Catalog{
		products: make(map[string]Product, len(products)),
		recipes:  make(map[string]Recipe, len(recipes)),
	}
	for _, p := range products {
		if _, ok := c.products[p.ID]; ok {
			continue
		}
		c.products[p.ID] = p
	}
	for _, r := range recipes {
		if _, ok := c.recipes[r.ProductID]; ok {
			continue
		}
		c.recipes[r.ProductID] = r
	}
	return c
}

// Product looks up a product by id.
func (c *Catalog) Product(id string) (Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// HasProduct reports whether the id refers to a known product.
func (c *Catalog) HasProduct(id string) bool {
	_, ok := c.products[id]
	return ok
}

// Recipe looks up the ingredient recipe for a product id.
func (c *Catalog) Recipe(productID string) (Recipe, bool) {
	r, ok := c.recipes[productID]
	return r, ok
}

// Products returns the number of catalog products.
func (c *Catalog) Products() int { return len(c.products) }

// Recipes returns the number of catalog recipes.
func (c *Catalog) Recipes() int { return len(c.recipes) }
