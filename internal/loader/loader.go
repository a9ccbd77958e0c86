// Package loader reads order batches and reference catalogs from JSON
// and CSV files.
//
// Failure policy is deliberately asymmetric, matching the upstream data
// contract: a JSON file that exists but does not decode yields an empty
// slice with no error, while a CSV source at an empty or missing path is
// a hard failure that aborts the load.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	catalogdomain "github.com/zngreg/pizzeria-orders/internal/domains/catalog/domain"
	ordersdomain "github.com/zngreg/pizzeria-orders/internal/domains/orders/domain"
)

// ErrEmptyPath is returned by the CSV loader when no path was given.
var ErrEmptyPath = errors.New("path cannot be empty")

type orderRecord struct {
	OrderID         string            `json:"order_id"`
	Products        []orderLineRecord `json:"products"`
	DeliverAt       timestamp         `json:"deliver_at"`
	CreatedAt       timestamp         `json:"created_at"`
	CustomerAddress string            `json:"customer_address"`
}

type orderLineRecord struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type productRecord struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	VAT         decimal.Decimal `json:"vat"`
}

type recipeRecord struct {
	ProductID   string                          `json:"product_id"`
	Ingredients map[string]ingredientItemRecord `json:"ingredients"`
}

type ingredientItemRecord struct {
	Quantity decimal.Decimal `json:"quantity"`
	Units    string          `json:"units"`
	Type     string          `json:"type"`
}

// OrdersJSON loads an order batch from a JSON array-of-objects file.
func OrdersJSON(path string) ([]*ordersdomain.Order, error) {
	records, err := decodeJSON[orderRecord](path)
	if err != nil {
		return nil, err
	}
	orders := make([]*ordersdomain.Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, r.toDomain())
	}
	return orders, nil
}

// ProductsJSON loads the product catalog from a JSON file.
func ProductsJSON(path string) ([]catalogdomain.Product, error) {
	records, err := decodeJSON[productRecord](path)
	if err != nil {
		return nil, err
	}
	products := make([]catalogdomain.Product, 0, len(records))
	for _, r := range records {
		products = append(products, catalogdomain.Product{
			ID:      r.ProductID,
			Name:    r.ProductName,
			Price:   r.Price,
			VATRate: r.VAT,
		})
	}
	return products, nil
}

// RecipesJSON loads the ingredient recipes from a JSON file.
func RecipesJSON(path string) ([]catalogdomain.Recipe, error) {
	records, err := decodeJSON[recipeRecord](path)
	if err != nil {
		return nil, err
	}
	recipes := make([]catalogdomain.Recipe, 0, len(records))
	for _, r := range records {
		ingredients := make(map[string]catalogdomain.IngredientItem, len(r.Ingredients))
		for name, item := range r.Ingredients {
			ingredients[name] = catalogdomain.IngredientItem{
				Quantity: item.Quantity,
				Unit:     catalogdomain.Unit(item.Units),
				Type:     catalogdomain.IngredientType(item.Type),
			}
		}
		recipes = append(recipes, catalogdomain.Recipe{ProductID: r.ProductID, Ingredients: ingredients})
	}
	return recipes, nil
}

// decodeJSON reads the file and decodes a JSON array. A file that cannot
// be read is an error; a file that cannot be decoded is an empty slice.
func decodeJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return []T{}, nil
	}
	if records == nil {
		return []T{}, nil
	}
	return records, nil
}

func (r orderRecord) toDomain() *ordersdomain.Order {
	lines := make([]*ordersdomain.OrderLine, 0, len(r.Products))
	for _, p := range r.Products {
		lines = append(lines, &ordersdomain.OrderLine{ProductID: p.ProductID, Quantity: p.Quantity})
	}
	return &ordersdomain.Order{
		ID:              r.OrderID,
		Lines:           lines,
		DeliverAt:       r.DeliverAt.Time,
		CreatedAt:       r.CreatedAt.Time,
		CustomerAddress: r.CustomerAddress,
	}
}
