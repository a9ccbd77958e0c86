package api

import (
	"fmt"
	"os"
	"strings"
)

// Supported order batch formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Config carries environment-driven settings for the service.
type Config struct {
	Port            string
	ProductsPath    string
	IngredientsPath string
	OrdersPath      string
	OrdersFormat    string
}

// LoadConfig reads environment variables, applies defaults, and
// validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:            envDefault("PORT", "8080"),
		ProductsPath:    envDefault("PRODUCTS_PATH", "data/products.json"),
		IngredientsPath: envDefault("INGREDIENTS_PATH", "data/ingredients.json"),
		OrdersPath:      envDefault("ORDERS_PATH", "data/orders.json"),
		OrdersFormat:    strings.ToLower(envDefault("ORDERS_FORMAT", FormatJSON)),
	}
	if cfg.OrdersFormat != FormatJSON && cfg.OrdersFormat != FormatCSV {
		return Config{}, fmt.Errorf("ORDERS_FORMAT must be %q or %q, got %q", FormatJSON, FormatCSV, cfg.OrdersFormat)
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
