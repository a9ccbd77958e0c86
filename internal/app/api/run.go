// Package api wires the order pipeline service and boots the HTTP API.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	catalogdomain "github.com/zngreg/pizzeria-orders/internal/domains/catalog/domain"
	ordershttp "github.com/zngreg/pizzeria-orders/internal/domains/orders/adapters/httpx"
	ordersmemory "github.com/zngreg/pizzeria-orders/internal/domains/orders/adapters/memory"
	ordersobs "github.com/zngreg/pizzeria-orders/internal/domains/orders/adapters/observability"
	ordersapp "github.com/zngreg/pizzeria-orders/internal/domains/orders/application"
	"github.com/zngreg/pizzeria-orders/internal/loader"
	platformobservability "github.com/zngreg/pizzeria-orders/internal/platform/observability"
)

const serviceName = "pizzeria-orders-api"

// Run boots the order pipeline HTTP API with observability and the
// in-memory queue wired.
func Run(ctx context.Context) error {
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	catalog, err := LoadCatalog(cfg)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded",
		slog.Int("products", catalog.Products()),
		slog.Int("recipes", catalog.Recipes()),
	)

	queue := ordersmemory.NewQueue()
	service := ordersobs.New(
		ordersapp.NewProcessor(catalog, queue),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	router := ordershttp.NewRouter(ordershttp.NewHandler(service), otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("order pipeline API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("order pipeline API exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// LoadCatalog builds the immutable per-process catalog from the
// configured product and recipe files.
func LoadCatalog(cfg Config) (*catalogdomain.Catalog, error) {
	products, err := loader.ProductsJSON(cfg.ProductsPath)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	recipes, err := loader.RecipesJSON(cfg.IngredientsPath)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}
	return catalogdomain.New(products, recipes), nil
}
