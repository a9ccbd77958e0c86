// Command processor runs the order pipeline once over a batch of orders
// loaded from the configured files and logs the run summary.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/zngreg/pizzeria-orders/internal/app/api"
	ordersmemory "github.com/zngreg/pizzeria-orders/internal/domains/orders/adapters/memory"
	ordersobs "github.com/zngreg/pizzeria-orders/internal/domains/orders/adapters/observability"
	ordersapp "github.com/zngreg/pizzeria-orders/internal/domains/orders/application"
	ordersdomain "github.com/zngreg/pizzeria-orders/internal/domains/orders/domain"
	orderports "github.com/zngreg/pizzeria-orders/internal/domains/orders/ports"
	"github.com/zngreg/pizzeria-orders/internal/loader"
	platformobservability "github.com/zngreg/pizzeria-orders/internal/platform/observability"
)

const serviceName = "pizzeria-orders-processor"

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("processor run failed: %v", err)
	}
}

func run(ctx context.Context) error {
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

	cfg, err := api.LoadConfig()
	if err != nil {
		return err
	}

	catalog, err := api.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	orders, err := loadOrders(cfg)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}
	logger.Info("orders loaded", slog.Int("count", len(orders)), slog.String("format", cfg.OrdersFormat))

	service := ordersobs.New(
		ordersapp.NewProcessor(catalog, ordersmemory.NewQueue()),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	summary, err := service.ProcessOrders(ctx, orders)
	if err != nil {
		if errors.Is(err, orderports.ErrNoOrders) {
			logger.Warn("no orders to process")
			return nil
		}
		return err
	}

	reportSummary(logger, summary)
	return nil
}

func loadOrders(cfg api.Config) ([]*ordersdomain.Order, error) {
	if cfg.OrdersFormat == api.FormatCSV {
		return loader.OrdersCSV(cfg.OrdersPath)
	}
	return loader.OrdersJSON(cfg.OrdersPath)
}

func reportSummary(logger *slog.Logger, summary *ordersdomain.RunSummary) {
	logger.Info("run complete",
		slog.String("run.id", summary.RunID),
		slog.Int("valid_orders", len(summary.ValidOrders)),
		slog.Int("rejected_orders", len(summary.RejectedOrders)),
		slog.String("gross_price", summary.GrossPrice.String()),
		slog.String("vat_amount", summary.VATAmount.String()),
		slog.String("total_price", summary.TotalPrice.String()),
	)
	for name, item := range summary.Ingredients {
		logger.Info("ingredient demand",
			slog.String("ingredient", name),
			slog.String("quantity", item.Quantity.String()),
			slog.String("units", string(item.Unit)),
		)
	}
	for _, rejected := range summary.RejectedOrders {
		id := ""
		if rejected.Order != nil {
			id = rejected.Order.ID
		}
		logger.Warn("rejected order", slog.String("order.id", id), slog.String("reason", rejected.Reason))
	}
}
