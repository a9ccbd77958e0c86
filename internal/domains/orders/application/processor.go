package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogdomain "github.com/zngreg/pizzeria-orders/internal/domains/catalog/domain"
	"github.com/zngreg/pizzeria-orders/internal/domains/orders/domain"
	"github.com/zngreg/pizzeria-orders/internal/domains/orders/ports"
)

// Processor orchestrates one pipeline run: consolidate, validate, price,
// enqueue, aggregate. A fresh validator is built per run so the
// duplicate-id state never leaks across batches.
type Processor struct {
	catalog       *catalogdomain.Catalog
	queue         ports.Queue
	validatorOpts []ValidatorOption
}

// NewProcessor creates a processor over the given catalog and sink.
// Validator options (such as a test clock) apply to every run.
func NewProcessor(catalog *catalogdomain.Catalog, queue ports.Queue, opts ...ValidatorOption) *Processor {
	return &Processor{catalog: catalog, queue: queue, validatorOpts: opts}
}

// ProcessOrders runs the full pipeline over one batch. An empty batch,
// or a batch that consolidates to nothing, returns ErrNoOrders. Valid
// orders are priced and pushed to the queue in processing order; once
// pushed they are never retracted, even if a later order fails.
func (p *Processor) ProcessOrders(ctx context.Context, orders []*domain.Order) (*domain.RunSummary, error) {
	if len(orders) == 0 {
		return nil, ports.ErrNoOrders
	}

	consolidated := domain.Consolidate(orders)
	if len(consolidated) == 0 {
		return nil, ports.ErrNoOrders
	}

	validator := NewValidator(p.catalog, p.validatorOpts...)
	pricer := NewPriceCalculator(p.catalog)

	summary := &domain.RunSummary{
		RunID:      uuid.NewString(),
		GrossPrice: decimal.Zero,
		VATAmount:  decimal.Zero,
		TotalPrice: decimal.Zero,
	}

	for _, order := range consolidated {
		result := validator.Validate(order)
		if !result.Valid {
			summary.RejectedOrders = append(summary.RejectedOrders, domain.RejectedOrder{
				Order:  order,
				Reason: result.Reason,
			})
			continue
		}

		pricer.CalculatePrice(order)
		if err := p.queue.Push(ctx, order); err != nil {
			return nil, err
		}
		summary.ValidOrders = append(summary.ValidOrders, order)
		summary.GrossPrice = summary.GrossPrice.Add(order.GrossPrice)
		summary.VATAmount = summary.VATAmount.Add(order.VATAmount)
		summary.TotalPrice = summary.TotalPrice.Add(order.TotalPrice)
	}

	summary.Ingredients = NewIngredientAggregator(p.catalog).Aggregate(summary.ValidOrders)
	return summary, nil
}

// QueueContents returns everything the sink has received so far.
func (p *Processor) QueueContents(ctx context.Context) ([]*domain.Order, error) {
	return p.queue.All(ctx)
}

var _ ports.Service = (*Processor)(nil)
