// Package ports defines the boundary interfaces of the orders bounded
// context.
package ports

import (
	"context"
	"errors"

	"github.com/zngreg/pizzeria-orders/internal/domains/orders/domain"
)

// ErrNoOrders signals that a run had nothing to process: the incoming
// batch was empty, or consolidation left nothing behind.
var ErrNoOrders = errors.New("no orders to process")

// Service runs the order processing pipeline and exposes what the
// downstream sink has received so far.
type Service interface {
	ProcessOrders(ctx context.Context, orders []*domain.Order) (*domain.RunSummary, error)
	QueueContents(ctx context.Context) ([]*domain.Order, error)
}

// Queue is the downstream sink for priced, valid orders. Push appends;
// All returns everything received so far in arrival order.
type Queue interface {
	Push(ctx context.Context, order *domain.Order) error
	All(ctx context.Context) ([]*domain.Order, error)
}
