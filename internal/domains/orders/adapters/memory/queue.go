// Package memory provides the in-memory append-only order queue used as
// the downstream sink.
package memory

import (
	"context"
	"sync"

	"github.com/zngreg/pizzeria-orders/internal/domains/orders/domain"
	"github.com/zngreg/pizzeria-orders/internal/domains/orders/ports"
)

var _ ports.Queue = (*Queue)(nil)

// Queue collects priced orders in arrival order for the lifetime of the
// process. Nothing is ever removed.
type Queue struct {
	mu     sync.RWMutex
	orders []*domain.Order
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an order to the queue. Nil orders are ignored.
func (q *Queue) Push(_ context.Context, order *domain.Order) error {
	if order == nil {
		return nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.orders = append(q.orders, order)
	return nil
}

// All returns everything received so far, in arrival order. The slice is
// a copy; the queue cannot be mutated through it.
func (q *Queue) All(_ context.Context) ([]*domain.Order, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	all := make([]*domain.Order, len(q.orders))
	copy(all, q.orders)
	return all, nil
}

// Len reports how many orders the queue holds.
func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.orders)
}
