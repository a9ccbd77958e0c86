package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zngreg/pizzeria-orders/internal/domains/orders/domain"
	"github.com/zngreg/pizzeria-orders/internal/domains/orders/ports"
)

type fakeQueue struct {
	pushed  []*domain.Order
	pushErr error
}

func (f *fakeQueue) Push(_ context.Context, order *domain.Order) error {
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushed = append(f.pushed, order)
	return nil
}

func (f *fakeQueue) All(_ context.Context) ([]*domain.Order, error) {
	return f.pushed, nil
}

func testProcessor(queue ports.Queue) *Processor {
	return NewProcessor(testCatalog(), queue, WithClock(func() time.Time { return testNow }))
}

func TestProcessOrdersEmptyBatch(t *testing.T) {
	processor := testProcessor(&fakeQueue{})

	summary, err := processor.ProcessOrders(context.Background(), nil)

	require.ErrorIs(t, err, ports.ErrNoOrders)
	require.Nil(t, summary)
}

func TestProcessOrdersEndToEnd(t *testing.T) {
	queue := &fakeQueue{}
	processor := testProcessor(queue)

	valid := wellFormedOrder("ORD-1")
	noAddress := wellFormedOrder("ORD-2")
	noAddress.CustomerAddress = ""

	summary, err := processor.ProcessOrders(context.Background(), []*domain.Order{valid, noAddress})
	require.NoError(t, err)

	require.Len(t, summary.ValidOrders, 1)
	require.Same(t, valid, summary.ValidOrders[0])
	require.Len(t, summary.RejectedOrders, 1)
	require.Same(t, noAddress, summary.RejectedOrders[0].Order)
	require.Equal(t, "Customer address is null or empty.", summary.RejectedOrders[0].Reason)

	// ORD-1 is P1 x2: gross 20, VAT 3, total 23.
	requireDecimalEqual(t, 20.0, summary.GrossPrice)
	requireDecimalEqual(t, 3.0, summary.VATAmount)
	requireDecimalEqual(t, 23.0, summary.TotalPrice)
	requireDecimalEqual(t, 23.0, valid.TotalPrice)

	requireDecimalEqual(t, 0.02, summary.Ingredients["Cheese"].Quantity)
	requireDecimalEqual(t, 0.10, summary.Ingredients["Tomato"].Quantity)

	require.Len(t, queue.pushed, 1)
	require.Same(t, valid, queue.pushed[0])
	require.NotEmpty(t, summary.RunID)
}

func TestProcessOrdersConsolidatesBeforeValidating(t *testing.T) {
	queue := &fakeQueue{}
	processor := testProcessor(queue)

	first := wellFormedOrder("ORD-1")
	second := wellFormedOrder("ORD-1")
	second.Lines = []*domain.OrderLine{{ProductID: "P1", Quantity: 3}}

	summary, err := processor.ProcessOrders(context.Background(), []*domain.Order{first, second})
	require.NoError(t, err)

	// The duplicate submission merges into the anchor instead of being
	// rejected as a duplicate id.
	require.Len(t, summary.ValidOrders, 1)
	require.Empty(t, summary.RejectedOrders)
	require.Equal(t, int64(5), summary.ValidOrders[0].Line("P1").Quantity)
	requireDecimalEqual(t, 50.0, summary.GrossPrice)
}

func TestProcessOrdersRejectsMismatchedDuplicateSubmission(t *testing.T) {
	queue := &fakeQueue{}
	processor := testProcessor(queue)

	first := wellFormedOrder("ORD-1")
	mismatched := wellFormedOrder("ORD-1")
	mismatched.DeliverAt = first.DeliverAt.Add(time.Hour)

	summary, err := processor.ProcessOrders(context.Background(), []*domain.Order{first, mismatched})
	require.NoError(t, err)

	// The straggler is emitted ahead of the anchor, so it wins the id and
	// the anchor is the one rejected as duplicate.
	require.Len(t, summary.ValidOrders, 1)
	require.Same(t, mismatched, summary.ValidOrders[0])
	require.Len(t, summary.RejectedOrders, 1)
	require.Same(t, first, summary.RejectedOrders[0].Order)
	require.Equal(t, "Duplicate OrderId found: ORD-1", summary.RejectedOrders[0].Reason)
}

func TestProcessOrdersFreshValidatorPerRun(t *testing.T) {
	processor := testProcessor(&fakeQueue{})

	_, err := processor.ProcessOrders(context.Background(), []*domain.Order{wellFormedOrder("ORD-1")})
	require.NoError(t, err)

	// The same id in a later batch is not a duplicate; validator state is
	// per run.
	summary, err := processor.ProcessOrders(context.Background(), []*domain.Order{wellFormedOrder("ORD-1")})
	require.NoError(t, err)
	require.Len(t, summary.ValidOrders, 1)
	require.Empty(t, summary.RejectedOrders)
}

func TestProcessOrdersPropagatesQueueFailure(t *testing.T) {
	queueErr := errors.New("queue unavailable")
	processor := testProcessor(&fakeQueue{pushErr: queueErr})

	_, err := processor.ProcessOrders(context.Background(), []*domain.Order{wellFormedOrder("ORD-1")})
	require.ErrorIs(t, err, queueErr)
}

func TestQueueContents(t *testing.T) {
	queue := &fakeQueue{}
	processor := testProcessor(queue)

	_, err := processor.ProcessOrders(context.Background(), []*domain.Order{wellFormedOrder("ORD-1")})
	require.NoError(t, err)

	contents, err := processor.QueueContents(context.Background())
	require.NoError(t, err)
	require.Len(t, contents, 1)
}
