package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/zngreg/pizzeria-orders/internal/domains/orders/domain"
	"github.com/zngreg/pizzeria-orders/internal/domains/orders/ports"
)

type fakeService struct {
	summary *domain.RunSummary
	queued  []*domain.Order
	err     error
	batch   []*domain.Order
}

func (f *fakeService) ProcessOrders(_ context.Context, orders []*domain.Order) (*domain.RunSummary, error) {
	f.batch = orders
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

func (f *fakeService) QueueContents(_ context.Context) ([]*domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.queued, nil
}

func serve(t *testing.T, service ports.Service, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := NewRouter(NewHandler(service))

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestProcessOrdersReturnsSummary(t *testing.T) {
	service := &fakeService{
		summary: &domain.RunSummary{
			RunID: "run-1",
			ValidOrders: []*domain.Order{{
				ID:         "ORD-1",
				Lines:      []*domain.OrderLine{{ProductID: "P1", Quantity: 2, TotalPrice: decimal.NewFromFloat(23.0)}},
				TotalPrice: decimal.NewFromFloat(23.0),
			}},
			TotalPrice: decimal.NewFromFloat(23.0),
		},
	}

	body := `{"orders":[{"order_id":"ORD-1","products":[{"product_id":"P1","quantity":2}],"deliver_at":"2026-03-01T18:00:00Z","created_at":"2026-03-01T10:00:00Z","customer_address":"1 Dough Street"}]}`
	recorder := serve(t, service, http.MethodPost, "/v1/orders/process", body)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, service.batch, 1)
	require.Equal(t, "ORD-1", service.batch[0].ID)
	require.Equal(t, int64(2), service.batch[0].Lines[0].Quantity)

	var response RunSummaryResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, "run-1", response.RunID)
	require.Len(t, response.ValidOrders, 1)
	require.True(t, response.TotalPrice.Equal(decimal.NewFromFloat(23.0)))
}

func TestProcessOrdersRejectsMalformedBody(t *testing.T) {
	recorder := serve(t, &fakeService{}, http.MethodPost, "/v1/orders/process", "{not json")

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Contains(t, recorder.Header().Get("Content-Type"), "application/problem+json")
}

func TestProcessOrdersEmptyBatchIsUnprocessable(t *testing.T) {
	service := &fakeService{err: ports.ErrNoOrders}

	recorder := serve(t, service, http.MethodPost, "/v1/orders/process", `{"orders":[]}`)

	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	require.Contains(t, recorder.Body.String(), "no orders to process")
}

func TestQueueContents(t *testing.T) {
	service := &fakeService{
		queued: []*domain.Order{{ID: "ORD-1"}, {ID: "ORD-2"}},
	}

	recorder := serve(t, service, http.MethodGet, "/v1/orders/queue", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	var response QueueResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Orders, 2)
	require.Equal(t, "ORD-1", response.Orders[0].OrderID)
}
