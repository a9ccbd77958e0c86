package httpx

import (
	"time"

	"github.com/shopspring/decimal"

	catalogdomain "github.com/zngreg/pizzeria-orders/internal/domains/catalog/domain"
	"github.com/zngreg/pizzeria-orders/internal/domains/orders/domain"
)

// ProcessOrdersRequest is one batch of order submissions; each request
// is an independent pipeline run.
type ProcessOrdersRequest struct {
	Orders []OrderDTO `json:"orders"`
}

type OrderDTO struct {
	OrderID         string         `json:"order_id"`
	Products        []OrderLineDTO `json:"products"`
	DeliverAt       time.Time      `json:"deliver_at"`
	CreatedAt       time.Time      `json:"created_at"`
	CustomerAddress string         `json:"customer_address"`
}

type OrderLineDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// RunSummaryResponse reports the outcome of one pipeline run.
type RunSummaryResponse struct {
	RunID          string                        `json:"run_id"`
	ValidOrders    []PricedOrderResponse         `json:"valid_orders"`
	RejectedOrders []RejectedOrderResponse       `json:"rejected_orders"`
	GrossPrice     decimal.Decimal               `json:"gross_price"`
	VATAmount      decimal.Decimal               `json:"vat_amount"`
	TotalPrice     decimal.Decimal               `json:"total_price"`
	Ingredients    map[string]IngredientResponse `json:"ingredients"`
}

type PricedOrderResponse struct {
	OrderID         string               `json:"order_id"`
	Products        []PricedLineResponse `json:"products"`
	DeliverAt       time.Time            `json:"deliver_at"`
	CreatedAt       time.Time            `json:"created_at"`
	CustomerAddress string               `json:"customer_address"`
	GrossPrice      decimal.Decimal      `json:"gross_price"`
	VATAmount       decimal.Decimal      `json:"vat_amount"`
	TotalPrice      decimal.Decimal      `json:"total_price"`
}

type PricedLineResponse struct {
	ProductID  string          `json:"product_id"`
	Quantity   int64           `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type RejectedOrderResponse struct {
	Order  PricedOrderResponse `json:"order"`
	Reason string              `json:"reason"`
}

type IngredientResponse struct {
	Quantity decimal.Decimal `json:"quantity"`
	Units    string          `json:"units"`
	Type     string          `json:"type,omitempty"`
}

// QueueResponse is everything the downstream sink has received so far.
type QueueResponse struct {
	Orders []PricedOrderResponse `json:"orders"`
}

func toDomainOrders(dtos []OrderDTO) []*domain.Order {
	orders := make([]*domain.Order, 0, len(dtos))
	for _, dto := range dtos {
		lines := make([]*domain.OrderLine, 0, len(dto.Products))
		for _, p := range dto.Products {
			lines = append(lines, &domain.OrderLine{ProductID: p.ProductID, Quantity: p.Quantity})
		}
		orders = append(orders, &domain.Order{
			ID:              dto.OrderID,
			Lines:           lines,
			DeliverAt:       dto.DeliverAt,
			CreatedAt:       dto.CreatedAt,
			CustomerAddress: dto.CustomerAddress,
		})
	}
	return orders
}

func fromDomainOrder(order *domain.Order) PricedOrderResponse {
	if order == nil {
		return PricedOrderResponse{}
	}
	lines := make([]PricedLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, PricedLineResponse{
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			TotalPrice: line.TotalPrice,
		})
	}
	return PricedOrderResponse{
		OrderID:         order.ID,
		Products:        lines,
		DeliverAt:       order.DeliverAt,
		CreatedAt:       order.CreatedAt,
		CustomerAddress: order.CustomerAddress,
		GrossPrice:      order.GrossPrice,
		VATAmount:       order.VATAmount,
		TotalPrice:      order.TotalPrice,
	}
}

func fromDomainOrders(orders []*domain.Order) []PricedOrderResponse {
	result := make([]PricedOrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, fromDomainOrder(order))
	}
	return result
}

func fromRunSummary(summary *domain.RunSummary) RunSummaryResponse {
	rejected := make([]RejectedOrderResponse, 0, len(summary.RejectedOrders))
	for _, r := range summary.RejectedOrders {
		rejected = append(rejected, RejectedOrderResponse{
			Order:  fromDomainOrder(r.Order),
			Reason: r.Reason,
		})
	}
	return RunSummaryResponse{
		RunID:          summary.RunID,
		ValidOrders:    fromDomainOrders(summary.ValidOrders),
		RejectedOrders: rejected,
		GrossPrice:     summary.GrossPrice,
		VATAmount:      summary.VATAmount,
		TotalPrice:     summary.TotalPrice,
		Ingredients:    fromIngredients(summary.Ingredients),
	}
}

func fromIngredients(items map[string]catalogdomain.IngredientItem) map[string]IngredientResponse {
	result := make(map[string]IngredientResponse, len(items))
	for name, item := range items {
		result[name] = IngredientResponse{
			Quantity: item.Quantity,
			Units:    string(item.Unit),
			Type:     string(item.Type),
		}
	}
	return result
}
