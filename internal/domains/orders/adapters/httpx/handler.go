// Package httpx exposes the order pipeline over HTTP.
package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zngreg/pizzeria-orders/internal/domains/orders/ports"
	sharederrors "github.com/zngreg/pizzeria-orders/internal/shared/errors"
)

// Handler wires HTTP transport to the order processing service.
type Handler struct {
	service ports.Service
}

// NewHandler creates a Handler backed by the provided service.
func NewHandler(service ports.Service) *Handler {
	return &Handler{service: service}
}

// ProcessOrders handles POST /v1/orders/process. The request body is one
// batch; the response is the run summary.
func (h *Handler) ProcessOrders(c *gin.Context) {
	var payload ProcessOrdersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		sharederrors.Respond(c, sharederrors.ErrBadRequest.WithDetail(err.Error()))
		return
	}

	summary, err := h.service.ProcessOrders(c.Request.Context(), toDomainOrders(payload.Orders))
	if err != nil {
		if errors.Is(err, ports.ErrNoOrders) {
			sharederrors.Respond(c, sharederrors.ErrUnprocessable.WithDetail(err.Error()))
			return
		}
		sharederrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromRunSummary(summary))
}

// QueueContents handles GET /v1/orders/queue.
func (h *Handler) QueueContents(c *gin.Context) {
	orders, err := h.service.QueueContents(c.Request.Context())
	if err != nil {
		sharederrors.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, QueueResponse{Orders: fromDomainOrders(orders)})
}
