// Package observability decorates the order processing service with
// tracing, logging, and metrics.
package observability

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/zngreg/pizzeria-orders/internal/domains/orders/domain"
	orderports "github.com/zngreg/pizzeria-orders/internal/domains/orders/ports"
)

const tracerName = "github.com/zngreg/pizzeria-orders/internal/domains/orders/adapters/observability/service"

// Service wraps the core processor with a span, structured logs, and
// counters per pipeline run.
type Service struct {
	inner   orderports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order service.
func New(inner orderports.Service, opts ...Option) orderports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) ProcessOrders(ctx context.Context, orders []*domain.Order) (*domain.RunSummary, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ProcessOrders",
		trace.WithAttributes(attribute.Int("batch.size", len(orders))))
	defer span.End()

	s.logInfo(ctx, "processing order batch", slog.Int("batch.size", len(orders)))
	summary, err := s.inner.ProcessOrders(ctx, orders)
	if err != nil {
		if errors.Is(err, orderports.ErrNoOrders) {
			span.SetAttributes(attribute.Bool("batch.empty", true))
			s.logWarn(ctx, "no orders to process")
			return nil, err
		}
		return nil, s.handleError(ctx, span, err, "order batch failed")
	}

	span.SetAttributes(
		attribute.String("run.id", summary.RunID),
		attribute.Int("run.valid_orders", len(summary.ValidOrders)),
		attribute.Int("run.rejected_orders", len(summary.RejectedOrders)),
	)
	s.metrics.recordRun(ctx, len(summary.ValidOrders), len(summary.RejectedOrders))
	s.logInfo(ctx, "order batch processed",
		slog.String("run.id", summary.RunID),
		slog.Int("run.valid_orders", len(summary.ValidOrders)),
		slog.Int("run.rejected_orders", len(summary.RejectedOrders)),
		slog.String("run.total_price", summary.TotalPrice.String()),
	)
	for _, rejected := range summary.RejectedOrders {
		id := ""
		if rejected.Order != nil {
			id = rejected.Order.ID
		}
		s.logWarn(ctx, "order rejected", slog.String("order.id", id), slog.String("reason", rejected.Reason))
	}
	return summary, nil
}

func (s *Service) QueueContents(ctx context.Context) ([]*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.QueueContents")
	defer span.End()

	result, err := s.inner.QueueContents(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to read queue")
	}
	span.SetAttributes(attribute.Int("queue.size", len(result)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logWarn(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, msg, slog.String("error", err.Error()))
	}
	return err
}

type serviceMetrics struct {
	ordersProcessed metric.Int64Counter
	ordersRejected  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	processed, _ := m.Int64Counter("orders.service.orders_processed", metric.WithDescription("Number of orders that passed validation and were enqueued"))
	rejected, _ := m.Int64Counter("orders.service.orders_rejected", metric.WithDescription("Number of orders rejected by validation"))
	return serviceMetrics{ordersProcessed: processed, ordersRejected: rejected}
}

func (m serviceMetrics) recordRun(ctx context.Context, valid, rejected int) {
	if m.ordersProcessed != nil {
		m.ordersProcessed.Add(ctx, int64(valid))
	}
	if m.ordersRejected != nil {
		m.ordersRejected.Add(ctx, int64(rejected))
	}
}

var _ orderports.Service = (*Service)(nil)
