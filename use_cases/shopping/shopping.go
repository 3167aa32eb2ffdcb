package shopping

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/giovaniif/shopping-cart/domain/cart"
	"github.com/giovaniif/shopping-cart/infra/session"
	"github.com/giovaniif/shopping-cart/protocols"
)

const (
	OperationOpen       = "open"
	OperationAddItem    = "add_item"
	OperationRemoveItem = "remove_item"
	OperationTotal      = "total"
)

// Shopping runs cart operations with logging, metrics and a span per call.
type Shopping struct {
	catalogRepository protocols.CatalogRepository
	idGenerator       cart.IdGenerator
	metrics           protocols.Metrics
	logger            *zap.Logger
	tracer            trace.Tracer
}

func NewShopping(catalogRepository protocols.CatalogRepository, idGenerator cart.IdGenerator, metrics protocols.Metrics, logger *zap.Logger, tracer trace.Tracer) *Shopping {
	return &Shopping{
		catalogRepository: catalogRepository,
		idGenerator:       idGenerator,
		metrics:           metrics,
		logger:            logger,
		tracer:            tracer,
	}
}

func (s *Shopping) Open(ctx context.Context, customerId string) (*cart.Cart, error) {
	_, span := s.tracer.Start(ctx, "cart.Open", trace.WithAttributes(attribute.String("cart.customer_id", customerId)))
	defer span.End()

	c, err := s.open(customerId)
	s.finish(ctx, span, OperationOpen, err)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("cart.id", c.Id()))
	s.log(ctx).Info("cart opened", zap.String("cart_id", c.Id()), zap.String("customer_id", customerId))
	return c, nil
}

func (s *Shopping) open(customerId string) (*cart.Cart, error) {
	prices, err := s.catalogRepository.GetCatalog()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cart.New(customerId, prices, s.idGenerator)
}

func (s *Shopping) AddItem(ctx context.Context, c *cart.Cart, name string, quantity int) error {
	_, span := s.tracer.Start(ctx, "cart.AddItem", trace.WithAttributes(
		attribute.String("cart.id", c.Id()),
		attribute.String("cart.item", name),
		attribute.Int("cart.quantity", quantity),
	))
	defer span.End()

	err := c.AddItem(name, quantity)
	s.finish(ctx, span, OperationAddItem, err)
	if err == nil {
		s.log(ctx).Debug("item set", zap.String("cart_id", c.Id()), zap.String("item", name), zap.Int("quantity", quantity))
	}
	return err
}

func (s *Shopping) RemoveItem(ctx context.Context, c *cart.Cart, name string) error {
	_, span := s.tracer.Start(ctx, "cart.RemoveItem", trace.WithAttributes(
		attribute.String("cart.id", c.Id()),
		attribute.String("cart.item", name),
	))
	defer span.End()

	err := c.RemoveItem(name)
	s.finish(ctx, span, OperationRemoveItem, err)
	if err == nil {
		s.log(ctx).Debug("item removed", zap.String("cart_id", c.Id()), zap.String("item", name))
	}
	return err
}

func (s *Shopping) Total(ctx context.Context, c *cart.Cart) float64 {
	_, span := s.tracer.Start(ctx, "cart.Total", trace.WithAttributes(attribute.String("cart.id", c.Id())))
	defer span.End()

	total := c.TotalCost()
	span.SetAttributes(attribute.Float64("cart.total", total))
	s.metrics.ObserveOperation(OperationTotal, nil, nil)
	s.metrics.ObserveTotal(total)
	s.log(ctx).Debug("total computed", zap.String("cart_id", c.Id()), zap.Float64("total", total))
	return total
}

func (s *Shopping) finish(ctx context.Context, span trace.Span, operation string, err error) {
	s.metrics.ObserveOperation(operation, err, cart.IsInvalidArgument)
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if cart.IsInvalidArgument(err) {
		s.log(ctx).Info("operation rejected", zap.String("operation", operation), zap.Error(err))
		return
	}
	s.log(ctx).Error("operation failed", zap.String("operation", operation), zap.Error(err))
}

func (s *Shopping) log(ctx context.Context) *zap.Logger {
	if id := session.FromContext(ctx); id != "" {
		return s.logger.With(zap.String("session_id", id))
	}
	return s.logger
}
