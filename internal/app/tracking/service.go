package tracking

import (
	"context"
	"time"

	"pizza-delivery/internal/adapter/logger"
	"pizza-delivery/internal/domain"
	"pizza-delivery/internal/interfaces"
)

type Service struct {
	orders interfaces.OrderRepository
	logger logger.Logger
}

func NewService(orders interfaces.OrderRepository, logger logger.Logger) *Service {
	return &Service{orders: orders, logger: logger}
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*domain.Order, []*domain.StatusHistory, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	history, err := s.orders.GetStatusHistory(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	return order, history, nil
}

// TrackOrder returns the live view of an order, including minutes remaining
// until the delivery estimate while the order is still in flight.
func (s *Service) TrackOrder(ctx context.Context, orderID string) (*interfaces.TrackingResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	resp := &interfaces.TrackingResponse{
		OrderID:           order.ID,
		Status:            order.Status,
		DriverID:          order.DriverID,
		EstimatedDelivery: order.EstimatedDelivery,
		DeliveredAt:       order.DeliveredAt,
		UpdatedAt:         order.UpdatedAt,
	}

	if order.EstimatedDelivery != nil && !order.Status.IsTerminal() {
		remaining := int(time.Until(*order.EstimatedDelivery).Minutes())
		if remaining < 0 {
			remaining = 0
		}
		resp.MinutesRemaining = &remaining
	}

	return resp, nil
}

func (s *Service) ListCustomerOrders(ctx context.Context, customerID string) ([]*domain.Order, error) {
	return s.orders.ListByCustomer(ctx, customerID)
}

func (s *Service) GetHistory(ctx context.Context, orderID string) ([]*domain.StatusHistory, error) {
	// Resolve the order first so a missing order reads as not found rather
	// than an empty history.
	if _, err := s.orders.FindByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.orders.GetStatusHistory(ctx, orderID)
}
