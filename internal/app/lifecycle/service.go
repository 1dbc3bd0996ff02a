package lifecycle

import (
	"context"
	"time"

	"pizza-delivery/internal/adapter/logger"
	"pizza-delivery/internal/domain"
	"pizza-delivery/internal/interfaces"
)

// deliveryLeadTime is the fixed estimate applied when an order goes out for
// delivery and the caller has not supplied one.
const deliveryLeadTime = 30 * time.Minute

type Service struct {
	orders    interfaces.OrderRepository
	drivers   interfaces.DriverRepository
	publisher interfaces.MessagePublisher
	logger    logger.Logger
}

func NewService(
	orders interfaces.OrderRepository,
	drivers interfaces.DriverRepository,
	publisher interfaces.MessagePublisher,
	logger logger.Logger,
) *Service {
	return &Service{
		orders:    orders,
		drivers:   drivers,
		publisher: publisher,
		logger:    logger,
	}
}

// Transition validates a status change against the transition table, applies
// its side effects and commits order update, driver update and history append
// as one atomic unit. The commit is guarded by the old status, so a racing
// transition on the same order fails with a conflict instead of overwriting.
func (s *Service) Transition(ctx context.Context, cmd interfaces.TransitionCommand) (*domain.Order, error) {
	newStatus, ok := domain.ParseStatus(cmd.NewStatus)
	if !ok {
		return nil, domain.WrapError(domain.ErrInvalidTransition, "unknown status %q", cmd.NewStatus)
	}

	order, err := s.orders.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	oldStatus := order.Status
	if oldStatus.IsTerminal() {
		return nil, domain.ErrOrderAlreadyFinal
	}
	if !oldStatus.CanTransitionTo(newStatus) {
		return nil, domain.WrapError(domain.ErrInvalidTransition, "cannot transition from %s to %s", oldStatus, newStatus)
	}

	now := time.Now()
	update := interfaces.TransitionUpdate{
		Order:     order,
		OldStatus: oldStatus,
	}

	switch newStatus {
	case domain.StatusOutForDelivery:
		if cmd.DriverID == nil {
			return nil, domain.ErrDriverRequired
		}
		driver, err := s.drivers.FindByID(ctx, *cmd.DriverID)
		if err != nil {
			return nil, err
		}
		if !driver.CanTakeOrder() {
			return nil, domain.ErrDriverUnavailable
		}
		order.DriverID = &driver.ID
		if order.EstimatedDelivery == nil {
			estimate := now.Add(deliveryLeadTime)
			order.EstimatedDelivery = &estimate
		}
		update.AssignDriverID = &driver.ID

	case domain.StatusDelivered:
		order.DeliveredAt = &now
		// The driver stays on the order record but becomes assignable again.
		if order.DriverID != nil {
			update.ReleaseDriverID = order.DriverID
		}

	case domain.StatusCancelled:
		if order.DriverID != nil {
			update.ReleaseDriverID = order.DriverID
		}
	}

	order.Status = newStatus
	order.UpdatedAt = now

	update.History = &domain.StatusHistory{
		OrderID:   order.ID,
		OldStatus: &oldStatus,
		NewStatus: newStatus,
		ActorID:   cmd.ActorID,
		ActorType: cmd.ActorType,
		DriverID:  cmd.DriverID,
		Notes:     cmd.Notes,
		ChangedAt: now,
	}

	if err := s.orders.CommitTransition(ctx, update); err != nil {
		s.logger.Error("transition_failed", "Failed to commit status transition", order.ID, map[string]interface{}{
			"old_status": string(oldStatus),
			"new_status": string(newStatus),
		}, err)
		return nil, err
	}

	s.logger.Info("status_changed", "Order status changed", order.ID, map[string]interface{}{
		"order_id":   order.ID,
		"old_status": string(oldStatus),
		"new_status": string(newStatus),
		"actor_type": string(cmd.ActorType),
	})

	// The transition is committed; a notification failure must not undo it.
	if s.publisher != nil {
		msg := interfaces.StatusUpdateMessage{
			OrderID:           order.ID,
			OldStatus:         oldStatus,
			NewStatus:         newStatus,
			ActorID:           cmd.ActorID,
			ActorType:         cmd.ActorType,
			DriverID:          order.DriverID,
			EstimatedDelivery: order.EstimatedDelivery,
			Timestamp:         now,
		}
		if err := s.publisher.PublishStatusUpdate(ctx, msg); err != nil {
			s.logger.Error("notification_publish_failed", "Failed to publish status update", order.ID, nil, err)
		}
	}

	return order, nil
}
