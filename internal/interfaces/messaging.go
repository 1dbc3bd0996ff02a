package interfaces

import (
	"context"
	"time"

	"pizza-delivery/internal/domain"
)

// StatusUpdateMessage is published to the notifications fanout after a
// lifecycle transition commits.
type StatusUpdateMessage struct {
	OrderID           string           `json:"order_id"`
	OldStatus         domain.Status    `json:"old_status"`
	NewStatus         domain.Status    `json:"new_status"`
	ActorID           string           `json:"actor_id"`
	ActorType         domain.ActorType `json:"actor_type"`
	DriverID          *int             `json:"driver_id,omitempty"`
	EstimatedDelivery *time.Time       `json:"estimated_delivery,omitempty"`
	Timestamp         time.Time        `json:"timestamp"`
}

type MessagePublisher interface {
	PublishStatusUpdate(ctx context.Context, msg StatusUpdateMessage) error
}

type NotificationHandler func(ctx context.Context, body []byte) error

type MessageConsumer interface {
	ConsumeNotifications(ctx context.Context, handler NotificationHandler) error
}
