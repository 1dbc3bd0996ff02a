package domain

import "time"

type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusPreparing      Status = "preparing"
	StatusReady          Status = "ready"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

type ActorType string

const (
	ActorCustomer   ActorType = "customer"
	ActorAdmin      ActorType = "admin"
	ActorManager    ActorType = "manager"
	ActorDriver     ActorType = "driver"
	ActorRestaurant ActorType = "restaurant"
	ActorSystem     ActorType = "system"
)

// validTransitions is the authoritative transition table. Anything not listed
// here is rejected.
var validTransitions = map[Status][]Status{
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusPreparing, StatusCancelled},
	StatusPreparing:      {StatusReady, StatusCancelled},
	StatusReady:          {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// ParseStatus validates a raw status string.
func ParseStatus(s string) (Status, bool) {
	status := Status(s)
	_, ok := validTransitions[status]
	return status, ok
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo checks the transition table for (s -> next).
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StatusHistory is an append-only audit record of one status change.
type StatusHistory struct {
	ID        int
	OrderID   string
	OldStatus *Status
	NewStatus Status
	ActorID   string
	ActorType ActorType
	DriverID  *int
	Notes     *string
	ChangedAt time.Time
}
