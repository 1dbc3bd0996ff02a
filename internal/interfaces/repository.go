package interfaces

import (
	"context"

	"pizza-delivery/internal/domain"
)

// TransitionUpdate is the unit of work committed by a lifecycle transition.
// Order update, driver update and history append succeed or fail together.
type TransitionUpdate struct {
	Order *domain.Order
	// OldStatus guards the order update against concurrent transitions.
	OldStatus domain.Status
	History   *domain.StatusHistory
	// AssignDriverID marks the driver unavailable and counts the delivery.
	// The update is guarded so an already-busy driver loses the race.
	AssignDriverID *int
	// ReleaseDriverID marks the driver available again.
	ReleaseDriverID *int
}

type OrderRepository interface {
	// Create persists the order, its items and the initial history row in a
	// single transaction.
	Create(ctx context.Context, order *domain.Order, initial *domain.StatusHistory) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
	GetStatusHistory(ctx context.Context, orderID string) ([]*domain.StatusHistory, error)
	// CommitTransition applies a TransitionUpdate atomically.
	CommitTransition(ctx context.Context, update TransitionUpdate) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	AddAddress(ctx context.Context, address *domain.Address) error
	// FindAddress resolves an address only if it belongs to the customer.
	FindAddress(ctx context.Context, addressID int, customerID string) (*domain.Address, error)
}

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) error
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
	List(ctx context.Context) ([]*domain.Restaurant, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	ListMenu(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error)
	FindMenuItem(ctx context.Context, restaurantID, itemID string) (*domain.MenuItem, error)
}

type DriverRepository interface {
	Create(ctx context.Context, driver *domain.Driver) error
	FindByID(ctx context.Context, id int) (*domain.Driver, error)
	List(ctx context.Context) ([]*domain.Driver, error)
	SetOnShift(ctx context.Context, id int, onShift bool) error
}
