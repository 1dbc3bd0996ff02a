package interfaces

import (
	"context"
	"time"

	"pizza-delivery/internal/domain"

	"github.com/shopspring/decimal"
)

// Commands carried from the HTTP layer into the services.

type CreateOrderCommand struct {
	CustomerID          string
	RestaurantID        string
	DeliveryType        string
	AddressID           *int
	Items               []CreateOrderItemCommand
	SpecialInstructions *string
	PaymentMethod       string
	Discount            decimal.Decimal
}

type CreateOrderItemCommand struct {
	ItemID         string
	Quantity       int
	Customizations *string
}

type TransitionCommand struct {
	OrderID   string
	NewStatus string
	ActorID   string
	ActorType domain.ActorType
	DriverID  *int
	Notes     *string
}

type OrderService interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error)
}

type LifecycleService interface {
	Transition(ctx context.Context, cmd TransitionCommand) (*domain.Order, error)
}

type TrackingService interface {
	GetOrder(ctx context.Context, orderID string) (*domain.Order, []*domain.StatusHistory, error)
	TrackOrder(ctx context.Context, orderID string) (*TrackingResponse, error)
	GetHistory(ctx context.Context, orderID string) ([]*domain.StatusHistory, error)
	ListCustomerOrders(ctx context.Context, customerID string) ([]*domain.Order, error)
}

type CatalogService interface {
	CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error)
	GetMenu(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error)
	AddMenuItem(ctx context.Context, item *domain.MenuItem) error
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	AddAddress(ctx context.Context, address *domain.Address) error
	RegisterDriver(ctx context.Context, driver *domain.Driver) error
	ListDrivers(ctx context.Context) ([]*domain.Driver, error)
	SetDriverShift(ctx context.Context, driverID int, onShift bool) error
}

// TrackingResponse is the ad-hoc tracking view of an order.
type TrackingResponse struct {
	OrderID           string
	Status            domain.Status
	DriverID          *int
	EstimatedDelivery *time.Time
	MinutesRemaining  *int
	DeliveredAt       *time.Time
	UpdatedAt         time.Time
}
