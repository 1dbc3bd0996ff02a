package order

import (
	"context"
	"strings"
	"testing"

	"pizza-delivery/internal/adapter/logger"
	"pizza-delivery/internal/domain"
	"pizza-delivery/internal/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeCustomerRepo struct {
	customers map[string]*domain.Customer
	addresses map[int]*domain.Address
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *domain.Customer) error { return nil }

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) AddAddress(ctx context.Context, a *domain.Address) error { return nil }

func (f *fakeCustomerRepo) FindAddress(ctx context.Context, addressID int, customerID string) (*domain.Address, error) {
	a, ok := f.addresses[addressID]
	if !ok || a.CustomerID != customerID {
		return nil, domain.ErrAddressNotFound
	}
	return a, nil
}

type fakeRestaurantRepo struct {
	restaurants map[string]*domain.Restaurant
	menu        map[string]*domain.MenuItem
}

func (f *fakeRestaurantRepo) Create(ctx context.Context, r *domain.Restaurant) error { return nil }

func (f *fakeRestaurantRepo) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	r, ok := f.restaurants[id]
	if !ok {
		return nil, domain.ErrRestaurantNotFound
	}
	return r, nil
}

func (f *fakeRestaurantRepo) List(ctx context.Context) ([]*domain.Restaurant, error) { return nil, nil }

func (f *fakeRestaurantRepo) CreateMenuItem(ctx context.Context, i *domain.MenuItem) error {
	return nil
}

func (f *fakeRestaurantRepo) ListMenu(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error) {
	return nil, nil
}

func (f *fakeRestaurantRepo) FindMenuItem(ctx context.Context, restaurantID, itemID string) (*domain.MenuItem, error) {
	item, ok := f.menu[itemID]
	if !ok || item.RestaurantID != restaurantID {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

type fakeOrderRepo struct {
	created   []*domain.Order
	histories []*domain.StatusHistory
	createErr error
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *domain.Order, h *domain.StatusHistory) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, o)
	f.histories = append(f.histories, h)
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return nil, domain.ErrOrderNotFound
}

func (f *fakeOrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) GetStatusHistory(ctx context.Context, orderID string) ([]*domain.StatusHistory, error) {
	return nil, nil
}

func (f *fakeOrderRepo) CommitTransition(ctx context.Context, update interfaces.TransitionUpdate) error {
	return nil
}

func newFixture() (*Service, *fakeOrderRepo) {
	customers := &fakeCustomerRepo{
		customers: map[string]*domain.Customer{
			"CUST-1": {ID: "CUST-1", Name: "Alice", PhoneNumber: "555-0100"},
		},
		addresses: map[int]*domain.Address{
			1: {ID: 1, CustomerID: "CUST-1", Street: "1 Main St", City: "Springfield"},
		},
	}

	restaurants := &fakeRestaurantRepo{
		restaurants: map[string]*domain.Restaurant{
			"REST-1": {
				ID: "REST-1", Name: "Mario's", IsActive: true, IsOpen: true,
				MinOrderAmount: d("10.00"), DeliveryFee: d("2.99"),
			},
			"REST-CLOSED": {
				ID: "REST-CLOSED", Name: "Shut", IsActive: true, IsOpen: false,
			},
		},
		menu: map[string]*domain.MenuItem{
			"ITEM-1": {ID: "ITEM-1", RestaurantID: "REST-1", Name: "Margherita", Price: d("12.99"), IsAvailable: true},
			"ITEM-2": {ID: "ITEM-2", RestaurantID: "REST-1", Name: "Calzone", Price: d("9.50"), IsAvailable: false},
		},
	}

	orders := &fakeOrderRepo{}
	svc := NewService(orders, customers, restaurants, logger.New("test"))
	return svc, orders
}

func validCommand() interfaces.CreateOrderCommand {
	addressID := 1
	return interfaces.CreateOrderCommand{
		CustomerID:    "CUST-1",
		RestaurantID:  "REST-1",
		DeliveryType:  "delivery",
		AddressID:     &addressID,
		Items:         []interfaces.CreateOrderItemCommand{{ItemID: "ITEM-1", Quantity: 1}},
		PaymentMethod: "cash",
		Discount:      decimal.Zero,
	}
}

func TestCreateOrderSuccess(t *testing.T) {
	svc, orders := newFixture()

	result, err := svc.CreateOrder(context.Background(), validCommand())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, result.Status)
	assert.True(t, strings.HasPrefix(result.ID, "ORD-"))
	assert.True(t, result.Subtotal.Equal(d("12.99")))
	assert.True(t, result.Tax.Equal(d("1.04")))
	assert.True(t, result.DeliveryFee.Equal(d("2.99")))
	assert.True(t, result.TotalAmount.Equal(d("17.02")))

	// Unit price is snapshotted from the menu at creation time.
	require.Len(t, result.Items, 1)
	assert.True(t, result.Items[0].UnitPrice.Equal(d("12.99")))
	// Items carry the order's creation timestamp, not a later one.
	assert.Equal(t, result.CreatedAt, result.Items[0].CreatedAt)

	require.Len(t, orders.created, 1)
	require.Len(t, orders.histories, 1)
	initial := orders.histories[0]
	assert.Nil(t, initial.OldStatus)
	assert.Equal(t, domain.StatusPending, initial.NewStatus)
	assert.Equal(t, domain.ActorCustomer, initial.ActorType)
}

func TestCreateOrderFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cmd *interfaces.CreateOrderCommand)
		wantErr error
	}{
		{
			name:    "unknown customer",
			mutate:  func(cmd *interfaces.CreateOrderCommand) { cmd.CustomerID = "CUST-MISSING" },
			wantErr: domain.ErrCustomerNotFound,
		},
		{
			name:    "unknown restaurant",
			mutate:  func(cmd *interfaces.CreateOrderCommand) { cmd.RestaurantID = "REST-MISSING" },
			wantErr: domain.ErrRestaurantNotFound,
		},
		{
			name:    "closed restaurant",
			mutate:  func(cmd *interfaces.CreateOrderCommand) { cmd.RestaurantID = "REST-CLOSED" },
			wantErr: domain.ErrRestaurantClosed,
		},
		{
			name:    "delivery without address",
			mutate:  func(cmd *interfaces.CreateOrderCommand) { cmd.AddressID = nil },
			wantErr: domain.ErrAddressRequired,
		},
		{
			name: "address not owned by customer",
			mutate: func(cmd *interfaces.CreateOrderCommand) {
				other := 99
				cmd.AddressID = &other
			},
			wantErr: domain.ErrAddressNotFound,
		},
		{
			name: "unknown menu item",
			mutate: func(cmd *interfaces.CreateOrderCommand) {
				cmd.Items = []interfaces.CreateOrderItemCommand{{ItemID: "ITEM-MISSING", Quantity: 1}}
			},
			wantErr: domain.ErrItemNotFound,
		},
		{
			name: "unavailable menu item",
			mutate: func(cmd *interfaces.CreateOrderCommand) {
				cmd.Items = []interfaces.CreateOrderItemCommand{{ItemID: "ITEM-2", Quantity: 1}}
			},
			wantErr: domain.ErrItemUnavailable,
		},
		{
			name: "empty item list",
			mutate: func(cmd *interfaces.CreateOrderCommand) {
				cmd.Items = nil
			},
			wantErr: domain.ErrEmptyOrder,
		},
		{
			name: "zero quantity",
			mutate: func(cmd *interfaces.CreateOrderCommand) {
				cmd.Items = []interfaces.CreateOrderItemCommand{{ItemID: "ITEM-1", Quantity: 0}}
			},
			wantErr: domain.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, orders := newFixture()
			cmd := validCommand()
			tt.mutate(&cmd)

			_, err := svc.CreateOrder(context.Background(), cmd)
			require.ErrorIs(t, err, tt.wantErr)

			// Nothing may be persisted on any failure path.
			assert.Empty(t, orders.created)
			assert.Empty(t, orders.histories)
		})
	}
}

func TestCreateOrderBelowMinimum(t *testing.T) {
	svc, orders := newFixture()

	// A cheap available item keeps the subtotal under the 10.00 minimum.
	restaurants := &fakeRestaurantRepo{
		restaurants: map[string]*domain.Restaurant{
			"REST-1": {ID: "REST-1", IsActive: true, IsOpen: true, MinOrderAmount: d("10.00"), DeliveryFee: d("2.99")},
		},
		menu: map[string]*domain.MenuItem{
			"ITEM-CHEAP": {ID: "ITEM-CHEAP", RestaurantID: "REST-1", Name: "Breadstick", Price: d("2.00"), IsAvailable: true},
		},
	}
	svc.restaurants = restaurants

	cmd := validCommand()
	cmd.Items = []interfaces.CreateOrderItemCommand{{ItemID: "ITEM-CHEAP", Quantity: 2}}

	_, err := svc.CreateOrder(context.Background(), cmd)
	require.ErrorIs(t, err, domain.ErrBelowMinimumOrder)
	assert.Empty(t, orders.created)
}

func TestCreateOrderPickupSkipsAddress(t *testing.T) {
	svc, _ := newFixture()

	cmd := validCommand()
	cmd.DeliveryType = "pickup"
	cmd.AddressID = nil

	result, err := svc.CreateOrder(context.Background(), cmd)
	require.NoError(t, err)

	assert.Nil(t, result.AddressID)
	assert.True(t, result.DeliveryFee.IsZero())
}

func TestCreateOrderPersistErrorPropagates(t *testing.T) {
	svc, orders := newFixture()
	orders.createErr = domain.ErrOrderIDCollision

	_, err := svc.CreateOrder(context.Background(), validCommand())
	require.ErrorIs(t, err, domain.ErrOrderIDCollision)
}

func TestGenerateOrderIDFormat(t *testing.T) {
	svc, orders := newFixture()

	first, err := svc.CreateOrder(context.Background(), validCommand())
	require.NoError(t, err)
	second, err := svc.CreateOrder(context.Background(), validCommand())
	require.NoError(t, err)

	assert.Regexp(t, `^ORD-\d{14}-[0-9A-F-]{6}$`, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, orders.created, 2)
}
