package tracking

import (
	"context"
	"testing"
	"time"

	"pizza-delivery/internal/adapter/logger"
	"pizza-delivery/internal/domain"
	"pizza-delivery/internal/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	order   *domain.Order
	orders  []*domain.Order
	history []*domain.StatusHistory
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *domain.Order, h *domain.StatusHistory) error {
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	if f.order == nil || f.order.ID != id {
		return nil, domain.ErrOrderNotFound
	}
	return f.order, nil
}

func (f *fakeOrderRepo) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	var matched []*domain.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (f *fakeOrderRepo) GetStatusHistory(ctx context.Context, orderID string) ([]*domain.StatusHistory, error) {
	return f.history, nil
}

func (f *fakeOrderRepo) CommitTransition(ctx context.Context, update interfaces.TransitionUpdate) error {
	return nil
}

func pendingStatus() *domain.Status {
	s := domain.StatusPending
	return &s
}

func TestGetOrderReturnsHistory(t *testing.T) {
	repo := &fakeOrderRepo{
		order: &domain.Order{ID: "ORD-1", Status: domain.StatusConfirmed},
		history: []*domain.StatusHistory{
			{OrderID: "ORD-1", NewStatus: domain.StatusPending},
			{OrderID: "ORD-1", OldStatus: pendingStatus(), NewStatus: domain.StatusConfirmed},
		},
	}
	svc := NewService(repo, logger.New("test"))

	order, history, err := svc.GetOrder(context.Background(), "ORD-1")
	require.NoError(t, err)

	assert.Equal(t, "ORD-1", order.ID)
	require.Len(t, history, 2)
	assert.Equal(t, domain.StatusPending, history[0].NewStatus)
	assert.Equal(t, domain.StatusConfirmed, history[1].NewStatus)
}

func TestGetOrderNotFound(t *testing.T) {
	svc := NewService(&fakeOrderRepo{}, logger.New("test"))

	_, _, err := svc.GetOrder(context.Background(), "ORD-MISSING")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestTrackOrderInFlight(t *testing.T) {
	driverID := 7
	estimate := time.Now().Add(20 * time.Minute)
	repo := &fakeOrderRepo{
		order: &domain.Order{
			ID:                "ORD-1",
			Status:            domain.StatusOutForDelivery,
			DriverID:          &driverID,
			EstimatedDelivery: &estimate,
		},
	}
	svc := NewService(repo, logger.New("test"))

	resp, err := svc.TrackOrder(context.Background(), "ORD-1")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusOutForDelivery, resp.Status)
	require.NotNil(t, resp.DriverID)
	assert.Equal(t, 7, *resp.DriverID)
	require.NotNil(t, resp.MinutesRemaining)
	assert.InDelta(t, 19, *resp.MinutesRemaining, 1)
}

func TestTrackOrderPastEstimateClampsToZero(t *testing.T) {
	estimate := time.Now().Add(-10 * time.Minute)
	repo := &fakeOrderRepo{
		order: &domain.Order{
			ID:                "ORD-1",
			Status:            domain.StatusOutForDelivery,
			EstimatedDelivery: &estimate,
		},
	}
	svc := NewService(repo, logger.New("test"))

	resp, err := svc.TrackOrder(context.Background(), "ORD-1")
	require.NoError(t, err)

	require.NotNil(t, resp.MinutesRemaining)
	assert.Equal(t, 0, *resp.MinutesRemaining)
}

func TestTrackOrderDeliveredHasNoCountdown(t *testing.T) {
	estimate := time.Now().Add(5 * time.Minute)
	delivered := time.Now()
	repo := &fakeOrderRepo{
		order: &domain.Order{
			ID:                "ORD-1",
			Status:            domain.StatusDelivered,
			EstimatedDelivery: &estimate,
			DeliveredAt:       &delivered,
		},
	}
	svc := NewService(repo, logger.New("test"))

	resp, err := svc.TrackOrder(context.Background(), "ORD-1")
	require.NoError(t, err)

	assert.Nil(t, resp.MinutesRemaining)
	require.NotNil(t, resp.DeliveredAt)
}

func TestTrackOrderWithoutEstimate(t *testing.T) {
	repo := &fakeOrderRepo{
		order: &domain.Order{ID: "ORD-1", Status: domain.StatusPending},
	}
	svc := NewService(repo, logger.New("test"))

	resp, err := svc.TrackOrder(context.Background(), "ORD-1")
	require.NoError(t, err)

	assert.Nil(t, resp.MinutesRemaining)
	assert.Nil(t, resp.EstimatedDelivery)
}

func TestGetHistoryMissingOrder(t *testing.T) {
	// A missing order reads as not found, never as an empty history.
	repo := &fakeOrderRepo{history: []*domain.StatusHistory{}}
	svc := NewService(repo, logger.New("test"))

	_, err := svc.GetHistory(context.Background(), "ORD-MISSING")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestListCustomerOrders(t *testing.T) {
	repo := &fakeOrderRepo{
		orders: []*domain.Order{
			{ID: "ORD-1", CustomerID: "CUST-1", Status: domain.StatusDelivered},
			{ID: "ORD-2", CustomerID: "CUST-1", Status: domain.StatusPending},
			{ID: "ORD-3", CustomerID: "CUST-2", Status: domain.StatusPending},
		},
	}
	svc := NewService(repo, logger.New("test"))

	orders, err := svc.ListCustomerOrders(context.Background(), "CUST-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-1", orders[0].ID)

	orders, err = svc.ListCustomerOrders(context.Background(), "CUST-NONE")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGetHistoryReturnsOrderedEntries(t *testing.T) {
	repo := &fakeOrderRepo{
		order: &domain.Order{ID: "ORD-1", Status: domain.StatusPreparing},
		history: []*domain.StatusHistory{
			{OrderID: "ORD-1", NewStatus: domain.StatusPending},
			{OrderID: "ORD-1", NewStatus: domain.StatusConfirmed},
			{OrderID: "ORD-1", NewStatus: domain.StatusPreparing},
		},
	}
	svc := NewService(repo, logger.New("test"))

	history, err := svc.GetHistory(context.Background(), "ORD-1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, domain.StatusPreparing, history[2].NewStatus)
}
