package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pizza-delivery/internal/adapter/logger"
	"pizza-delivery/internal/domain"
	"pizza-delivery/internal/interfaces"

	"github.com/google/uuid"
)

type Service struct {
	orders      interfaces.OrderRepository
	customers   interfaces.CustomerRepository
	restaurants interfaces.RestaurantRepository
	logger      logger.Logger
}

func NewService(
	orders interfaces.OrderRepository,
	customers interfaces.CustomerRepository,
	restaurants interfaces.RestaurantRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		orders:      orders,
		customers:   customers,
		restaurants: restaurants,
		logger:      logger,
	}
}

// CreateOrder runs the full creation workflow: resolve customer, restaurant,
// address and menu items, price the order, then persist order + items +
// initial history as one transaction. The first failure aborts with nothing
// persisted.
func (s *Service) CreateOrder(ctx context.Context, cmd interfaces.CreateOrderCommand) (*domain.Order, error) {
	customer, err := s.customers.FindByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.restaurants.FindByID(ctx, cmd.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !restaurant.AcceptsOrders() {
		return nil, domain.ErrRestaurantClosed
	}

	deliveryType := domain.DeliveryType(cmd.DeliveryType)

	var addressID *int
	if deliveryType == domain.DeliveryTypeDelivery {
		if cmd.AddressID == nil {
			return nil, domain.ErrAddressRequired
		}
		address, err := s.customers.FindAddress(ctx, *cmd.AddressID, customer.ID)
		if err != nil {
			return nil, err
		}
		addressID = &address.ID
	}

	now := time.Now()
	items := make([]domain.OrderItem, 0, len(cmd.Items))
	lines := make([]domain.PriceLine, 0, len(cmd.Items))
	for _, itemCmd := range cmd.Items {
		menuItem, err := s.restaurants.FindMenuItem(ctx, restaurant.ID, itemCmd.ItemID)
		if err != nil {
			return nil, err
		}
		if !menuItem.IsAvailable {
			return nil, domain.WrapError(domain.ErrItemUnavailable, "item %s", menuItem.Name)
		}
		// Snapshot the menu price now; later menu changes must not affect
		// this order.
		items = append(items, domain.OrderItem{
			ItemID:         menuItem.ID,
			Name:           menuItem.Name,
			Quantity:       itemCmd.Quantity,
			UnitPrice:      menuItem.Price,
			Customizations: itemCmd.Customizations,
			CreatedAt:      now,
		})
		lines = append(lines, domain.PriceLine{UnitPrice: menuItem.Price, Quantity: itemCmd.Quantity})
	}

	quote, err := domain.CalculateQuote(restaurant.FeeSchedule(), deliveryType, cmd.Discount, lines)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:                  generateOrderID(now),
		CustomerID:          customer.ID,
		RestaurantID:        restaurant.ID,
		AddressID:           addressID,
		Status:              domain.StatusPending,
		DeliveryType:        deliveryType,
		SpecialInstructions: cmd.SpecialInstructions,
		Subtotal:            quote.Subtotal,
		Tax:                 quote.Tax,
		DeliveryFee:         quote.DeliveryFee,
		Discount:            quote.Discount,
		TotalAmount:         quote.Total,
		PaymentMethod:       cmd.PaymentMethod,
		PaymentStatus:       "pending",
		Items:               items,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	initial := &domain.StatusHistory{
		OrderID:   order.ID,
		OldStatus: nil,
		NewStatus: domain.StatusPending,
		ActorID:   customer.ID,
		ActorType: domain.ActorCustomer,
		ChangedAt: now,
	}

	if err := s.orders.Create(ctx, order, initial); err != nil {
		s.logger.Error("order_create_failed", "Failed to persist order", order.ID, nil, err)
		return nil, err
	}

	s.logger.Info("order_created", "Order created", order.ID, map[string]interface{}{
		"order_id":     order.ID,
		"customer_id":  order.CustomerID,
		"total_amount": order.TotalAmount.String(),
	})

	return order, nil
}

// generateOrderID builds a time-prefixed identifier with a random suffix,
// e.g. ORD-20250901123045-3FA2B1. A collision surfaces from the unique
// constraint on insert and is retryable by the caller.
func generateOrderID(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102150405"), suffix)
}
