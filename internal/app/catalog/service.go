package catalog

import (
	"context"
	"time"

	"pizza-delivery/internal/adapter/logger"
	"pizza-delivery/internal/domain"
	"pizza-delivery/internal/interfaces"
)

// Service covers the administrative CRUD surface: restaurants and menus,
// customers and their addresses, driver registration and shifts.
type Service struct {
	restaurants interfaces.RestaurantRepository
	customers   interfaces.CustomerRepository
	drivers     interfaces.DriverRepository
	logger      logger.Logger
}

func NewService(
	restaurants interfaces.RestaurantRepository,
	customers interfaces.CustomerRepository,
	drivers interfaces.DriverRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		restaurants: restaurants,
		customers:   customers,
		drivers:     drivers,
		logger:      logger,
	}
}

func (s *Service) CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) error {
	now := time.Now()
	restaurant.CreatedAt = now
	restaurant.UpdatedAt = now
	if err := s.restaurants.Create(ctx, restaurant); err != nil {
		return err
	}
	s.logger.Info("restaurant_created", "Restaurant created", "", map[string]interface{}{
		"restaurant_id": restaurant.ID,
	})
	return nil
}

func (s *Service) ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error) {
	return s.restaurants.List(ctx)
}

func (s *Service) GetMenu(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error) {
	if _, err := s.restaurants.FindByID(ctx, restaurantID); err != nil {
		return nil, err
	}
	return s.restaurants.ListMenu(ctx, restaurantID)
}

func (s *Service) AddMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if _, err := s.restaurants.FindByID(ctx, item.RestaurantID); err != nil {
		return err
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	return s.restaurants.CreateMenuItem(ctx, item)
}

func (s *Service) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	customer.CreatedAt = time.Now()
	return s.customers.Create(ctx, customer)
}

func (s *Service) AddAddress(ctx context.Context, address *domain.Address) error {
	if _, err := s.customers.FindByID(ctx, address.CustomerID); err != nil {
		return err
	}
	address.CreatedAt = time.Now()
	return s.customers.AddAddress(ctx, address)
}

func (s *Service) RegisterDriver(ctx context.Context, driver *domain.Driver) error {
	now := time.Now()
	driver.IsAvailable = true
	driver.CreatedAt = now
	driver.UpdatedAt = now
	if err := s.drivers.Create(ctx, driver); err != nil {
		return err
	}
	s.logger.Info("driver_registered", "Driver registered", "", map[string]interface{}{
		"driver_id": driver.ID,
	})
	return nil
}

func (s *Service) ListDrivers(ctx context.Context) ([]*domain.Driver, error) {
	return s.drivers.List(ctx)
}

func (s *Service) SetDriverShift(ctx context.Context, driverID int, onShift bool) error {
	return s.drivers.SetOnShift(ctx, driverID, onShift)
}
