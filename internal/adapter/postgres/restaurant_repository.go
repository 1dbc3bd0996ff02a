package postgres

import (
	"context"
	"fmt"

	"pizza-delivery/internal/domain"
	"pizza-delivery/internal/interfaces"
)

type restaurantRepository struct {
	db DB
}

func NewRestaurantRepository(db DB) interfaces.RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	query := `
		INSERT INTO restaurants (restaurant_id, name, description, address, phone,
		                         is_active, is_open, min_order_amount, delivery_fee, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		restaurant.ID, restaurant.Name, restaurant.Description, restaurant.Address, restaurant.Phone,
		restaurant.IsActive, restaurant.IsOpen, restaurant.MinOrderAmount, restaurant.DeliveryFee,
		restaurant.CreatedAt, restaurant.UpdatedAt,
	)
	return translate(err, domain.ErrRestaurantNotFound, domain.ErrRestaurantExists)
}

func (r *restaurantRepository) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	query := `
		SELECT restaurant_id, name, description, address, phone, is_active, is_open,
		       min_order_amount, delivery_fee, created_at, updated_at
		FROM restaurants
		WHERE restaurant_id = $1
	`

	var restaurant domain.Restaurant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&restaurant.ID, &restaurant.Name, &restaurant.Description, &restaurant.Address,
		&restaurant.Phone, &restaurant.IsActive, &restaurant.IsOpen,
		&restaurant.MinOrderAmount, &restaurant.DeliveryFee, &restaurant.CreatedAt, &restaurant.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err, domain.ErrRestaurantNotFound, domain.ErrRestaurantExists)
	}
	return &restaurant, nil
}

func (r *restaurantRepository) List(ctx context.Context) ([]*domain.Restaurant, error) {
	query := `
		SELECT restaurant_id, name, description, address, phone, is_active, is_open,
		       min_order_amount, delivery_fee, created_at, updated_at
		FROM restaurants
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, translate(err, domain.ErrRestaurantNotFound, domain.ErrRestaurantExists)
	}
	defer rows.Close()

	var restaurants []*domain.Restaurant
	for rows.Next() {
		var restaurant domain.Restaurant
		if err := rows.Scan(
			&restaurant.ID, &restaurant.Name, &restaurant.Description, &restaurant.Address,
			&restaurant.Phone, &restaurant.IsActive, &restaurant.IsOpen,
			&restaurant.MinOrderAmount, &restaurant.DeliveryFee, &restaurant.CreatedAt, &restaurant.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, &restaurant)
	}
	return restaurants, rows.Err()
}

func (r *restaurantRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	query := `
		INSERT INTO menu_items (item_id, restaurant_id, name, description, price, category,
		                        is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		item.ID, item.RestaurantID, item.Name, item.Description, item.Price, item.Category,
		item.IsAvailable, item.CreatedAt, item.UpdatedAt,
	)
	return translate(err, domain.ErrItemNotFound, domain.ErrItemExists)
}

func (r *restaurantRepository) ListMenu(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error) {
	query := `
		SELECT item_id, restaurant_id, name, description, price, category, is_available, created_at, updated_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY category, name
	`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, translate(err, domain.ErrItemNotFound, domain.ErrItemExists)
	}
	defer rows.Close()

	var items []*domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Description,
			&item.Price, &item.Category, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *restaurantRepository) FindMenuItem(ctx context.Context, restaurantID, itemID string) (*domain.MenuItem, error) {
	query := `
		SELECT item_id, restaurant_id, name, description, price, category, is_available, created_at, updated_at
		FROM menu_items
		WHERE item_id = $1 AND restaurant_id = $2
	`

	var item domain.MenuItem
	err := r.db.QueryRow(ctx, query, itemID, restaurantID).Scan(
		&item.ID, &item.RestaurantID, &item.Name, &item.Description,
		&item.Price, &item.Category, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err, domain.ErrItemNotFound, domain.ErrItemExists)
	}
	return &item, nil
}
