package postgres

import (
	"context"
	"fmt"

	"pizza-delivery/internal/domain"
	"pizza-delivery/internal/interfaces"
)

type orderRepository struct {
	db DB
}

func NewOrderRepository(db DB) interfaces.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order, initial *domain.StatusHistory) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return translate(fmt.Errorf("failed to begin transaction: %w", err), domain.ErrOrderNotFound, domain.ErrOrderIDCollision)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (order_id, customer_id, restaurant_id, address_id, order_status,
		                    delivery_type, special_instructions, subtotal, tax, delivery_fee,
		                    discount, total_amount, payment_method, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = tx.Exec(ctx, query,
		order.ID, order.CustomerID, order.RestaurantID, order.AddressID, order.Status,
		order.DeliveryType, order.SpecialInstructions, order.Subtotal, order.Tax, order.DeliveryFee,
		order.Discount, order.TotalAmount, order.PaymentMethod, order.PaymentStatus, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return translate(err, domain.ErrOrderNotFound, domain.ErrOrderIDCollision)
	}

	for i := range order.Items {
		itemQuery := `
			INSERT INTO order_items (order_id, item_id, quantity, unit_price, customizations, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING order_item_id
		`
		err = tx.QueryRow(ctx, itemQuery,
			order.ID, order.Items[i].ItemID, order.Items[i].Quantity,
			order.Items[i].UnitPrice, order.Items[i].Customizations, order.Items[i].CreatedAt,
		).Scan(&order.Items[i].ID)
		if err != nil {
			return translate(fmt.Errorf("failed to insert order item: %w", err), domain.ErrOrderNotFound, domain.ErrOrderIDCollision)
		}
		order.Items[i].OrderID = order.ID
	}

	historyQuery := `
		INSERT INTO order_status_history (order_id, old_status, new_status, actor_id, actor_type, notes, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = tx.Exec(ctx, historyQuery,
		order.ID, initial.OldStatus, initial.NewStatus, initial.ActorID, initial.ActorType, initial.Notes, initial.ChangedAt,
	)
	if err != nil {
		return translate(fmt.Errorf("failed to insert status history: %w", err), domain.ErrOrderNotFound, domain.ErrOrderIDCollision)
	}

	return translate(tx.Commit(ctx), domain.ErrOrderNotFound, domain.ErrOrderIDCollision)
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT order_id, customer_id, restaurant_id, address_id, driver_id, order_status,
		       delivery_type, special_instructions, subtotal, tax, delivery_fee, discount,
		       total_amount, payment_method, payment_status, created_at, updated_at,
		       estimated_delivery, delivered_at
		FROM orders
		WHERE order_id = $1
	`

	var order domain.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.CustomerID, &order.RestaurantID, &order.AddressID, &order.DriverID,
		&order.Status, &order.DeliveryType, &order.SpecialInstructions, &order.Subtotal,
		&order.Tax, &order.DeliveryFee, &order.Discount, &order.TotalAmount,
		&order.PaymentMethod, &order.PaymentStatus, &order.CreatedAt, &order.UpdatedAt,
		&order.EstimatedDelivery, &order.DeliveredAt,
	)
	if err != nil {
		return nil, translate(err, domain.ErrOrderNotFound, domain.ErrOrderIDCollision)
	}

	itemsQuery := `
		SELECT oi.order_item_id, oi.order_id, oi.item_id, mi.name, oi.quantity,
		       oi.unit_price, oi.customizations, oi.created_at
		FROM order_items oi
		JOIN menu_items mi ON mi.item_id = oi.item_id
		WHERE oi.order_id = $1
		ORDER BY oi.order_item_id
	`
	rows, err := r.db.Query(ctx, itemsQuery, order.ID)
	if err != nil {
		return nil, translate(fmt.Errorf("failed to load order items: %w", err), domain.ErrOrderNotFound, domain.ErrOrderIDCollision)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ItemID, &item.Name,
			&item.Quantity, &item.UnitPrice, &item.Customizations, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, domain.ErrOrderNotFound, domain.ErrOrderIDCollision)
	}

	return &order, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	query := `
		SELECT order_id, customer_id, restaurant_id, address_id, driver_id, order_status,
		       delivery_type, special_instructions, subtotal, tax, delivery_fee, discount,
		       total_amount, payment_method, payment_status, created_at, updated_at,
		       estimated_delivery, delivered_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, translate(err, domain.ErrOrderNotFound, domain.ErrOrderIDCollision)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.CustomerID, &order.RestaurantID, &order.AddressID, &order.DriverID,
			&order.Status, &order.DeliveryType, &order.SpecialInstructions, &order.Subtotal,
			&order.Tax, &order.DeliveryFee, &order.Discount, &order.TotalAmount,
			&order.PaymentMethod, &order.PaymentStatus, &order.CreatedAt, &order.UpdatedAt,
			&order.EstimatedDelivery, &order.DeliveredAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, &order)
	}
	return orders, rows.Err()
}

func (r *orderRepository) GetStatusHistory(ctx context.Context, orderID string) ([]*domain.StatusHistory, error) {
	query := `
		SELECT history_id, order_id, old_status, new_status, actor_id, actor_type, driver_id, notes, changed_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY changed_at ASC, history_id ASC
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, translate(err, domain.ErrOrderNotFound, domain.ErrOrderIDCollision)
	}
	defer rows.Close()

	var history []*domain.StatusHistory
	for rows.Next() {
		var h domain.StatusHistory
		if err := rows.Scan(&h.ID, &h.OrderID, &h.OldStatus, &h.NewStatus,
			&h.ActorID, &h.ActorType, &h.DriverID, &h.Notes, &h.ChangedAt); err != nil {
			return nil, fmt.Errorf("failed to scan status history: %w", err)
		}
		history = append(history, &h)
	}
	return history, rows.Err()
}

// CommitTransition applies the order update, the driver updates and the
// history append in one transaction. The order update is guarded by the old
// status and the driver assignment by the availability flag, so concurrent
// transitions and double-assignments lose the race instead of overwriting.
func (r *orderRepository) CommitTransition(ctx context.Context, update interfaces.TransitionUpdate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return translate(fmt.Errorf("failed to begin transaction: %w", err), domain.ErrOrderNotFound, domain.ErrOrderIDCollision)
	}
	defer tx.Rollback(ctx)

	order := update.Order
	orderQuery := `
		UPDATE orders
		SET order_status = $1, driver_id = $2, updated_at = $3, estimated_delivery = $4, delivered_at = $5
		WHERE order_id = $6 AND order_status = $7
	`
	tag, err := tx.Exec(ctx, orderQuery,
		order.Status, order.DriverID, order.UpdatedAt, order.EstimatedDelivery, order.DeliveredAt,
		order.ID, update.OldStatus,
	)
	if err != nil {
		return translate(err, domain.ErrOrderNotFound, domain.ErrOrderIDCollision)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransitionConflict
	}

	if update.AssignDriverID != nil {
		driverQuery := `
			UPDATE drivers
			SET is_available = FALSE, total_deliveries = total_deliveries + 1, updated_at = NOW()
			WHERE driver_id = $1 AND is_available = TRUE AND is_on_shift = TRUE
		`
		tag, err := tx.Exec(ctx, driverQuery, *update.AssignDriverID)
		if err != nil {
			return translate(err, domain.ErrDriverNotFound, domain.ErrDriverExists)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrDriverUnavailable
		}
	}

	if update.ReleaseDriverID != nil {
		releaseQuery := `
			UPDATE drivers
			SET is_available = TRUE, updated_at = NOW()
			WHERE driver_id = $1
		`
		if _, err := tx.Exec(ctx, releaseQuery, *update.ReleaseDriverID); err != nil {
			return translate(err, domain.ErrDriverNotFound, domain.ErrDriverExists)
		}
	}

	history := update.History
	historyQuery := `
		INSERT INTO order_status_history (order_id, old_status, new_status, actor_id, actor_type, driver_id, notes, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.Exec(ctx, historyQuery,
		history.OrderID, history.OldStatus, history.NewStatus, history.ActorID,
		history.ActorType, history.DriverID, history.Notes, history.ChangedAt,
	)
	if err != nil {
		return translate(fmt.Errorf("failed to insert status history: %w", err), domain.ErrOrderNotFound, domain.ErrOrderIDCollision)
	}

	return translate(tx.Commit(ctx), domain.ErrOrderNotFound, domain.ErrOrderIDCollision)
}
