package postgres

import (
	"context"
	"fmt"
)

// migrations are executed in order at startup. All statements are idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id VARCHAR(20) PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		phone_number VARCHAR(20) UNIQUE NOT NULL,
		email VARCHAR(100) UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS addresses (
		address_id SERIAL PRIMARY KEY,
		customer_id VARCHAR(20) NOT NULL REFERENCES customers(customer_id),
		street TEXT NOT NULL,
		city VARCHAR(50) NOT NULL,
		state VARCHAR(50),
		postal_code VARCHAR(20),
		is_default BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS restaurants (
		restaurant_id VARCHAR(20) PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		address TEXT NOT NULL,
		phone VARCHAR(20),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		is_open BOOLEAN NOT NULL DEFAULT TRUE,
		min_order_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		delivery_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		item_id VARCHAR(20) PRIMARY KEY,
		restaurant_id VARCHAR(20) NOT NULL REFERENCES restaurants(restaurant_id),
		name VARCHAR(100) NOT NULL,
		description TEXT,
		price NUMERIC(10,2) NOT NULL,
		category VARCHAR(50),
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS drivers (
		driver_id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		vehicle_type VARCHAR(20),
		license_plate VARCHAR(20) UNIQUE,
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		is_on_shift BOOLEAN NOT NULL DEFAULT FALSE,
		total_deliveries INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id VARCHAR(30) PRIMARY KEY,
		customer_id VARCHAR(20) NOT NULL REFERENCES customers(customer_id),
		restaurant_id VARCHAR(20) NOT NULL REFERENCES restaurants(restaurant_id),
		address_id INTEGER REFERENCES addresses(address_id),
		driver_id INTEGER REFERENCES drivers(driver_id),
		order_status VARCHAR(20) NOT NULL DEFAULT 'pending',
		delivery_type VARCHAR(10) NOT NULL,
		special_instructions TEXT,
		subtotal NUMERIC(10,2) NOT NULL,
		tax NUMERIC(10,2) NOT NULL DEFAULT 0,
		delivery_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
		discount NUMERIC(10,2) NOT NULL DEFAULT 0,
		total_amount NUMERIC(10,2) NOT NULL,
		payment_method VARCHAR(20),
		payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		estimated_delivery TIMESTAMPTZ,
		delivered_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_item_id SERIAL PRIMARY KEY,
		order_id VARCHAR(30) NOT NULL REFERENCES orders(order_id),
		item_id VARCHAR(20) NOT NULL REFERENCES menu_items(item_id),
		quantity INTEGER NOT NULL CHECK (quantity >= 1),
		unit_price NUMERIC(10,2) NOT NULL,
		customizations TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS order_status_history (
		history_id SERIAL PRIMARY KEY,
		order_id VARCHAR(30) NOT NULL REFERENCES orders(order_id),
		old_status VARCHAR(20),
		new_status VARCHAR(20) NOT NULL,
		actor_id VARCHAR(50),
		actor_type VARCHAR(20) NOT NULL DEFAULT 'system',
		driver_id INTEGER REFERENCES drivers(driver_id),
		notes TEXT,
		changed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_status_history_order ON order_status_history(order_id, changed_at)`,
}

// RunMigrations creates the schema if it does not exist yet.
func RunMigrations(ctx context.Context, db DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
