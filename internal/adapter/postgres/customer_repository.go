package postgres

import (
	"context"

	"pizza-delivery/internal/domain"
	"pizza-delivery/internal/interfaces"
)

type customerRepository struct {
	db DB
}

func NewCustomerRepository(db DB) interfaces.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `
		INSERT INTO customers (customer_id, name, phone_number, email, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		customer.ID, customer.Name, customer.PhoneNumber, customer.Email, customer.CreatedAt,
	)
	return translate(err, domain.ErrCustomerNotFound, domain.ErrCustomerExists)
}

func (r *customerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, phone_number, email, created_at
		FROM customers
		WHERE customer_id = $1
	`

	var customer domain.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.ID, &customer.Name, &customer.PhoneNumber, &customer.Email, &customer.CreatedAt,
	)
	if err != nil {
		return nil, translate(err, domain.ErrCustomerNotFound, domain.ErrCustomerExists)
	}
	return &customer, nil
}

func (r *customerRepository) AddAddress(ctx context.Context, address *domain.Address) error {
	query := `
		INSERT INTO addresses (customer_id, street, city, state, postal_code, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING address_id
	`
	err := r.db.QueryRow(ctx, query,
		address.CustomerID, address.Street, address.City, address.State,
		address.PostalCode, address.IsDefault, address.CreatedAt,
	).Scan(&address.ID)
	return translate(err, domain.ErrCustomerNotFound, domain.ErrCustomerExists)
}

func (r *customerRepository) FindAddress(ctx context.Context, addressID int, customerID string) (*domain.Address, error) {
	query := `
		SELECT address_id, customer_id, street, city, state, postal_code, is_default, created_at
		FROM addresses
		WHERE address_id = $1 AND customer_id = $2
	`

	var address domain.Address
	err := r.db.QueryRow(ctx, query, addressID, customerID).Scan(
		&address.ID, &address.CustomerID, &address.Street, &address.City,
		&address.State, &address.PostalCode, &address.IsDefault, &address.CreatedAt,
	)
	if err != nil {
		return nil, translate(err, domain.ErrAddressNotFound, domain.ErrCustomerExists)
	}
	return &address, nil
}
