package postgres

import (
	"context"
	"fmt"

	"pizza-delivery/internal/domain"
	"pizza-delivery/internal/interfaces"
)

type driverRepository struct {
	db DB
}

func NewDriverRepository(db DB) interfaces.DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	query := `
		INSERT INTO drivers (name, vehicle_type, license_plate, is_available, is_on_shift,
		                     total_deliveries, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING driver_id
	`
	err := r.db.QueryRow(ctx, query,
		driver.Name, driver.VehicleType, driver.LicensePlate, driver.IsAvailable,
		driver.IsOnShift, driver.TotalDeliveries, driver.CreatedAt, driver.UpdatedAt,
	).Scan(&driver.ID)
	return translate(err, domain.ErrDriverNotFound, domain.ErrDriverExists)
}

func (r *driverRepository) FindByID(ctx context.Context, id int) (*domain.Driver, error) {
	query := `
		SELECT driver_id, name, vehicle_type, license_plate, is_available, is_on_shift,
		       total_deliveries, created_at, updated_at
		FROM drivers
		WHERE driver_id = $1
	`

	var driver domain.Driver
	err := r.db.QueryRow(ctx, query, id).Scan(
		&driver.ID, &driver.Name, &driver.VehicleType, &driver.LicensePlate,
		&driver.IsAvailable, &driver.IsOnShift, &driver.TotalDeliveries,
		&driver.CreatedAt, &driver.UpdatedAt,
	)
	if err != nil {
		return nil, translate(err, domain.ErrDriverNotFound, domain.ErrDriverExists)
	}
	return &driver, nil
}

func (r *driverRepository) List(ctx context.Context) ([]*domain.Driver, error) {
	query := `
		SELECT driver_id, name, vehicle_type, license_plate, is_available, is_on_shift,
		       total_deliveries, created_at, updated_at
		FROM drivers
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, translate(err, domain.ErrDriverNotFound, domain.ErrDriverExists)
	}
	defer rows.Close()

	var drivers []*domain.Driver
	for rows.Next() {
		var driver domain.Driver
		if err := rows.Scan(
			&driver.ID, &driver.Name, &driver.VehicleType, &driver.LicensePlate,
			&driver.IsAvailable, &driver.IsOnShift, &driver.TotalDeliveries,
			&driver.CreatedAt, &driver.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, &driver)
	}
	return drivers, rows.Err()
}

func (r *driverRepository) SetOnShift(ctx context.Context, id int, onShift bool) error {
	query := `
		UPDATE drivers
		SET is_on_shift = $1, updated_at = NOW()
		WHERE driver_id = $2
	`
	tag, err := r.db.Exec(ctx, query, onShift, id)
	if err != nil {
		return translate(err, domain.ErrDriverNotFound, domain.ErrDriverExists)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDriverNotFound
	}
	return nil
}
