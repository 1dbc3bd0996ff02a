package domain

import "time"

// Driver availability is toggled as a side effect of status transitions:
// out_for_delivery busies a driver, terminal states release them.
type Driver struct {
	ID              int
	Name            string
	VehicleType     *string
	LicensePlate    *string
	IsAvailable     bool
	IsOnShift       bool
	TotalDeliveries int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanTakeOrder reports whether the driver may be assigned a delivery.
func (d *Driver) CanTakeOrder() bool {
	return d.IsAvailable && d.IsOnShift
}
