package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Restaurant is read by the pricing and creation logic, never mutated by it.
type Restaurant struct {
	ID             string
	Name           string
	Description    *string
	Address        string
	Phone          *string
	IsActive       bool
	IsOpen         bool
	MinOrderAmount decimal.Decimal
	DeliveryFee    decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FeeSchedule returns the restaurant's pricing inputs.
func (r *Restaurant) FeeSchedule() FeeSchedule {
	return FeeSchedule{
		DeliveryFee:    r.DeliveryFee,
		MinOrderAmount: r.MinOrderAmount,
	}
}

// AcceptsOrders reports whether new orders may be placed.
func (r *Restaurant) AcceptsOrders() bool {
	return r.IsActive && r.IsOpen
}

type MenuItem struct {
	ID           string
	RestaurantID string
	Name         string
	Description  *string
	Price        decimal.Decimal
	Category     *string
	IsAvailable  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
