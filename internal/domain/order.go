package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a single customer purchase tracked through the status
// lifecycle. Monetary fields always satisfy
// total = subtotal + tax + delivery fee - discount.
type Order struct {
	ID                  string
	CustomerID          string
	RestaurantID        string
	AddressID           *int
	DriverID            *int
	Status              Status
	DeliveryType        DeliveryType
	SpecialInstructions *string
	Subtotal            decimal.Decimal
	Tax                 decimal.Decimal
	DeliveryFee         decimal.Decimal
	Discount            decimal.Decimal
	TotalAmount         decimal.Decimal
	PaymentMethod       string
	PaymentStatus       string
	Items               []OrderItem
	CreatedAt           time.Time
	UpdatedAt           time.Time
	EstimatedDelivery   *time.Time
	DeliveredAt         *time.Time
}

// OrderItem is one line of an order. UnitPrice is a snapshot of the menu
// price at order time and never changes afterwards.
type OrderItem struct {
	ID             int
	OrderID        string
	ItemID         string
	Name           string
	Quantity       int
	UnitPrice      decimal.Decimal
	Customizations *string
	CreatedAt      time.Time
}

// LineTotal returns unit price times quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
