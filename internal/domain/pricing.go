package domain

import "github.com/shopspring/decimal"

// TaxRate is fixed at 8% for the whole system.
var TaxRate = decimal.NewFromFloat(0.08)

// FeeSchedule is a restaurant's pricing inputs.
type FeeSchedule struct {
	DeliveryFee    decimal.Decimal
	MinOrderAmount decimal.Decimal
}

// PriceLine is one (unit price, quantity) pair to be priced.
type PriceLine struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Quote is the result of pricing an order.
type Quote struct {
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	DeliveryFee decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}

// CalculateQuote computes subtotal, tax, delivery fee and total for an order.
// Arithmetic is exact decimal; tax and total are rounded half away from zero
// to two decimals (12.99 * 0.08 = 1.0392 -> 1.04). The delivery fee applies
// only to delivery orders, and the minimum-order check is enforced only for
// delivery orders. Pure and deterministic, no side effects.
func CalculateQuote(schedule FeeSchedule, deliveryType DeliveryType, discount decimal.Decimal, lines []PriceLine) (Quote, error) {
	if len(lines) == 0 {
		return Quote{}, ErrEmptyOrder
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 {
			return Quote{}, ErrInvalidQuantity
		}
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	deliveryFee := decimal.Zero
	if deliveryType == DeliveryTypeDelivery {
		if subtotal.LessThan(schedule.MinOrderAmount) {
			return Quote{}, ErrBelowMinimumOrder
		}
		deliveryFee = schedule.DeliveryFee
	}

	tax := subtotal.Mul(TaxRate).Round(2)
	total := subtotal.Add(tax).Add(deliveryFee).Sub(discount).Round(2)

	return Quote{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: deliveryFee,
		Discount:    discount,
		Total:       total,
	}, nil
}
