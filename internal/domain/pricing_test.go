package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateQuote(t *testing.T) {
	schedule := FeeSchedule{
		DeliveryFee:    d("2.99"),
		MinOrderAmount: d("10.00"),
	}

	tests := []struct {
		name         string
		deliveryType DeliveryType
		discount     decimal.Decimal
		lines        []PriceLine
		wantSubtotal string
		wantTax      string
		wantFee      string
		wantTotal    string
		wantErr      error
	}{
		{
			name:         "single item delivery",
			deliveryType: DeliveryTypeDelivery,
			discount:     decimal.Zero,
			lines:        []PriceLine{{UnitPrice: d("12.99"), Quantity: 1}},
			wantSubtotal: "12.99",
			wantTax:      "1.04", // 1.0392 rounded half away from zero
			wantFee:      "2.99",
			wantTotal:    "17.02",
		},
		{
			name:         "multiple items pickup has no delivery fee",
			deliveryType: DeliveryTypePickup,
			discount:     decimal.Zero,
			lines: []PriceLine{
				{UnitPrice: d("8.50"), Quantity: 2},
				{UnitPrice: d("3.25"), Quantity: 3},
			},
			wantSubtotal: "26.75",
			wantTax:      "2.14",
			wantFee:      "0",
			wantTotal:    "28.89",
		},
		{
			name:         "discount reduces total",
			deliveryType: DeliveryTypeDelivery,
			discount:     d("5.00"),
			lines:        []PriceLine{{UnitPrice: d("20.00"), Quantity: 1}},
			wantSubtotal: "20",
			wantTax:      "1.6",
			wantFee:      "2.99",
			wantTotal:    "19.59",
		},
		{
			name:         "pickup skips minimum order check",
			deliveryType: DeliveryTypePickup,
			discount:     decimal.Zero,
			lines:        []PriceLine{{UnitPrice: d("4.00"), Quantity: 1}},
			wantSubtotal: "4",
			wantTax:      "0.32",
			wantFee:      "0",
			wantTotal:    "4.32",
		},
		{
			name:         "delivery below minimum rejected",
			deliveryType: DeliveryTypeDelivery,
			discount:     decimal.Zero,
			lines:        []PriceLine{{UnitPrice: d("4.00"), Quantity: 1}},
			wantErr:      ErrBelowMinimumOrder,
		},
		{
			name:         "zero quantity rejected",
			deliveryType: DeliveryTypeDelivery,
			discount:     decimal.Zero,
			lines:        []PriceLine{{UnitPrice: d("12.99"), Quantity: 0}},
			wantErr:      ErrInvalidQuantity,
		},
		{
			name:         "negative quantity rejected",
			deliveryType: DeliveryTypePickup,
			discount:     decimal.Zero,
			lines:        []PriceLine{{UnitPrice: d("12.99"), Quantity: -2}},
			wantErr:      ErrInvalidQuantity,
		},
		{
			name:         "empty order rejected",
			deliveryType: DeliveryTypeDelivery,
			discount:     decimal.Zero,
			lines:        nil,
			wantErr:      ErrEmptyOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := CalculateQuote(schedule, tt.deliveryType, tt.discount, tt.lines)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, quote.Subtotal.Equal(d(tt.wantSubtotal)), "subtotal = %s, want %s", quote.Subtotal, tt.wantSubtotal)
			assert.True(t, quote.Tax.Equal(d(tt.wantTax)), "tax = %s, want %s", quote.Tax, tt.wantTax)
			assert.True(t, quote.DeliveryFee.Equal(d(tt.wantFee)), "delivery fee = %s, want %s", quote.DeliveryFee, tt.wantFee)
			assert.True(t, quote.Total.Equal(d(tt.wantTotal)), "total = %s, want %s", quote.Total, tt.wantTotal)
		})
	}
}

func TestCalculateQuoteTotalIdentity(t *testing.T) {
	// total must equal subtotal + tax + delivery fee - discount exactly.
	schedule := FeeSchedule{DeliveryFee: d("3.49"), MinOrderAmount: d("5.00")}
	lines := []PriceLine{
		{UnitPrice: d("7.35"), Quantity: 3},
		{UnitPrice: d("0.99"), Quantity: 7},
		{UnitPrice: d("11.10"), Quantity: 1},
	}

	quote, err := CalculateQuote(schedule, DeliveryTypeDelivery, d("2.50"), lines)
	require.NoError(t, err)

	sum := quote.Subtotal.Add(quote.Tax).Add(quote.DeliveryFee).Sub(quote.Discount).Round(2)
	assert.True(t, quote.Total.Equal(sum), "total = %s, components sum to %s", quote.Total, sum)
}

func TestCalculateQuoteIsDeterministic(t *testing.T) {
	schedule := FeeSchedule{DeliveryFee: d("2.99"), MinOrderAmount: d("10.00")}
	lines := []PriceLine{{UnitPrice: d("12.99"), Quantity: 2}}

	first, err := CalculateQuote(schedule, DeliveryTypeDelivery, decimal.Zero, lines)
	require.NoError(t, err)

	second, err := CalculateQuote(schedule, DeliveryTypeDelivery, decimal.Zero, lines)
	require.NoError(t, err)

	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.Tax.Equal(second.Tax))
}
