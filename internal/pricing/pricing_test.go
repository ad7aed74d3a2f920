package pricing_test

import (
	"testing"

	"github.com/mgalvezc/delivery-core/internal/entities"
	"github.com/mgalvezc/delivery-core/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotals(t *testing.T) {
	testCases := []struct {
		name         string
		items        []pricing.LineItem
		deliveryFee  decimal.Decimal
		taxRate      decimal.Decimal
		wantSubtotal string
		wantTax      string
		wantTotal    string
		wantErr      error
	}{
		{
			name: "single line",
			items: []pricing.LineItem{
				{ProductID: "p1", Quantity: 2, UnitPrice: dec("10.00")},
			},
			deliveryFee:  dec("2.50"),
			taxRate:      dec("0.08"),
			wantSubtotal: "20.00",
			wantTax:      "1.60",
			wantTotal:    "24.10",
		},
		{
			name: "multiple lines, tax rounds half up",
			items: []pricing.LineItem{
				{ProductID: "p1", Quantity: 1, UnitPrice: dec("3.99")},
				{ProductID: "p2", Quantity: 3, UnitPrice: dec("12.50")},
			},
			deliveryFee:  dec("0.00"),
			taxRate:      dec("0.16"),
			wantSubtotal: "41.49",
			// 41.49 * 0.16 = 6.6384 -> 6.64
			wantTax:   "6.64",
			wantTotal: "48.13",
		},
		{
			name: "zero tax rate",
			items: []pricing.LineItem{
				{ProductID: "p1", Quantity: 1, UnitPrice: dec("5.00")},
			},
			deliveryFee:  dec("1.25"),
			taxRate:      decimal.Zero,
			wantSubtotal: "5.00",
			wantTax:      "0.00",
			wantTotal:    "6.25",
		},
		{
			name:        "empty cart",
			items:       nil,
			deliveryFee: dec("2.50"),
			taxRate:     dec("0.08"),
			wantErr:     entities.ErrEmptyCart,
		},
		{
			name: "zero quantity",
			items: []pricing.LineItem{
				{ProductID: "p1", Quantity: 0, UnitPrice: dec("10.00")},
			},
			deliveryFee: dec("2.50"),
			taxRate:     dec("0.08"),
			wantErr:     entities.ErrInvalidLineItem,
		},
		{
			name: "negative quantity",
			items: []pricing.LineItem{
				{ProductID: "p1", Quantity: -3, UnitPrice: dec("10.00")},
			},
			deliveryFee: dec("2.50"),
			taxRate:     dec("0.08"),
			wantErr:     entities.ErrInvalidLineItem,
		},
		{
			name: "price below one cent",
			items: []pricing.LineItem{
				{ProductID: "p1", Quantity: 1, UnitPrice: dec("0.001")},
			},
			deliveryFee: dec("2.50"),
			taxRate:     dec("0.08"),
			wantErr:     entities.ErrInvalidLineItem,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pricing.ComputeTotals(tc.items, tc.deliveryFee, tc.taxRate)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Subtotal.Equal(dec(tc.wantSubtotal)), "subtotal: got %s", got.Subtotal)
			assert.True(t, got.Tax.Equal(dec(tc.wantTax)), "tax: got %s", got.Tax)
			assert.True(t, got.Total.Equal(dec(tc.wantTotal)), "total: got %s", got.Total)
			// сумма всегда сходится
			assert.True(t, got.Total.Equal(got.Subtotal.Add(got.DeliveryFee).Add(got.Tax)))
		})
	}
}

func TestComputeTotals_ErrorNamesProduct(t *testing.T) {
	_, err := pricing.ComputeTotals([]pricing.LineItem{
		{ProductID: "p1", Quantity: 1, UnitPrice: dec("4.00")},
		{ProductID: "p-broken", Quantity: 0, UnitPrice: dec("4.00")},
	}, decimal.Zero, decimal.Zero)
	require.ErrorIs(t, err, entities.ErrInvalidLineItem)
	assert.Contains(t, err.Error(), "p-broken")
}

func TestWithinTolerance(t *testing.T) {
	assert.True(t, pricing.WithinTolerance(dec("24.10"), dec("24.10")))
	assert.True(t, pricing.WithinTolerance(dec("24.10"), dec("24.11")))
	assert.True(t, pricing.WithinTolerance(dec("24.11"), dec("24.10")))
	assert.False(t, pricing.WithinTolerance(dec("24.10"), dec("24.12")))
	assert.False(t, pricing.WithinTolerance(dec("24.10"), dec("25.10")))
}
