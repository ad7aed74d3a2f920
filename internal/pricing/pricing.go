package pricing

import (
	"fmt"

	"github.com/mgalvezc/delivery-core/internal/entities"
	"github.com/shopspring/decimal"
)

// LineItem is a priced cart entry at quote time.
type LineItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Totals is the derived, internally consistent money breakdown of a cart.
// Total is always recomputed as Subtotal + DeliveryFee + Tax.
type Totals struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}

// minUnitPrice is the smallest billable unit price.
var minUnitPrice = decimal.New(1, -2)

const currencyPlaces = 2

// ComputeTotals derives subtotal, tax and total from the line items, the
// store's flat delivery fee and the configured tax rate. Amounts are rounded
// half up to currency precision so repeated quotes never underbill.
func ComputeTotals(items []LineItem, deliveryFee, taxRate decimal.Decimal) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, entities.ErrEmptyCart
	}

	subtotal := decimal.Zero
	for _, item := range items {
		if item.Quantity < 1 {
			return Totals{}, fmt.Errorf("%w: product %s has quantity %d", entities.ErrInvalidLineItem, item.ProductID, item.Quantity)
		}
		if item.UnitPrice.LessThan(minUnitPrice) {
			return Totals{}, fmt.Errorf("%w: product %s has price %s", entities.ErrInvalidLineItem, item.ProductID, item.UnitPrice)
		}
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	subtotal = subtotal.Round(currencyPlaces)
	tax := subtotal.Mul(taxRate).Round(currencyPlaces)
	fee := deliveryFee.Round(currencyPlaces)

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal.Add(fee).Add(tax),
	}, nil
}

// WithinTolerance reports whether two amounts agree up to one currency cent.
// Used to reject client-declared totals that disagree with the recomputed ones.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(minUnitPrice)
}
