package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/savannatrails/safari-backend/internal/selection"
	"github.com/savannatrails/safari-backend/pkg/enums"
)

// Fixed rates applied to the selection subtotal. Neither surcharge compounds
// on the other.
var (
	ServiceChargeRate = decimal.RequireFromString("0.05")
	TaxRate           = decimal.RequireFromString("0.12")
)

// Tiered discount rules. Item-count tiers are evaluated before the flat
// high-value rule; the first matching rule wins and rules never stack.
var (
	largeSelectionRate      = decimal.RequireFromString("0.15")
	mediumSelectionRate     = decimal.RequireFromString("0.10")
	highValueThreshold      = decimal.NewFromInt(1000)
	highValueFlatDiscount   = decimal.NewFromInt(50)
	largeSelectionMinItems  = 5
	mediumSelectionMinItems = 3
)

// Breakdown is the fully derived price projection of a selection. It is
// recomputed from the selection on every read and never stored on its own.
type Breakdown struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	ServiceCharge decimal.Decimal `json:"service_charge"`
	Taxes         decimal.Decimal `json:"taxes"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
}

// Contribution returns one item's share of the subtotal. Lodges multiply
// their nightly price by the night count (default applies if unset); every
// other type contributes its price once.
func Contribution(item selection.SelectedItem) decimal.Decimal {
	if item.Type != enums.ItemTypeLodge {
		return item.Price
	}
	nights := selection.DefaultLodgeNights
	if item.Nights != nil {
		nights = *item.Nights
	}
	return item.Price.Mul(decimal.NewFromInt(int64(nights)))
}

// Compute derives the full breakdown for the selection. It is pure and
// synchronous; callers re-run it after every selection mutation.
func Compute(items []selection.SelectedItem) Breakdown {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(Contribution(item))
	}

	serviceCharge := subtotal.Mul(ServiceChargeRate)
	taxes := subtotal.Mul(TaxRate)
	discount := discountFor(len(items), subtotal)

	return Breakdown{
		Subtotal:      subtotal,
		ServiceCharge: serviceCharge,
		Taxes:         taxes,
		Discount:      discount,
		Total:         subtotal.Add(serviceCharge).Add(taxes).Sub(discount),
	}
}

func discountFor(itemCount int, subtotal decimal.Decimal) decimal.Decimal {
	switch {
	case itemCount >= largeSelectionMinItems:
		return subtotal.Mul(largeSelectionRate)
	case itemCount >= mediumSelectionMinItems:
		return subtotal.Mul(mediumSelectionRate)
	case subtotal.GreaterThan(highValueThreshold):
		return highValueFlatDiscount
	default:
		return decimal.Zero
	}
}
