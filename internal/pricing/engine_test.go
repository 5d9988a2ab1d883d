package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savannatrails/safari-backend/internal/selection"
	"github.com/savannatrails/safari-backend/pkg/enums"
)

func item(itemType enums.ItemType, price int64, nights *int) selection.SelectedItem {
	id := uuid.New()
	return selection.SelectedItem{
		ID:        selection.SelectionID(itemType, id),
		CatalogID: id,
		Name:      "item",
		Price:     decimal.NewFromInt(price),
		Type:      itemType,
		Nights:    nights,
	}
}

func intPtr(v int) *int {
	return &v
}

func requireEqualInt(t *testing.T, got decimal.Decimal, want int64, field string) {
	t.Helper()
	if !got.Equal(decimal.NewFromInt(want)) {
		t.Fatalf("expected %s = %d, got %s", field, want, got)
	}
}

func TestEmptySelectionIsAllZero(t *testing.T) {
	t.Parallel()

	breakdown := Compute(nil)
	requireEqualInt(t, breakdown.Subtotal, 0, "subtotal")
	requireEqualInt(t, breakdown.ServiceCharge, 0, "service charge")
	requireEqualInt(t, breakdown.Taxes, 0, "taxes")
	requireEqualInt(t, breakdown.Discount, 0, "discount")
	requireEqualInt(t, breakdown.Total, 0, "total")
}

func TestLodgeContributionMultipliesNights(t *testing.T) {
	t.Parallel()

	lodge := item(enums.ItemTypeLodge, 100, intPtr(3))
	if got := Contribution(lodge); !got.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected contribution 300 got %s", got)
	}

	lodge.Nights = intPtr(5)
	if got := Contribution(lodge); !got.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected contribution 500 after nights change, got %s", got)
	}
}

func TestLodgeContributionDefaultsToTwoNights(t *testing.T) {
	t.Parallel()

	lodge := item(enums.ItemTypeLodge, 120, nil)
	if got := Contribution(lodge); !got.Equal(decimal.NewFromInt(240)) {
		t.Fatalf("expected price x 2 for unset nights, got %s", got)
	}
}

func TestNonLodgeContributionIsUnitPrice(t *testing.T) {
	t.Parallel()

	for _, itemType := range []enums.ItemType{enums.ItemTypeActivity, enums.ItemTypeTransport, enums.ItemTypeCultural} {
		entry := item(itemType, 75, nil)
		if got := Contribution(entry); !got.Equal(decimal.NewFromInt(75)) {
			t.Fatalf("type %s: expected contribution 75 got %s", itemType, got)
		}
	}
}

func TestNightsChangeOnlyAffectsThatItem(t *testing.T) {
	t.Parallel()

	lodge := item(enums.ItemTypeLodge, 100, intPtr(3))
	activity := item(enums.ItemTypeActivity, 200, nil)

	before := Compute([]selection.SelectedItem{lodge, activity})
	requireEqualInt(t, before.Subtotal, 500, "subtotal")

	lodge.Nights = intPtr(5)
	after := Compute([]selection.SelectedItem{lodge, activity})
	requireEqualInt(t, after.Subtotal, 700, "subtotal")
	if got := Contribution(activity); !got.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("unrelated item contribution changed: %s", got)
	}
}

func TestBreakdownArithmetic(t *testing.T) {
	t.Parallel()

	// Two items, subtotal 1000: no discount tier matches and the flat rule
	// requires subtotal strictly greater than 1000.
	items := []selection.SelectedItem{
		item(enums.ItemTypeActivity, 600, nil),
		item(enums.ItemTypeTransport, 400, nil),
	}

	breakdown := Compute(items)
	requireEqualInt(t, breakdown.Subtotal, 1000, "subtotal")
	requireEqualInt(t, breakdown.ServiceCharge, 50, "service charge")
	requireEqualInt(t, breakdown.Taxes, 120, "taxes")
	requireEqualInt(t, breakdown.Discount, 0, "discount")
	requireEqualInt(t, breakdown.Total, 1170, "total")
}

func TestDiscountPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		itemCount int
		subtotal  int64
		discount  int64
	}{
		{name: "three items high subtotal takes percentage tier", itemCount: 3, subtotal: 2000, discount: 200},
		{name: "five items takes fifteen percent tier", itemCount: 5, subtotal: 1000, discount: 150},
		{name: "single high value item takes flat discount", itemCount: 1, subtotal: 1500, discount: 50},
		{name: "single low value item gets nothing", itemCount: 1, subtotal: 900, discount: 0},
		{name: "subtotal exactly at threshold gets nothing", itemCount: 2, subtotal: 1000, discount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := discountFor(tt.itemCount, decimal.NewFromInt(tt.subtotal))
			if !got.Equal(decimal.NewFromInt(tt.discount)) {
				t.Fatalf("count=%d subtotal=%d: expected discount %d got %s",
					tt.itemCount, tt.subtotal, tt.discount, got)
			}
		})
	}
}

func TestDiscountTiersDoNotStack(t *testing.T) {
	t.Parallel()

	// Five items and a high subtotal: only the 15% tier applies, not
	// 15% + 10% + flat.
	items := []selection.SelectedItem{
		item(enums.ItemTypeLodge, 500, intPtr(2)),
		item(enums.ItemTypeActivity, 300, nil),
		item(enums.ItemTypeActivity, 300, nil),
		item(enums.ItemTypeTransport, 200, nil),
		item(enums.ItemTypeCultural, 200, nil),
	}

	breakdown := Compute(items)
	requireEqualInt(t, breakdown.Subtotal, 2000, "subtotal")
	requireEqualInt(t, breakdown.Discount, 300, "discount")
}

func TestRecomputationIsStable(t *testing.T) {
	t.Parallel()

	items := []selection.SelectedItem{
		item(enums.ItemTypeLodge, 123, intPtr(3)),
		item(enums.ItemTypeActivity, 457, nil),
	}

	first := Compute(items)
	for i := 0; i < 100; i++ {
		again := Compute(items)
		if !again.Total.Equal(first.Total) {
			t.Fatalf("recomputation drifted: %s != %s", again.Total, first.Total)
		}
	}
}
