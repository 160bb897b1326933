package compute

import (
	"math"
	"testing"

	"github.com/Shrijana18/StockPilot-v1-sub002/internal/models"
)

const tolerance = 1e-9

func TestLineSubtotal(t *testing.T) {
	tests := []struct {
		name string
		item models.DraftLineItem
		want float64
	}{
		{
			name: "price and quantity with discount",
			item: models.DraftLineItem{Price: models.Num(100), Quantity: models.Num(2), DiscountPercent: models.Num(10)},
			want: 180,
		},
		{
			name: "no discount",
			item: models.DraftLineItem{Price: models.Num(50), Quantity: models.Num(3)},
			want: 150,
		},
		{
			name: "unparseable price coerces to zero",
			item: models.DraftLineItem{Price: models.FlexNumber("abc"), Quantity: models.Num(2)},
			want: 0,
		},
		{
			name: "unparseable quantity coerces to zero",
			item: models.DraftLineItem{Price: models.Num(100), Quantity: models.FlexNumber("two")},
			want: 0,
		},
		{
			name: "negative price treated as zero",
			item: models.DraftLineItem{Price: models.Num(-10), Quantity: models.Num(2)},
			want: 0,
		},
		{
			name: "discount above 100 clamps",
			item: models.DraftLineItem{Price: models.Num(100), Quantity: models.Num(1), DiscountPercent: models.Num(150)},
			want: 0,
		},
		{
			name: "negative discount clamps to zero",
			item: models.DraftLineItem{Price: models.Num(100), Quantity: models.Num(1), DiscountPercent: models.Num(-20)},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineSubtotal(tt.item)
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("LineSubtotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAggregate(t *testing.T) {
	items := []models.DraftLineItem{
		{Price: models.Num(100), Quantity: models.Num(2), DiscountPercent: models.Num(10)},
	}

	got := Aggregate(items, models.Num(5))
	if math.Abs(got.Subtotal-180) > tolerance {
		t.Errorf("subtotal = %v, want 180", got.Subtotal)
	}
	if math.Abs(got.TaxAmount-9) > tolerance {
		t.Errorf("taxAmount = %v, want 9", got.TaxAmount)
	}
	if math.Abs(got.Total-189) > tolerance {
		t.Errorf("total = %v, want 189", got.Total)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	items := []models.DraftLineItem{
		{Price: models.Num(33.33), Quantity: models.Num(3), DiscountPercent: models.Num(7)},
		{Price: models.Num(12.5), Quantity: models.Num(4)},
	}

	first := Aggregate(items, models.Num(18))
	second := Aggregate(items, models.Num(18))
	if first != second {
		t.Errorf("Aggregate is not deterministic: %+v vs %+v", first, second)
	}
}

func TestAggregateAdditivity(t *testing.T) {
	items := []models.DraftLineItem{
		{Price: models.Num(19.99), Quantity: models.Num(7), DiscountPercent: models.Num(2.5)},
		{Price: models.Num(0.05), Quantity: models.Num(100)},
		{Price: models.FlexNumber("garbage"), Quantity: models.Num(3)},
	}

	var sum float64
	for _, item := range items {
		sum += LineSubtotal(item)
	}

	got := Aggregate(items, models.Num(12))
	if math.Abs(got.Subtotal-sum) > tolerance {
		t.Errorf("subtotal %v != sum of line subtotals %v", got.Subtotal, sum)
	}
	if math.Abs(got.Total-(got.Subtotal+got.TaxAmount)) > tolerance {
		t.Errorf("total %v != subtotal %v + taxAmount %v", got.Total, got.Subtotal, got.TaxAmount)
	}
}

func TestAggregateEmptyItems(t *testing.T) {
	got := Aggregate(nil, models.Num(18))
	if got.Subtotal != 0 || got.TaxAmount != 0 || got.Total != 0 {
		t.Errorf("empty draft should total zero, got %+v", got)
	}
}

func TestRoundCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.01},
		{189.0, 189.0},
		{10.994, 10.99},
		{0.125, 0.13},
	}
	for _, tt := range tests {
		if got := RoundCurrency(tt.in); got != tt.want {
			t.Errorf("RoundCurrency(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
