package opsheet

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name         string
		fills        []Fill
		wantQuantity Quantity
		wantNotional Money
		wantPrice    Optional[Money]
	}{
		{
			name:         "two fills",
			fills:        []Fill{fill(10, 100), fill(5, 103)},
			wantQuantity: Q(15),
			wantNotional: RUB(1515),
			wantPrice:    Some(RUB(101)),
		},
		{
			name:         "single fill",
			fills:        []Fill{fill(3, 12.5)},
			wantQuantity: Q(3),
			wantNotional: RUB(37.5),
			wantPrice:    Some(RUB(12.5)),
		},
		{
			name:         "no fills",
			fills:        nil,
			wantQuantity: Q(0),
			wantNotional: M(0, ""),
			wantPrice:    None[Money](),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.fills)
			if !got.NetQuantity.Equal(tt.wantQuantity) {
				t.Errorf("NetQuantity = %v, want %v", got.NetQuantity, tt.wantQuantity)
			}
			if !got.Notional.Equal(tt.wantNotional) {
				t.Errorf("Notional = %v, want %v", got.Notional, tt.wantNotional)
			}
			gotPrice, gotOK := got.Price.Get()
			wantPrice, wantOK := tt.wantPrice.Get()
			if gotOK != wantOK || !gotPrice.Equal(wantPrice) {
				t.Errorf("Price = %v (%v), want %v (%v)", gotPrice, gotOK, wantPrice, wantOK)
			}
		})
	}
}

// randomFills returns a non-empty list of fills with random quantities and prices.
func randomFills(r *rand.Rand) []Fill {
	n := 1 + r.IntN(8)
	fills := make([]Fill, n)
	for i := range fills {
		price := decimal.New(int64(1+r.IntN(1_000_000)), -2) // 0.01 to 10000.00
		fills[i] = Fill{Quantity: Q(1 + r.IntN(500)), Price: M(price, "RUB")}
	}
	return fills
}

func TestAggregate_WeightedPriceIsBounded(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 500 {
		fills := randomFills(r)
		lo, hi := fills[0].Price, fills[0].Price
		for _, f := range fills {
			if f.Price.LessThan(lo) {
				lo = f.Price
			}
			if f.Price.GreaterThan(hi) {
				hi = f.Price
			}
		}
		price, ok := Aggregate(fills).Price.Get()
		if !ok {
			t.Fatalf("Aggregate(%v) has no price", fills)
		}
		if price.LessThan(lo) || price.GreaterThan(hi) {
			t.Errorf("Aggregate(%v) price = %v, want within [%v, %v]", fills, price, lo, hi)
		}
	}
}

func TestAggregate_NotionalIsQuantityTimesPrice(t *testing.T) {
	tolerance := decimal.New(1, -8)
	r := rand.New(rand.NewPCG(3, 4))
	for range 500 {
		agg := Aggregate(randomFills(r))
		price, _ := agg.Price.Get()
		diff := price.Mul(agg.NetQuantity).Sub(agg.Notional).Amount().Abs()
		if diff.GreaterThan(tolerance) {
			t.Errorf("netQuantity*price = %v, want %v", price.Mul(agg.NetQuantity), agg.Notional)
		}
	}
}
