package opsheet

import "testing"

func TestNormalize_Sell(t *testing.T) {
	agg := Aggregate([]Fill{fill(10, 100), fill(5, 103)})
	got := Normalize(Sell, agg, Some(RUB(2)))

	if q, ok := got.Quantity.Get(); !ok || !q.Equal(Q(-15)) {
		t.Errorf("Quantity = %v, want -15", got.Quantity)
	}
	if !got.Notional.Equal(RUB(-1515)) {
		t.Errorf("Notional = %v, want -1515", got.Notional)
	}
	if p, ok := got.Price.Get(); !ok || !p.Equal(RUB(101)) {
		t.Errorf("Price = %v, want 101", got.Price)
	}
	if c, ok := got.Commission.Get(); !ok || !c.Equal(RUB(-2)) {
		t.Errorf("Commission = %v, want -2", got.Commission)
	}
}

func TestNormalize_Buy(t *testing.T) {
	agg := Aggregate([]Fill{fill(10, 100), fill(5, 103)})
	got := Normalize(Buy, agg, Some(RUB(-2)))

	if q, ok := got.Quantity.Get(); !ok || !q.Equal(Q(15)) {
		t.Errorf("Quantity = %v, want 15", got.Quantity)
	}
	if !got.Notional.Equal(RUB(1515)) {
		t.Errorf("Notional = %v, want 1515", got.Notional)
	}
	if c, ok := got.Commission.Get(); !ok || !c.Equal(RUB(-2)) {
		t.Errorf("Commission = %v, want -2", got.Commission)
	}
	if !got.Charged.Equal(RUB(2)) {
		t.Errorf("Charged = %v, want 2", got.Charged)
	}
}

func TestNormalize_SuppressedCategories(t *testing.T) {
	fills := []Fill{fill(4, 25)}
	for _, c := range []Category{Tax, TaxDividend, Dividend} {
		t.Run(c.String(), func(t *testing.T) {
			got := Normalize(c, Aggregate(fills), Some(RUB(-1)))
			if got.Quantity.IsSome() {
				t.Errorf("Quantity = %v, want not applicable", got.Quantity)
			}
			if got.Price.IsSome() {
				t.Errorf("Price = %v, want not applicable", got.Price)
			}
			if cm, ok := got.Commission.Get(); !ok || !cm.Equal(RUB(-1)) {
				t.Errorf("Commission = %v, want -1 unchanged", got.Commission)
			}
		})
	}
}

func TestNormalize_CommissionWithoutFills(t *testing.T) {
	got := Normalize(ServiceCommission, Aggregate(nil), Some(RUB(-99)))
	if got.Price.IsSome() {
		t.Errorf("Price = %v, want not applicable", got.Price)
	}
	if q, ok := got.Quantity.Get(); !ok || !q.IsZero() {
		t.Errorf("Quantity = %v, want 0", got.Quantity)
	}
	if !got.Charged.Equal(RUB(99)) {
		t.Errorf("Charged = %v, want 99", got.Charged)
	}
}

func TestNormalize_NoCommission(t *testing.T) {
	got := Normalize(Sell, Aggregate([]Fill{fill(1, 10)}), None[Money]())
	if got.Commission.IsSome() {
		t.Errorf("Commission = %v, want absent", got.Commission)
	}
	if !got.Charged.Amount().IsZero() {
		t.Errorf("Charged = %v, want zero", got.Charged)
	}
}
