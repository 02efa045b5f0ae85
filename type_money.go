package opsheet

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// fraction returns the number of minor unit digits of the money's currency.
// Unknown currencies (and the empty one) use 2.
func (m Money) fraction() int32 {
	cur := money.GetCurrency(m.cur)
	if cur == nil {
		return 2
	}
	return int32(cur.Fraction)
}

// Display returns the plain amount rounded to the currency's minor unit, without symbol.
// It is the representation used in report cells.
func (m Money) Display() string { return m.value.StringFixed(m.fraction()) }

// DisplayExact is Display without rounding: digits beyond the minor unit are
// kept. Unit prices of cheap instruments need them.
func (m Money) DisplayExact() string {
	exact := m.value.String()
	if i := strings.IndexByte(exact, '.'); i >= 0 && int32(len(exact)-i-1) > m.fraction() {
		return exact
	}
	return m.Display()
}

func (m Money) Currency() string           { return m.cur }
func (m Money) Amount() decimal.Decimal    { return m.value }
func (m Money) Equal(n Money) bool         { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) LessThan(amount Money) bool { return m.value.LessThan(amount.value) }
func (m Money) GreaterThan(n Money) bool   { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                 { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money       { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Div(n Quantity) Money       { return Money{value: m.value.Div(n.value), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// SameCurrency reports whether m and n can be added together.
// The "" currency is compatible with anything.
func (m Money) SameCurrency(n Money) bool {
	return m.cur == "" || n.cur == "" || m.cur == n.cur
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// MarshalJSON writes the exact amount, money in reports is never rounded on the wire.
func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value)
	return w.MarshalJSON()
}
