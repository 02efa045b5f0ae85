package opsheet

// NormalizedTrade is an aggregated trade with the sign and category policy applied.
type NormalizedTrade struct {
	// Quantity is signed: negative for sales. Absent for taxes and dividends.
	Quantity Optional[Quantity]
	// Notional is signed like Quantity.
	Notional Money
	// Price is the weighted price. Absent for taxes, dividends and operations without fills.
	Price Optional[Money]
	// Commission is the raw commission, negated for sales. Absent if the broker reported none.
	Commission Optional[Money]
	// Charged is the amount deducted for the commission: the negated raw commission, zero if absent.
	Charged Money
}

// Normalize applies the category policy to an aggregated trade and its raw commission.
//
// The commission is processed independently of the fills, a commission on an
// operation without fills is valid.
func Normalize(category Category, agg AggregatedTrade, commission Optional[Money]) NormalizedTrade {
	n := NormalizedTrade{
		Quantity:   Some(agg.NetQuantity),
		Notional:   agg.Notional,
		Price:      agg.Price,
		Commission: commission,
	}
	if c, ok := commission.Get(); ok {
		n.Charged = c.Neg()
	}

	switch category {
	case Sell:
		n.Quantity = Some(agg.NetQuantity.Neg())
		n.Notional = agg.Notional.Neg()
		if c, ok := commission.Get(); ok {
			n.Commission = Some(c.Neg())
		}
	case Tax, TaxDividend, Dividend:
		n.Quantity = None[Quantity]()
		n.Price = None[Money]()
	case Buy, BuyCard, BrokerCommission, ExchangeCommission, ServiceCommission, MarginCommission,
		OtherCommission, PayIn, PayOut, TaxBack, TaxLucre, TaxCoupon, Repayment, PartRepayment,
		Coupon, SecurityIn, SecurityOut:
		// as aggregated
	}
	return n
}
