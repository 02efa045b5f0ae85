package opsheet

// AggregatedTrade is the reduction of an operation's fills.
type AggregatedTrade struct {
	NetQuantity Quantity
	Notional    Money
	// Price is the volume-weighted price, absent when NetQuantity is zero.
	Price Optional[Money]
}

// Aggregate reduces the fills of one operation into its net quantity, total
// notional and weighted price.
//
// Quantities are summed unsigned, the buy/sell direction is applied by Normalize.
func Aggregate(fills []Fill) AggregatedTrade {
	var agg AggregatedTrade
	for _, f := range fills {
		agg.NetQuantity = agg.NetQuantity.Add(f.Quantity)
		agg.Notional = agg.Notional.Add(f.Price.Mul(f.Quantity))
	}
	if !agg.NetQuantity.IsZero() {
		agg.Price = Some(agg.Notional.Div(agg.NetQuantity))
	}
	return agg
}
