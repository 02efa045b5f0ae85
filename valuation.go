package opsheet

import "fmt"

// HoldingsHeader is the header row of holdings tables.
var HoldingsHeader = []string{"Тикер", "Название", "Кол-во", "Покупка", "Текущая", "Валюта"}

// ReduceHoldings values each position at its purchase cost and current value.
//
// Rows keep the order of positions. A position whose expected yield is not in
// the currency of its average price cannot be valued and is an error.
func ReduceHoldings(positions []Position) (Table[HoldingRow], error) {
	rows := make([]HoldingRow, 0, len(positions))
	for _, p := range positions {
		if !p.AveragePrice.SameCurrency(p.ExpectedYield) {
			return Table[HoldingRow]{}, fmt.Errorf("position %s: expected yield in %s cannot value a position bought in %s",
				p.Instrument, p.ExpectedYield.Currency(), p.AveragePrice.Currency())
		}
		cost := p.AveragePrice.Mul(p.Balance)
		current := cost.Add(p.ExpectedYield)
		rows = append(rows, HoldingRow{
			Ticker:       p.Ticker,
			Name:         p.Name,
			Balance:      p.Balance,
			PurchaseCost: cost,
			CurrentValue: current,
			Currency:     current.Currency(), // either side may be missing its currency
		})
	}
	return Table[HoldingRow]{Header: HoldingsHeader, Rows: rows}, nil
}

// ReduceCurrencies lists cash balances, in the order received.
func ReduceCurrencies(balances []CurrencyBalance) Table[CurrencyRow] {
	rows := make([]CurrencyRow, 0, len(balances))
	for _, b := range balances {
		rows = append(rows, CurrencyRow{Currency: b.Currency, Balance: b.Balance})
	}
	return Table[CurrencyRow]{Rows: rows}
}
