package tinkoff

import (
	"fmt"

	"github.com/etnz/opsheet"
)

// toOperation converts an API operation. Unknown types and statuses are errors.
func toOperation(o operation) (opsheet.Operation, error) {
	category, err := opsheet.ParseCategory(o.OperationType)
	if err != nil {
		return opsheet.Operation{}, fmt.Errorf("operation %s: %w", o.ID, err)
	}
	status, err := opsheet.ParseStatus(o.Status)
	if err != nil {
		return opsheet.Operation{}, fmt.Errorf("operation %s: %w", o.ID, err)
	}

	op := opsheet.Operation{
		ID:       o.ID,
		Category: category,
		Status:   status,
		Date:     o.Date,
		Currency: o.Currency,
		Payment:  opsheet.M(o.Payment, o.Currency),
		Fills:    make([]opsheet.Fill, 0, len(o.Trades)),
	}
	if o.Figi != "" {
		op.Instrument = opsheet.Some(opsheet.InstrumentRef(o.Figi))
	}
	if o.Commission != nil {
		op.Commission = opsheet.Some(toMoney(*o.Commission))
	}
	for _, t := range o.Trades {
		op.Fills = append(op.Fills, opsheet.Fill{
			Quantity: opsheet.Q(t.Quantity),
			Price:    opsheet.M(t.Price, o.Currency),
		})
	}
	return op, nil
}

func toMoney(m moneyAmount) opsheet.Money { return opsheet.M(m.Value, m.Currency) }

// toOptionalMoney returns a zero amount in currency for a missing one.
func toOptionalMoney(m *moneyAmount, currency string) opsheet.Money {
	if m == nil {
		return opsheet.M(0, currency)
	}
	return toMoney(*m)
}

// toPosition converts a position, a missing amount takes the currency of the other one.
func toPosition(p position) opsheet.Position {
	var currency string
	for _, m := range []*moneyAmount{p.AveragePositionPrice, p.ExpectedYield} {
		if m != nil && currency == "" {
			currency = m.Currency
		}
	}
	return opsheet.Position{
		Instrument:    opsheet.InstrumentRef(p.Figi),
		Ticker:        p.Ticker,
		Name:          p.Name,
		Balance:       opsheet.Q(p.Balance),
		AveragePrice:  toOptionalMoney(p.AveragePositionPrice, currency),
		ExpectedYield: toOptionalMoney(p.ExpectedYield, currency),
	}
}

func toCurrencyBalance(c currencyPosition) opsheet.CurrencyBalance {
	return opsheet.CurrencyBalance{Currency: c.Currency, Balance: opsheet.M(c.Balance, c.Currency)}
}

func toAccount(a account) (opsheet.Account, error) {
	t, err := opsheet.ParseAccountType(a.BrokerAccountType)
	if err != nil {
		return opsheet.Account{}, fmt.Errorf("account %s: %w", a.BrokerAccountID, err)
	}
	return opsheet.Account{ID: opsheet.AccountID(a.BrokerAccountID), Type: t}, nil
}
