package opsheet

import "time"

// InstrumentRef identifies a tradable instrument at the broker (a FIGI).
type InstrumentRef string

// AccountID identifies a broker sub-account. The empty AccountID is the default account.
type AccountID string

// Fill is one partial execution of a trade.
type Fill struct {
	Quantity Quantity // always positive as received
	Price    Money
}

// Operation is one entry of the broker's operation history.
//
// Operations are produced by a Broker and are read-only for this package:
// normalization returns new values and never modifies an Operation.
type Operation struct {
	ID         string
	Category   Category
	Status     Status
	Date       time.Time
	Instrument Optional[InstrumentRef]
	Currency   string
	Commission Optional[Money]
	Payment    Money
	Fills      []Fill
}

// Position is an instrument currently held in an account.
type Position struct {
	Instrument    InstrumentRef
	Ticker        string
	Name          string
	Balance       Quantity
	AveragePrice  Money
	ExpectedYield Money
}

// CurrencyBalance is the cash held in one currency.
type CurrencyBalance struct {
	Currency string
	Balance  Money
}

// Account is a broker sub-account.
type Account struct {
	ID   AccountID
	Type AccountType
}
